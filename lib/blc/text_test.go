// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package blc

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTextHex(t *testing.T) {
	tests := []struct {
		input string
		want  Term
	}{
		{"0x20", Identity()},
		{"20", Identity()},
		{"0x0C", ChurchTrue()},
		{"0c", ChurchTrue()},
		{"  0x20  ", Identity()},
		{"4880", App{Fn: Identity(), Arg: Identity()}},
	}
	for _, tt := range tests {
		got, err := ParseText(tt.input)
		if err != nil {
			t.Fatalf("ParseText(%q) error: %v", tt.input, err)
		}
		if !Equal(got, tt.want) {
			t.Errorf("ParseText(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseTextLambda(t *testing.T) {
	tests := []struct {
		input string
		want  Term
	}{
		{"λ.0", Identity()},
		{"\\.0", Identity()},
		{"λx.0", Identity()},
		{"λ x . 0", Identity()},
		{"λ.λ.1", ChurchTrue()},
		{"λx.λy.1", ChurchTrue()},
		{"(λ.0 λ.0)", App{Fn: Identity(), Arg: Identity()}},
		{"( λ.0   λ.0 )", App{Fn: Identity(), Arg: Identity()}},
		{"λ.λ.(1 0)", ChurchOne()},
		{"λ.λ.λ.((2 0) (1 0))", SCombinator()},
	}
	for _, tt := range tests {
		got, err := ParseText(tt.input)
		if err != nil {
			t.Fatalf("ParseText(%q) error: %v", tt.input, err)
		}
		if !Equal(got, tt.want) {
			t.Errorf("ParseText(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseTextEquivalence(t *testing.T) {
	// The three identity spellings from the format documentation all
	// produce the same term.
	for _, input := range []string{"0x20", "λ.0", "\\.0"} {
		got, err := ParseText(input)
		if err != nil {
			t.Fatalf("ParseText(%q) error: %v", input, err)
		}
		if !Equal(got, Identity()) {
			t.Errorf("ParseText(%q) = %s, want identity", input, got)
		}
	}
}

func TestParseTextStringRoundTrip(t *testing.T) {
	// Term.String() output parses back to the same term.
	terms := []Term{Identity(), ChurchOne(), SCombinator(), Abs{Body: Var{Index: 9}}}
	for _, term := range terms {
		got, err := ParseText(term.String())
		if err != nil {
			t.Fatalf("ParseText(%q) error: %v", term.String(), err)
		}
		if !Equal(got, term) {
			t.Errorf("ParseText(%q) = %s, want %s", term.String(), got, term)
		}
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "unexpected end of input"},
		{"unexpected character", "λ.@", "unexpected character"},
		{"missing close paren", "(λ.0 λ.0", "expected ')'"},
		{"wrong close", "(λ.0 λ.0]", "expected ')'"},
		{"truncated abstraction", "λ.", "unexpected end of input"},
		{"index overflow", "λ.99999999999999999999", "invalid variable index"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(tt.input)
			if err == nil {
				t.Fatalf("ParseText(%q) succeeded, want error", tt.input)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("ParseText(%q) error type %T, want *SyntaxError", tt.input, err)
			}
			if !strings.Contains(syntaxErr.Msg, tt.wantMsg) {
				t.Errorf("error %q does not mention %q", syntaxErr.Msg, tt.wantMsg)
			}
		})
	}
}

func TestParseTextSyntaxErrorOffset(t *testing.T) {
	_, err := ParseText("(λ.0 λ.0]")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("error type %T, want *SyntaxError", err)
	}
	// The offset points just past the offending rune.
	if syntaxErr.Offset == 0 {
		t.Error("syntax error carries no offset")
	}
}

func TestParseTextInvalidHex(t *testing.T) {
	for _, input := range []string{"0x2", "0xZZ", "0x"} {
		got, err := ParseText(input)
		if err == nil {
			t.Errorf("ParseText(%q) = %s, want hex error", input, got)
		}
	}
}

// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package blc

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SyntaxError reports a malformed lambda-notation input. Offset is the
// byte position within the input where parsing failed.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

// ParseText parses a term from human-readable notation. Two forms are
// accepted:
//
//   - Hexadecimal, optionally prefixed "0x": the bytes are decoded
//     with [Decode]. Chosen when the input starts with "0x" or
//     consists entirely of hex digits.
//   - Lambda notation: "λ" or "\" introduces an abstraction (an
//     optional binder name is skipped — only position matters — and
//     an optional "." separates the body); "(fn arg)" is an
//     application; a run of decimal digits is a de Bruijn index.
//
// Whitespace between tokens is insignificant. Hex failures surface the
// encoding/hex error; lambda failures surface a [*SyntaxError] with
// the offending byte offset.
func ParseText(input string) (Term, error) {
	input = strings.TrimSpace(input)

	if isHexInput(input) {
		raw, err := hex.DecodeString(strings.TrimPrefix(input, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid hex program: %w", err)
		}
		return Decode(raw)
	}

	p := &textParser{input: input}
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return term, nil
}

// isHexInput reports whether input should be treated as a hex-encoded
// term rather than lambda notation. A bare digit run like "10" is hex
// here, matching the precedence the text format has always had: plain
// de Bruijn literals only occur inside lambda notation.
func isHexInput(input string) bool {
	if strings.HasPrefix(input, "0x") {
		return true
	}
	if input == "" {
		return false
	}
	for _, c := range input {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c rune) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// textParser is a recursive-descent parser with one rune of lookahead
// over the lambda surface syntax. pos is a byte offset into input.
type textParser struct {
	input string
	pos   int
}

// peek returns the rune at the cursor without consuming it.
func (p *textParser) peek() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return r, true
}

// next consumes and returns the rune at the cursor.
func (p *textParser) next() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += size
	return r, true
}

func (p *textParser) skipWhitespace() {
	for {
		r, ok := p.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		p.next()
	}
}

func (p *textParser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *textParser) parseTerm() (Term, error) {
	p.skipWhitespace()

	r, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}

	switch {
	case r == 'λ' || r == '\\':
		p.next()
		p.skipWhitespace()
		// Skip an optional binder name. Names carry no meaning in a
		// de Bruijn representation; they are accepted for readability
		// and dropped.
		for {
			r, ok := p.peek()
			if !ok || !isNameRune(r) {
				break
			}
			p.next()
		}
		p.skipWhitespace()
		if r, ok := p.peek(); ok && r == '.' {
			p.next()
		}
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return Abs{Body: body}, nil

	case r == '(':
		p.next()
		fn, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		r, ok := p.next()
		if !ok {
			return nil, p.errorf("unexpected end of input, expected ')'")
		}
		if r != ')' {
			return nil, p.errorf("expected ')', found %q", r)
		}
		return App{Fn: fn, Arg: arg}, nil

	case r >= '0' && r <= '9':
		start := p.pos
		for {
			r, ok := p.peek()
			if !ok || r < '0' || r > '9' {
				break
			}
			p.next()
		}
		index, err := strconv.ParseUint(p.input[start:p.pos], 10, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: start, Msg: fmt.Sprintf("invalid variable index %q", p.input[start:p.pos])}
		}
		return Var{Index: index}, nil

	default:
		return nil, p.errorf("unexpected character %q", r)
	}
}

// isNameRune reports whether r may appear in a skipped binder name:
// any letter or digit except the binder introducers themselves, so
// "λλ.0" reads as two nested abstractions rather than a one-letter
// name.
func isNameRune(r rune) bool {
	return r != 'λ' && r != '\\' && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

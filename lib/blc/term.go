// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package blc

import "strconv"

// Term is a binary lambda calculus expression: exactly one of [Var],
// [Abs], or [App]. The interface is sealed by an unexported marker
// method so the three variants form a closed sum — a type switch over
// Var, Abs, and App is exhaustive, and any new term kind must be added
// here and handled everywhere a switch appears.
type Term interface {
	// String renders the term in lambda notation: bare indices for
	// variables, "λ.body" for abstractions, "(fn arg)" for
	// applications. The output is accepted by [ParseText].
	String() string

	isTerm()
}

// Var is a variable reference by de Bruijn index: the number of
// abstractions between the reference and its binder. The index is not
// bounded by the actual nesting depth — out-of-range indices denote
// free variables and are preserved verbatim by the codec.
type Var struct {
	Index uint64
}

// Abs is a single-argument lambda abstraction owning its body.
type Abs struct {
	Body Term
}

// App is an application of Fn to Arg, in that order.
type App struct {
	Fn  Term
	Arg Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

func (v Var) String() string { return strconv.FormatUint(v.Index, 10) }
func (a Abs) String() string { return "λ." + a.Body.String() }
func (a App) String() string { return "(" + a.Fn.String() + " " + a.Arg.String() + ")" }

// Equal reports whether two terms are structurally identical. Terms
// hold interface-typed children, so == would compare dynamic types
// rather than tree shapes; use this instead.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Index == y.Index
	case Abs:
		y, ok := b.(Abs)
		return ok && Equal(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		return ok && Equal(x.Fn, y.Fn) && Equal(x.Arg, y.Arg)
	default:
		return a == nil && b == nil
	}
}

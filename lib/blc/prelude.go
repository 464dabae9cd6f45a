// Copyright 2026 The BLC Authors
// SPDX-License-Identifier: Apache-2.0

package blc

// Well-known terms. Each constructor returns a fresh tree so callers
// can treat the result as exclusively owned.

// Identity is λx.x, the I combinator. Encodes to 0x20.
func Identity() Term {
	return Abs{Body: Var{Index: 0}}
}

// ChurchTrue is λx.λy.x, the K combinator. Encodes to 0x0C.
func ChurchTrue() Term {
	return Abs{Body: Abs{Body: Var{Index: 1}}}
}

// ChurchFalse is λx.λy.y. Encodes to 0x08.
func ChurchFalse() Term {
	return Abs{Body: Abs{Body: Var{Index: 0}}}
}

// ChurchZero is the Church numeral 0, λf.λx.x — the same term as
// ChurchFalse.
func ChurchZero() Term {
	return ChurchFalse()
}

// ChurchOne is the Church numeral 1, λf.λx.(f x).
func ChurchOne() Term {
	return Abs{Body: Abs{Body: App{Fn: Var{Index: 1}, Arg: Var{Index: 0}}}}
}

// SCombinator is λx.λy.λz.((x z) (y z)).
func SCombinator() Term {
	return Abs{Body: Abs{Body: Abs{Body: App{
		Fn:  App{Fn: Var{Index: 2}, Arg: Var{Index: 0}},
		Arg: App{Fn: Var{Index: 1}, Arg: Var{Index: 0}},
	}}}}
}

// KCombinator is λx.λy.x — the same term as ChurchTrue.
func KCombinator() Term {
	return ChurchTrue()
}

// ICombinator is λx.x — the same term as Identity.
func ICombinator() Term {
	return Identity()
}

// Package symexpr implements arithmetic expression trees over a flat vector
// of float64 state.
//
// Trees are built from constants and variables with Add, Sub, Mul, Div, Neg
// and the assignment builders. "c <<= b - a" is written
//
//	symexpr.Assign(c, symexpr.Sub(b, a))
//
// Variables are handles into a State obtained from a Symbols table, so the
// same tree can be evaluated against a buffer that changes between calls.
// Only assignment nodes write to the buffer.
//
// Rendering never inserts parentheses. Add(Add(a, b), c) and Add(a, Add(b, c))
// both render as "a+b+c".
package symexpr

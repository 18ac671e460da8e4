package symexpr

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Render writes the infix form of e to w, using syms for variable names.
// Nothing is written if a variable is missing from syms.
func Render(w io.Writer, e Expr, syms *Symbols) error {
	s, err := e.Render(syms)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Render returns the infix form of the expression, using syms for variable
// names. The result is a direct walk of the tree: no parentheses are added,
// so Mul(Add(a, b), c) renders as "a+b*c". Unary plus writes nothing, and
// plain assignment is written as "<<=".
//
// The only error is an *OutOfRangeError for a variable not declared in syms.
func (e Expr) Render(syms *Symbols) (string, error) {
	if e.n == nil {
		panic("symexpr: Render of zero Expr")
	}
	var b strings.Builder
	if err := e.n.render(&b, syms); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Render returns the variable's name in syms.
func (v Var) Render(syms *Symbols) (string, error) {
	return syms.Name(v)
}

func (n *node) render(b *strings.Builder, syms *Symbols) error {
	switch n.kind {
	case nodeConst:
		b.WriteString(formatConst(n.val))
	case nodeVar:
		name, err := syms.Name(n.v)
		if err != nil {
			return err
		}
		b.WriteString(name)
	case nodeUnary:
		if n.op == OpMinus {
			b.WriteByte('-')
		}
		return n.left.render(b, syms)
	case nodeBinary:
		if err := n.left.render(b, syms); err != nil {
			return err
		}
		b.WriteString(binarySym[n.op])
		return n.right.render(b, syms)
	case nodeAssign:
		name, err := syms.Name(n.v)
		if err != nil {
			return err
		}
		b.WriteString(name)
		b.WriteString(assignSym[n.op])
		return n.left.render(b, syms)
	default:
		panic("symexpr: invalid node kind " + n.kind.String() + " after rendering " + b.String())
	}
	return nil
}

// formatConst formats a constant like C's %g: six significant digits, no
// trailing zeros.
func formatConst(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "nan"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}

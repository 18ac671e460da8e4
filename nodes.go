package symexpr

import (
	"sort"
	"strconv"
	"strings"
)

// node is a node in an expression tree. Nodes are never modified after they
// are built, so trees may share them freely.
type node struct {
	kind nodeKind
	op   Op

	val float64 // nodeConst
	v   Var     // nodeVar, nodeAssign target

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst  // val
	nodeVar    // state[v]
	nodeUnary  // op left; op is OpPlus or OpMinus
	nodeBinary // left op right; op is not OpAssign
	nodeAssign // v op= left
)

// Op is an arithmetic operation. OpAssign appears only in assignments, where
// it replaces the target's value outright.
type Op int8

const (
	OpAssign Op = iota
	OpPlus
	OpMinus
	OpMul
	OpDiv
)

//go:generate stringer -type=nodeKind -trimprefix=node
//go:generate stringer -type=Op -trimprefix=Op

// Expr is an expression tree. Build one with Const, Ref, or the operator
// functions. The zero Expr is not a valid expression.
type Expr struct {
	n *node
}

// Operand is the set of types accepted as operands when building
// expressions. Numbers become constants and variables become references.
type Operand interface {
	Expr | Var | float64 | int
}

// operand converts an operand to its tree.
func operand[T Operand](x T) *node {
	switch x := any(x).(type) {
	case Expr:
		if x.n == nil {
			panic("symexpr: zero Expr used as operand")
		}
		return x.n
	case Var:
		return &node{kind: nodeVar, v: x}
	case float64:
		return &node{kind: nodeConst, val: x}
	case int:
		return &node{kind: nodeConst, val: float64(x)}
	default:
		panic("unreachable")
	}
}

// Const returns a constant expression.
func Const(x float64) Expr {
	return Expr{operand(x)}
}

// Ref returns an expression which reads a variable.
func Ref(v Var) Expr {
	return Expr{operand(v)}
}

func binary[L, R Operand](op Op, l L, r R) Expr {
	return Expr{&node{kind: nodeBinary, op: op, left: operand(l), right: operand(r)}}
}

// Add returns l + r.
func Add[L, R Operand](l L, r R) Expr { return binary(OpPlus, l, r) }

// Sub returns l - r.
func Sub[L, R Operand](l L, r R) Expr { return binary(OpMinus, l, r) }

// Mul returns l * r.
func Mul[L, R Operand](l L, r R) Expr { return binary(OpMul, l, r) }

// Div returns l / r. Evaluating it fails if r is zero.
func Div[L, R Operand](l L, r R) Expr { return binary(OpDiv, l, r) }

// Plus returns +x, which evaluates and renders the same as x.
func Plus[T Operand](x T) Expr {
	return Expr{&node{kind: nodeUnary, op: OpPlus, left: operand(x)}}
}

// Neg returns -x.
func Neg[T Operand](x T) Expr {
	return Expr{&node{kind: nodeUnary, op: OpMinus, left: operand(x)}}
}

func assign[T Operand](op Op, target Var, x T) Expr {
	return Expr{&node{kind: nodeAssign, op: op, v: target, left: operand(x)}}
}

// Assign returns an expression which stores x in target and results in the
// stored value. It renders as "target<<=x".
func Assign[T Operand](target Var, x T) Expr { return assign(OpAssign, target, x) }

// AddAssign returns target += x.
func AddAssign[T Operand](target Var, x T) Expr { return assign(OpPlus, target, x) }

// SubAssign returns target -= x.
func SubAssign[T Operand](target Var, x T) Expr { return assign(OpMinus, target, x) }

// MulAssign returns target *= x.
func MulAssign[T Operand](target Var, x T) Expr { return assign(OpMul, target, x) }

// DivAssign returns target /= x. Unlike Div, evaluating it does not check for
// a zero divisor unless the evaluator uses StrictAssignDiv.
func DivAssign[T Operand](target Var, x T) Expr { return assign(OpDiv, target, x) }

// IsZero returns whether e is the zero Expr.
func (e Expr) IsZero() bool {
	return e.n == nil
}

// Vars returns the distinct variables the expression reads or assigns,
// ordered by index.
func (e Expr) Vars() []Var {
	return e.collect(false)
}

// Targets returns the distinct variables the expression assigns, ordered by
// index. Evaluating an expression with no targets never modifies the state.
func (e Expr) Targets() []Var {
	return e.collect(true)
}

func (e Expr) collect(targets bool) []Var {
	seen := make(map[Var]bool)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		switch n.kind {
		case nodeVar:
			if !targets {
				seen[n.v] = true
			}
		case nodeAssign:
			seen[n.v] = true
		}
		walk(n.left)
		walk(n.right)
	}
	walk(e.n)
	if len(seen) == 0 {
		return nil
	}
	r := make([]Var, 0, len(seen))
	for v := range seen {
		r = append(r, v)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].id < r[j].id })
	return r
}

// String creates a string representation of the expression's structure, with
// alternating round and square brackets grouping each term and variables
// written by index as $0, $1, and so on. Use Render for the infix form with
// variable names.
func (e Expr) String() string {
	if e.n == nil {
		return "<nil>"
	}
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeConst:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeVar:
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n.v.id))
	case nodeUnary:
		b.WriteString(unarySym[n.op])
		n.left.fmt(b, !square)
	case nodeBinary:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(binarySym[n.op])
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	case nodeAssign:
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n.v.id))
		b.WriteByte(' ')
		b.WriteString(assignSym[n.op])
		b.WriteByte(' ')
		n.left.fmt(b, !square)
	default:
		panic("symexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// Operator symbols by Op. Unary plus is written only in String, not Render.
var (
	unarySym  = [...]string{OpPlus: "+", OpMinus: "-"}
	binarySym = [...]string{OpPlus: "+", OpMinus: "-", OpMul: "*", OpDiv: "/"}
	assignSym = [...]string{OpAssign: "<<=", OpPlus: "+=", OpMinus: "-=", OpMul: "*=", OpDiv: "/="}
)

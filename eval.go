package symexpr

import (
	"context"
	"log/slog"
)

// Evaluator evaluates expressions against state buffers. An Evaluator holds
// only configuration and may be shared; the State passed to Eval may not.
type Evaluator struct {
	logger    *slog.Logger
	strictDiv bool
}

// EvalOption is an option used when creating an Evaluator.
type EvalOption interface {
	evalOption()
}

type (
	loggeropt    struct{ l *slog.Logger }
	strictdivopt bool
)

func (loggeropt) evalOption()    {}
func (strictdivopt) evalOption() {}

// Logger sets the logger which receives debug records of assignments and
// failed evaluations. If no logger is given, or l is nil, the evaluator uses
// slog.Default at the time of each evaluation.
func Logger(l *slog.Logger) EvalOption {
	return loggeropt{l}
}

// StrictAssignDiv sets whether assignment division checks for a zero divisor.
// By default, x /= 0 stores whatever float64 division produces, while x / 0
// is an error.
func StrictAssignDiv(strict bool) EvalOption {
	return strictdivopt(strict)
}

// NewEvaluator creates an evaluator with the given options.
func NewEvaluator(opts ...EvalOption) *Evaluator {
	var ev Evaluator
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case loggeropt:
			ev.logger = opt.l
		case strictdivopt:
			ev.strictDiv = bool(opt)
		default:
			panic("symexpr: unknown option type")
		}
	}
	return &ev
}

var defaultEvaluator Evaluator

// Eval evaluates the expression against s using default options.
func (e Expr) Eval(s State) (float64, error) {
	return defaultEvaluator.Eval(e, s)
}

// Eval returns the variable's current value in s.
func (v Var) Eval(s State) (float64, error) {
	return s.load(v)
}

// Eval evaluates an expression against s and returns its result. Assignments
// in e modify s as they are evaluated; nothing else does. Operands are
// evaluated left to right, and an assignment evaluates its value before
// reading its target.
//
// The first failure stops evaluation. Its error is a *DivisionByZeroError or
// an *OutOfRangeError. Assignments completed before the failure remain in s.
//
// Panics if e is the zero Expr.
func (ev *Evaluator) Eval(e Expr, s State) (float64, error) {
	if e.n == nil {
		panic("symexpr: Eval of zero Expr")
	}
	r, err := ev.eval(e.n, s)
	if err != nil {
		if l := ev.log(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.LogAttrs(context.Background(), slog.LevelDebug, "eval failed",
				slog.String("expr", e.String()), slog.Any("err", err))
		}
		return 0, err
	}
	return r, nil
}

func (ev *Evaluator) log() *slog.Logger {
	if ev.logger != nil {
		return ev.logger
	}
	return slog.Default()
}

func (ev *Evaluator) eval(n *node, s State) (float64, error) {
	switch n.kind {
	case nodeConst:
		return n.val, nil
	case nodeVar:
		return s.load(n.v)
	case nodeUnary:
		x, err := ev.eval(n.left, s)
		if err != nil {
			return 0, err
		}
		switch n.op {
		case OpPlus:
			return x, nil
		case OpMinus:
			return -x, nil
		}
	case nodeBinary:
		l, err := ev.eval(n.left, s)
		if err != nil {
			return 0, err
		}
		r, err := ev.eval(n.right, s)
		if err != nil {
			return 0, err
		}
		switch n.op {
		case OpPlus:
			return l + r, nil
		case OpMinus:
			return l - r, nil
		case OpMul:
			return l * r, nil
		case OpDiv:
			if r == 0 {
				return 0, &DivisionByZeroError{Dividend: l}
			}
			return l / r, nil
		}
	case nodeAssign:
		x, err := ev.eval(n.left, s)
		if err != nil {
			return 0, err
		}
		old, err := s.load(n.v)
		if err != nil {
			return 0, err
		}
		var r float64
		switch n.op {
		case OpAssign:
			r = x
		case OpPlus:
			r = old + x
		case OpMinus:
			r = old - x
		case OpMul:
			r = old * x
		case OpDiv:
			if ev.strictDiv && x == 0 {
				return 0, &DivisionByZeroError{Dividend: old}
			}
			r = old / x
		default:
			panic("symexpr: invalid assignment op " + n.op.String())
		}
		s[n.v.id] = r
		if l := ev.log(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.LogAttrs(context.Background(), slog.LevelDebug, "assign",
				slog.Int("var", n.v.id), slog.String("op", n.op.String()),
				slog.Float64("old", old), slog.Float64("new", r))
		}
		return r, nil
	}
	panic("symexpr: invalid node " + n.kind.String() + " with op " + n.op.String())
}

// load reads a variable from the state.
func (s State) load(v Var) (float64, error) {
	if v.id < 0 || v.id >= len(s) {
		return 0, &OutOfRangeError{Index: v.id, Len: len(s), What: "state"}
	}
	return s[v.id], nil
}

package symexpr_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/symexpr"
)

func FuzzEvalArith(f *testing.F) {
	f.Add(2.0, 4.0)
	f.Add(1.0, 0.0)
	f.Add(-3.5, 1e300)
	f.Fuzz(func(t *testing.T, x, y float64) {
		same := func(name string, e symexpr.Expr, want float64) {
			r, err := e.Eval(nil)
			if err != nil {
				t.Fatalf("%s(%g, %g): %v", name, x, y, err)
			}
			if math.Float64bits(r) != math.Float64bits(want) && !(math.IsNaN(r) && math.IsNaN(want)) {
				t.Errorf("%s(%g, %g): want %g, got %g", name, x, y, want, r)
			}
		}
		same("add", symexpr.Add(x, y), x+y)
		same("sub", symexpr.Sub(x, y), x-y)
		same("mul", symexpr.Mul(x, y), x*y)
		same("neg", symexpr.Neg(x), -x)
		if y == 0 {
			if _, err := symexpr.Div(x, y).Eval(nil); err == nil {
				t.Errorf("div(%g, %g) gave no error", x, y)
			}
			return
		}
		same("div", symexpr.Div(x, y), x/y)
	})
}

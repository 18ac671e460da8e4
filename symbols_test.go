package symexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/symexpr"
)

func TestDeclare(t *testing.T) {
	var syms symexpr.Symbols
	names := []string{"a", "b", "c", "b"}
	for i, name := range names {
		v := syms.Declare(name, float64(i)*1.5)
		assert.Equal(t, i, v.Index(), "declaring %q", name)
	}
	assert.Equal(t, len(names), syms.Len())
	assert.Equal(t, names, syms.Names())
	assert.Equal(t, symexpr.State{0, 1.5, 3, 4.5}, syms.NewState())
}

func TestDeclareDistinct(t *testing.T) {
	var syms symexpr.Symbols
	a := syms.Declare("x", 0)
	b := syms.Declare("x", 0)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, symexpr.Ref(a).Vars()[0])
}

func TestName(t *testing.T) {
	var syms symexpr.Symbols
	a := syms.Declare("alpha", 1)
	b := syms.Declare("beta", 2)
	for _, c := range []struct {
		v    symexpr.Var
		name string
	}{{a, "alpha"}, {b, "beta"}} {
		name, err := syms.Name(c.v)
		require.NoError(t, err)
		assert.Equal(t, c.name, name)
	}
}

func TestNameOutOfRange(t *testing.T) {
	var big symexpr.Symbols
	big.Declare("a", 0)
	big.Declare("b", 0)
	c := big.Declare("c", 0)

	var small symexpr.Symbols
	small.Declare("x", 0)
	name, err := small.Name(c)
	assert.Empty(t, name)
	var oor *symexpr.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 2, oor.Index)
	assert.Equal(t, 1, oor.Len)
	assert.Equal(t, "symbols", oor.What)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLookup(t *testing.T) {
	var syms symexpr.Symbols
	syms.Declare("x", 0)
	y := syms.Declare("y", 0)
	x2 := syms.Declare("x", 0)
	v, ok := syms.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, x2, v)
	v, ok = syms.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, y, v)
	_, ok = syms.Lookup("z")
	assert.False(t, ok)
}

func TestNewStateIsFresh(t *testing.T) {
	var syms symexpr.Symbols
	a := syms.Declare("a", 7)
	s1 := syms.NewState()
	s1[a.Index()] = 100
	s2 := syms.NewState()
	assert.Equal(t, 7.0, s2[a.Index()])
	assert.Empty(t, new(symexpr.Symbols).NewState())
}

func TestDeclareIn(t *testing.T) {
	var syms symexpr.Symbols
	var st symexpr.State
	a := syms.DeclareIn(&st, "a", 2)
	b := syms.DeclareIn(&st, "b", 3)
	require.Equal(t, symexpr.State{2, 3}, st)
	r, err := symexpr.Add(a, b).Eval(st)
	require.NoError(t, err)
	assert.Equal(t, 5.0, r)
	assert.Equal(t, syms.NewState(), st)
}

func TestDeclareInOutOfStep(t *testing.T) {
	var syms symexpr.Symbols
	syms.Declare("a", 0)
	st := symexpr.State{}
	assert.Panics(t, func() { syms.DeclareIn(&st, "b", 0) })
	assert.Equal(t, 1, syms.Len())
}

package symexpr

import "strconv"

// State is a buffer of variable values. Its length must be at least the
// number of variables declared in the Symbols used to build expressions
// evaluated against it. State has no synchronization; at most one evaluation
// may use a given State at a time.
type State []float64

// Var is a handle to a variable. It holds only the variable's index into a
// State; two Vars are the same variable exactly when their indices are equal.
type Var struct {
	id int
}

// Index returns the variable's index into a State.
func (v Var) Index() int {
	return v.id
}

// Expr returns an expression which reads the variable.
func (v Var) Expr() Expr {
	return Ref(v)
}

// Symbols is a table of declared variables. It records each variable's
// display name and initial value in declaration order and never removes or
// renumbers them. The zero value is an empty table ready to use. It is not
// safe to use a Symbols concurrently.
type Symbols struct {
	names []string
	init  []float64
}

// Declare adds a variable to the table and returns its handle. Indices are
// assigned in increasing order starting at 0.
func (s *Symbols) Declare(name string, init float64) Var {
	v := Var{id: len(s.names)}
	s.names = append(s.names, name)
	s.init = append(s.init, init)
	return v
}

// DeclareIn declares a variable and also appends its initial value to st,
// so that st stays usable with every variable of s. Panics if st was not
// already in step with s.
func (s *Symbols) DeclareIn(st *State, name string, init float64) Var {
	if len(*st) != len(s.names) {
		panic("symexpr: DeclareIn with state of length " + strconv.Itoa(len(*st)) + " for table of length " + strconv.Itoa(len(s.names)))
	}
	v := s.Declare(name, init)
	*st = append(*st, init)
	return v
}

// Name returns the name with which v was declared. If v was not produced by
// this table, the error is an *OutOfRangeError.
func (s *Symbols) Name(v Var) (string, error) {
	if v.id < 0 || v.id >= len(s.names) {
		return "", &OutOfRangeError{Index: v.id, Len: len(s.names), What: "symbols"}
	}
	return s.names[v.id], nil
}

// Lookup returns the most recently declared variable with the given name.
func (s *Symbols) Lookup(name string) (Var, bool) {
	for i := len(s.names) - 1; i >= 0; i-- {
		if s.names[i] == name {
			return Var{id: i}, true
		}
	}
	return Var{}, false
}

// Len returns the number of declared variables.
func (s *Symbols) Len() int {
	return len(s.names)
}

// Names returns a copy of the declared names in declaration order.
func (s *Symbols) Names() []string {
	return append(([]string)(nil), s.names...)
}

// NewState creates a state buffer holding each variable's initial value.
func (s *Symbols) NewState() State {
	return append(make(State, 0, len(s.init)), s.init...)
}

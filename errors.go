package symexpr

import "strconv"

// DivisionByZeroError is an error returned when the right operand of a
// division evaluates to zero.
type DivisionByZeroError struct {
	// Dividend is the value of the left operand.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + "/0"
}

// OutOfRangeError is an error indicating a variable whose index is not valid
// for the state buffer or symbol table in use.
type OutOfRangeError struct {
	// Index is the variable index that was used.
	Index int
	// Len is the length of the buffer or table.
	Len int
	// What names what was indexed, "state" or "symbols".
	What string
}

func (err *OutOfRangeError) Error() string {
	return "variable $" + strconv.Itoa(err.Index) + " out of range for " + err.What + " of length " + strconv.Itoa(err.Len)
}

var (
	_ error = (*DivisionByZeroError)(nil)
	_ error = (*OutOfRangeError)(nil)
)

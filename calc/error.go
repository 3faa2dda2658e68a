package calc

import "fmt"

// UnknownStackError describes a reference to a stack name which has never been created.
type UnknownStackError struct {
	Name string
}

func (e *UnknownStackError) Error() string {
	return fmt.Sprintf("unknown stack %q", e.Name)
}

// InvalidNameError describes an attempt to create a stack whose name is not a non-empty string of
// word characters (letters, digits, underscore).
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid stack name %q", e.Name)
}

// EmptyStackError describes a read or reduction which requires more values than its stack holds.
type EmptyStackError struct {
	Stack string
	Need  int
	Have  int
}

func (e *EmptyStackError) Error() string {
	if e.Have == 0 {
		return fmt.Sprintf("stack %q is empty", e.Stack)
	}
	return fmt.Sprintf("stack %q holds %d values, need %d", e.Stack, e.Have, e.Need)
}

// ArithmeticError describes an arithmetic operation which is undefined for its operands, such as
// division by zero.
type ArithmeticError struct {
	Op  Op
	Msg string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

package calc

import (
	"fmt"
	"math"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type Op -linecomment

// Op identifies an arithmetic operation of the calculator.
type Op int

// The list of all operations.
const (
	OpAdd      Op = iota // add
	OpSubtract           // subtract
	OpMultiply           // multiply
	OpDivide             // divide
	OpModulo             // modulo
	OpRaiseTo            // raise_to
	OpRoot               // root
	OpSqrt               // sqrt
	OpTwiddle            // twiddle
	OpQuorem             // quorem
	OpDivmod             // divmod
)

// Apply performs the given operation on the current stack and returns the values it pushed.
func (c *Calculator) Apply(op Op) ([]float64, error) {
	switch op {
	case OpAdd:
		return single(c.Add())
	case OpSubtract:
		return single(c.Subtract())
	case OpMultiply:
		return single(c.Multiply())
	case OpDivide:
		return single(c.Divide())
	case OpModulo:
		return single(c.Modulo())
	case OpRaiseTo:
		return single(c.RaiseTo())
	case OpRoot:
		return single(c.Root())
	case OpSqrt:
		return single(c.Sqrt())
	case OpTwiddle:
		return c.ApplyN(2, swap)
	case OpQuorem, OpDivmod:
		return c.Quorem()
	default:
		panic(fmt.Sprintf("unexpected operation: Op(%d)", int(op)))
	}
}

func single(v float64, err error) ([]float64, error) {
	if err != nil {
		return nil, err
	}
	return []float64{v}, nil
}

// Add pops two values, pushes their sum, and returns it.
func (c *Calculator) Add() (float64, error) {
	return c.ApplyTwo(func(x, y float64) (float64, error) {
		return x + y, nil
	})
}

// Subtract pops two values, pushes the later-pushed value subtracted from the earlier, and
// returns it.
func (c *Calculator) Subtract() (float64, error) {
	return c.ApplyTwo(func(x, y float64) (float64, error) {
		return x - y, nil
	})
}

// Multiply pops two values, pushes their product, and returns it.
func (c *Calculator) Multiply() (float64, error) {
	return c.ApplyTwo(func(x, y float64) (float64, error) {
		return x * y, nil
	})
}

// Divide pops two values, pushes the earlier divided by the later, and returns it.
// It returns an [*ArithmeticError] if the divisor is zero.
func (c *Calculator) Divide() (float64, error) {
	return c.ApplyTwo(func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, &ArithmeticError{Op: OpDivide, Msg: "division by zero"}
		}
		return x / y, nil
	})
}

// Modulo pops two values, pushes the remainder of the earlier divided by the later, and returns
// it. The remainder is truncated, matching the native % operator. It returns an
// [*ArithmeticError] if the divisor is zero.
func (c *Calculator) Modulo() (float64, error) {
	return c.ApplyTwo(func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, &ArithmeticError{Op: OpModulo, Msg: "division by zero"}
		}
		return math.Mod(x, y), nil
	})
}

// RaiseTo pops two values x and y, pushes x raised to the power y, and returns it.
func (c *Calculator) RaiseTo() (float64, error) {
	return c.ApplyTwo(func(x, y float64) (float64, error) {
		return math.Pow(x, y), nil
	})
}

// Root pops two values x and y, pushes the y-th root of x, and returns it.
// It returns an [*ArithmeticError] if y is zero.
func (c *Calculator) Root() (float64, error) {
	return c.ApplyTwo(func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, &ArithmeticError{Op: OpRoot, Msg: "zeroth root"}
		}
		return math.Pow(x, 1/y), nil
	})
}

// Sqrt pushes the constant 2 and then performs [Calculator.Root], so the square root of the
// original top value replaces it.
func (c *Calculator) Sqrt() (float64, error) {
	c.Push(2)
	return c.Root()
}

// Twiddle swaps the top two values of the current stack.
func (c *Calculator) Twiddle() error {
	_, err := c.ApplyN(2, swap)
	return err
}

func swap(args ...float64) ([]float64, error) {
	return []float64{args[1], args[0]}, nil
}

// Quorem pops two values x and y and pushes two results: the truncating integer quotient of x
// divided by y, then the remainder. The pushed values are returned. It returns an
// [*ArithmeticError] if y is zero.
func (c *Calculator) Quorem() ([]float64, error) {
	return c.ApplyN(2, func(args ...float64) ([]float64, error) {
		x, y := args[0], args[1]
		if y == 0 {
			return nil, &ArithmeticError{Op: OpQuorem, Msg: "division by zero"}
		}
		return []float64{math.Trunc(x / y), math.Mod(x, y)}, nil
	})
}

// Divmod is an alias for [Calculator.Quorem].
func (c *Calculator) Divmod() ([]float64, error) {
	return c.Quorem()
}

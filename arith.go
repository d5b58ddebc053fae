package mvector

import (
	"fmt"

	"github.com/hupe1980/mvector/internal/conv"
	"github.com/hupe1980/mvector/internal/kernels"
)

// The operators below are free functions so that their element types can be
// constrained: + - * / and negation need a Number, % needs an Integer, and
// calling Mod or ModScalar on a float vector does not compile.
//
// Every operator returns a new vector with the length of its vector
// operand(s) and the options of the left vector operand. Vector-vector
// operators fail with a *LengthMismatchError when the lengths differ. Integer
// division and modulo fail with ErrDivisionByZero when any divisor is zero;
// floating point division follows IEEE 754.

// Add returns a + b element-wise.
func Add[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return binaryOp(a, b, kernels.Add[T])
}

// Sub returns a - b element-wise.
func Sub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return binaryOp(a, b, kernels.Sub[T])
}

// Mul returns a * b element-wise.
func Mul[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return binaryOp(a, b, kernels.Mul[T])
}

// Div returns a / b element-wise.
func Div[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLength(a, b); err != nil {
		return nil, err
	}
	if err := checkDivisors(b.Data()); err != nil {
		return nil, err
	}
	return binaryOp(a, b, kernels.Div[T])
}

// Mod returns a % b element-wise.
func Mod[T Integer](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLength(a, b); err != nil {
		return nil, err
	}
	if err := checkDivisors(b.Data()); err != nil {
		return nil, err
	}
	return binaryOp(a, b, kernels.Mod[T])
}

// AddScalar returns v + s for every element.
func AddScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	return scalarOp(v, s, kernels.AddScalar[T])
}

// SubScalar returns v - s for every element.
func SubScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	return scalarOp(v, s, kernels.SubScalar[T])
}

// MulScalar returns v * s for every element.
func MulScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	return scalarOp(v, s, kernels.MulScalar[T])
}

// DivScalar returns v / s for every element.
func DivScalar[T Number](v *Vector[T], s T) (*Vector[T], error) {
	if err := checkDivisor(s); err != nil {
		return nil, err
	}
	return scalarOp(v, s, kernels.DivScalar[T])
}

// ModScalar returns v % s for every element.
func ModScalar[T Integer](v *Vector[T], s T) (*Vector[T], error) {
	if err := checkDivisor(s); err != nil {
		return nil, err
	}
	return scalarOp(v, s, kernels.ModScalar[T])
}

// ScalarAdd returns s + v for every element.
func ScalarAdd[T Number](s T, v *Vector[T]) (*Vector[T], error) {
	return scalarOp(v, s, kernels.AddScalar[T])
}

// ScalarSub returns s - v for every element.
func ScalarSub[T Number](s T, v *Vector[T]) (*Vector[T], error) {
	return reverseScalarOp(s, v, kernels.ScalarSub[T])
}

// ScalarMul returns s * v for every element.
func ScalarMul[T Number](s T, v *Vector[T]) (*Vector[T], error) {
	return scalarOp(v, s, kernels.MulScalar[T])
}

// ScalarDiv returns s / v for every element.
func ScalarDiv[T Number](s T, v *Vector[T]) (*Vector[T], error) {
	if err := checkDivisors(v.Data()); err != nil {
		return nil, err
	}
	return reverseScalarOp(s, v, kernels.ScalarDiv[T])
}

// ScalarMod returns s % v for every element.
func ScalarMod[T Integer](s T, v *Vector[T]) (*Vector[T], error) {
	if err := checkDivisors(v.Data()); err != nil {
		return nil, err
	}
	return reverseScalarOp(s, v, kernels.ScalarMod[T])
}

// Neg returns -v for every element. Unsigned elements wrap around.
func Neg[T Number](v *Vector[T]) (*Vector[T], error) {
	out, err := newWithOptions[T](v.Len(), v.options())
	if err != nil {
		return nil, err
	}
	kernels.Neg(out.buf, v.Data())
	return out, nil
}

// AddScalarOf adds a scalar of another numeric type. s must convert to U
// without loss, otherwise ErrNarrowing is returned.
func AddScalarOf[U, V Number](v *Vector[U], s V) (*Vector[U], error) {
	u, err := narrow[U](s)
	if err != nil {
		return nil, err
	}
	return AddScalar(v, u)
}

// SubScalarOf subtracts a scalar of another numeric type, as AddScalarOf.
func SubScalarOf[U, V Number](v *Vector[U], s V) (*Vector[U], error) {
	u, err := narrow[U](s)
	if err != nil {
		return nil, err
	}
	return SubScalar(v, u)
}

// MulScalarOf multiplies by a scalar of another numeric type, as AddScalarOf.
func MulScalarOf[U, V Number](v *Vector[U], s V) (*Vector[U], error) {
	u, err := narrow[U](s)
	if err != nil {
		return nil, err
	}
	return MulScalar(v, u)
}

// DivScalarOf divides by a scalar of another numeric type, as AddScalarOf.
func DivScalarOf[U, V Number](v *Vector[U], s V) (*Vector[U], error) {
	u, err := narrow[U](s)
	if err != nil {
		return nil, err
	}
	return DivScalar(v, u)
}

func binaryOp[T Number](a, b *Vector[T], kernel func(dst, x, y []T)) (*Vector[T], error) {
	if err := sameLength(a, b); err != nil {
		return nil, err
	}
	out, err := newWithOptions[T](a.Len(), a.options())
	if err != nil {
		return nil, err
	}
	kernel(out.buf, a.Data(), b.Data())
	return out, nil
}

func scalarOp[T Number](v *Vector[T], s T, kernel func(dst, x []T, s T)) (*Vector[T], error) {
	out, err := newWithOptions[T](v.Len(), v.options())
	if err != nil {
		return nil, err
	}
	kernel(out.buf, v.Data(), s)
	return out, nil
}

func reverseScalarOp[T Number](s T, v *Vector[T], kernel func(dst []T, s T, x []T)) (*Vector[T], error) {
	out, err := newWithOptions[T](v.Len(), v.options())
	if err != nil {
		return nil, err
	}
	kernel(out.buf, s, v.Data())
	return out, nil
}

func sameLength[T any](a, b *Vector[T]) error {
	if a.Len() != b.Len() {
		return &LengthMismatchError{Left: a.Len(), Right: b.Len()}
	}
	return nil
}

func checkDivisor[T Number](s T) error {
	if s == 0 && kernels.IsIntegral[T]() {
		return ErrDivisionByZero
	}
	return nil
}

func checkDivisors[T Number](divisors []T) error {
	if !kernels.IsIntegral[T]() {
		return nil
	}
	if i := kernels.IndexOfZero(divisors); i >= 0 {
		return fmt.Errorf("%w: divisor at index %d", ErrDivisionByZero, i)
	}
	return nil
}

func narrow[U, V Number](s V) (U, error) {
	u, ok := conv.Exact[U](s)
	if !ok {
		return u, fmt.Errorf("%w: %v as %T", ErrNarrowing, s, u)
	}
	return u, nil
}

package mvector

import "github.com/hupe1980/mvector/internal/kernels"

// The Assign functions are the compound assignments (+=, -=, ...). They write
// the result into dst and keep its buffer and capacity. All checks happen
// before the first write, so on error dst is unchanged.

// AddAssign performs dst += src element-wise.
func AddAssign[T Number](dst, src *Vector[T]) error {
	return assignOp(dst, src, kernels.Add[T])
}

// SubAssign performs dst -= src element-wise.
func SubAssign[T Number](dst, src *Vector[T]) error {
	return assignOp(dst, src, kernels.Sub[T])
}

// MulAssign performs dst *= src element-wise.
func MulAssign[T Number](dst, src *Vector[T]) error {
	return assignOp(dst, src, kernels.Mul[T])
}

// DivAssign performs dst /= src element-wise.
func DivAssign[T Number](dst, src *Vector[T]) error {
	if err := sameLength(dst, src); err != nil {
		return err
	}
	if err := checkDivisors(src.Data()); err != nil {
		return err
	}
	return assignOp(dst, src, kernels.Div[T])
}

// ModAssign performs dst %= src element-wise.
func ModAssign[T Integer](dst, src *Vector[T]) error {
	if err := sameLength(dst, src); err != nil {
		return err
	}
	if err := checkDivisors(src.Data()); err != nil {
		return err
	}
	return assignOp(dst, src, kernels.Mod[T])
}

// AddAssignScalar performs dst += s.
func AddAssignScalar[T Number](dst *Vector[T], s T) {
	kernels.AddScalar(dst.Data(), dst.Data(), s)
}

// SubAssignScalar performs dst -= s.
func SubAssignScalar[T Number](dst *Vector[T], s T) {
	kernels.SubScalar(dst.Data(), dst.Data(), s)
}

// MulAssignScalar performs dst *= s.
func MulAssignScalar[T Number](dst *Vector[T], s T) {
	kernels.MulScalar(dst.Data(), dst.Data(), s)
}

// DivAssignScalar performs dst /= s.
func DivAssignScalar[T Number](dst *Vector[T], s T) error {
	if err := checkDivisor(s); err != nil {
		return err
	}
	kernels.DivScalar(dst.Data(), dst.Data(), s)
	return nil
}

// ModAssignScalar performs dst %= s.
func ModAssignScalar[T Integer](dst *Vector[T], s T) error {
	if err := checkDivisor(s); err != nil {
		return err
	}
	kernels.ModScalar(dst.Data(), dst.Data(), s)
	return nil
}

func assignOp[T Number](dst, src *Vector[T], kernel func(dst, x, y []T)) error {
	if err := sameLength(dst, src); err != nil {
		return err
	}
	kernel(dst.Data(), dst.Data(), src.Data())
	return nil
}

// Package logsing builds small parametric probability vectors whose entropy
// has a logarithmic singularity at the boundary of the rate parameter, and
// evaluates closed-form derivatives of those entropies.
//
// Two families are provided:
//
//	ProbVec1(eps, x) = (1 - eps*x, eps*x)
//	ProbVec2(eps, x) = (1 - eps*x, eps*x/3, eps*x/3, eps*x/3)
//
// The entropy of either family depends on eps and x only through the product
// eps*x. ProbVec1D and ProbVec2D return the partial derivative of that
// entropy with respect to eps at fixed x. The partial derivative with
// respect to x is the same value scaled by eps/x.
//
// The constructors accept any inputs. The derivatives are defined only for
// eps > 0, x > 0 and eps*x < 1 and return ErrOutsideDomain elsewhere.
package logsing

import (
	"errors"
	"fmt"
	"math"

	"github.com/vsiddhu/logSing/pkg/infotheory"
)

// ErrOutsideDomain is returned when a derivative is requested where the
// entropy is not differentiable.
var ErrOutsideDomain = errors.New("logsing: need eps > 0, x > 0 and eps*x < 1")

// symbols is the number of equally likely "error" symbols in the second family.
const symbols = 3

// Vec1 is a probability vector of the first family.
type Vec1 [2]float64

// Vec2 is a probability vector of the second family.
type Vec2 [4]float64

// Slice returns the entries of v as a slice.
func (v Vec1) Slice() []float64 {
	return v[:]
}

// Slice returns the entries of v as a slice.
func (v Vec2) Slice() []float64 {
	return v[:]
}

// ProbVec1 returns (1 - eps*x, eps*x). Inputs are not validated; the result is
// a probability vector whenever 0 <= eps*x <= 1.
func ProbVec1(eps, x float64) Vec1 {
	t := eps * x

	return Vec1{1 - t, t}
}

// ProbVec1D returns -x * (ln(eps) + ln(x / (1 - x*eps))) / ln(base), the
// derivative with respect to eps of the base-b entropy of ProbVec1(eps, x).
func ProbVec1D(eps, x, base float64) (float64, error) {
	return derivative(eps, x, base, 1)
}

// ProbVec1DBits is ProbVec1D in bits.
func ProbVec1DBits(eps, x float64) (float64, error) {
	return ProbVec1D(eps, x, infotheory.BaseBits)
}

// ProbVec2 returns (1 - eps*x, eps*x/3, eps*x/3, eps*x/3). Inputs are not
// validated; the result is a probability vector whenever 0 <= eps*x <= 1.
func ProbVec2(eps, x float64) Vec2 {
	t := eps * x
	share := t / symbols

	return Vec2{1 - t, share, share, share}
}

// ProbVec2D returns -x * (ln(eps) + ln(x / (3 - 3*x*eps))) / ln(base), the
// derivative with respect to eps of the base-b entropy of ProbVec2(eps, x).
func ProbVec2D(eps, x, base float64) (float64, error) {
	return derivative(eps, x, base, symbols)
}

// ProbVec2DBits is ProbVec2D in bits.
func ProbVec2DBits(eps, x float64) (float64, error) {
	return ProbVec2D(eps, x, infotheory.BaseBits)
}

// derivative evaluates -x * (ln(eps) + ln(x / (k - k*x*eps))) / ln(base), where k
// is the number of symbols sharing the mass eps*x. The product eps*x is
// rounded once so the domain check and the formula agree next to eps*x = 1.
func derivative(eps, x, base, k float64) (float64, error) {
	t := eps * x
	// Negated so NaN inputs fail the check.
	if !(eps > 0 && x > 0 && t < 1) {
		return 0, fmt.Errorf("%w: eps = %g, x = %g", ErrOutsideDomain, eps, x)
	}

	lnBase, err := infotheory.LogBase(base)
	if err != nil {
		return 0, err
	}

	der := math.Log(eps) + math.Log(x/(k*(1-t)))

	return -x * der / lnBase, nil
}

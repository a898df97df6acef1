package bound

import (
	"errors"
	"math"
	"math/bits"
)

const (
	// MathE is Euler's number.
	MathE = 2.71828182845904523536028747135266249775724709369995

	// SmallIndexLimit is the first index for which the Massias-Robin inequality
	// P(k) <= k(ln k + ln ln k - 0.9427) is proven to hold.
	SmallIndexLimit = 15985

	// SmallIndexBound is the 15984th prime, a safe bound for every index below SmallIndexLimit.
	SmallIndexBound = 175937

	// relative slack applied to x so float rounding can only push CeilLn upward
	lnSlack = 1e-12
)

var ErrOverflow = errors.New("bound does not fit in 64 bits")

// CeilLn returns the smallest integer m >= 1 with e^m > x, found by repeated
// multiplication of e rather than a logarithm call.
func CeilLn(x uint64) uint64 {
	target := float64(x) * (1 + lnSlack)
	m := uint64(1)
	prod := MathE

	for prod <= target {
		m++
		prod *= MathE
	}

	return m
}

// EstimateBound returns a value B with P(n) <= B for every n >= 1.
//
// For n large enough that n * (CeilLn(n) + CeilLn(CeilLn(n))) exceeds 64 bits the
// result wraps; use CheckedBound when that matters.
func EstimateBound(n uint64) uint64 {
	if n < SmallIndexLimit {
		return SmallIndexBound
	}
	return n * factor(n)
}

// CheckedBound is EstimateBound with the final multiplication checked for overflow.
func CheckedBound(n uint64) (uint64, error) {
	if n < SmallIndexLimit {
		return SmallIndexBound, nil
	}

	hi, lo := bits.Mul64(n, factor(n))
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

func factor(n uint64) uint64 {
	ln := CeilLn(n)
	return ln + CeilLn(ln)
}

// SqrtCeil returns the least s such that s*s >= x.
func SqrtCeil(x uint64) uint64 {
	if x == 0 {
		return 0
	}

	if x > math.MaxUint32*math.MaxUint32 {
		return 1 << 32
	}

	s := uint64(math.Sqrt(float64(x)))
	if s > math.MaxUint32 {
		s = math.MaxUint32
	}

	// float64 sqrt can be off by one in either direction for large x
	for s > 0 && s*s >= x {
		s--
	}
	for s*s < x {
		s++
	}
	return s
}

// Package prime finds the N-th prime with an odd-only sieve sized by bound.EstimateBound.
package prime

import (
	"context"
	"errors"
	"fmt"

	"github.com/tednaleid/nthprime/bound"
	"github.com/tednaleid/nthprime/sieve"
	"golang.org/x/sync/errgroup"
)

// segmentSpan is how many integers one parallel marking task covers; a multiple
// of 16 so segments never share a sieve byte.
const segmentSpan = 1 << 20

var (
	ErrInvalidN             = errors.New("n must be at least 1")
	ErrSearchSpaceExhausted = errors.New("search space exhausted")
)

// Search is a single N-th prime lookup: the estimated bound and the sieve sized for it.
// A Search is meant to be run once.
type Search struct {
	N     uint64
	Bound uint64
	Sieve *sieve.Sieve
}

// NewSearch estimates the bound for n and allocates the sieve.
func NewSearch(n uint64) (*Search, error) {
	if n < 1 {
		return nil, ErrInvalidN
	}

	limit, err := bound.CheckedBound(n)
	if err != nil {
		return nil, fmt.Errorf("%w: estimating bound for n=%d: %w", ErrSearchSpaceExhausted, n, err)
	}

	return newSearch(n, limit)
}

func newSearch(n uint64, limit uint64) (*Search, error) {
	s, err := sieve.New(limit)
	if err != nil {
		return nil, err
	}
	return &Search{N: n, Bound: limit, Sieve: s}, nil
}

func NthPrime(n uint64) (uint64, error) {
	search, err := NewSearch(n)
	if err != nil {
		return 0, err
	}
	return search.Run()
}

func NthPrimeParallel(ctx context.Context, n uint64, workers int) (uint64, error) {
	search, err := NewSearch(n)
	if err != nil {
		return 0, err
	}
	return search.RunParallel(ctx, workers)
}

// Run walks odd candidates upward, marking the multiples of each prime it meets,
// until it has counted N primes.
func (s *Search) Run() (uint64, error) {
	numPrimes, lastPrime := uint64(1), uint64(2)

	for candidate := sieve.Odd(3); numPrimes < s.N; candidate += 2 {
		if !s.Sieve.Contains(candidate) {
			return 0, s.exhausted(numPrimes)
		}

		if !s.Sieve.IsPrime(candidate) {
			continue
		}

		lastPrime = uint64(candidate)
		numPrimes++

		markMultiples(s.Sieve, lastPrime, 0, s.Bound)
	}

	return lastPrime, nil
}

// RunParallel sieves the primes up to the square root of the bound, then marks
// their multiples across the whole sieve in byte-aligned segments, at most
// workers at a time, before counting up to the N-th prime.
func (s *Search) RunParallel(ctx context.Context, workers int) (uint64, error) {
	if s.N == 1 {
		return 2, nil
	}

	basePrimes, err := primesUpTo(bound.SqrtCeil(s.Bound))
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for lo := uint64(0); lo <= s.Bound; lo += segmentSpan {
		hi := min(lo+segmentSpan-1, s.Bound)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, p := range basePrimes {
				markMultiples(s.Sieve, p, lo, hi)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return s.count()
}

func (s *Search) count() (uint64, error) {
	numPrimes, lastPrime := uint64(1), uint64(2)

	for candidate := sieve.Odd(3); numPrimes < s.N; candidate += 2 {
		if !s.Sieve.Contains(candidate) {
			return 0, s.exhausted(numPrimes)
		}

		if s.Sieve.IsPrime(candidate) {
			lastPrime = uint64(candidate)
			numPrimes++
		}
	}

	return lastPrime, nil
}

func (s *Search) exhausted(found uint64) error {
	return fmt.Errorf("%w: only %d of %d primes are at most %d", ErrSearchSpaceExhausted, found, s.N, s.Bound)
}

// primesUpTo returns the odd primes <= limit in increasing order.
func primesUpTo(limit uint64) ([]uint64, error) {
	small, err := sieve.New(limit)
	if err != nil {
		return nil, err
	}

	var primes []uint64
	for candidate := sieve.Odd(3); small.Contains(candidate); candidate += 2 {
		if small.IsPrime(candidate) {
			primes = append(primes, uint64(candidate))
			markMultiples(small, uint64(candidate), 0, limit)
		}
	}
	return primes, nil
}

// markMultiples marks the odd multiples of the odd prime p that lie in [lo, hi],
// never going below p*p: smaller multiples have a smaller prime factor.
func markMultiples(s *sieve.Sieve, p uint64, lo uint64, hi uint64) {
	if p > hi/p {
		return
	}

	start := p * p
	if start < lo {
		k := (lo + p - 1) / p
		if k%2 == 0 {
			k++
		}
		start = k * p
	}

	step := 2 * p
	for m := start; m <= hi; m += step {
		s.MarkComposite(sieve.Odd(m))
		if m > hi-step {
			break
		}
	}
}

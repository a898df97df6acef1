// Package sieve holds a bit-packed sieve of Eratosthenes over odd integers.
//
// Only odd numbers are represented: the odd number n lives at slot n/2, which is
// bit (n/2)%8 (least significant bit first) of byte n/16. A zero bit means the
// number has not been marked composite.
package sieve

import (
	"errors"
	"fmt"
	"math"
	"runtime/debug"
)

var (
	ErrEvenNumber  = errors.New("sieve only holds odd numbers")
	ErrOutOfMemory = errors.New("out of memory allocating sieve")
)

// Odd is an odd integer. Converting directly with Odd(x) asserts that x is odd;
// use ToOdd when that is not already known.
type Odd uint64

func ToOdd(n uint64) (Odd, error) {
	if n%2 == 0 {
		return 0, fmt.Errorf("%w: %d", ErrEvenNumber, n)
	}
	return Odd(n), nil
}

type Sieve struct {
	bits []byte
	max  uint64
}

// New allocates a zeroed sieve with a slot for every odd number up to maxVal,
// refusing sizes above MemoryLimit.
func New(maxVal uint64) (*Sieve, error) {
	return NewWithLimit(maxVal, MemoryLimit())
}

// MemoryLimit is the smaller of the Go memory limit (GOMEMLIMIT) and the
// machine's physical memory. Go aborts the process, rather than panicking, when
// the OS cannot back an allocation, so sizes above it must be refused up front.
func MemoryLimit() uint64 {
	limit := uint64(debug.SetMemoryLimit(-1))
	if physical, ok := physicalMemory(); ok {
		limit = min(limit, physical)
	}
	return limit
}

// NewWithLimit is New with an explicit cap, in bytes, on the sieve's storage.
func NewWithLimit(maxVal uint64, limit uint64) (*Sieve, error) {
	size := ByteSize(maxVal)
	if size > limit || size > math.MaxInt {
		return nil, fmt.Errorf("%w: %d bytes needed for numbers up to %d", ErrOutOfMemory, size, maxVal)
	}

	bits, err := allocate(int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes needed for numbers up to %d: %v", ErrOutOfMemory, size, maxVal, err)
	}

	return &Sieve{bits: bits, max: maxVal}, nil
}

// ByteSize is the number of bytes a sieve covering maxVal occupies.
func ByteSize(maxVal uint64) uint64 {
	slots := maxVal/2 + 1
	return slots/8 + min(slots%8, 1)
}

// the runtime panics, rather than aborting, only when size is past its own allocation ceiling
func allocate(size int) (bits []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return make([]byte, size), nil
}

// Max is the largest number the sieve was sized for.
func (s *Sieve) Max() uint64 {
	return s.max
}

// Size is the sieve's storage in bytes.
func (s *Sieve) Size() int {
	return len(s.bits)
}

func (s *Sieve) Contains(num Odd) bool {
	return uint64(num) <= s.max
}

// IsPrime reports whether num has not been marked composite.
func (s *Sieve) IsPrime(num Odd) bool {
	index := uint64(num) / 2
	return s.bits[index/8]&(1<<(index%8)) == 0
}

func (s *Sieve) MarkComposite(num Odd) {
	index := uint64(num) / 2
	s.bits[index/8] |= 1 << (index % 8)
}

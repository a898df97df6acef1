// Package cputime reports the CPU time consumed by the current process.
package cputime

import "time"

// Clock returns the CPU time used so far.
type Clock func() (time.Duration, error)

// Seconds runs block and returns the CPU time, in seconds, that it took on clock.
func Seconds(clock Clock, block func() error) (float64, error) {
	begin, err := clock()
	if err != nil {
		return 0, err
	}

	if err := block(); err != nil {
		return 0, err
	}

	end, err := clock()
	if err != nil {
		return 0, err
	}

	return (end - begin).Seconds(), nil
}

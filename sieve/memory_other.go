//go:build !linux && !darwin && !windows

package sieve

// physical memory is unknown here, so only GOMEMLIMIT caps the sieve
func physicalMemory() (uint64, bool) {
	return 0, false
}

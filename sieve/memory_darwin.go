//go:build darwin

package sieve

import "golang.org/x/sys/unix"

// physicalMemory is the installed memory, further capped by the process's
// address space limit (ulimit -v) when one is set.
func physicalMemory() (uint64, bool) {
	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, false
	}
	return withAddressSpaceLimit(total), true
}

func withAddressSpaceLimit(total uint64) uint64 {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &limit); err != nil {
		return total
	}
	return min(total, uint64(limit.Cur))
}

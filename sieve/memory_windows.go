//go:build windows

package sieve

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func physicalMemory() (uint64, bool) {
	status := windows.MemoryStatusEx{}
	status.Length = uint32(unsafe.Sizeof(status))
	if err := windows.GlobalMemoryStatusEx(&status); err != nil {
		return 0, false
	}
	return status.TotalPhys, true
}

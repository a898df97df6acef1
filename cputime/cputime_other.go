//go:build !unix && !windows

package cputime

import "time"

var started = time.Now()

// Process falls back to wall-clock time since startup where the platform has no
// process CPU accounting.
func Process() (time.Duration, error) {
	return time.Since(started), nil
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n        uint64
		expected bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{25, false},
		{29, true},
		{175937, true},
		{175939, true},
		{175941, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isPrime(tt.n), "isPrime(%d)", tt.n)
	}
}

func TestFitHasNoViolations(t *testing.T) {
	out := new(bytes.Buffer)

	violations := fit(20000, 5000, out)

	assert.Equal(t, 0, violations)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "5000\t48611\t175937\t2.6193", lines[0])
	assert.Contains(t, lines[4], "checked 20000 primes, 0 violations")
}

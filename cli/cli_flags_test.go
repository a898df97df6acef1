package cli

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tednaleid/nthprime/parser"
)

func TestHelp(t *testing.T) {
	results, _ := ParseArgs([]string{"nthprime", "-h"})
	assert.NotNil(t, results)
	assert.Nil(t, results.context)      // context isn't set up when help is called
	assert.Equal(t, "", results.stderr) // help is not written to stderr when explicitly called
	assert.Contains(t, results.stdout, "NAME:\n   nthprime")
}

func TestVersion(t *testing.T) {
	results, _ := ParseArgs([]string{"nthprime", "-v"})
	assert.NotNil(t, results)
	assert.Nil(t, results.context) // context isn't set up when version is called
	assert.Equal(t, "", results.stderr)
	assert.Equal(t, "nthprime version "+testBuildInfo.ToString()+"\n", results.stdout)
}

func TestDefaults(t *testing.T) {
	results, err := ParseArgs([]string{"nthprime"})
	assert.NoError(t, err)
	assert.Equal(t, 1, results.context.Workers)
	assert.False(t, results.context.HasN)
}

func TestWorkers(t *testing.T) {
	results, err := ParseArgs([]string{"nthprime", "-W", "10"})
	assert.NoError(t, err)
	assert.Equal(t, 10, results.context.Workers)

	longResults, err := ParseArgs([]string{"nthprime", "--workers", "3"})
	assert.NoError(t, err)
	assert.Equal(t, 3, longResults.context.Workers)
}

func TestInvalidWorkers(t *testing.T) {
	testCases := []struct {
		input string
		error string
	}{
		{"0", "value out of range"},
		{"1025", "value out of range"},
		{strconv.FormatInt(int64(math.MaxInt32)+1, 10), "value out of range"},
		{"foobar", "invalid value \"foobar\" for flag -W"},
	}

	for _, tc := range testCases {
		results, err := ParseArgs([]string{"nthprime", "-W", tc.input})
		assert.Error(t, err)
		assert.Nil(t, results.context)
		assert.Contains(t, results.stderr, tc.error)
	}
}

func TestPositionalN(t *testing.T) {
	results, err := ParseArgs([]string{"nthprime", "42"})
	assert.NoError(t, err)
	assert.True(t, results.context.HasN)
	assert.Equal(t, uint64(42), results.context.N)
}

func TestInvalidPositionalN(t *testing.T) {
	for _, input := range []string{"0", "seven", "1.5"} {
		results, err := ParseArgs([]string{"nthprime", input})
		assert.ErrorIs(t, err, parser.ErrInvalidInput, "input %q", input)
		assert.Nil(t, results.context)
		assert.Contains(t, results.stderr, "nthprime Error: invalid input")
	}
}

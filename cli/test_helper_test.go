package cli

import (
	"bytes"
	ctx "context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tednaleid/nthprime/execcontext"
)

var testBuildInfo = BuildInfo{Version: "testing", Commit: "123abc", Date: "2023-12-20"}

type RunResults struct {
	stderr  string
	stdout  string
	context *execcontext.Context
}

func (results RunResults) assert(t *testing.T, expectedStandardOut string, expectedLog string) {
	assert.Equal(t, expectedStandardOut, results.stdout, "expected stdout")
	assert.Equal(t, expectedLog, results.stderr, "expected logger stderr")
}

// the clock never advances so reported timings are always zero
func stoppedClock() (time.Duration, error) {
	return 0, nil
}

// we want to test parsing of arguments, we don't actually want to search for primes
func ParseArgs(args []string) (RunResults, error) {
	in := strings.NewReader("")
	return runApp(args, in, nil)
}

// we want to control what stdin is sending and actually run the search
func RunApp(args []string, in io.Reader) (RunResults, error) {
	return runApp(args, in, FindNthPrime)
}

func runApp(args []string, in io.Reader, runBlock RunBlock) (RunResults, error) {
	var resultContext *execcontext.Context
	stderr := new(bytes.Buffer)
	stdout := new(bytes.Buffer)

	findNthPrime := func(c ctx.Context, context *execcontext.Context) error {
		resultContext = context
		context.Clock = stoppedClock
		if runBlock != nil {
			return runBlock(c, context)
		}
		return nil
	}

	err := RunCommand(testBuildInfo, args, in, stderr, stdout, findNthPrime)
	return RunResults{stderr.String(), stdout.String(), resultContext}, err
}

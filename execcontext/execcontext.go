package execcontext

import (
	"fmt"
	"io"
	"log"

	"github.com/tednaleid/nthprime/config"
	"github.com/tednaleid/nthprime/cputime"
	"github.com/tednaleid/nthprime/logger"
)

type Context struct {
	N       uint64
	HasN    bool
	Workers int
	Logger  *logger.LeveledLogger
	Out     io.Writer
	In      io.Reader
	Clock   cputime.Clock
}

func New(conf *config.Config, in io.Reader, stderr io.Writer, stdout io.Writer) (*Context, error) {
	if conf.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", conf.Workers)
	}

	context := Context{
		N:       conf.N,
		HasN:    conf.HasN,
		Workers: conf.Workers,
		Out:     stdout,
		In:      in,
		Logger:  createLeveledLogger(conf, stderr),
		Clock:   cputime.Process,
	}

	return &context, nil
}

func createLeveledLogger(conf *config.Config, stderr io.Writer) *logger.LeveledLogger {
	stdErrLogger := log.New(stderr, "", 0)

	if conf.Silent {
		return logger.NewSilentLogger(stdErrLogger)
	}

	if conf.Color {
		return logger.NewLeveledLogger(stdErrLogger)
	}

	return logger.NewPlainLeveledLogger(stdErrLogger)
}

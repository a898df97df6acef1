package logger

import "log"

type LeveledLogger struct {
	showColor bool
	silent    bool
	logger    *log.Logger
}

// NewSilentLogger only lets errors through to logger.
func NewSilentLogger(logger *log.Logger) *LeveledLogger {
	return &LeveledLogger{
		silent:    true,
		showColor: false,
		logger:    logger,
	}
}

func NewPlainLeveledLogger(logger *log.Logger) *LeveledLogger {
	return &LeveledLogger{
		silent:    false,
		showColor: false,
		logger:    logger,
	}
}

func NewLeveledLogger(logger *log.Logger) *LeveledLogger {
	return &LeveledLogger{
		silent:    false,
		showColor: true,
		logger:    logger,
	}
}

func (l *LeveledLogger) Info(format string, args ...interface{}) {
	if !l.silent {
		l.logger.Printf(format, args...)
	}
}

func (l *LeveledLogger) Warn(format string, args ...interface{}) {
	if l.silent {
		return
	}
	if l.showColor {
		l.logger.Printf("\033[31m"+format+"\033[0m", args...)
	} else {
		l.logger.Printf(format, args...)
	}
}

func (l *LeveledLogger) Success(format string, args ...interface{}) {
	if l.silent {
		return
	}
	if l.showColor {
		l.logger.Printf("\033[32m"+format+"\033[0m", args...)
	} else {
		l.logger.Printf(format, args...)
	}
}

// Error is never silenced.
func (l *LeveledLogger) Error(format string, args ...interface{}) {
	if l.showColor {
		l.logger.Printf("\033[31m"+format+"\033[0m", args...)
	} else {
		l.logger.Printf(format, args...)
	}
}

func (l *LeveledLogger) LogSearch(n uint64, bound uint64, sieveBytes int) {
	l.Info("Searching for prime %d below %d (%d byte sieve)", n, bound, sieveBytes)
}

func (l *LeveledLogger) LogResult(n uint64, prime uint64, seconds float64) {
	l.Success("Found prime %d: %d in %fs", n, prime, seconds)
}

func (l *LeveledLogger) LogError(err error, message string) {
	l.Error("%s Error: %s", message, err)
}

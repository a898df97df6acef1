package main

import (
	"os"

	"github.com/tednaleid/nthprime/cli"
)

// overridden at build time with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildInfo := cli.BuildInfo{Version: version, Commit: commit, Date: date}

	err := cli.RunCommand(buildInfo, os.Args, os.Stdin, os.Stderr, os.Stdout, cli.FindNthPrime)
	if err != nil {
		os.Exit(1)
	}
}

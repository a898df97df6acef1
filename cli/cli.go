package cli

import (
	ctx "context"
	"fmt"
	"io"

	"github.com/tednaleid/nthprime/config"
	"github.com/tednaleid/nthprime/cputime"
	"github.com/tednaleid/nthprime/execcontext"
	"github.com/tednaleid/nthprime/parser"
	"github.com/tednaleid/nthprime/prime"
	"github.com/urfave/cli/v3"
)

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (buildInfo BuildInfo) ToString() string {
	return buildInfo.Version + " " + buildInfo.Commit + " " + buildInfo.Date
}

type RunBlock func(c ctx.Context, context *execcontext.Context) error

func RunCommand(buildInfo BuildInfo, args []string, in io.Reader, stderr io.Writer, stdout io.Writer, runBlock RunBlock) error {
	command := SetupCommand(buildInfo, in, stderr, stdout, runBlock)
	return command.Run(ctx.Background(), args)
}

func SetupCommand(buildInfo BuildInfo, in io.Reader, stderr io.Writer, stdout io.Writer, runBlock RunBlock) cli.Command {
	conf := config.New()
	var context *execcontext.Context

	return cli.Command{
		Name: "nthprime",
		Authors: []any{
			"Ted Naleid <contact@naleid.com>",
		},
		Usage:       "find the N-th prime",
		UsageText:   "nthprime [options] [N]  OR  echo N | nthprime [options]",
		Description: "Finds the N-th prime with a sieve of Eratosthenes sized by an upper bound on the N-th prime. N is prompted for on stdin when not given as an argument.",
		Version:     buildInfo.ToString(),
		Reader:      in,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&WorkerFlag{
				Name:        "workers",
				Aliases:     []string{"W"},
				Usage:       "number of concurrent workers marking sieve segments, 1 runs the sequential sieve",
				Value:       conf.Workers,
				Destination: &conf.Workers,
			},
			&cli.BoolFlag{
				Name:        "silent",
				Aliases:     []string{"s"},
				Usage:       "if flag is present, omit diagnostic output on stderr other than errors",
				Destination: &conf.Silent,
			},
			&cli.BoolFlag{
				Name:        "color",
				Usage:       "if flag is present, add color to success/warn messages",
				Destination: &conf.Color,
			},
		},
		Before: func(_ ctx.Context, cmd *cli.Command) error {
			var parseErr, err error

			if cmd.Args().Present() && cmd.Args().First() != "help" && cmd.Args().First() != "h" {
				conf.N, parseErr = parser.ParseN(cmd.Args().First())
				conf.HasN = parseErr == nil
			}

			context, err = execcontext.New(conf, in, stderr, stdout)
			if err != nil {
				return err
			}

			if parseErr != nil {
				context.Logger.LogError(parseErr, "nthprime")
			}
			return parseErr
		},
		Action: func(c ctx.Context, _ *cli.Command) error {
			if err := runBlock(c, context); err != nil {
				context.Logger.LogError(err, "nthprime")
				return err
			}
			return nil
		},
	}
}

// FindNthPrime prompts for N unless it was given as an argument, finds the N-th
// prime and reports it along with the CPU time the search took.
func FindNthPrime(c ctx.Context, context *execcontext.Context) error {
	fmt.Fprintln(context.Out, "Nth prime finder!")

	n := context.N
	if !context.HasN {
		var err error
		fmt.Fprint(context.Out, "Please enter N: ")
		n, err = parser.ReadN(context.In)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(context.Out, "Working...")

	var result uint64
	seconds, err := cputime.Seconds(context.Clock, func() error {
		search, err := prime.NewSearch(n)
		if err != nil {
			return err
		}

		context.Logger.LogSearch(n, search.Bound, search.Sieve.Size())

		if context.Workers > 1 {
			result, err = search.RunParallel(c, context.Workers)
		} else {
			result, err = search.Run()
		}
		return err
	})
	if err != nil {
		return err
	}

	context.Logger.LogResult(n, result, seconds)

	fmt.Fprintf(context.Out, "The %dth prime is: %d\n", n, result)
	fmt.Fprintf(context.Out, "That operation took %f CPU-seconds!\n", seconds)
	return nil
}

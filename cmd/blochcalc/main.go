// SPDX-License-Identifier: MIT

// Command blochcalc runs the Bloch-sphere numerics from the command line.
//
//	blochcalc orient --gate H
//	blochcalc orient --m00 'cos(pi/8)' --m01 '-i sin(pi/8)' --m10 '-i sin(pi/8)' --m11 'cos(pi/8)'
//	blochcalc state --theta '\frac{\pi}{2}' --phi 'pi/4'
//	blochcalc state --point 0,1,0
//	blochcalc rotate --gate X --preset +
//
// Configuration comes from BLOCH_* environment variables (or a .env file);
// --log-level, --precision and --epsilon override them. Results go to
// stdout, logs to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/blochsphere/internal/config"
	"github.com/katalvlaran/blochsphere/internal/logger"
)

const usage = `usage: blochcalc <command> [flags]

commands:
  orient   eigen decomposition and rotation of a 2x2 matrix
  state    convert a state between angles, point and amplitudes
  rotate   apply a matrix to a state as a Bloch-sphere rotation
`

var errUsage = errors.New("usage")

// app carries what every command needs after flag parsing.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	out    io.Writer
	errOut io.Writer
}

type command func(a *app, fs *pflag.FlagSet, args []string) error

var commands = map[string]command{
	"orient": runOrient,
	"state":  runState,
	"rotate": runRotate,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error, disabled")
	fs.BoolVar(&cfg.LogPretty, "log-pretty", cfg.LogPretty, "human-readable logs")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals in printed values")
	fs.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "solver tolerance")

	// Commands replace this logger once their flags are parsed.
	a := &app{cfg: cfg, out: stdout, errOut: stderr, log: zerolog.Nop()}

	err = cmd(a, fs, args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pflag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		fs.PrintDefaults()
		return 2
	}
	a.log.Error().Err(err).Str("command", args[0]).Msg("command failed")
	fmt.Fprintln(stderr, "error:", err)

	return 1
}

// parse parses flags, validates the configuration and builds the logger.
func (a *app) parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}

		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = logger.New(logger.Config{Level: a.cfg.LogLevel, Pretty: a.cfg.LogPretty, Out: a.errOut})
	a.log.Debug().
		Str("command", fs.Name()).
		Int("precision", a.cfg.Precision).
		Float64("epsilon", a.cfg.Epsilon).
		Msg("configuration")

	return nil
}

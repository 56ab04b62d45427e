package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

func main() {
	defer func() {
		err := recover()

		if err != nil {
			log.Error().Msgf("Panic: %+v \n Stack Trace: %s", err, debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	rootCmd, c := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil && c.logCloser != nil {
		log.Error().Stack().Err(err).Msg("command failed")
	}

	err = multierr.Append(err, c.close())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	return 0
}

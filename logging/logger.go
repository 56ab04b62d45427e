package logging

import (
	"io"
	"os"

	"netswitch/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger points the global logger at a rolling log file and, with
// pretty logging on, at stderr as well. The returned closer releases the file.
func SetupLogger(cliArgs *config.CommandLineArguments) io.Closer {
	rollingLogFile := &lumberjack.Logger{
		Filename:   cliArgs.LogFileLocation,
		MaxSize:    10,
		MaxBackups: 3,
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writer io.Writer
	if cliArgs.PrettyLogging {
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
		writer = io.MultiWriter(consoleWriter, rollingLogFile)
	} else {
		writer = rollingLogFile
	}

	logger := zerolog.New(writer).With().Caller().Timestamp().Stack().Logger()
	log.Logger = logger

	if cliArgs.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Debug().Msgf("netswitch arguments: %s", cliArgs)

	return rollingLogFile
}

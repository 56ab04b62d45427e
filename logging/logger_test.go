package logging

import (
	"os"
	"path/filepath"
	"testing"

	"netswitch/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Run("writes to the log file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "netswitch.log")
		closer := SetupLogger(&config.CommandLineArguments{LogFileLocation: logFile})

		log.Info().Msg("switched to Ethernet")
		log.Error().Stack().Err(errors.New("exit status 1")).Msg("failed to enable adapter")
		require.NoError(t, closer.Close())

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "switched to Ethernet")
		assert.Contains(t, string(content), `"stack"`)
	})

	t.Run("debug flag controls the level", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "netswitch.log")

		closer := SetupLogger(&config.CommandLineArguments{LogFileLocation: logFile, Debug: true})
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
		require.NoError(t, closer.Close())

		closer = SetupLogger(&config.CommandLineArguments{LogFileLocation: logFile})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
		require.NoError(t, closer.Close())
	})
}

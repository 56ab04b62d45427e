package filesystem

import (
	"os"
	"path/filepath"

	"netswitch/config"

	"github.com/pkg/errors"
)

// InitDirectories creates the parent directory of every file netswitch writes.
func InitDirectories(cliArgs *config.CommandLineArguments) error {
	files := []string{cliArgs.LogFileLocation}
	if !cliArgs.DisableJournal {
		files = append(files, cliArgs.DatabaseFileName)
	}
	if cliArgs.MetricsFileName != "" {
		files = append(files, cliArgs.MetricsFileName)
	}

	for _, file := range files {
		dir := filepath.Dir(file)
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			if !os.IsExist(err) {
				return errors.Wrapf(err, "failed to create directory %s", dir)
			}
		}
	}

	return nil
}

package shell

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result is what an external process left behind. A non-zero ExitCode is not
// an error at this level; callers decide what it means.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

type Launcher interface {
	Launch(cmd Command) (Result, error)
}

type ExecLauncher struct{}

func NewExecLauncher() ExecLauncher {
	return ExecLauncher{}
}

// Launch runs cmd to completion. An error is returned only when the process
// could not be started or waited on.
func (ExecLauncher) Launch(cmd Command) (Result, error) {
	var stdout, stderr bytes.Buffer

	process := exec.Command(cmd.Name, cmd.Args...)
	process.Stdout = &stdout
	process.Stderr = &stderr
	hideWindow(process)

	err := process.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			log.Debug().Int("exitCode", result.ExitCode).Msgf("%s exited with a non-zero status", cmd.Name)
			return result, nil
		}

		result.ExitCode = -1
		return result, errors.Wrapf(err, "failed to launch %s", cmd.Name)
	}

	return result, nil
}

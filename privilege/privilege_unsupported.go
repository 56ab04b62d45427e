//go:build !windows && !unix

package privilege

import (
	"runtime"

	"github.com/pkg/errors"
)

func isElevated() (bool, error) {
	return false, errors.Errorf("privilege check is not supported on %s", runtime.GOOS)
}

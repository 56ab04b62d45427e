package privilege

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func isElevated() (bool, error) {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token)
	if err != nil {
		return false, errors.Wrap(err, "failed to open process token")
	}
	defer token.Close()

	return token.IsElevated(), nil
}

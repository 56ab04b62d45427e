package release

import (
	_ "embed"
	"runtime"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

//go:embed version.txt
var version string
var BuildArch string = ""

func GetSystemInfo() (string, string) {
	arch := BuildArch
	if arch == "" {
		arch = runtime.GOARCH
	}

	return runtime.GOOS, arch
}

// GetVersion returns the embedded version in canonical semver form.
func GetVersion() (string, error) {
	return ParseVersion(version)
}

func ParseVersion(raw string) (string, error) {
	parsed, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return "", errors.Wrapf(err, "invalid release version %q", strings.TrimSpace(raw))
	}

	return parsed.String(), nil
}

func GetBuildArch() string {
	return BuildArch
}

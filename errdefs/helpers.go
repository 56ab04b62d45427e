package errdefs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrNotElevated = errors.New("administrator privileges are required")

// Kind classifies every failure that leaves the adapter manager.
type Kind string

const (
	KindQueryFailed      Kind = "QueryFailed"
	KindParseFailed      Kind = "ParseFailed"
	KindPermissionDenied Kind = "PermissionDenied"
	KindCommandFailed    Kind = "CommandFailed"
	KindAdapterNotFound  Kind = "AdapterNotFound"
	KindUnknown          Kind = "Unknown"
)

/*------------*/

// ManagerError is the only error type returned by network.Manager.
type ManagerError struct {
	Kind Kind
	// Adapter is the adapter name the failed command was keyed by.
	Adapter string
	// Side names the adapter class that could not be found.
	Side string
	// Detail holds the diagnostic text (stderr) reported by the external command.
	Detail string

	err error
}

func (e ManagerError) Error() string {
	var sb strings.Builder
	switch e.Kind {
	case KindQueryFailed:
		sb.WriteString("failed to query network adapters")
	case KindParseFailed:
		sb.WriteString("failed to parse network adapter list")
	case KindPermissionDenied:
		sb.WriteString("permission denied")
		if e.Adapter != "" {
			fmt.Fprintf(&sb, " for adapter '%s'", e.Adapter)
		}
	case KindCommandFailed:
		fmt.Fprintf(&sb, "command failed for adapter '%s'", e.Adapter)
	case KindAdapterNotFound:
		fmt.Fprintf(&sb, "%s adapter not found", e.Side)
	default:
		sb.WriteString("unexpected adapter manager error")
	}

	if e.err != nil {
		fmt.Fprintf(&sb, ": %s", e.err.Error())
	}

	if e.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", e.Detail)
	}

	return sb.String()
}

func (e ManagerError) Cause() error {
	return e.err
}

func (e ManagerError) Unwrap() error {
	return e.err
}

/*------------*/

func QueryFailed(err error, stderr string) error {
	if err == nil || IsManagerError(err) {
		return err
	}

	return ManagerError{Kind: KindQueryFailed, Detail: strings.TrimSpace(stderr), err: errors.WithStack(err)}
}

func ParseFailed(err error) error {
	if err == nil || IsManagerError(err) {
		return err
	}

	return ManagerError{Kind: KindParseFailed, err: errors.WithStack(err)}
}

func PermissionDenied(adapterName string) error {
	return ManagerError{Kind: KindPermissionDenied, Adapter: adapterName, err: errors.WithStack(ErrNotElevated)}
}

func CommandFailed(adapterName string, err error, stderr string) error {
	if err == nil || IsManagerError(err) {
		return err
	}

	return ManagerError{Kind: KindCommandFailed, Adapter: adapterName, Detail: strings.TrimSpace(stderr), err: errors.WithStack(err)}
}

// AdapterNotFound reports that no adapter of the given class (e.g. "Ethernet") is present.
func AdapterNotFound(side string) error {
	return ManagerError{Kind: KindAdapterNotFound, Side: side}
}

func Unknown(err error) error {
	if err == nil || IsManagerError(err) {
		return err
	}

	return ManagerError{Kind: KindUnknown, err: errors.WithStack(err)}
}

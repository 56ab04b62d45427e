package errdefs

import "github.com/pkg/errors"

func asManagerError(err error) (ManagerError, bool) {
	var managerErr ManagerError
	ok := errors.As(err, &managerErr)
	return managerErr, ok
}

func IsManagerError(err error) bool {
	_, ok := asManagerError(err)
	return ok
}

// KindOf returns the kind of the first ManagerError in err's chain, or an empty Kind.
func KindOf(err error) Kind {
	managerErr, ok := asManagerError(err)
	if !ok {
		return ""
	}

	return managerErr.Kind
}

func IsQueryFailed(err error) bool {
	return KindOf(err) == KindQueryFailed
}

func IsParseFailed(err error) bool {
	return KindOf(err) == KindParseFailed
}

func IsPermissionDenied(err error) bool {
	return KindOf(err) == KindPermissionDenied
}

func IsCommandFailed(err error) bool {
	return KindOf(err) == KindCommandFailed
}

func IsAdapterNotFound(err error) bool {
	return KindOf(err) == KindAdapterNotFound
}

func IsUnknown(err error) bool {
	return KindOf(err) == KindUnknown
}

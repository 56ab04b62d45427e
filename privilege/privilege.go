package privilege

// Checker reports whether the current process may change adapter state.
type Checker interface {
	IsElevated() (bool, error)
}

// Process checks the elevation of the running process.
type Process struct{}

func NewProcess() Process {
	return Process{}
}

func (p Process) IsElevated() (bool, error) {
	return isElevated()
}

// Static always answers with its own value. Used for the offline simulator.
type Static bool

func (s Static) IsElevated() (bool, error) {
	return bool(s), nil
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func() (bool, error)

func (f CheckerFunc) IsElevated() (bool, error) {
	return f()
}

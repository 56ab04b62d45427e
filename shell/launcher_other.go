//go:build !windows

package shell

import "os/exec"

func hideWindow(process *exec.Cmd) {}

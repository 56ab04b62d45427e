package shell

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// hideWindow keeps powershell from flashing a console window when the
// binary is built as a GUI subsystem executable.
func hideWindow(process *exec.Cmd) {
	process.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}

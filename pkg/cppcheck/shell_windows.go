package cppcheck

import (
	"context"
	"os/exec"
	"syscall"
)

// shellCommand hands the command line to cmd.exe verbatim; exec's own
// argument quoting would escape the quotes the command already carries.
func shellCommand(ctx context.Context, command string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: "cmd.exe /C " + command}
	return cmd
}

//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// detach configures the command to run in its own session with no terminal,
// so it keeps running after the dashboard exits.
func detach(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	c.Stdin = nil
	c.Stdout = nil
	c.Stderr = nil
}

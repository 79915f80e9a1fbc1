// Package launch starts instances and opens their folders without holding
// onto the child process. The dashboard stays responsive; the launcher owns
// the game's lifecycle from the moment Start returns.
package launch

import (
	"fmt"
	"os/exec"
	"strings"

	"prismdash/cmd"
	"prismdash/instance"
	"prismdash/log"
)

// Dispatcher spawns detached launcher and file-manager processes.
type Dispatcher struct {
	launchCommand []string
	fileManager   string
	exec          cmd.Executor
}

// NewDispatcher builds a dispatcher from the configured command lines.
// launchCommand is split on whitespace; the instance id is appended at
// dispatch time. An empty fileManager falls back to the platform default.
func NewDispatcher(launchCommand, fileManager string) *Dispatcher {
	return NewDispatcherWithDeps(launchCommand, fileManager, cmd.MakeExecutor())
}

// NewDispatcherWithDeps injects a command executor for tests.
func NewDispatcherWithDeps(launchCommand, fileManager string, executor cmd.Executor) *Dispatcher {
	if fileManager == "" {
		fileManager = DefaultFileManager()
	}
	return &Dispatcher{
		launchCommand: strings.Fields(launchCommand),
		fileManager:   fileManager,
		exec:          executor,
	}
}

// Launch starts the instance and immediately disowns the child. Errors are
// reported to the caller for a transient notice; nothing about the instance
// list changes on failure.
func (d *Dispatcher) Launch(rec instance.Record) error {
	if len(d.launchCommand) == 0 {
		return fmt.Errorf("no launch command configured")
	}

	args := append(append([]string{}, d.launchCommand[1:]...), rec.ID)
	c := exec.Command(d.launchCommand[0], args...)
	detach(c)

	if err := d.exec.Start(c); err != nil {
		return fmt.Errorf("failed to launch %s: %w", rec.DisplayName, err)
	}
	release(c)

	log.InfoLog.Printf("launched instance %s (%s)", rec.ID, strings.Join(d.launchCommand, " "))
	return nil
}

// OpenFolder opens the instance directory in the configured file manager.
func (d *Dispatcher) OpenFolder(rec instance.Record) error {
	if d.fileManager == "" {
		return fmt.Errorf("no file manager available")
	}

	c := exec.Command(d.fileManager, rec.Path)
	detach(c)

	if err := d.exec.Start(c); err != nil {
		return fmt.Errorf("failed to open %s: %w", rec.Path, err)
	}
	release(c)
	return nil
}

// release lets go of the started process so it survives our exit. Safe to
// call when Start failed and no process exists.
func release(c *exec.Cmd) {
	if c.Process == nil {
		return
	}
	if err := c.Process.Release(); err != nil {
		log.WarningLog.Printf("failed to release process %d: %v", c.Process.Pid, err)
	}
}

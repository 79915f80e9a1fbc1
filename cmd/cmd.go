package cmd

import "os/exec"

// Executor abstracts exec.Cmd execution so callers can be exercised in tests
// without spawning real processes.
type Executor interface {
	// Run starts the command and waits for it to finish.
	Run(cmd *exec.Cmd) error
	// Start hands the command to the OS and returns without waiting; the
	// caller is responsible for releasing the process handle.
	Start(cmd *exec.Cmd) error
	// Output runs the command and returns its standard output.
	Output(cmd *exec.Cmd) ([]byte, error)
}

type osExecutor struct{}

func (osExecutor) Run(cmd *exec.Cmd) error              { return cmd.Run() }
func (osExecutor) Start(cmd *exec.Cmd) error            { return cmd.Start() }
func (osExecutor) Output(cmd *exec.Cmd) ([]byte, error) { return cmd.Output() }

// MakeExecutor returns an Executor backed by the real OS.
func MakeExecutor() Executor {
	return osExecutor{}
}

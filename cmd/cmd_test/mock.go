package cmd_test

import "os/exec"

// MockCmdExec implements cmd.Executor with pluggable behavior. Unset
// functions succeed silently so tests only stub what they assert on.
type MockCmdExec struct {
	RunFunc    func(cmd *exec.Cmd) error
	StartFunc  func(cmd *exec.Cmd) error
	OutputFunc func(cmd *exec.Cmd) ([]byte, error)
}

func (m MockCmdExec) Run(cmd *exec.Cmd) error {
	if m.RunFunc == nil {
		return nil
	}
	return m.RunFunc(cmd)
}

func (m MockCmdExec) Start(cmd *exec.Cmd) error {
	if m.StartFunc == nil {
		return nil
	}
	return m.StartFunc(cmd)
}

func (m MockCmdExec) Output(cmd *exec.Cmd) ([]byte, error) {
	if m.OutputFunc == nil {
		return nil, nil
	}
	return m.OutputFunc(cmd)
}

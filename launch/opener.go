package launch

import (
	"os/exec"
	"runtime"
)

// DefaultFileManager returns the platform's directory opener.
func DefaultFileManager() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// IsFileManagerAvailable checks if the given opener exists on the system.
func IsFileManagerAvailable(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

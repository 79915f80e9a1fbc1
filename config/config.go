package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"prismdash/log"
)

const (
	ConfigFileName = "config.json"

	// defaultLauncher is appended with an instance id at dispatch time:
	// "prismlauncher --launch <id>".
	defaultLauncher = "prismlauncher --launch"
)

// GetConfigDir returns the path to the application's configuration directory.
// PRISMDASH_HOME overrides the default so tests and multi-profile setups can
// relocate it.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("PRISMDASH_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".prismdash"), nil
}

// Config wires the dashboard to its environment. It never stores view state
// (sort, filter, selection); those stay session-local.
type Config struct {
	// InstancesRoot is the launcher's instances directory. A leading ~ is
	// expanded at load time.
	InstancesRoot string `json:"instances_root"`
	// LaunchCommand starts an instance; the instance id is appended as the
	// final argument when dispatching.
	LaunchCommand string `json:"launch_command"`
	// FileManagerCommand opens an instance folder. Empty means resolve a
	// platform default (xdg-open / open / explorer) at dispatch time.
	FileManagerCommand string `json:"file_manager_command"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	launcher, err := FindLauncherCommand()
	if err != nil {
		log.WarningLog.Printf("prismlauncher not found, keeping default command: %v", err)
		launcher = defaultLauncher
	}

	return &Config{
		InstancesRoot:      DefaultInstancesRoot(),
		LaunchCommand:      launcher,
		FileManagerCommand: "",
	}
}

// DefaultInstancesRoot probes the usual PrismLauncher data locations for this
// platform and returns the first that exists, or the conventional path when
// none do (so error messages name something actionable).
func DefaultInstancesRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "instances"
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			filepath.Join(home, "Library", "Application Support", "PrismLauncher", "instances"),
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			candidates = []string{filepath.Join(appData, "PrismLauncher", "instances")}
		}
	default:
		candidates = []string{
			filepath.Join(home, ".local", "share", "PrismLauncher", "instances"),
			// Flatpak install keeps its data under ~/.var.
			filepath.Join(home, ".var", "app", "org.prismlauncher.PrismLauncher", "data", "PrismLauncher", "instances"),
		}
	}

	for _, dir := range candidates {
		if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
			return dir
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return filepath.Join(home, "PrismLauncher", "instances")
}

// FindLauncherCommand attempts to find the "prismlauncher" command in the
// user's shell. It checks in the following order:
// 1. Shell alias resolution using "which" (flatpak setups commonly alias
//    prismlauncher to "flatpak run org.prismlauncher.PrismLauncher")
// 2. PATH lookup
//
// If both fail, it returns an error.
func FindLauncherCommand() (string, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/bash"
	}

	// Force the shell to load the user's profile and then run the command
	var shellCmd string
	if strings.Contains(shell, "zsh") {
		shellCmd = "source ~/.zshrc &>/dev/null || true; which prismlauncher"
	} else if strings.Contains(shell, "bash") {
		shellCmd = "source ~/.bashrc &>/dev/null || true; which prismlauncher"
	} else {
		shellCmd = "which prismlauncher"
	}

	cmd := exec.Command(shell, "-c", shellCmd)
	output, err := cmd.Output()
	if err == nil && len(output) > 0 {
		path := strings.TrimSpace(string(output))
		if path != "" {
			// Extract the real target from alias definitions like
			// "prismlauncher: aliased to /usr/bin/prismlauncher".
			aliasRegex := regexp.MustCompile(`(?:aliased to|->|=)\s*([^\s]+)`)
			if matches := aliasRegex.FindStringSubmatch(path); len(matches) > 1 {
				path = matches[1]
			}
			return path + " --launch", nil
		}
	}

	launcherPath, err := exec.LookPath("prismlauncher")
	if err == nil {
		return launcherPath + " --launch", nil
	}

	return "", fmt.Errorf("prismlauncher not found in aliases or PATH")
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	config.InstancesRoot = ExpandHome(config.InstancesRoot)
	return &config
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// saveConfig saves the configuration to disk. Writes take the config file
// lock so concurrent dashboard processes don't interleave first-run saves.
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	lock := NewFileLock(configPath)
	if err := lock.Lock(); err != nil {
		log.WarningLog.Printf("failed to acquire config lock, writing anyway: %v", err)
	} else {
		defer func() {
			if err := lock.Unlock(); err != nil {
				log.WarningLog.Printf("failed to release config lock: %v", err)
			}
		}()
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}

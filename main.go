package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"prismdash/app"
	"prismdash/config"
	"prismdash/inspect"
	"prismdash/launch"
	"prismdash/log"
)

var (
	version         = "0.2.0"
	rootFlag        string
	launcherFlag    string
	fileManagerFlag string
	rootCmd         = &cobra.Command{
		Use:   "prismdash",
		Short: "Prismdash - Browse, monitor, and launch your PrismLauncher instances from the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()
			log.InitDebug()
			defer log.CloseDebug()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("prismdash needs an interactive terminal")
			}

			cfg := config.LoadConfig()

			// Root flag overrides config
			if rootFlag != "" {
				cfg.InstancesRoot = config.ExpandHome(rootFlag)
			}
			// Launcher flag overrides config
			if launcherFlag != "" {
				cfg.LaunchCommand = launcherFlag
			}
			// File manager flag overrides config
			if fileManagerFlag != "" {
				cfg.FileManagerCommand = fileManagerFlag
			}

			err := app.Run(ctx, cfg)
			log.GetProfiler().LogStats()
			return err
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			if _, err := os.Stat(cfg.InstancesRoot); err != nil {
				fmt.Printf("Instances root: %s (not readable: %v)\n", cfg.InstancesRoot, err)
			} else {
				fmt.Printf("Instances root: %s\n", cfg.InstancesRoot)
			}

			fileManager := cfg.FileManagerCommand
			if fileManager == "" {
				fileManager = launch.DefaultFileManager()
			}
			if launch.IsFileManagerAvailable(fileManager) {
				fmt.Printf("File manager: %s\n", fileManager)
			} else {
				fmt.Printf("File manager: %s (not found in PATH)\n", fileManager)
			}

			fmt.Printf("Inspect file: %s (set %s=1 to enable)\n", inspect.GetInspectFile(), inspect.EnvVar)

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of prismdash",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("prismdash version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&rootFlag, "root", "r", "",
		"Instances directory to scan (e.g. '~/.local/share/PrismLauncher/instances')")
	rootCmd.Flags().StringVarP(&launcherFlag, "launcher", "l", "",
		"Launch command to run instances with (e.g. 'flatpak run org.prismlauncher.PrismLauncher --launch')")
	rootCmd.Flags().StringVar(&fileManagerFlag, "file-manager", "",
		"Command used to open instance folders. Defaults to the platform opener.")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

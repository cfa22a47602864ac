package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wonderland-desktop/wonderctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wonderctl configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.ConfigPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir := config.ConfigDir()
		configPath := config.ConfigPath()

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}

		// Back up existing config
		if _, err := os.Stat(configPath); err == nil {
			backupPath := configPath + ".bak"
			if err := os.Rename(configPath, backupPath); err != nil {
				return fmt.Errorf("backup config: %w", err)
			}
			fmt.Printf("Backed up existing config to %s\n", backupPath)
		}

		defaultConfig := `[theme]
themes_dir = "~/.config/theme/themes"
current_link = "~/.config/theme/current/theme"

[hyprland]
socket_layout = "runtime" # or "legacy" for /tmp/hypr
# socket = "/run/user/1000/hypr/<signature>/.socket.sock"

[sync]
interval = 5
active_border = "general:col.active_border"
inactive_border = "general:col.inactive_border"
`
		if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		fmt.Printf("Created config at %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

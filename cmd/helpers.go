package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wonderland-desktop/wonderctl/internal/config"
	"github.com/wonderland-desktop/wonderctl/internal/hyprland"
	"github.com/wonderland-desktop/wonderctl/internal/preset"
	"github.com/wonderland-desktop/wonderctl/internal/theme"
	"github.com/wonderland-desktop/wonderctl/internal/themesync"
	"golang.org/x/term"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func themeLoader() (*theme.Loader, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.ThemeLoader()
}

func hyprClient() (*hyprland.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.HyprlandClient()
}

// newSyncer builds a syncer from the config's border options.
func newSyncer(cfg *config.Config, c *hyprland.Client) *themesync.Syncer {
	return &themesync.Syncer{
		Client:         c,
		ActiveOption:   cfg.Sync.ActiveBorder,
		InactiveOption: cfg.Sync.InactiveBorder,
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func completeThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	l, err := themeLoader()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, _ := l.ListThemes()
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completePresets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, _ := preset.DefaultStore().List()
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}

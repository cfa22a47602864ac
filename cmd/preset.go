package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wonderland-desktop/wonderctl/internal/preset"
	"gopkg.in/yaml.v3"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Apply bundles of compositor settings",
}

var presetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := preset.DefaultStore()
		names, err := store.List()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, name := range names {
			p, err := store.Load(name)
			if err != nil {
				fmt.Fprintf(w, "%s\t(invalid: %v)\n", name, err)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\n", name, p.Description)
		}
		return w.Flush()
	},
}

var presetShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Print a preset definition",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completePresets,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := preset.DefaultStore().Load(args[0])
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode preset: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var presetApplyCmd = &cobra.Command{
	Use:               "apply <name>",
	Short:             "Apply a preset to the running compositor",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completePresets,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := preset.DefaultStore().Load(args[0])
		if err != nil {
			return err
		}
		c, err := hyprClient()
		if err != nil {
			return err
		}
		if err := p.Apply(c); err != nil {
			return err
		}
		fmt.Printf("Applied preset %s\n", p.Name)
		return nil
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetApplyCmd)
	rootCmd.AddCommand(presetCmd)
}

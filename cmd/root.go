package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wonderctl",
	Short: "Theme and compositor control for Hyprland",
	Long:  "wonderctl loads desktop themes, derives their palettes and drives a running Hyprland compositor over its control socket.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.SetHelpFunc(styledHelp)
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Short:  "Print this help message",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			styledHelp(rootCmd, nil)
			return nil
		},
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

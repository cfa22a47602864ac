package cmd

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for wonderctl.

Theme and preset names complete from the configured theme directory
and preset store.

For zsh, add this to your .zshrc:
  eval "$(wonderctl completion zsh)"

Or generate a file for your fpath:
  wonderctl completion zsh > ~/.local/share/zsh/site-functions/_wonderctl
`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "zsh":
			var buf bytes.Buffer
			if err := rootCmd.GenZshCompletion(&buf); err != nil {
				return err
			}
			// The #compdef magic comment is enough for fpath completions.
			for _, line := range strings.Split(buf.String(), "\n") {
				if line == "compdef _wonderctl wonderctl" {
					continue
				}
				os.Stdout.WriteString(line + "\n")
			}
			return nil
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wonderland-desktop/wonderctl/internal/theme"
	"github.com/wonderland-desktop/wonderctl/internal/tui"
)

var themeShowJSON bool

var themeCmd = &cobra.Command{
	Use:     "theme",
	Aliases: []string{"t"},
	Short:   "Inspect installed themes",
}

var themeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed themes",
	Long:    "List installed themes. The active theme is marked with *.",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := themeLoader()
		if err != nil {
			return err
		}

		names, err := l.ListThemes()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Printf("No themes in %s\n", l.Dir())
			return nil
		}

		current, _ := l.CurrentName() // no active theme is fine
		for _, name := range names {
			marker := " "
			if name == current {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return nil
	},
}

var themeCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the active theme name",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := themeLoader()
		if err != nil {
			return err
		}
		name, err := l.CurrentName()
		if err != nil {
			return err
		}
		fmt.Println(name)
		return nil
	},
}

var themeShowCmd = &cobra.Command{
	Use:               "show [name]",
	Short:             "Show a theme's derived palette",
	Long:              "Show the derived palette of a theme, or of the active theme when no name is given.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeThemes,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := themeLoader()
		if err != nil {
			return err
		}

		var t theme.Theme
		if len(args) == 1 {
			t, err = l.Load(args[0])
		} else {
			t, err = l.LoadCurrent()
		}
		if err != nil {
			return err
		}

		if themeShowJSON {
			return printJSON(t)
		}
		printTheme(t)
		return nil
	},
}

var themeBackgroundsCmd = &cobra.Command{
	Use:               "backgrounds <name>",
	Short:             "List a theme's background images",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeThemes,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := themeLoader()
		if err != nil {
			return err
		}
		files, err := l.ListBackgrounds(args[0])
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Println(f)
		}
		return nil
	},
}

// printTheme renders swatches on a terminal and a plain table otherwise.
func printTheme(t theme.Theme) {
	variant := "light"
	if t.IsDark() {
		variant = "dark"
	}
	fmt.Printf("%s (%s)\n%s\n\n", t.Name, variant, t.Path)

	if isTerminal() {
		for _, nc := range t.Palette() {
			fmt.Println(tui.Swatch(nc, 32))
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, nc := range t.Palette() {
		fmt.Fprintf(w, "%s\t%s\n", nc.Name, nc.Color)
	}
	w.Flush()
}

func init() {
	themeShowCmd.Flags().BoolVar(&themeShowJSON, "json", false, "Print the palette as JSON")

	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeCurrentCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeBackgroundsCmd)
	rootCmd.AddCommand(themeCmd)
}

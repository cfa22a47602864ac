package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var hyprJSON bool

var hyprCmd = &cobra.Command{
	Use:   "hypr",
	Short: "Query and control the compositor",
}

var hyprWindowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the focused window",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		win, err := c.ActiveWindow()
		if err != nil {
			return err
		}
		if hyprJSON {
			return printJSON(win)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "title\t%s\n", win.Title)
		fmt.Fprintf(w, "class\t%s\n", win.Class)
		fmt.Fprintf(w, "address\t%s\n", win.Address)
		fmt.Fprintf(w, "pid\t%d\n", win.PID)
		fmt.Fprintf(w, "workspace\t%s\n", win.Workspace.Name)
		fmt.Fprintf(w, "floating\t%t\n", win.Floating)
		fmt.Fprintf(w, "fullscreen\t%d\n", win.Fullscreen)
		return w.Flush()
	},
}

var hyprWorkspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Show the focused workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		ws, err := c.ActiveWorkspace()
		if err != nil {
			return err
		}
		if hyprJSON {
			return printJSON(ws)
		}
		fmt.Printf("%d %s on %s (%d windows)\n", ws.ID, ws.Name, ws.Monitor, ws.Windows)
		return nil
	},
}

var hyprWorkspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		list, err := c.Workspaces()
		if err != nil {
			return err
		}
		if hyprJSON {
			return printJSON(list)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMONITOR\tWINDOWS")
		for _, ws := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", ws.ID, ws.Name, ws.Monitor, ws.Windows)
		}
		return w.Flush()
	},
}

var hyprMonitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List monitors",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		list, err := c.Monitors()
		if err != nil {
			return err
		}
		if hyprJSON {
			return printJSON(list)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMODE\tPOSITION\tSCALE\tWORKSPACE")
		for _, m := range list {
			fmt.Fprintf(w, "%d\t%s\t%dx%d\t%d,%d\t%.2f\t%s\n",
				m.ID, m.Name, m.Width, m.Height, m.X, m.Y, m.Scale, m.ActiveWorkspace.Name)
		}
		return w.Flush()
	},
}

var hyprBindsCmd = &cobra.Command{
	Use:   "binds",
	Short: "List keybindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		list, err := c.Binds()
		if err != nil {
			return err
		}
		if hyprJSON {
			return printJSON(list)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEYS\tDISPATCHER\tARG")
		for _, b := range list {
			keys := append(b.Modifiers(), b.Key)
			fmt.Fprintf(w, "%s\t%s\t%s\n", strings.Join(keys, "+"), b.Dispatcher, b.Arg)
		}
		return w.Flush()
	},
}

var hyprDispatchCmd = &cobra.Command{
	Use:   "dispatch <dispatcher> [args...]",
	Short: "Run a compositor dispatcher",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		return c.Dispatch(strings.Join(args, " "))
	},
}

var hyprKeywordCmd = &cobra.Command{
	Use:   "keyword <option> <value...>",
	Short: "Set a live config option",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		return c.Keyword(args[0], strings.Join(args[1:], " "))
	},
}

var hyprReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the compositor config",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		return c.Reload()
	},
}

var hyprRawCmd = &cobra.Command{
	Use:   "raw <command...>",
	Short: "Send a raw socket command and print the response",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := hyprClient()
		if err != nil {
			return err
		}
		resp, err := c.Send(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimRight(resp, "\n"))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{hyprWindowCmd, hyprWorkspaceCmd, hyprWorkspacesCmd, hyprMonitorsCmd, hyprBindsCmd} {
		c.Flags().BoolVar(&hyprJSON, "json", false, "Print the raw record as JSON")
		hyprCmd.AddCommand(c)
	}

	hyprCmd.AddCommand(hyprDispatchCmd)
	hyprCmd.AddCommand(hyprKeywordCmd)
	hyprCmd.AddCommand(hyprReloadCmd)
	hyprCmd.AddCommand(hyprRawCmd)
	rootCmd.AddCommand(hyprCmd)
}

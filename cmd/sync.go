package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/wonderland-desktop/wonderctl/internal/config"
	"github.com/wonderland-desktop/wonderctl/internal/themesync"
)

var (
	syncWatch  bool
	syncDetach bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the active theme's border colors to the compositor",
	Long: `Push the active theme's border colors to the compositor.

With --watch, keep running and re-apply whenever the active theme changes.
With --detach, run the watcher in the background.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if syncDetach {
			return detachWatcher(cfg)
		}
		if syncWatch {
			return runWatcher(cfg)
		}

		l, err := cfg.ThemeLoader()
		if err != nil {
			return err
		}
		t, err := l.LoadCurrent()
		if err != nil {
			return err
		}
		c, err := cfg.HyprlandClient()
		if err != nil {
			return err
		}
		if err := newSyncer(cfg, c).Apply(t); err != nil {
			return err
		}
		fmt.Printf("Applied theme %s\n", t.Name)
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether a background watcher is running",
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := syncDaemonContext().Search()
		if err != nil || proc == nil || proc.Signal(syscall.Signal(0)) != nil {
			fmt.Println("Watcher is not running")
			os.Exit(1)
		}
		fmt.Printf("Watcher is running (pid %d)\n", proc.Pid)
		return nil
	},
}

var syncStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background watcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := syncDaemonContext().Search()
		if err != nil || proc == nil {
			fmt.Println("Watcher is not running")
			return nil
		}
		if err := proc.Signal(syscall.SIGTERM); err != nil {
			if errors.Is(err, os.ErrProcessDone) {
				fmt.Println("Watcher is not running")
				return nil
			}
			return fmt.Errorf("stop watcher: %w", err)
		}
		fmt.Println("Watcher stopped")
		return nil
	},
}

func syncDaemonContext() *daemon.Context {
	dataDir := config.DataDir()
	return &daemon.Context{
		PidFileName: filepath.Join(dataDir, "sync.pid"),
		PidFilePerm: 0644,
		LogFileName: filepath.Join(dataDir, "sync.log"),
		LogFilePerm: 0640,
		WorkDir:     dataDir,
		Umask:       027,
	}
}

// runWatcher blocks until SIGINT or SIGTERM.
func runWatcher(cfg *config.Config) error {
	l, err := cfg.ThemeLoader()
	if err != nil {
		return err
	}
	c, err := cfg.HyprlandClient()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := &themesync.Watcher{
		Source:   l,
		Syncer:   newSyncer(cfg, c),
		Interval: time.Duration(cfg.Sync.Interval) * time.Second,
	}
	log.Info("watching theme", "dir", l.Dir(), "socket", c.SocketPath(), "interval", w.Interval)
	return w.Run(ctx)
}

func detachWatcher(cfg *config.Config) error {
	if err := os.MkdirAll(config.DataDir(), 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	cntxt := syncDaemonContext()
	d, err := cntxt.Reborn()
	if err != nil {
		return fmt.Errorf("daemonize: %w", err)
	}
	if d != nil {
		// Parent process
		fmt.Printf("Watcher started (pid %d), logging to %s\n", d.Pid, cntxt.LogFileName)
		return nil
	}
	defer cntxt.Release()

	return runWatcher(cfg)
}

func init() {
	syncCmd.Flags().BoolVarP(&syncWatch, "watch", "w", false, "Keep running and re-apply on theme changes")
	syncCmd.Flags().BoolVarP(&syncDetach, "detach", "d", false, "Run the watcher in the background")

	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncStopCmd)
	rootCmd.AddCommand(syncCmd)
}

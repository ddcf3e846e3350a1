package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/upkeepops/upkeep/logger"
	"github.com/upkeepops/upkeep/upkeep/changelog"
	"github.com/upkeepops/upkeep/upkeep/commandrunner"
	"github.com/upkeepops/upkeep/upkeep/config"
	"github.com/upkeepops/upkeep/upkeep/envdetect"
	"github.com/upkeepops/upkeep/upkeep/menu"
	"github.com/upkeepops/upkeep/upkeep/packagemanager"
	"github.com/upkeepops/upkeep/upkeep/scratch"
	"github.com/upkeepops/upkeep/upkeep/workflow"
)

var (
	debug      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "upkeep",
	Short:         "Package upkeep across pacman, apt, apk and dnf",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
	RunE: run,
}

// Execute runs the root command. Configuration errors print one line
// to stderr and exit with status 1.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	env, err := envdetect.Detect("/")
	if err != nil {
		return err
	}
	logger.L.WithField("manager", env.Manager).
		WithField("escalator", env.Escalator).
		Debug("environment detected")

	runner := &commandrunner.ExecRunner{Escalator: string(env.Escalator)}
	mgr, err := packagemanager.ForKind(env.Manager, runner)
	if err != nil {
		return err
	}

	scr := scratch.Default()
	defer scr.Remove()
	removeScratchOnSignal(scr)

	opts := workflow.Options{Manager: mgr, Scratch: scr, Out: os.Stdout}
	if cfg.Logging {
		logPath, err := changelog.DefaultPath()
		if err != nil {
			return err
		}
		opts.Log = changelog.New(logPath)
	}

	ctx := context.Background()

	switch cfg.RunMode {
	case config.ModePrompt:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			logger.L.Debug("stdin is not a terminal")
		}
		// The menu handles its own exit; no trailing clean pass.
		return menu.Run(ctx, os.Stdin, opts)
	case config.ModeUpdate:
		if err := workflow.Update(ctx, opts); err != nil {
			return err
		}
	case config.ModeFull:
		if err := workflow.Full(ctx, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid run mode %q", cfg.RunMode)
	}

	// Non-interactive modes always finish with a clean pass.
	return workflow.Clean(ctx, opts)
}

// removeScratchOnSignal deletes the scratch file when the process is
// hung up, quit, terminated, interrupted or aborted.
func removeScratchOnSignal(scr *scratch.File) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch,
		syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT, syscall.SIGABRT)
	go func() {
		<-ch
		scr.Remove()
		os.Exit(1)
	}()
}

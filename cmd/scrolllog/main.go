package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"scrolllog/internal/config"
	"scrolllog/internal/history"
	"scrolllog/internal/logger"
	"scrolllog/internal/tui"
)

var log = logger.Named("main")

func main() {
	logger.Configure()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 2 for usage errors, 1 for any other failure.
func run(argv []string, stdout, stderr io.Writer) int {
	args, err := parseArgs(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "scrolllog: %v\n", err)
		return 2
	}

	cfg, err := config.Load(args.cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "scrolllog: load config: %v\n", err)
		return 1
	}
	cfg = config.ApplyKVOverrides(cfg, args.allOverrides())
	if args.writeConfig {
		if err := config.Save(cfg.Source, cfg); err != nil {
			fmt.Fprintf(stderr, "scrolllog: save config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", cfg.Source)
		return 0
	}

	if closer := setupLogging(cfg, stderr); closer != nil {
		defer closer.Close()
	}

	stdinIsTTY := isTerminal(os.Stdin)
	sources, err := buildSources(args, os.Stdin, stdinIsTTY)
	if err != nil {
		log.WithError(err).Error("no usable source")
		fmt.Fprintf(stderr, "scrolllog: %v\n", err)
		return 2
	}

	runOpts := tui.RunOptions{}
	if !stdinIsTTY {
		// stdin carries data; read keys from the controlling terminal.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			log.WithError(err).Error("open /dev/tty failed")
			fmt.Fprintf(stderr, "scrolllog: open /dev/tty: %v\n", err)
			return 1
		}
		defer tty.Close()
		runOpts.Input = tty
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := history.NewDefault()
	if err != nil {
		log.WithError(err).Warn("search history disabled")
	}

	log.WithField("sources", len(sources)).WithField("max_entries", cfg.MaxEntries).Info("starting")
	opts := tui.Options{Config: cfg, Sources: sources, History: store}
	if err := tui.Run(ctx, opts, runOpts); err != nil {
		log.WithError(err).Error("tui exited with error")
		fmt.Fprintf(stderr, "scrolllog: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging sends logs to the configured file; without one, logs are
// discarded so they never paint over the TUI.
func setupLogging(cfg config.Config, stderr io.Writer) io.Closer {
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "scrolllog: %v\n", err)
	}
	path := cfg.LogPath
	if path == "" {
		path = logger.DefaultLogPath
	}
	closer, _, err := logger.SetupFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "scrolllog: log file disabled: %v\n", err)
		logger.Discard()
		return nil
	}
	return closer
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertwitch/unenum/internal/configuration"
	"github.com/desertwitch/unenum/internal/filesystem"
	"github.com/desertwitch/unenum/internal/io"
	"github.com/desertwitch/unenum/internal/schema"
	"github.com/lmittmann/tint"
)

const (
	logFilePerms = 0o640
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configPath  = flag.String("config", "", "read configuration from this file (default "+configuration.DefaultPath+")")
	dryRun      = flag.Bool("dry-run", false, "plan and log all operations without touching the filesystem")
	filesOnly   = flag.Bool("files-only", false, "exclude directories from duplicate grouping")
	checksums   = flag.Bool("checksums", false, "log BLAKE3 checksums of all removed and retained files")
	logLevel    = flag.String("log-level", "", "minimum log level (debug, info, warn, error)")
	logFile     = flag.String("log-file", "", "additionally write JSON logs to this file")
	showVersion = flag.Bool("version", false, "print the version and exit")
)

func setupLogging(level slog.Level) *slogFanout {
	fanout := newSlogFanout(
		tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	)
	slog.SetDefault(slog.New(fanout))

	return fanout
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		slog.Warn("Received signal: stopping after the current group...")
		cancel()
	}()
}

// loadConfiguration reads the configuration file and applies any explicitly
// set flags on top of it.
func loadConfiguration() (*configuration.Configuration, error) {
	path, required := configuration.DefaultPath, false
	if *configPath != "" {
		path, required = *configPath, true
	}

	config, err := configuration.NewHandler(&configuration.GodotenvProvider{}).Load(path, required)
	if err != nil {
		return nil, err
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dry-run":
			config.DryRun = *dryRun
		case "files-only":
			config.FilesOnly = *filesOnly
		case "checksums":
			config.Checksums = *checksums
		case "log-level":
			if err := config.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
				flagErr = fmt.Errorf("(config) %w: -log-level=%q", configuration.ErrInvalidValue, *logLevel)
			}
		}
	})

	return config, flagErr
}

func openLogFile(fanout *slogFanout, path string, level slog.Level) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerms)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fanout.AddHandler(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))

	return f, nil
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <root directory>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Fprintln(os.Stdout, Version)

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fanout := setupLogging(slog.LevelInfo)
	setupSignalHandlers(cancel)

	if flag.NArg() != 1 {
		slog.Error("Invalid arguments.", "err", ErrUsage)
		flag.Usage()
		ExitCode = 2

		return
	}
	root := flag.Arg(0)

	config, err := loadConfiguration()
	if err != nil {
		slog.Error("Failed to load the configuration.", "err", err)
		ExitCode = 1

		return
	}
	fanout = setupLogging(config.LogLevel)

	if *logFile != "" {
		f, err := openLogFile(fanout, *logFile, config.LogLevel)
		if err != nil {
			slog.Error("Failed to set up logging.", "err", err)
			ExitCode = 1

			return
		}
		defer f.Close()
	}

	if config.DryRun {
		slog.Warn("Dry run: no filesystem elements will be removed or renamed.")
	}

	fsHandler := filesystem.NewHandler(&schema.Unix{}, filesystem.Options{
		FilesOnly: config.FilesOnly,
	})
	ioHandler := io.NewHandler(&schema.OS{}, io.Options{
		DryRun:    config.DryRun,
		Checksums: config.Checksums,
	})

	app := NewApp(root, fsHandler, ioHandler)

	report, err := app.Launch(ctx)
	if err != nil {
		slog.Error("Consolidation failed: some groups may already have been consolidated.",
			"root", root,
			"err", err,
		)
		ExitCode = 1

		return
	}

	fmt.Fprintln(os.Stdout, renderSummary(report))
}

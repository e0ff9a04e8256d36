package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	adapter "github.com/ionut-t/gonotes/adapter-bubbletea"
	"github.com/ionut-t/gonotes/config"
	"github.com/ionut-t/gonotes/core"
	"github.com/ionut-t/gonotes/storage"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if dir := cmd.String("dir"); dir != "" {
		cfg.Notes.Dir = config.ExpandPath(dir)
	}
	if file := cmd.String("log-file"); file != "" {
		cfg.Log.File = config.ExpandPath(file)
	}
	if cmd.Bool("debug") {
		cfg.Log.Level = slog.LevelDebug
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := os.MkdirAll(cfg.Notes.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	fs, err := storage.NewFS(cfg.Notes.Dir, cfg.Notes.Extension)
	if err != nil {
		return err
	}

	opts := []core.Option{
		core.WithLogger(logger),
		core.WithExtension(cfg.Notes.Extension),
	}
	if adapter.ClipboardAvailable() {
		opts = append(opts, core.WithClipboard(&adapter.SystemClipboard{}))
	} else {
		logger.Warn("no clipboard backend found, copy and paste disabled")
	}

	keys := adapter.DefaultKeyMap()
	if err := keys.ApplyOverrides(cfg.Keymap.Overrides); err != nil {
		return fmt.Errorf("invalid keymap: %w", err)
	}

	m := adapter.New(core.New(fs, opts...),
		adapter.WithKeyMap(keys),
		adapter.WithFilesWidth(cfg.UI.FilesWidth),
		adapter.WithMessageTimeout(cfg.UI.MessageTimeout),
	)

	logger.Info("starting",
		slog.String("dir", fs.Root()),
		slog.String("extension", fs.Ext()),
		slog.Bool("watch", cfg.Notes.Watch),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	g.Go(func() error {
		// The watcher lives as long as the program does.
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("program error: %w", err)
		}
		return nil
	})

	if cfg.Notes.Watch {
		g.Go(func() error {
			err := fs.Watch(ctx, logger, func() {
				p.Send(adapter.NotesChangedMsg{})
			})
			if err != nil {
				return fmt.Errorf("watcher error: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("stopped with error", slog.Any("error", err))
		return err
	}

	logger.Info("stopped")
	return nil
}

// newLogger builds the diagnostic logger. The terminal belongs to the TUI, so
// logs go to a file or nowhere.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: cfg.Level,
	}))
	return logger, func() { _ = f.Close() }, nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "gonotes",
		Usage:  "Two-pane terminal notes editor for a directory of Markdown files",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.config/gonotes/config.yaml",
				Value:       config.DefaultPath(),
				Sources:     cli.EnvVars("GONOTES_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Notes directory, overrides notes.dir",
				Sources: cli.EnvVars("GONOTES_DIR"),
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write diagnostic logs to this file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log at debug level",
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gonotes: %v\n", err)
		os.Exit(1)
	}
}

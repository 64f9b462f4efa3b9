package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/applemath/internal/app"
	"github.com/abhisek/applemath/internal/config"
	"github.com/abhisek/applemath/internal/problemgen"
	"github.com/abhisek/applemath/internal/session"
	"github.com/abhisek/applemath/internal/store"
)

// runApp resolves the config, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, askName, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	eventRepo, closeStore := openJournal(logger)
	defer closeStore()

	ctx := commandContext(cmd)
	manager := newManager(cfg, eventRepo, logger)
	manager.Start(ctx)
	defer manager.End(ctx)

	return app.Run(app.Options{
		Manager:   manager,
		EventRepo: eventRepo,
		AskName:   askName,
	})
}

// openJournal opens the in-memory answer journal. The quiz works without it,
// so a failure only disables history and trickiest-fact summaries.
func openJournal(logger *slog.Logger) (store.EventRepo, func()) {
	st, err := store.OpenMemory()
	if err != nil {
		logger.Error("open answer journal", "error", err)
		warn("Answer journal unavailable:", err)
		warn("History and trickiest facts will be disabled.")
		return nil, func() {}
	}
	return st.EventRepo(), func() { st.Close() }
}

func newManager(cfg config.Config, eventRepo store.EventRepo, logger *slog.Logger) *session.Manager {
	return session.NewManager(session.Options{
		Learner:      cfg.LearnerName,
		Mode:         cfg.SessionMode(),
		MaxQuestions: cfg.MaxQuestions,
		Generator:    problemgen.NewSeeded(cfg.Seed),
		EventRepo:    eventRepo,
		Logger:       logger,
	})
}

// newLogger builds the diagnostics logger. With a path it writes text
// records to that file through tea.LogToFile; otherwise records are dropped,
// since the TUI owns the terminal.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := tea.LogToFile(path, "applemath")
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func warn(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
}

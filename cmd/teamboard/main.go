package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/teamboard/internal/app"
	"github.com/nhle/teamboard/internal/board"
	"github.com/nhle/teamboard/internal/model"
	"github.com/nhle/teamboard/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "teamboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv("TEAMBOARD_CONFIG")
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer st.Close()

	log.WithFields(log.Fields{
		"backend": cfg.Storage.Backend,
		"key":     cfg.Storage.Key,
	}).Info("starting teamboard")

	b := board.New(ctx, st, board.Options{
		Key:         cfg.Storage.Key,
		SeedMembers: cfg.Board.SeedMembers,
		Logger:      log.WithField("component", "board"),
	})

	m := app.New(b, app.Options{
		TickInterval: time.Duration(cfg.Display.TickSec) * time.Second,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewdesk/workforce-system/internal/core/service"
	"github.com/crewdesk/workforce-system/internal/infrastructure/config"
	"github.com/crewdesk/workforce-system/internal/ingest"
	"github.com/crewdesk/workforce-system/internal/tui"
	"github.com/crewdesk/workforce-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: logOut,
	})

	directory := service.NewDirectoryService(log)
	report, err := directory.Load(ctx, ingest.NewCSVSource(cfg.EmployeesCSV))
	if err != nil {
		// An unreadable source yields an empty directory; the UI still
		// starts, logins just all fail.
		log.Error().Err(err).Str("path", cfg.EmployeesCSV).Msg("directory load failed")
	}
	log.Info().
		Int("admitted", report.Admitted).
		Int("skipped", len(report.Skipped)).
		Msg("startup ingestion complete")

	access := service.NewAccessService(directory, log)
	groups := service.NewGroupService(directory, log)
	tasks := service.NewTaskService(log)

	app := tui.NewApp(tui.Services{
		Access:    access,
		Directory: directory,
		Groups:    groups,
		Tasks:     tasks,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

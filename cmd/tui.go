package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mpdfmt/internal/shared"
	"github.com/desertthunder/mpdfmt/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for browsing playlists.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.loadLibrary(cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, closeLog, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer closeLog()

	shared.SetLogLevel(fileLogger, r.logger.GetLevel())
	defer r.SetLogger(r.logger)
	r.SetLogger(fileLogger)

	model := ui.NewModel(lib)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

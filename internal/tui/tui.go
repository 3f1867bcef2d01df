package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/memclip/models"
	tea "github.com/charmbracelet/bubbletea"
)

// refreshInterval is how often the dashboard pulls a new Status.
const refreshInterval = time.Second

type Dashboard struct {
	source  Source
	build   models.AppBuildInfo
	options []tea.ProgramOption
}

func New(source Source, build models.AppBuildInfo, options ...tea.ProgramOption) *Dashboard {
	return &Dashboard{source: source, build: build, options: options}
}

// Run shows the dashboard until ctx is cancelled, which returns nil, or the
// user quits, which returns ErrUserQuit.
func (d *Dashboard) Run(ctx context.Context) error {
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, d.options...)

	finalModel, err := tea.NewProgram(newDashboardModel(d.source, d.build), options...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard: %w", err)
	}

	if m, ok := finalModel.(dashboardModel); ok && m.quitByUser {
		return ErrUserQuit
	}
	return nil
}

package tui

import (
	"time"

	"github.com/MKhiriev/memclip/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

type dashboardModel struct {
	source Source
	build  models.AppBuildInfo

	status     Status
	updatedAt  time.Time
	width      int
	fullTicket bool
	quitByUser bool
}

func newDashboardModel(source Source, build models.AppBuildInfo) dashboardModel {
	return dashboardModel{
		source:    source,
		build:     build,
		status:    source.Status(),
		updatedAt: time.Now(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m dashboardModel) Init() tea.Cmd {
	return tick()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.status = m.source.Status()
		m.updatedAt = time.Time(msg)
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.refresh):
			m.status = m.source.Status()
			m.updatedAt = time.Now()
		case key.Matches(msg, keys.ticket):
			m.fullTicket = !m.fullTicket
		}
	}

	return m, nil
}

func (m dashboardModel) View() string {
	return appStyle.Render(renderDashboard(m.status, m.build, m.width, m.fullTicket, m.updatedAt))
}

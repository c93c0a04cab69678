package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-youfone/internal/service"
	"github.com/MKhiriev/go-youfone/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardModel shows the latest data result and refreshes on demand.
type dashboardModel struct {
	ctx      context.Context
	account  service.AccountService
	interval time.Duration

	result     *models.DataResult
	updatedAt  time.Time
	refreshing bool

	spinner spinner.Model
	help    help.Model
	width   int
}

func newDashboardModel(ctx context.Context, account service.AccountService, interval time.Duration) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:        ctx,
		account:    account,
		interval:   interval,
		refreshing: true,
		spinner:    s,
		help:       help.New(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.result = &msg.result
		m.updatedAt = msg.at
		m.refreshing = false
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.refresh) && !m.refreshing:
			m.refreshing = true
			return m, tea.Batch(m.cmdRefresh(), m.spinner.Tick)
		}
	}

	return m, nil
}

func (m dashboardModel) cmdRefresh() tea.Cmd {
	ctx, account := m.ctx, m.account
	return func() tea.Msg {
		return resultMsg{result: account.GetDataResult(ctx), at: time.Now()}
	}
}

func (m dashboardModel) View() string {
	if m.result == nil {
		return appStyle.Render(m.spinner.View() + " Fetching account data...")
	}

	view := RenderResult(*m.result, m.width)
	view += "\n\n" + helpStyle.Render(m.statusLine())
	view += "\n" + m.help.ShortHelpView(keys.shortHelp())

	return appStyle.Render(view)
}

func (m dashboardModel) statusLine() string {
	if m.refreshing {
		return m.spinner.View() + " refreshing..."
	}

	status := "updated " + m.updatedAt.Format(time.TimeOnly)
	if m.interval > 0 {
		status += fmt.Sprintf(", next refresh by %s", m.updatedAt.Add(m.interval).Format(time.TimeOnly))
	}
	return status
}

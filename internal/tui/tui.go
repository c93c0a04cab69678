package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/service"
	"github.com/MKhiriev/go-youfone/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AccountService == nil || services.RefreshJob == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, logger: logger}, nil
}

// Watch runs the full-screen dashboard until the user quits or ctx is
// cancelled. The refresh job feeds a new result every interval.
func (t *TUI) Watch(ctx context.Context, interval time.Duration, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newDashboardModel(ctx, t.services.AccountService, interval)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	t.services.RefreshJob.Start(ctx, interval, func(result models.DataResult) {
		p.Send(resultMsg{result: result, at: time.Now()})
	})
	defer t.services.RefreshJob.Stop()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	t.logger.Debug().Msg("dashboard closed")
	return nil
}

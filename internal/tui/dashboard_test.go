package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/service"
	"github.com/MKhiriev/go-youfone/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccountService struct {
	result models.DataResult
	calls  int
}

func (s *stubAccountService) GetData(context.Context) (*models.AccountSnapshot, error) {
	s.calls++
	if s.result.Failed() {
		return nil, errors.New(s.result.Error)
	}
	return s.result.Snapshot, nil
}

func (s *stubAccountService) GetDataResult(context.Context) models.DataResult {
	s.calls++
	return s.result
}

type stubRefreshJob struct{}

func (stubRefreshJob) Start(context.Context, time.Duration, func(models.DataResult)) {}
func (stubRefreshJob) Stop()                                                     {}

func TestDashboard_ViewBeforeFirstResult(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubAccountService{}, time.Minute)

	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Fetching account data...")
}

func TestDashboard_ResultMsg(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubAccountService{}, time.Minute)
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	updated, cmd := m.Update(resultMsg{result: models.NewDataResult(testSnapshot()), at: at})
	assert.Nil(t, cmd)

	view := updated.View()
	assert.Contains(t, view, "Line 31600000000")
	assert.Contains(t, view, "updated 09:30:00")
	assert.Contains(t, view, "next refresh by 09:31:00")
	assert.Contains(t, view, "refresh")
	assert.Contains(t, view, "quit")
}

func TestDashboard_ErrorResult(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubAccountService{}, 0)

	updated, _ := m.Update(resultMsg{result: models.DataResult{Error: "boom"}, at: time.Now()})

	view := updated.View()
	assert.Contains(t, view, "Could not fetch account data")
	assert.Contains(t, view, "boom")
	assert.NotContains(t, view, "next refresh")
}

func TestDashboard_WindowSize(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubAccountService{}, 0)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, updated.(dashboardModel).width)
}

func TestDashboard_QuitKey(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubAccountService{}, 0)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)

	assert.Equal(t, tea.Quit(), cmd())
}

func TestDashboard_RefreshKey(t *testing.T) {
	account := &stubAccountService{result: models.NewDataResult(testSnapshot())}
	m := newDashboardModel(context.Background(), account, 0)

	updated, _ := m.Update(resultMsg{result: models.DataResult{Error: "stale"}, at: time.Now()})

	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.True(t, updated.(dashboardModel).refreshing)
	assert.Contains(t, updated.View(), "refreshing...")

	// a second press while refreshing is ignored
	_, again := updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, again)

	msg := updated.(dashboardModel).cmdRefresh()()
	res, ok := msg.(resultMsg)
	require.True(t, ok)
	assert.False(t, res.result.Failed())
	assert.Equal(t, 1, account.calls)
}

func TestNew(t *testing.T) {
	_, err := New(nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = New(&service.Services{AccountService: &stubAccountService{}}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	ui, err := New(&service.Services{AccountService: &stubAccountService{}, RefreshJob: stubRefreshJob{}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, ui)
}

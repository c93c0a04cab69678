package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-youfone/internal/config"
	"github.com/MKhiriev/go-youfone/internal/handler"
	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/server"
	"github.com/MKhiriev/go-youfone/internal/service"
	"github.com/MKhiriev/go-youfone/internal/tui"
	"github.com/MKhiriev/go-youfone/internal/workers"
	"github.com/MKhiriev/go-youfone/models"
	"github.com/mattn/go-isatty"
)

type App struct {
	services *service.Services
	ui       Watcher
	cfg      *config.ClientConfig
	logger   *logger.Logger

	in  io.Reader
	out io.Writer
}

func NewApp(services *service.Services, ui Watcher, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || services.AccountService == nil || services.RefreshJob == nil {
		return nil, ErrNoServices
	}
	if cfg == nil {
		return nil, ErrNoConfig
	}

	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
		in:       os.Stdin,
		out:      os.Stdout,
	}, nil
}

// Run picks the mode from the config: serve when an HTTP address is set,
// watch when a refresh interval is set, a single fetch otherwise.
func (a *App) Run(ctx context.Context) error {
	switch {
	case a.cfg.Server.HTTPAddress != "":
		return a.serve(ctx)
	case a.cfg.Workers.RefreshInterval > 0:
		return a.watch(ctx)
	default:
		return a.once(ctx)
	}
}

func (a *App) once(ctx context.Context) error {
	result := a.services.AccountService.GetDataResult(ctx)

	if err := a.print(result); err != nil {
		return err
	}
	if result.Failed() {
		return fmt.Errorf("%w: %s", ErrFetchFailed, result.Error)
	}
	return nil
}

func (a *App) watch(ctx context.Context) error {
	interval := a.cfg.Workers.RefreshInterval

	if a.ui != nil && !a.cfg.Output.JSON && isTerminal(a.out) {
		return a.ui.Watch(ctx, interval, a.in, a.out)
	}

	a.logger.Info().Dur("interval", interval).Msg("watching account data")
	return a.refreshWorker(func(result models.DataResult) {
		if err := a.printJSON(result); err != nil {
			a.logger.Err(err).Msg("failed to write result")
		}
	}).Run(ctx)
}

func (a *App) serve(ctx context.Context) error {
	handlers, err := handler.NewHandlers(a.services, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ws := workers.NewWorkers(workers.WorkerFunc(srv.RunServer))
	if a.cfg.Workers.RefreshInterval > 0 {
		ws.Add(a.refreshWorker(a.logResult))
	}

	return ws.Run(ctx)
}

// refreshWorker runs the refresh job until ctx is cancelled.
func (a *App) refreshWorker(onResult func(models.DataResult)) workers.Worker {
	return workers.WorkerFunc(func(ctx context.Context) error {
		a.services.RefreshJob.Start(ctx, a.cfg.Workers.RefreshInterval, onResult)
		defer a.services.RefreshJob.Stop()

		<-ctx.Done()
		return nil
	})
}

func (a *App) logResult(result models.DataResult) {
	if result.Failed() {
		a.logger.Warn().Str("error", result.Error).Msg("background refresh failed")
		return
	}
	a.logger.Info().
		Int("lines", len(result.Snapshot.SimInfo)).
		Time("at", time.Now()).
		Msg("background refresh finished")
}

func (a *App) print(result models.DataResult) error {
	if a.cfg.Output.JSON {
		return a.printJSON(result)
	}
	_, err := fmt.Fprintln(a.out, tui.RenderResult(result, 0))
	return err
}

func (a *App) printJSON(result models.DataResult) error {
	enc := json.NewEncoder(a.out)
	if a.cfg.Workers.RefreshInterval == 0 {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

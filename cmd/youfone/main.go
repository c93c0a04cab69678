package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-youfone/internal/adapter"
	"github.com/MKhiriev/go-youfone/internal/client"
	"github.com/MKhiriev/go-youfone/internal/config"
	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/service"
	"github.com/MKhiriev/go-youfone/internal/tui"
	"github.com/MKhiriev/go-youfone/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	fmt.Fprintln(os.Stderr, tui.RenderBuildInfo(buildInfo))

	log := logger.NewClientLogger("youfone")
	cfg, err := config.GetClientConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithDebug(cfg.Youfone.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	youfoneAdapter, err := adapter.NewHTTPYoufoneAdapter(cfg.Youfone, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create youfone adapter")
	}

	credentials := models.Credentials{Email: cfg.Youfone.Email, Password: cfg.Youfone.Password}
	services, err := service.NewServices(youfoneAdapter, credentials, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

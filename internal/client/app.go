package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/internal/service"
	"github.com/MKhiriev/linkdir/internal/store"
)

var ErrMissingDependency = errors.New("client dependency is nil")

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.LinkTreeService == nil || ui == nil {
		return nil, ErrMissingDependency
	}

	return &App{
		services: services,
		storages: storages,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run loads the stored forest, hands control to the UI and closes the
// storage when the UI returns.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	defer func() {
		if a.storages == nil {
			return
		}
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing storage")
			err = errors.Join(err, closeErr)
		}
	}()

	if err = a.services.LinkTreeService.Open(ctx); err != nil {
		return fmt.Errorf("load links: %w", err)
	}
	a.logger.Info().Int("items", a.services.LinkTreeService.Forest().Count()).Msg("links loaded")

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}

	a.logger.Info().Msg("linkdir stopped")
	return nil
}

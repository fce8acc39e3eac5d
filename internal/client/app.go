package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-depth-capture/internal/camera"
	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/service"
)

type App struct {
	services *service.ClientServices
	session  camera.CaptureSession
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, session camera.CaptureSession, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.BatchController == nil {
		return nil, errors.New("client services are not initialised")
	}
	if session == nil {
		return nil, errors.New("capture session is not initialised")
	}
	if ui == nil {
		return nil, errors.New("ui is not initialised")
	}

	return &App{
		services: services,
		session:  session,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run shows the UI until the user quits or the process receives SIGINT,
// SIGTERM or SIGQUIT, then closes the controller and the capture session.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	defer a.shutdown()

	if err := a.ui.Run(ctx); err != nil {
		if ctx.Err() != nil {
			a.logger.Info().Msg("client interrupted")
			return nil
		}
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) shutdown() {
	a.services.BatchController.Close()
	if err := a.session.Close(); err != nil {
		a.logger.Err(err).Msg("closing capture session")
	}
}

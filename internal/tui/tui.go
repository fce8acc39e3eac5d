// Package tui renders the capture screen and forwards key presses to the
// batch controller.
package tui

import (
	"context"

	"github.com/MKhiriev/go-depth-capture/internal/logger"
	"github.com/MKhiriev/go-depth-capture/internal/service"
	"github.com/MKhiriev/go-depth-capture/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the capture screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	updates, unsubscribe := t.services.BatchController.Subscribe()
	defer unsubscribe()

	model := newCaptureModel(ctx, t.services, updates, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(captureModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if !result.quitByUser {
		t.logger.Warn().Msg("capture screen closed by controller")
		return ErrSessionEnded
	}

	return nil
}

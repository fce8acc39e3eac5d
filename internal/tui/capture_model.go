package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-depth-capture/internal/service"
	"github.com/MKhiriev/go-depth-capture/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const maxPathWidth = 60

// captureModel is the single capture screen. It never mutates batch state
// itself; every command goes through the controller and the screen redraws
// from published snapshots.
type captureModel struct {
	ctx        context.Context
	controller service.BatchController
	results    service.ResultService
	updates    <-chan models.BatchSnapshot
	buildInfo  models.AppBuildInfo
	copyText   func(string) error

	snapshot models.BatchSnapshot
	spinner  spinner.Model
	help     help.Model

	cmdErr        error
	status        string
	savedPath     string
	showBuildInfo bool
	quitByUser    bool
}

func newCaptureModel(
	ctx context.Context,
	services *service.ClientServices,
	updates <-chan models.BatchSnapshot,
	buildInfo models.AppBuildInfo,
) captureModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return captureModel{
		ctx:        ctx,
		controller: services.BatchController,
		results:    services.ResultService,
		updates:    updates,
		buildInfo:  buildInfo,
		copyText:   clipboard.WriteAll,
		snapshot:   services.BatchController.Snapshot(),
		spinner:    s,
		help:       help.New(),
	}
}

func (m captureModel) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func (m captureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case snapshotMsg:
		wasSending := m.snapshot.State == models.StateSending
		m.snapshot = models.BatchSnapshot(msg)
		if m.snapshot.State == models.StateSending && !wasSending {
			return m, tea.Batch(waitForSnapshot(m.updates), m.spinner.Tick)
		}
		return m, waitForSnapshot(m.updates)

	case subscriptionClosedMsg:
		return m, tea.Quit

	case commandDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, service.ErrDiscarded) {
			m.cmdErr = msg.err
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.cmdErr = msg.err
			return m, nil
		}
		m.savedPath = msg.path
		m.status = "Depth map saved, path copied to clipboard"
		if msg.copyErr != nil {
			m.status = "Depth map saved"
		}
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.State != models.StateSending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m captureModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.back, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.capture):
		m.clearStatus()
		return m, m.cmdCapture()
	case key.Matches(msg, keys.remove):
		m.clearStatus()
		return m, m.cmdRemoveLast()
	case key.Matches(msg, keys.reset):
		m.clearStatus()
		m.savedPath = ""
		return m, m.cmdReset()
	case key.Matches(msg, keys.send):
		m.clearStatus()
		return m, m.cmdSend()
	case key.Matches(msg, keys.save):
		m.clearStatus()
		return m, m.cmdSave()
	}

	return m, nil
}

func (m *captureModel) clearStatus() {
	m.cmdErr = nil
	m.status = ""
}

func (m captureModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	snap := m.snapshot
	var b strings.Builder

	b.WriteString(field("Batch", slotIndicator(snap.Count)))
	b.WriteString("\n")

	state := snap.State.String()
	if snap.State == models.StateSending {
		state = m.spinner.View() + " " + state
	}
	b.WriteString(field("State", state))
	b.WriteString("\n")

	camera := "live"
	if snap.SessionPaused {
		camera = "paused"
	}
	b.WriteString(field("Camera", camera))
	b.WriteString("\n")

	result := ""
	if snap.Result != nil {
		result = fmt.Sprintf("%dx%d %s", snap.Result.Width(), snap.Result.Height(), snap.Result.Format)
	}
	b.WriteString(field("Result", valueOrDash(result)))
	b.WriteString("\n")
	b.WriteString(field("Saved", valueOrDash(fitText(m.savedPath, maxPathWidth))))

	errToShow := m.cmdErr
	if errToShow == nil {
		errToShow = snap.Err
	}
	if errToShow != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(humanizeError(errToShow)))
	} else if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("DEPTH CAPTURE", b.String(), m.help.View(keys))
}

func waitForSnapshot(updates <-chan models.BatchSnapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return subscriptionClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func (m captureModel) cmdCapture() tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{command: "capture", err: m.controller.Capture(m.ctx)}
	}
}

func (m captureModel) cmdRemoveLast() tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{command: "remove", err: m.controller.RemoveLast()}
	}
}

func (m captureModel) cmdReset() tea.Cmd {
	return func() tea.Msg {
		m.controller.Reset()
		return commandDoneMsg{command: "reset"}
	}
}

func (m captureModel) cmdSend() tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{command: "send", err: m.controller.Send(m.ctx)}
	}
}

func (m captureModel) cmdSave() tea.Cmd {
	return func() tea.Msg {
		path, err := m.results.SaveLatest(m.ctx)
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{path: path, copyErr: m.copyText(path)}
	}
}

package tui

import "github.com/MKhiriev/go-depth-capture/models"

// snapshotMsg carries a controller snapshot into the update loop.
type snapshotMsg models.BatchSnapshot

// subscriptionClosedMsg is sent once the controller stops publishing.
type subscriptionClosedMsg struct{}

type commandDoneMsg struct {
	command string
	err     error
}

type savedMsg struct {
	path    string
	copyErr error
	err     error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-depth-capture/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(field("App", "depth-capture"))
	b.WriteString("\n")
	b.WriteString(field("Version", valueOrNA(info.BuildVersion())))
	b.WriteString("\n")
	b.WriteString(field("Date", valueOrNA(info.BuildDate())))
	b.WriteString("\n")
	b.WriteString(field("Commit", valueOrNA(info.BuildCommit())))

	return renderPage("ABOUT", infoBoxStyle.Render(b.String()), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

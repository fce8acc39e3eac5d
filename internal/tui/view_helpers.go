package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-depth-capture/models"
)

const (
	uiDivider      = "──────────────────────────────────────────────────────"
	slotFilledRune = "■"
	slotEmptyRune  = "□"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

// slotIndicator renders one square per batch slot, filled for captured photos.
func slotIndicator(count int) string {
	count = min(max(count, 0), models.BatchCapacity)

	slots := make([]string, 0, models.BatchCapacity)
	for i := range models.BatchCapacity {
		if i < count {
			slots = append(slots, filledSlot.Render(slotFilledRune))
			continue
		}
		slots = append(slots, emptySlot.Render(slotEmptyRune))
	}
	return fmt.Sprintf("%s  %d/%d", strings.Join(slots, " "), count, models.BatchCapacity)
}

func field(label, value string) string {
	return fmt.Sprintf("%-8s %s", label+":", value)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

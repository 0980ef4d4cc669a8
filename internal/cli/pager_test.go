package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/shiftaudit/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func longContent(lines int) string {
	parts := make([]string, lines)
	for i := range parts {
		parts[i] = fmt.Sprintf("row %02d", i)
	}
	return strings.Join(parts, "\n")
}

func TestPager_ScrollsAndQuits(t *testing.T) {
	d := teatest.New(t, newPagerModel("Audit", longContent(40)), teatest.WithSize(80, 12))
	d.DrainInit()

	view := d.View()
	assert.Contains(t, view, "Audit")
	assert.Contains(t, view, "row 00")
	assert.Contains(t, view, "[TOP]")
	assert.NotContains(t, view, "row 39")

	d.PressKey('G')
	view = d.View()
	assert.Contains(t, view, "row 39")
	assert.Contains(t, view, "[END]")

	d.PressKey('g')
	assert.Contains(t, d.View(), "row 00")

	d.PressType(tea.KeyDown)
	assert.NotContains(t, d.View(), "[TOP]")

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestPager_EscQuits(t *testing.T) {
	d := teatest.New(t, newPagerModel("Audit", "short"), teatest.WithSize(80, 20))
	d.PressType(tea.KeyEsc)
	assert.True(t, d.Quitting)
}

func TestPager_WaitsForSize(t *testing.T) {
	d := teatest.New(t, newPagerModel("Audit", "content"))
	assert.Contains(t, d.View(), "Loading")

	d.Resize(40, 10)
	assert.Contains(t, d.View(), "content")
}

package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftaudit/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type pagerKeyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

func defaultPagerKeyMap() pagerKeyMap {
	return pagerKeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		End:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "end")),
	}
}

// pagerModel shows a rendered report in a scrollable viewport.
type pagerModel struct {
	title   string
	content string
	vp      viewport.Model
	keys    pagerKeyMap
	ready   bool
}

func newPagerModel(title, content string) *pagerModel {
	return &pagerModel{
		title:   title,
		content: content,
		keys:    defaultPagerKeyMap(),
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 2 // title and status lines
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return formatter.Dim("Loading…")
	}
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(m.title) + "\n")
	b.WriteString(m.vp.View() + "\n")
	b.WriteString(scrollIndicator(m.vp) + "  " + formatter.Dim("↑/↓ scroll · g/G top/end · q quit"))
	return b.String()
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}

func runPager(title, content string) error {
	p := tea.NewProgram(newPagerModel(title, content), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/plotstyles/pkg/styles"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StyleListModel - Interactive style browser
// =============================================================================

// StyleListModel is the bubbletea model for browsing a registry.
type StyleListModel struct {
	Registry *styles.Registry
	Keys     []string
	Cursor   int
	Offset   int
	Height   int
	Selected string
}

// NewStyleListModel creates a browser over all styles of reg.
func NewStyleListModel(reg *styles.Registry) StyleListModel {
	return StyleListModel{
		Registry: reg,
		Keys:     reg.Keys(),
		Height:   15,
	}
}

func (m StyleListModel) Init() tea.Cmd {
	return nil
}

func (m StyleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Keys))
		case "end", "G":
			m.move(len(m.Keys))
		case "enter":
			if len(m.Keys) == 0 {
				return m, nil
			}
			m.Selected = m.Keys[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// leave room for the title, the detail pane and the footer
		m.Height = max(msg.Height-22, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the list, and scrolls the window.
func (m *StyleListModel) move(delta int) {
	if len(m.Keys) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Keys)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m StyleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Styles"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  pgup/pgdn page  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Keys) == 0 {
		b.WriteString(listDimStyle.Render("  no styles"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Keys))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		key := m.Keys[i]
		d, _ := m.Registry.Style(key)
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, key, swatch(descriptorColor(d))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Style", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	key := m.Keys[m.Cursor]
	d, _ := m.Registry.Style(key)
	b.WriteString(StyleHighlight.Render(key))
	b.WriteString("\n")
	for _, k := range d.Keys() {
		b.WriteString("  " + styleKey.Render(k) + " " + formatValue(d[k]) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Keys))))

	return b.String()
}

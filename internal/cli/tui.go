package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deckforge/deckforge/pkg/theme"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Themes   []theme.Theme
	Cursor   int
	Selected *theme.Theme
	Height   int
	Offset   int
}

// NewThemeListModel creates a new theme list model.
func NewThemeListModel(themes []theme.Theme) ThemeListModel {
	return ThemeListModel{
		Themes: themes,
		Cursor: 0,
		Height: 10,
		Offset: 0,
	}
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Themes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			t := m.Themes[m.Cursor]
			m.Selected = &t
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Themes) {
		end = len(m.Themes)
	}

	for i := m.Offset; i < end; i++ {
		t := m.Themes[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		b.WriteString(cursor)
		b.WriteString(themeSwatch(t))
		b.WriteString(" ")
		b.WriteString(style.Render(t.Name))
		if t.Description != "" {
			b.WriteString("  ")
			b.WriteString(listDimStyle.Render(t.Description))
		}
		b.WriteString("\n")
	}

	if len(m.Themes) > m.Height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(
			fmt.Sprintf("%d/%d", m.Cursor+1, len(m.Themes))))
	}

	return b.String()
}

// pickTheme runs the interactive theme picker and returns the selection.
// Returns nil if the user quit without selecting.
func pickTheme(themes []theme.Theme) (*theme.Theme, error) {
	p := tea.NewProgram(NewThemeListModel(themes))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(ThemeListModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Selected, nil
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lexigraph/lexigraph/pkg/wordnet"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NounListModel - Interactive vocabulary browser
// =============================================================================

// NounListModel is the bubbletea model for scrolling through the vocabulary.
// The cursor noun's synset glosses are shown below the list.
type NounListModel struct {
	wn     *wordnet.WordNet
	Nouns  []string
	Cursor int
	Height int
	Offset int
}

// NewNounListModel creates a browser over the given noun list.
func NewNounListModel(wn *wordnet.WordNet, nouns []string) NounListModel {
	return NounListModel{
		wn:     wn,
		Nouns:  nouns,
		Height: 15,
	}
}

func (m NounListModel) Init() tea.Cmd {
	return nil
}

func (m NounListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nouns)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "pgup":
			m.Cursor -= m.Height
			if m.Cursor < 0 {
				m.Cursor = 0
			}
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		case "pgdown":
			m.Cursor += m.Height
			if m.Cursor > len(m.Nouns)-1 {
				m.Cursor = len(m.Nouns) - 1
			}
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NounListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Vocabulary"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Nouns) == 0 {
		b.WriteString(listDimStyle.Render("  no matching nouns"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Nouns) {
		end = len(m.Nouns)
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		line := cursor + m.Nouns[i]
		if i == m.Cursor {
			line = "▸ " + m.Nouns[i]
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nouns))))
	b.WriteString("\n")

	// Glosses of the cursor noun
	if ids, err := m.wn.IDs(m.Nouns[m.Cursor]); err == nil {
		for _, id := range ids {
			if gloss, err := m.wn.Gloss(id); err == nil {
				b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d: %s", id, truncate(gloss, 76))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// browseNouns runs the interactive vocabulary browser.
func browseNouns(wn *wordnet.WordNet, prefix string) error {
	model := NewNounListModel(wn, matchingNouns(wn, prefix))
	_, err := tea.NewProgram(model).Run()
	return err
}

// truncate shortens s to at most n runes, ending in an ellipsis. Cutting on
// rune boundaries keeps multi-byte glosses renderable.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

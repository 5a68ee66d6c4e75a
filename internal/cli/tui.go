package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/solargraph/pkg/graph"
	"github.com/matzehuels/solargraph/pkg/layout"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	listCursorStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	contextStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	serviceStyle    = lipgloss.NewStyle().Foreground(colorGreen)
)

// edgeFilters is the cycle of category filters toggled with "c".
var edgeFilters = []string{"", layout.Context.String(), layout.Service.String()}

// =============================================================================
// EdgeListModel - Interactive edge browser
// =============================================================================

// EdgeListModel is the bubbletea model of the inspect command: a scrolling
// table of routed edges with an optional detail pane for the selected one.
type EdgeListModel struct {
	Layout graph.Layout
	Edges  []graph.Edge // edges passing Filter
	Filter string       // "" for all, otherwise an edge category
	Cursor int
	Offset int
	Height int
	Detail bool
}

// NewEdgeListModel creates a model listing every edge of l.
func NewEdgeListModel(l graph.Layout) EdgeListModel {
	m := EdgeListModel{Layout: l, Height: 15}
	m.applyFilter()
	return m
}

func (m *EdgeListModel) applyFilter() {
	m.Edges = m.Edges[:0:0]
	for _, e := range m.Layout.Edges {
		if m.Filter == "" || e.Category.String() == m.Filter {
			m.Edges = append(m.Edges, e)
		}
	}
	m.Cursor, m.Offset = 0, 0
}

// Selected returns the edge under the cursor.
func (m EdgeListModel) Selected() (graph.Edge, bool) {
	if m.Cursor >= len(m.Edges) {
		return graph.Edge{}, false
	}
	return m.Edges[m.Cursor], true
}

func (m EdgeListModel) Init() tea.Cmd {
	return nil
}

func (m EdgeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case "enter", " ":
			m.Detail = !m.Detail
		case "c":
			for i, f := range edgeFilters {
				if f == m.Filter {
					m.Filter = edgeFilters[(i+1)%len(edgeFilters)]
					break
				}
			}
			m.applyFilter()
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}
	return m, nil
}

// move shifts the cursor by delta and scrolls the window to keep it visible.
func (m *EdgeListModel) move(delta int) {
	if len(m.Edges) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Edges)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m EdgeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edges"))
	b.WriteString(" ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d nodes · %d edges · %gx%g", len(m.Layout.Nodes), len(m.Layout.Edges), m.Layout.Width, m.Layout.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  c filter  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Edges))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		rows = append(rows, edgeRow(m.Edges[i], i == m.Cursor))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Edge", "Type", "Category", "Channels").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Edges) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 3 {
				base = categoryStyle(m.Edges[idx].Category)
			}
			if idx == m.Cursor {
				if col == 3 {
					return base.Bold(true)
				}
				return listCursorStyle
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	filter := m.Filter
	if filter == "" {
		filter = "all"
	}
	if len(m.Edges) == 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  no edges (%s)", filter)))
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.Cursor+1, len(m.Edges), filter)))
	}
	b.WriteString("\n")

	if e, ok := m.Selected(); ok && m.Detail {
		b.WriteString("\n")
		b.WriteString(edgeDetail(e))
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func edgeRow(e graph.Edge, current bool) []string {
	cursor := "  "
	if current {
		cursor = "▸ "
	}
	return []string{cursor, e.ID, e.Type.String(), e.Category.String(), formatChannels(e.Channels)}
}

// formatChannels renders the three lane slots, with "-" for unused ones.
func formatChannels(ch [3]int) string {
	parts := make([]string, len(ch))
	for i, c := range ch {
		if c < 0 {
			parts[i] = "-"
		} else {
			parts[i] = strconv.Itoa(c)
		}
	}
	return strings.Join(parts, "/")
}

func categoryStyle(k layout.Kind) lipgloss.Style {
	if k == layout.Service {
		return serviceStyle
	}
	return contextStyle
}

func edgeDetail(e graph.Edge) string {
	lines := []string{
		styleKey.Render("from") + " " + StyleValue.Render(e.From),
		styleKey.Render("to") + " " + StyleValue.Render(e.To),
		styleKey.Render("path") + " " + listDimStyle.Render(e.Path),
	}
	return strings.Join(lines, "\n") + "\n"
}

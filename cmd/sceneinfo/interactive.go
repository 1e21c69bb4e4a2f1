package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/scene-bridge/scene"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// runInteractive opens a node-hierarchy browser over an imported scene. The
// scene handle stays owned by the caller; the browser only reads it.
func runInteractive(sc *scene.Scene, filename string) error {
	m := newBrowserModel(sc, filename)
	_, err := tea.NewProgram(m).Run()
	return err
}

type nodeEntry struct {
	node  scene.Node
	depth int
}

type browserModel struct {
	sc       *scene.Scene
	filename string
	entries  []nodeEntry // full flattened hierarchy, preorder
	visible  []int       // indices into entries after filtering
	selected int
	filter   textinput.Model
	filterOn bool
}

func newBrowserModel(sc *scene.Scene, filename string) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "node name"
	ti.Prompt = "/"
	ti.Width = 30

	m := &browserModel{
		sc:       sc,
		filename: filename,
		filter:   ti,
	}
	m.flatten(sc.RootNode(), 0)
	m.applyFilter("")
	return m
}

func (m *browserModel) flatten(n scene.Node, depth int) {
	m.entries = append(m.entries, nodeEntry{node: n, depth: depth})
	for _, c := range n.Children() {
		m.flatten(c, depth+1)
	}
}

func (m *browserModel) applyFilter(query string) {
	m.visible = m.visible[:0]
	query = strings.ToLower(query)
	for i, e := range m.entries {
		if query == "" || strings.Contains(strings.ToLower(e.node.Name()), query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filterOn {
			switch msg.String() {
			case "enter", "esc":
				m.filterOn = false
				m.filter.Blur()
				if msg.String() == "esc" {
					m.filter.SetValue("")
					m.applyFilter("")
				}
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter(m.filter.Value())
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			m.filterOn = true
			m.filter.Focus()

		case "esc":
			m.filter.SetValue("")
			m.applyFilter("")
		}
	}
	return m, nil
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Scene: " + m.filename))
	b.WriteString("\n\n")

	for pos, idx := range m.visible {
		e := m.entries[idx]
		line := strings.Repeat("  ", e.depth) + e.node.Name()
		if pos == m.selected {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(nodeStyle.Render(line))
		}
		b.WriteByte('\n')
	}
	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  no nodes match"))
		b.WriteByte('\n')
	}

	if len(m.visible) > 0 {
		e := m.entries[m.visible[m.selected]]
		b.WriteByte('\n')
		b.WriteString(detailStyle.Render(m.detail(e.node)))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.filterOn {
		b.WriteString(m.filter.View())
	} else {
		b.WriteString(helpStyle.Render("j/k: move   /: filter   esc: clear   q: quit"))
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *browserModel) detail(n scene.Node) string {
	parts := []string{
		fmt.Sprintf("children: %d", n.NumChildren()),
	}
	if idx := n.MeshIndices(); len(idx) > 0 {
		var names []string
		for _, i := range idx {
			mesh := m.sc.Mesh(int(i))
			names = append(names, fmt.Sprintf("%s (%d verts)", mesh.Name(), mesh.NumVertices()))
		}
		parts = append(parts, "meshes: "+strings.Join(names, ", "))
	}
	if parent, ok := n.Parent(); ok {
		parts = append(parts, "parent: "+parent.Name())
	}
	return strings.Join(parts, "   ")
}

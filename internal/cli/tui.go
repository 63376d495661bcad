package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/buildgraph/bzlgen/pkg/project"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// ArtifactPickerModel is the bubbletea model for interactive artifact
// selection in pin. The user toggles artifacts with space and confirms
// with enter; Chosen is nil if the picker was aborted.
type ArtifactPickerModel struct {
	Artifacts []project.Artifact
	Cursor    int
	Checked   map[int]bool
	Chosen    []project.Artifact
	confirmed bool
}

// NewArtifactPickerModel creates a picker with every artifact
// pre-selected, since pinning all unpinned artifacts is the common case.
func NewArtifactPickerModel(artifacts []project.Artifact) ArtifactPickerModel {
	checked := make(map[int]bool, len(artifacts))
	for i := range artifacts {
		checked[i] = true
	}
	return ArtifactPickerModel{Artifacts: artifacts, Checked: checked}
}

func (m ArtifactPickerModel) Init() tea.Cmd {
	return nil
}

func (m ArtifactPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Artifacts)-1 {
				m.Cursor++
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			for i := range m.Artifacts {
				m.Checked[i] = true
			}
		case "n":
			for i := range m.Artifacts {
				m.Checked[i] = false
			}
		case "enter":
			m.confirmed = true
			for i, a := range m.Artifacts {
				if m.Checked[i] {
					m.Chosen = append(m.Chosen, a)
				}
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ArtifactPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Artifacts to Pin"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  n none  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	for i, a := range m.Artifacts {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.Checked[i] {
			check = StyleSuccess.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %-25s  %s", cursor, check, a.Name, listDimStyle.Render(a.Coordinate))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	selected := 0
	for _, on := range m.Checked {
		if on {
			selected++
		}
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d of %d selected", selected, len(m.Artifacts))))

	return b.String()
}

// pickArtifacts runs the interactive picker and returns the chosen
// artifacts. Returns nil with no error when the user aborts.
func pickArtifacts(artifacts []project.Artifact) ([]project.Artifact, error) {
	model, err := tea.NewProgram(NewArtifactPickerModel(artifacts)).Run()
	if err != nil {
		return nil, fmt.Errorf("interactive selection: %w", err)
	}
	picker := model.(ArtifactPickerModel)
	if !picker.confirmed {
		return nil, nil
	}
	return picker.Chosen, nil
}

package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/buildgraph/bzlgen/pkg/project"
)

func pickerArtifacts() []project.Artifact {
	return []project.Artifact{
		{Name: "guava", Coordinate: "com.google.guava:guava"},
		{Name: "scalaz", Coordinate: "org.scalaz:scalaz-core_2.11"},
		{Name: "config", Coordinate: "com.typesafe:config"},
	}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestArtifactPickerDefaultsToAllSelected(t *testing.T) {
	m := NewArtifactPickerModel(pickerArtifacts())

	updated, _ := m.Update(key("enter"))
	picker := updated.(ArtifactPickerModel)

	if len(picker.Chosen) != 3 {
		t.Errorf("Chosen = %d artifacts, want all 3", len(picker.Chosen))
	}
}

func TestArtifactPickerToggle(t *testing.T) {
	m := NewArtifactPickerModel(pickerArtifacts())

	// Deselect the first artifact, then confirm.
	updated, _ := m.Update(key(" "))
	updated, _ = updated.(ArtifactPickerModel).Update(key("enter"))
	picker := updated.(ArtifactPickerModel)

	if len(picker.Chosen) != 2 {
		t.Fatalf("Chosen = %d artifacts, want 2", len(picker.Chosen))
	}
	for _, a := range picker.Chosen {
		if a.Name == "guava" {
			t.Error("deselected artifact should not be chosen")
		}
	}
}

func TestArtifactPickerNavigation(t *testing.T) {
	m := NewArtifactPickerModel(pickerArtifacts())

	updated, _ := m.Update(key("j"))
	updated, _ = updated.(ArtifactPickerModel).Update(key("j"))
	picker := updated.(ArtifactPickerModel)
	if picker.Cursor != 2 {
		t.Errorf("Cursor = %d after two downs, want 2", picker.Cursor)
	}

	// Cursor clamps at the end of the list.
	updated, _ = picker.Update(key("j"))
	picker = updated.(ArtifactPickerModel)
	if picker.Cursor != 2 {
		t.Errorf("Cursor = %d, should clamp at last item", picker.Cursor)
	}
}

func TestArtifactPickerSelectNone(t *testing.T) {
	m := NewArtifactPickerModel(pickerArtifacts())

	updated, _ := m.Update(key("n"))
	updated, _ = updated.(ArtifactPickerModel).Update(key("enter"))
	picker := updated.(ArtifactPickerModel)

	if len(picker.Chosen) != 0 {
		t.Errorf("Chosen = %d artifacts after select-none, want 0", len(picker.Chosen))
	}
	if !picker.confirmed {
		t.Error("enter should confirm even with nothing selected")
	}
}

func TestArtifactPickerAbort(t *testing.T) {
	m := NewArtifactPickerModel(pickerArtifacts())

	updated, cmd := m.Update(key("esc"))
	picker := updated.(ArtifactPickerModel)

	if picker.confirmed {
		t.Error("esc should not confirm the selection")
	}
	if cmd == nil {
		t.Error("esc should quit the program")
	}
}

func TestArtifactPickerView(t *testing.T) {
	view := NewArtifactPickerModel(pickerArtifacts()).View()

	for _, want := range []string{"guava", "scalaz", "config", "3 of 3 selected"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

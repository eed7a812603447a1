package cli

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/circos/pkg/core/render/chord"
	"github.com/matzehuels/circos/pkg/scene"
)

func inspectScene() scene.Scene {
	return scene.Scene{
		Sectors: []scene.Sector{
			{ID: "A", Size: 100, Start: 0, End: math.Pi / 2, Fill: "#ff0000"},
			{ID: "B", Label: "Beta", Size: 300, Start: math.Pi / 2, End: 2 * math.Pi},
			{ID: "C", Size: 10, Start: 2 * math.Pi, End: 2 * math.Pi},
		},
		Links: []chord.Link{
			{From: "A", To: "B", Count: 2},
			{From: "C", To: "A", Count: 1},
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewInspectModel(t *testing.T) {
	m := newInspectModel("test", inspectScene())
	if len(m.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(m.rows))
	}

	a := m.rows[0]
	if math.Abs(a.WidthDeg-90) > 1e-9 || math.Abs(a.EndDeg-90) > 1e-9 {
		t.Errorf("A spans %g° ending at %g°, want 90°", a.WidthDeg, a.EndDeg)
	}
	if a.Links != 3 {
		t.Errorf("A links = %d, want 3", a.Links)
	}
	if len(a.Partners) != 2 || !strings.HasPrefix(a.Partners[0], "B") || !strings.HasPrefix(a.Partners[1], "C") {
		t.Errorf("A partners = %v", a.Partners)
	}
	if m.rows[1].Links != 2 || m.rows[2].Links != 1 {
		t.Errorf("link counts B=%d C=%d", m.rows[1].Links, m.rows[2].Links)
	}
}

func TestInspectModelNavigation(t *testing.T) {
	var model tea.Model = newInspectModel("test", inspectScene())

	for _, k := range []string{"down", "j", "down"} {
		model, _ = model.Update(key(k))
	}
	if got := model.(inspectModel).cursor; got != 2 {
		t.Errorf("cursor = %d after moving past the end, want 2", got)
	}
	for _, k := range []string{"up", "k", "k"} {
		model, _ = model.Update(key(k))
	}
	if got := model.(inspectModel).cursor; got != 0 {
		t.Errorf("cursor = %d after moving past the start, want 0", got)
	}

	model, _ = model.Update(key("down"))
	model, _ = model.Update(key("enter"))
	view := model.View()
	if !model.(inspectModel).detail {
		t.Fatal("enter should open the detail view")
	}
	if !strings.Contains(view, "Beta") {
		t.Error("detail view should show the label of the selected sector")
	}
	if !strings.Contains(view, "[2/3]") {
		t.Error("view should show the position")
	}

	model, cmd := model.Update(key("q"))
	if cmd == nil {
		t.Error("q should return a quit command")
	}
	if model.View() != "" {
		t.Error("view after quitting should be empty")
	}
}

func TestInspectModelScroll(t *testing.T) {
	var model tea.Model = newInspectModel("test", inspectScene())
	model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	m := model.(inspectModel)
	if m.height != 5 {
		t.Errorf("height = %d, want the minimum of 5", m.height)
	}

	m.height = 1
	model = m
	model, _ = model.Update(key("down"))
	model, _ = model.Update(key("down"))
	if got := model.(inspectModel).offset; got != 2 {
		t.Errorf("offset = %d, want 2", got)
	}
}

func TestInspectTable(t *testing.T) {
	m := newInspectModel("test", inspectScene())
	out := m.table(false).Render()
	for _, want := range []string{"Sector", "A", "B", "C", "90.00°"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/circos/pkg/scene"
)

const cliFigure = `
[canvas]
size = 300

[[sectors]]
id = "A"
size = 100

[[sectors]]
id = "B"
size = 200

[[chords]]
a = { sector = "A", start = 0, end = 10, height = 500 }
b = { sector = "B", start = 0, end = 10, height = 500 }
`

// execute runs the root command with a config directory that has no file.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeFigure(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "figure.toml")
	if err := os.WriteFile(path, []byte(cliFigure), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func TestRootCommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"layout", "render", "visualize", "inspect", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("root is missing %q", name)
		}
	}
}

func TestLayoutThenVisualize(t *testing.T) {
	dir, fig := writeFigure(t)

	if err := execute(t, "layout", fig, "--no-cache", "--width", "500"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	layoutPath := filepath.Join(dir, "figure.layout.json")
	s, err := scene.ReadSceneFile(layoutPath)
	if err != nil {
		t.Fatalf("read scene: %v", err)
	}
	if s.Size != 500 || len(s.Sectors) != 2 {
		t.Errorf("scene size %g with %d sectors", s.Size, len(s.Sectors))
	}

	if err := execute(t, "visualize", layoutPath, "--no-cache", "-f", "svg,dot"); err != nil {
		t.Fatalf("visualize: %v", err)
	}
	svg, err := os.ReadFile(filepath.Join(dir, "figure.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `data-sector="B"`) {
		t.Error("svg is missing sector B")
	}
	if _, err := os.Stat(filepath.Join(dir, "figure.dot")); err != nil {
		t.Errorf("dot output: %v", err)
	}
}

func TestRenderCommand(t *testing.T) {
	dir, fig := writeFigure(t)
	out := filepath.Join(dir, "plot.svg")

	if err := execute(t, "render", fig, "-o", out, "--background", "black"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "#000000") {
		t.Error("background override not applied")
	}

	if err := execute(t, "render", fig, "-f", "gif"); err == nil {
		t.Error("unknown format should fail")
	}
	if err := execute(t, "render", filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing figure should fail")
	}
}

func TestInspectPlain(t *testing.T) {
	_, fig := writeFigure(t)
	if err := execute(t, "inspect", fig, "--plain", "--no-cache"); err != nil {
		t.Fatalf("inspect: %v", err)
	}
}

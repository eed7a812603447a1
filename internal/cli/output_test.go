package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "figure.toml", "figure"},
		{"", "dir/figure.layout.json", "dir/figure"},
		{"out.svg", "figure.toml", "out"},
		{"out.links.svg", "figure.toml", "out"},
		{"out.layout.json", "figure.toml", "out"},
		{"out", "figure.toml", "out"},
		{"out.txt", "figure.toml", "out.txt"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	got := outputPaths([]string{"svg", "links", "png"}, "figure.toml", "")
	want := map[string]string{
		"svg":   "figure.svg",
		"links": "figure.links.svg",
		"png":   "figure.png",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outputPaths() mismatch (-want +got):\n%s", diff)
	}

	got = outputPaths([]string{"svg"}, "figure.toml", "exact.image")
	if got["svg"] != "exact.image" {
		t.Errorf("single format should use the exact output, got %q", got["svg"])
	}

	got = outputPaths([]string{"svg", "pdf"}, "figure.toml", "out/plot.svg")
	if got["pdf"] != "out/plot.pdf" {
		t.Errorf("pdf path = %q, want out/plot.pdf", got["pdf"])
	}
}

func TestParseFormats(t *testing.T) {
	if diff := cmp.Diff([]string{"svg", "png"}, parseFormats("svg, png", nil)); diff != "" {
		t.Errorf("parseFormats() mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"pdf"}, parseFormats("", []string{"pdf"})); diff != "" {
		t.Errorf("fallback mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"svg"}, parseFormats("", nil)); diff != "" {
		t.Errorf("default mismatch:\n%s", diff)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>"), "dot": []byte("graph {}")},
		formats:   []string{"svg", "dot"},
		input:     filepath.Join(dir, "figure.toml"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	for name, want := range map[string]string{"figure.svg": "<svg/>", "figure.dot": "graph {}"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("read %s: %v", name, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", name, data, want)
		}
	}
}

package pipeline

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/circos/pkg/core/render/chord"
	"github.com/matzehuels/circos/pkg/errors"
	"github.com/matzehuels/circos/pkg/figure"
	"github.com/matzehuels/circos/pkg/scene"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"links", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats() = %v, want INVALID_FORMAT", err)
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		render bool
		want   errors.Code
	}{
		{"zero layout", Options{}, false, ""},
		{"negative width", Options{Width: -1}, false, errors.ErrCodeInvalidRange},
		{"margin too wide", Options{Width: 100, Margin: 50}, false, errors.ErrCodeInvalidRange},
		{"zero render", Options{}, true, ""},
		{"bad format", Options{Formats: []string{"gif"}}, true, errors.ErrCodeInvalidFormat},
		{"scale too large", Options{Scale: 100}, true, errors.ErrCodeInvalidRange},
		{"bad background", Options{Background: "#12"}, true, errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.render {
				err = tt.opts.ValidateForRender()
			} else {
				err = tt.opts.ValidateForLayout()
			}
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("code = %q, want %q (err %v)", got, tt.want, err)
			}
			if tt.opts.Logger == nil {
				t.Error("Logger should be defaulted")
			}
		})
	}
}

func TestSetRenderDefaults(t *testing.T) {
	var o Options
	o.SetRenderDefaults()
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", o.Scale, DefaultScale)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Scale: 3, Native: true, Background: "white"}
	if k := o.ArtifactKeyOpts(FormatSVG); k.Scale != 0 || k.Native {
		t.Errorf("svg key carries png options: %+v", k)
	}
	if k := o.ArtifactKeyOpts(FormatPNG); k.Scale != 3 || !k.Native || k.Background != "white" {
		t.Errorf("png key = %+v", k)
	}
}

// =============================================================================
// Layout and render
// =============================================================================

func intp(v int) *int { return &v }

func testFigure() *figure.Figure {
	return &figure.Figure{
		Canvas: figure.Canvas{Size: 400, Background: "white"},
		Sectors: []figure.Sector{
			{ID: "A", Size: intp(100)},
			{ID: "B", Size: intp(300)},
		},
		Chords: []figure.Chord{
			{A: chord.Anchor{Sector: "A", End: 10, Height: 500}, B: chord.Anchor{Sector: "B", End: 10, Height: 500}},
		},
	}
}

func TestGenerateLayout(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateForLayout(); err != nil {
		t.Fatal(err)
	}
	s, err := GenerateLayout(testFigure(), opts)
	if err != nil {
		t.Fatalf("GenerateLayout() error: %v", err)
	}
	if s.Size != 400 {
		t.Errorf("Size = %v, want figure canvas 400", s.Size)
	}
	if s.RMax != 1000 {
		t.Errorf("RMax = %v, want default 1000", s.RMax)
	}
	if len(s.Sectors) != 2 || s.Sectors[0].ID != "A" {
		t.Errorf("Sectors = %+v", s.Sectors)
	}
	if len(s.Links) != 1 || s.Links[0] != (chord.Link{From: "A", To: "B", Count: 1}) {
		t.Errorf("Links = %+v", s.Links)
	}
	if len(s.Items) == 0 {
		t.Error("expected recorded primitives")
	}

	opts.Width = 800
	s, err = GenerateLayout(testFigure(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size != 800 {
		t.Errorf("Size = %v, want option override 800", s.Size)
	}
}

func TestGenerateLayoutErrors(t *testing.T) {
	wide := 200.0
	fig := testFigure()
	for i := range fig.Sectors {
		fig.Sectors[i].Interspace = &wide
	}
	opts := Options{}
	_ = opts.ValidateForLayout()
	if _, err := GenerateLayout(fig, opts); !errors.Is(err, errors.ErrCodeLayoutOverflow) {
		t.Errorf("GenerateLayout() = %v, want LAYOUT_OVERFLOW", err)
	}

	fig = testFigure()
	fig.Chords[0].B.Sector = "C"
	if _, err := GenerateLayout(fig, opts); !errors.Is(err, errors.ErrCodeUnknownSector) {
		t.Errorf("GenerateLayout() = %v, want UNKNOWN_SECTOR", err)
	}
}

func TestRender(t *testing.T) {
	opts := Options{}
	_ = opts.ValidateForLayout()
	s, err := GenerateLayout(testFigure(), opts)
	if err != nil {
		t.Fatal(err)
	}

	opts.Formats = []string{FormatSVG, FormatJSON, FormatDOT, FormatPNG}
	opts.Native = true
	opts.Background = "black"
	if err := opts.ValidateForRender(); err != nil {
		t.Fatal(err)
	}
	artifacts, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	svg := string(artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("svg does not start with <svg: %.40q", svg)
	}
	if !strings.Contains(svg, `data-sector="A"`) {
		t.Error("svg wedges should carry sector ids")
	}
	if !strings.Contains(svg, `fill="#000000"`) {
		t.Error("background option should override the scene background")
	}

	back, err := scene.UnmarshalScene(artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("json artifact does not parse: %v", err)
	}
	if back.Background != "white" {
		t.Errorf("json scene background = %q, want the scene's own", back.Background)
	}

	if dot := string(artifacts[FormatDOT]); !strings.Contains(dot, `"A" -- "B"`) {
		t.Errorf("dot missing edge:\n%s", dot)
	}

	if !bytes.HasPrefix(artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact is not a PNG")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	s := scene.Scene{Sectors: []scene.Sector{{ID: "A", Size: 10}}}
	_, err := Render(context.Background(), s, Options{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render() = %v, want INVALID_FORMAT", err)
	}
	if err == nil || !strings.HasPrefix(err.Error(), "render gif:") {
		t.Errorf("error should name the format: %v", err)
	}
}

// =============================================================================
// Runner
// =============================================================================

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func TestRunnerExecuteCaches(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	ctx := context.Background()
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, testFigure(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run CacheInfo = %+v, want misses", first.CacheInfo)
	}
	if first.Stats.SectorCount != 2 || first.Stats.LinkCount != 1 {
		t.Errorf("Stats = %+v", first.Stats)
	}
	if first.SceneHash == "" {
		t.Error("SceneHash should be set")
	}
	if mc.sets != 3 {
		t.Errorf("cache writes = %d, want 3 (scene + 2 artifacts)", mc.sets)
	}

	second, err := r.Execute(ctx, testFigure(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want hits", second.CacheInfo)
	}
	if second.SceneHash != first.SceneHash {
		t.Errorf("SceneHash changed across cache round trip: %s != %s", second.SceneHash, first.SceneHash)
	}
	if !bytes.Equal(second.Artifacts[FormatSVG], first.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}

	// A different canvas is a different scene.
	opts.Width = 900
	third, err := r.Execute(ctx, testFigure(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("layout with new width should miss")
	}
}

func TestRunnerCorruptCacheEntry(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	ctx := context.Background()

	if _, err := r.GenerateLayout(ctx, testFigure(), Options{}); err != nil {
		t.Fatal(err)
	}
	for k := range mc.data {
		mc.data[k] = []byte("{not json")
	}
	s, hit, err := r.GenerateLayoutWithCacheInfo(ctx, testFigure(), Options{})
	if err != nil {
		t.Fatalf("corrupt entry should be recomputed: %v", err)
	}
	if hit {
		t.Error("corrupt entry should not count as a hit")
	}
	if len(s.Sectors) != 2 {
		t.Errorf("Sectors = %d, want 2", len(s.Sectors))
	}
}

func TestRunnerErrorsKeepCodes(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	fig := testFigure()
	fig.Sectors = append(fig.Sectors, figure.Sector{ID: "A", Size: intp(5)})

	_, err := r.Execute(context.Background(), fig, Options{})
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Errorf("Execute() = %v, want DUPLICATE_ID", err)
	}

	_, err = r.Execute(context.Background(), testFigure(), Options{Formats: []string{"bmp"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Execute() = %v, want INVALID_FORMAT", err)
	}
}

package server

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/matzehuels/circos/pkg/buildinfo"
	"github.com/matzehuels/circos/pkg/cache"
	"github.com/matzehuels/circos/pkg/errors"
	"github.com/matzehuels/circos/pkg/figure"
	"github.com/matzehuels/circos/pkg/pipeline"
	"github.com/matzehuels/circos/pkg/scene"
)

// layoutResponse is returned by POST /v1/layouts.
type layoutResponse struct {
	ID    string      `json:"id"`
	Scene scene.Scene `json:"scene"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

// handleCreateLayout solves the posted figure and stores the scene under a
// new id.
func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if cache.Disabled(s.runner.Cache) {
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "layout storage is disabled, post to /v1/render instead"))
		return
	}
	fig, err := s.readFigure(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := layoutOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	sc, err := s.runner.GenerateLayout(ctx, fig, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := scene.MarshalScene(sc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	id := uuid.NewString()
	if err := s.runner.Cache.Set(ctx, s.runner.Keyer.SceneKey(id), data, cache.SceneTTL); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "store scene"))
		return
	}
	w.Header().Set("Location", "/v1/layouts/"+id)
	writeJSON(w, http.StatusCreated, layoutResponse{ID: id, Scene: sc})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	sc, err := s.loadScene(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleRenderLayout(w http.ResponseWriter, r *http.Request) {
	sc, err := s.loadScene(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, sc)
}

// handleRenderFigure solves and renders the posted figure without storing it.
func (s *Server) handleRenderFigure(w http.ResponseWriter, r *http.Request) {
	fig, err := s.readFigure(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := layoutOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sc, err := s.runner.GenerateLayout(r.Context(), fig, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, sc)
}

// handleLayoutQR returns a PNG QR code pointing at the rendered SVG of a
// stored scene.
func (s *Server) handleLayoutQR(w http.ResponseWriter, r *http.Request) {
	if _, err := s.loadScene(r); err != nil {
		s.writeError(w, r, err)
		return
	}
	size := 256
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 64 || n > 2048 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidRange, "size must be 64..2048"))
			return
		}
		size = n
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	target := scheme + "://" + r.Host + "/v1/layouts/" + chi.URLParam(r, "id") + "/render?format=svg"
	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode qr"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

// render writes one artifact of sc in the format named by ?format.
func (s *Server) render(w http.ResponseWriter, r *http.Request, sc scene.Scene) {
	opts, err := renderOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, err := s.runner.Render(r.Context(), sc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	_, _ = w.Write(artifacts[format])
}

func (s *Server) readFigure(w http.ResponseWriter, r *http.Request) (*figure.Figure, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty request body")
	}
	return figure.Parse(data, figure.FormatFromContentType(r.Header.Get("Content-Type")))
}

func (s *Server) loadScene(r *http.Request) (scene.Scene, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return scene.Scene{}, errNotFound("layout %q not found", id)
	}
	data, hit, err := s.runner.Cache.Get(r.Context(), s.runner.Keyer.SceneKey(id))
	if err != nil {
		return scene.Scene{}, errors.Wrap(errors.ErrCodeInternal, err, "load scene")
	}
	if !hit {
		return scene.Scene{}, errNotFound("layout %q not found", id)
	}
	return scene.UnmarshalScene(data)
}

// layoutOptions reads width, margin, rmax, start and end query parameters.
func layoutOptions(q url.Values) (pipeline.Options, error) {
	var opts pipeline.Options
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"margin", &opts.Margin},
		{"rmax", &opts.RMax},
	} {
		if err := parseFloat(q, p.name, p.dst); err != nil {
			return opts, err
		}
	}
	for _, p := range []struct {
		name string
		dst  **float64
	}{
		{"start", &opts.StartDeg},
		{"end", &opts.EndDeg},
	} {
		if q.Get(p.name) == "" {
			continue
		}
		var v float64
		if err := parseFloat(q, p.name, &v); err != nil {
			return opts, err
		}
		*p.dst = &v
	}
	return opts, opts.ValidateForLayout()
}

// renderOptions reads format, scale, background and rsvg query parameters.
func renderOptions(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{Native: q.Get("rsvg") == "", Background: q.Get("background")}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	if err := parseFloat(q, "scale", &opts.Scale); err != nil {
		return opts, err
	}
	return opts, opts.ValidateForRender()
}

func parseFloat(q url.Values, name string, dst *float64) error {
	v := q.Get(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "query parameter %s", name)
	}
	*dst = f
	return nil
}

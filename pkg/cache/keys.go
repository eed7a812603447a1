package cache

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey addresses the scene computed from a figure.
	LayoutKey(figureHash string, opts LayoutKeyOpts) string
	// ArtifactKey addresses one rendered output of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
	// SceneKey addresses a scene stored under an id by the HTTP API.
	SceneKey(id string) string
}

// LayoutKeyOpts are the layout options that change a scene.
type LayoutKeyOpts struct {
	Width    float64  `json:"width"`
	Margin   float64  `json:"margin"`
	RMax     float64  `json:"rmax"`
	StartDeg *float64 `json:"start_deg,omitempty"`
	EndDeg   *float64 `json:"end_deg,omitempty"`
}

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Native     bool    `json:"native,omitempty"`
	Background string  `json:"background,omitempty"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(figureHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", figureHash, opts)
}

func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

func (DefaultKeyer) SceneKey(id string) string {
	return "scene:" + id
}

package canvas

// =============================================================================
// Style
// =============================================================================

// Style is the paint of a primitive. Colors are hex strings ("#rrggbb",
// "#rrggbbaa") or "none"; an empty color means "none".
type Style struct {
	Fill      string  `json:"fill,omitempty" bson:"fill,omitempty"`
	Edge      string  `json:"edge,omitempty" bson:"edge,omitempty"`
	LineWidth float64 `json:"line_width,omitempty" bson:"line_width,omitempty"`
}

// Stroked reports whether the style draws an outline.
func (s Style) Stroked() bool {
	return s.LineWidth > 0 && s.Edge != "" && s.Edge != "none"
}

// Filled reports whether the style paints an interior.
func (s Style) Filled() bool {
	return s.Fill != "" && s.Fill != "none"
}

// Draw layers. Lower layers are painted first.
const (
	LayerSpine  = 0
	LayerSector = 1
	LayerTrack  = 2
	LayerChord  = 3
	LayerLabel  = 4
)

// =============================================================================
// Polar
// =============================================================================

// Polar is a point in the figure's polar space: Theta in radians clockwise
// from twelve o'clock, R in radial units (0 at the center).
type Polar struct {
	Theta float64 `json:"theta" bson:"theta"`
	R     float64 `json:"r" bson:"r"`
}

// P is shorthand for Polar{theta, r}.
func P(theta, r float64) Polar { return Polar{Theta: theta, R: r} }

// =============================================================================
// Primitives
// =============================================================================

// Wedge is a polar bar: the annular sector spanning Width radians from Theta
// and Height radial units from Bottom.
type Wedge struct {
	Theta  float64 `json:"theta" bson:"theta"`
	Width  float64 `json:"width" bson:"width"`
	Bottom float64 `json:"bottom" bson:"bottom"`
	Height float64 `json:"height" bson:"height"`
	Style  Style   `json:"style" bson:"style"`
	Layer  int     `json:"layer,omitempty" bson:"layer,omitempty"`
	// ID names the sector or track the wedge belongs to, if any.
	ID string `json:"id,omitempty" bson:"id,omitempty"`
}

// Alignment values for Text.
const (
	AlignCenter = "center"
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignTop    = "top"
	AlignBottom = "bottom"
)

// Text is a label anchored at a polar position. Rotation is in degrees,
// counter-clockwise on screen, about the anchor.
type Text struct {
	Theta    float64 `json:"theta" bson:"theta"`
	R        float64 `json:"r" bson:"r"`
	Text     string  `json:"text" bson:"text"`
	Rotation float64 `json:"rotation" bson:"rotation"`
	// Size is the font size in points.
	Size   float64 `json:"size" bson:"size"`
	HAlign string  `json:"ha,omitempty" bson:"ha,omitempty"`
	VAlign string  `json:"va,omitempty" bson:"va,omitempty"`
	Color  string  `json:"color,omitempty" bson:"color,omitempty"`
	Layer  int     `json:"layer,omitempty" bson:"layer,omitempty"`
}

// Op is a path knot operation.
type Op string

const (
	OpMove  Op = "M"
	OpLine  Op = "L"
	OpQuad  Op = "Q"
	OpClose Op = "Z"
)

// Knot is one path command. Quad knots carry their control point in Ctrl;
// To is the end point for every op but Close.
type Knot struct {
	Op   Op     `json:"op" bson:"op"`
	Ctrl *Polar `json:"ctrl,omitempty" bson:"ctrl,omitempty"`
	To   Polar  `json:"to" bson:"to"`
}

// Path is a sequence of knots in polar space. Control points are mapped to
// Cartesian space point by point, so a quadratic knot stays a quadratic
// curve; straight segments follow the polar interpolation between their end
// points (arcs at constant radius, spokes at constant angle).
type Path struct {
	Knots []Knot `json:"knots" bson:"knots"`
	Style Style  `json:"style" bson:"style"`
	Layer int    `json:"layer,omitempty" bson:"layer,omitempty"`
	ID    string `json:"id,omitempty" bson:"id,omitempty"`
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(to Polar) { p.Knots = append(p.Knots, Knot{Op: OpMove, To: to}) }

// LineTo adds a polar straight segment.
func (p *Path) LineTo(to Polar) { p.Knots = append(p.Knots, Knot{Op: OpLine, To: to}) }

// QuadTo adds a quadratic Bezier with control point ctrl.
func (p *Path) QuadTo(ctrl, to Polar) {
	c := ctrl
	p.Knots = append(p.Knots, Knot{Op: OpQuad, Ctrl: &c, To: to})
}

// Close closes the current subpath.
func (p *Path) Close() { p.Knots = append(p.Knots, Knot{Op: OpClose}) }

// Marker is a circular dot. Size is the marker area in points squared.
type Marker struct {
	Theta float64 `json:"theta" bson:"theta"`
	R     float64 `json:"r" bson:"r"`
	Size  float64 `json:"size" bson:"size"`
	Style Style   `json:"style" bson:"style"`
	Layer int     `json:"layer,omitempty" bson:"layer,omitempty"`
}

// =============================================================================
// Backend
// =============================================================================

// Backend receives draw requests. Implementations are single-threaded and
// stateful: one surface per backend.
type Backend interface {
	Wedge(w Wedge) error
	Text(t Text) error
	Path(p Path) error
	Marker(m Marker) error
}

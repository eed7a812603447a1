// Package canvas defines the drawing contract between the layout engine and
// rendering backends.
//
// Renderers (sector arcs, chords, data tracks) emit primitives in polar
// figure coordinates through the [Backend] interface: [Wedge] for polar
// bars, [Text] for labels, [Path] for knot sequences and [Marker] for dots.
// A [Recorder] keeps them in call order so that one computed layout can be
// serialized and replayed into any number of sinks.
//
// [Projector] converts primitives to Cartesian outlines built from
// honnef.co/go/curve paths. Angles are radians clockwise from twelve o'clock;
// the canvas is y-down.
package canvas

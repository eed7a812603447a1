// Package nodelink draws the connectivity of a figure as a node-link graph
// using Graphviz.
//
// Every sector becomes a node filled with its sector color and every pair of
// sectors joined by chords becomes an undirected edge labeled with the
// number of chords. It answers "which sectors talk to each other, and how
// much" without the geometry of the circular figure:
//
//	Scene → FromScene() → Graph → ToDOT() → DOT → RenderSVG() → SVG
//
// # Layout Engines
//
// Graphviz provides several layout engines via the Engine option:
//
//   - circo: Circular (default), mirrors the sector order of the figure
//   - neato: Spring model
//   - fdp: Force-directed, for clustering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF conversion requires librsvg (rsvg-convert).
package nodelink

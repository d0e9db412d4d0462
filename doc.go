// Package gasket generates Apollonian gaskets: fractal packings of mutually
// tangent circles built by repeatedly applying Descartes' Circle Theorem.
//
// # Overview
//
// Three mutually tangent circles admit exactly two further circles tangent
// to all three. Their curvatures follow from Descartes' theorem and their
// centers from its complex extension. Adding either circle creates three new
// tangent triplets, and repeating the construction fills the outer circle.
//
// # Quick Start
//
//	import "github.com/gogpu/gasket"
//
//	seed, _ := gasket.CanvasSeed(960)
//	p, _ := gasket.New(seed)
//
//	// Each step subdivides every open triplet once
//	for !p.Done() {
//		stats, err := p.Step()
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Println(stats)
//	}
//
//	for _, c := range p.Circles() {
//		fmt.Println(c.Point(), c.Radius())
//	}
//
// # Pipeline
//
// Each frontier triplet goes through four pure stages:
//   - Descartes: the two real curvature solutions
//   - ComplexDescartes: both center branches for each curvature
//   - GenerateCircles: the four curvature/center combinations
//   - Validator: drops degenerate, duplicate and non-tangent candidates
//
// Packing owns the accepted circles and the frontier and runs the stages
// breadth first, one level per Step. There is no recursion, so deep packings
// do not grow the call stack.
//
// # Tolerances
//
// Floating point error accumulates with depth. The duplicate and tangency
// rules use epsilon = ratio × span, where span defaults to the diameter of
// the outer seed circle. The same seed at a different scale therefore yields
// the same packing. Branches end when candidates fall below the minimum
// radius, so every packing terminates.
//
// # Coordinate System
//
// Centers are complex numbers x + yi. The package has no notion of screen
// orientation; package draw maps circles to pixels with Y increasing down.
package gasket

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

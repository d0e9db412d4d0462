// Package draw renders an Apollonian gasket with gg.
//
// Circles come from a [gasket.Packing] as a read-only ordered list. A
// [Frame] maps gasket coordinates to pixels, a [Style] chooses colours,
// stroke width and curvature labels. Output goes to an in-memory image or
// PNG through [Renderer], or to SVG through [WriteSVG].
//
// # Quick Start
//
//	frame := draw.FrameOf(p)
//	r, err := draw.NewRenderer(960, 960, frame, draw.DefaultStyle())
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	if err := r.Render(p.Circles()); err != nil {
//	    return err
//	}
//	return r.SavePNG("gasket.png")
//
// A Renderer is not safe for concurrent use.
package draw

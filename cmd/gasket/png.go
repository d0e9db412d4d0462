package main

import (
	"errors"
	"io"

	"github.com/gogpu/gasket"
	"github.com/gogpu/gasket/draw"
)

func renderPNG(w io.Writer, size int, frame draw.Frame, style draw.Style, p *gasket.Packing) (err error) {
	r, err := draw.NewRenderer(size, size, frame, style)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, r.Close()) }()

	if err := r.Render(p.Circles()); err != nil {
		return err
	}
	return r.EncodePNG(w)
}

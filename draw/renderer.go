// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package draw

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gasket"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrInvalidSize is returned by NewRenderer for a non-positive target size
// or an empty frame.
var ErrInvalidSize = errors.New("draw: invalid size")

// Renderer paints circles into a gg.Context.
type Renderer struct {
	dc    *gg.Context
	frame Frame
	style Style
	scale float64

	font *text.FontSource
	face text.Face
}

// NewRenderer creates a width×height renderer. When style.Labels is set
// the Go Regular font is loaded once and kept until Close.
func NewRenderer(width, height int, frame Frame, style Style) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if !frame.valid() {
		return nil, fmt.Errorf("%w: frame span %v", ErrInvalidSize, frame.Span)
	}

	r := &Renderer{
		dc:    gg.NewContext(width, height),
		frame: frame,
		style: style,
		scale: frame.scale(width, height),
	}
	if style.Labels {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			_ = r.dc.Close()
			return nil, fmt.Errorf("draw: load label font: %w", err)
		}
		r.font = source
		r.face = source.Face(style.FontSize)
	}
	return r, nil
}

// Render clears the target and paints circles in order.
func (r *Renderer) Render(circles []gasket.Circle) error {
	dc := r.dc
	dc.ClearWithColor(r.style.Background)

	if r.style.Fill.A > 0 {
		for _, c := range circles {
			if c.IsBounding() {
				continue
			}
			dc.DrawCircle(r.frame.project(c, r.scale))
		}
		dc.SetFillBrush(gg.Solid(r.style.Fill))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("draw: fill: %w", err)
		}
	}

	if r.style.LineWidth > 0 {
		for _, c := range circles {
			dc.DrawCircle(r.frame.project(c, r.scale))
		}
		dc.SetStrokeBrush(gg.Solid(r.style.Stroke))
		dc.SetLineWidth(r.style.LineWidth)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("draw: stroke: %w", err)
		}
	}

	if r.face != nil {
		r.drawLabels(circles)
	}

	gasket.Logger().Debug("draw: rendered", "circles", len(circles), "labels", r.face != nil)
	return nil
}

// Image returns a copy of the rendered pixels.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// RGBA returns a copy of the rendered pixels in premultiplied RGBA order.
func (r *Renderer) RGBA() *image.RGBA {
	// Context.Image copies the pixmap into a fresh *image.RGBA.
	return r.dc.Image().(*image.RGBA)
}

// EncodePNG writes the rendered image as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the rendered image to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// Size returns the target size in pixels.
func (r *Renderer) Size() (width, height int) {
	return r.dc.Width(), r.dc.Height()
}

// Close releases the context and the label font.
func (r *Renderer) Close() error {
	err := r.dc.Close()
	if r.font != nil {
		err = errors.Join(err, r.font.Close())
		r.font = nil
		r.face = nil
	}
	return err
}

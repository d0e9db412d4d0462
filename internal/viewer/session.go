// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewer holds the window-independent state of the interactive
// viewer: a packing, its renderer and the cached frame.
package viewer

import (
	"image"
	"log/slog"

	"github.com/gogpu/gasket"
	"github.com/gogpu/gasket/draw"
)

// Session advances a packing on request and renders it lazily.
//
// A Session is driven from a single goroutine: the window's update and
// draw callbacks.
type Session struct {
	packing  *gasket.Packing
	renderer *draw.Renderer
	log      *slog.Logger

	frame   *image.RGBA
	dirty   bool
	version uint64
	last    gasket.StepStats
}

// NewSession wraps p and r. A nil logger uses gasket.Logger.
func NewSession(p *gasket.Packing, r *draw.Renderer, log *slog.Logger) *Session {
	if log == nil {
		log = gasket.Logger()
	}
	return &Session{
		packing:  p,
		renderer: r,
		log:      log,
		dirty:    true,
	}
}

// Advance runs one subdivision step. The frame is invalidated only when
// the step added circles.
func (s *Session) Advance() (gasket.StepStats, error) {
	if s.packing.Done() {
		s.log.Debug("viewer: packing already complete", "circles", s.packing.Len())
		return gasket.StepStats{Depth: s.packing.Depth(), Circles: s.packing.Len()}, nil
	}

	stats, err := s.packing.Step()
	if err != nil {
		return stats, err
	}
	s.last = stats
	if stats.Accepted > 0 {
		s.dirty = true
	}
	s.log.Info("viewer: advanced",
		"depth", stats.Depth,
		"accepted", stats.Accepted,
		"circles", stats.Circles)
	return stats, nil
}

// Frame returns the current image, rendering it first if the packing
// changed since the last call. The image must not be modified.
func (s *Session) Frame() (*image.RGBA, error) {
	if !s.dirty {
		return s.frame, nil
	}
	if err := s.renderer.Render(s.packing.Circles()); err != nil {
		return nil, err
	}
	s.frame = s.renderer.RGBA()
	s.dirty = false
	s.version++
	return s.frame, nil
}

// Version counts renders; it changes whenever Frame returns a new image.
func (s *Session) Version() uint64 {
	return s.version
}

// Size returns the frame size in pixels.
func (s *Session) Size() (width, height int) {
	return s.renderer.Size()
}

// Packing returns the underlying packing.
func (s *Session) Packing() *gasket.Packing {
	return s.packing
}

// LastStats returns the stats of the most recent step.
func (s *Session) LastStats() gasket.StepStats {
	return s.last
}

// Close releases the renderer.
func (s *Session) Close() error {
	return s.renderer.Close()
}

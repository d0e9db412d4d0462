// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build cgo

// Package window shows a viewer session in an ebiten window.
//
// The advance key subdivides the gasket once per release. Escape or
// closing the window quits.
package window

import (
	"fmt"

	"github.com/gogpu/gasket/internal/buildinfo"
	"github.com/gogpu/gasket/internal/viewer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keys = map[string]ebiten.Key{
	"space": ebiten.KeySpace,
	"enter": ebiten.KeyEnter,
	"n":     ebiten.KeyN,
	"right": ebiten.KeyArrowRight,
	"tab":   ebiten.KeyTab,
}

// Run opens the window and blocks until it closes.
func Run(s *viewer.Session, opts Options) error {
	key, ok := keys[opts.AdvanceKey]
	if !ok {
		return fmt.Errorf("window: unknown advance key %q", opts.AdvanceKey)
	}
	w, h := s.Size()

	g := &game{session: s, key: key, width: w, height: h}
	ebiten.SetWindowTitle(opts.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(g)
}

type game struct {
	session *viewer.Session
	key     ebiten.Key

	width, height int
	img           *ebiten.Image
	version       uint64
	err           error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustReleased(g.key) {
		if _, err := g.session.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame, err := g.session.Frame()
	if err != nil {
		// Draw cannot fail; Update reports it on the next tick.
		g.err = err
		return
	}
	if g.img == nil {
		g.img = ebiten.NewImage(g.width, g.height)
	}
	if v := g.session.Version(); v != g.version {
		g.img.WritePixels(frame.Pix)
		g.version = v
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

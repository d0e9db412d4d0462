package main

import (
	"errors"

	"github.com/gogpu/gasket/draw"
	"github.com/gogpu/gasket/internal/viewer"
	"github.com/gogpu/gasket/internal/window"
	"github.com/spf13/cobra"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer",
		Long:  `Opens a window with the seed circles; every press of the advance key (Space by default) adds one subdivision step. Escape quits.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runView()
		},
	}
}

func (a *app) runView() (err error) {
	p, err := a.cfg.NewPacking()
	if err != nil {
		return err
	}
	size := a.cfg.Canvas
	r, err := draw.NewRenderer(size, size, draw.FrameOf(p), a.cfg.DrawStyle())
	if err != nil {
		return err
	}

	s := viewer.NewSession(p, r, a.log)
	defer func() { err = errors.Join(err, s.Close()) }()

	return window.Run(s, window.Options{
		Title:      a.cfg.Window.Title,
		TPS:        a.cfg.Window.TPS,
		AdvanceKey: a.cfg.Window.AdvanceKey,
	})
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gasket/draw"
	"github.com/spf13/cobra"
)

var errUnknownFormat = errors.New("unknown output format")

func newRenderCmd(a *app) *cobra.Command {
	var (
		steps  int
		out    string
		labels bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gasket to a PNG or SVG file",
		Long:  `Subdivides the packing headless and writes the result. The format follows the file extension (.png or .svg).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Steps
			}
			if cmd.Flags().Changed("labels") {
				a.cfg.Style.Labels = labels
			}
			return a.runRender(cmd, steps, out)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "Number of steps (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "gasket.png", "Output file (.png or .svg)")
	cmd.Flags().BoolVar(&labels, "labels", false, "Print normalised curvatures inside circles")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, steps int, out string) error {
	ext := strings.ToLower(filepath.Ext(out))
	if ext != ".png" && ext != ".svg" {
		return fmt.Errorf("%w %q (want .png or .svg)", errUnknownFormat, ext)
	}

	p, err := a.cfg.NewPacking()
	if err != nil {
		return err
	}
	if _, err := p.Steps(steps); err != nil {
		return err
	}

	size := a.cfg.Canvas
	frame := draw.FrameOf(p)
	style := a.cfg.DrawStyle()

	f, err := os.Create(out) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	switch ext {
	case ".svg":
		err = draw.WriteSVG(f, size, size, frame, style, p.Circles())
	default:
		err = renderPNG(f, size, frame, style, p)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", out, err)
	}

	a.log.Info("rendered", "out", out, "circles", p.Len(), "depth", p.Depth())
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d circles, depth %d)\n", out, p.Len(), p.Depth())
	return nil
}

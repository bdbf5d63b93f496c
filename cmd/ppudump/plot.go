package main

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-ppu/internal/ppu"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotDrawingDots plots the length of mode 3 for every visible line.
func plotDrawingDots(filename string, stats ppu.Stats) error {
	p := plot.New()
	p.Title.Text = "Mode 3 length"
	p.X.Label.Text = "LY"
	p.Y.Label.Text = "Dots"
	p.Y.Min = 160

	points := make(plotter.XYs, len(stats.DrawingDots))
	for i, dots := range stats.DrawingDots {
		points[i].X = float64(i)
		points[i].Y = float64(dots)
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("plotting %s: %w", filename, err)
	}
	return nil
}

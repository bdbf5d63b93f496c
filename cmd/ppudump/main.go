// Command ppudump renders frames headlessly, either from a built-in
// test pattern or from a saved state, and writes the result as an
// image along with the hash of every frame.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/thelolagemann/gomeboy-ppu/internal/io"
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu"
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
	"github.com/thelolagemann/gomeboy-ppu/pkg/log"
	"github.com/thelolagemann/gomeboy-ppu/pkg/utils"
)

const statsAddress = "localhost:12600"

func main() {
	asModel := flag.String("model", "dmg", "The model to emulate. Can be dmg, dmg0, cgb or cgb0")
	state := flag.String("state", "", "The state file to load instead of the test pattern")
	frames := flag.Int("frames", 1, "The number of frames to render")
	out := flag.String("out", "frame.png", "The image to write the last frame to (.png or .bmp)")
	scale := flag.Int("scale", 1, "The factor to scale the image by")
	shades := flag.String("palette", "greyscale", "The DMG palette. Can be greyscale, green, red or yellow")
	saveState := flag.String("save-state", "", "The file to save the state to after rendering (.br, .gz or raw)")
	plotFile := flag.String("plot", "", "The file to plot mode 3 durations of the last frame to (.png or .svg)")
	stats := flag.Bool("statsview", false, "Serve runtime stats on "+statsAddress+" while rendering")
	level := flag.String("log", "info", "The log level. Can be debug, info or error")
	flag.Parse()

	logger, err := log.NewWithLevel(os.Stderr, *level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(logger, options{
		model:     *asModel,
		state:     *state,
		frames:    *frames,
		out:       *out,
		scale:     *scale,
		palette:   *shades,
		saveState: *saveState,
		plot:      *plotFile,
		stats:     *stats,
	}); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

type options struct {
	model     string
	state     string
	frames    int
	out       string
	scale     int
	palette   string
	saveState string
	plot      string
	stats     bool
}

func run(logger log.Logger, o options) error {
	model := types.StringToModel(o.model)
	if model == types.Unset {
		return fmt.Errorf("unknown model %q", o.model)
	}
	shades, ok := palette.ByName(o.palette)
	if !ok {
		return fmt.Errorf("unknown palette %q", o.palette)
	}

	p := ppu.New(
		ppu.WithModel(model),
		ppu.WithLogger(logger),
		ppu.WithShades(shades),
	)
	bus := io.NewBus(p, logger)

	if o.state != "" {
		data, err := utils.LoadFile(o.state)
		if err != nil {
			return err
		}
		s := types.StateFromBytes(data)
		bus.Load(s)
		if err := s.Err(); err != nil {
			return fmt.Errorf("loading state %s: %w", o.state, err)
		}
		logger.Infof("loaded %s (LY %d, frame %d)", o.state, p.LY(), p.Frame())
	} else {
		buildScene(bus, model.IsCGB())
	}

	if o.stats {
		viewer.SetConfiguration(viewer.WithAddr(statsAddress))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		logger.Infof("stats server available at %s/debug/statsview", statsAddress)
	}

	var last uint64
	unique := 0
	for f := 0; f < o.frames; f++ {
		if o.state == "" {
			bus.Write(types.SCX, uint8(f))
		}
		bus.Tick(ppu.DotsPerFrame / io.DotsPerMCycle)

		if hash := p.FrameHash(); f == 0 || hash != last {
			unique++
			last = hash
			logger.Debugf("frame %d: %016x", f, hash)
		}
	}

	fmt.Printf("%d frames (%d unique), last %016x\n", o.frames, unique, last)
	if hits := p.Stats().FailsafeHits; hits > 0 {
		logger.Infof("mode 3 was cut short on %d lines", hits)
	}

	if o.out != "" {
		if err := utils.SaveImage(o.out, utils.ScaleImage(p.Image(), o.scale)); err != nil {
			return err
		}
	}

	if o.plot != "" {
		if err := plotDrawingDots(o.plot, p.Stats()); err != nil {
			return err
		}
	}

	if o.saveState != "" {
		s := types.NewState()
		bus.Save(s)
		if err := utils.SaveFile(o.saveState, s.Bytes()); err != nil {
			return fmt.Errorf("saving state %s: %w", o.saveState, err)
		}
		logger.Infof("saved state to %s", o.saveState)
	}

	return nil
}

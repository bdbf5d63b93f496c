package ppu

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
	"github.com/thelolagemann/gomeboy-ppu/pkg/log"
	"github.com/thelolagemann/gomeboy-ppu/pkg/utils"
)

// Opt is a function that configures the PPU.
type Opt func(p *PPU)

// WithModel sets the model to emulate. CGB models render through
// palette RAM and have two VRAM banks.
func WithModel(model types.Model) Opt {
	return func(p *PPU) {
		if model == types.Unset {
			model = types.DMGABC
		}
		p.model = model
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l log.Logger) Opt {
	return func(p *PPU) {
		p.log = l
	}
}

// WithShades sets the four RGB shades used to resolve DMG palettes.
func WithShades(shades palette.Palette) Opt {
	return func(p *PPU) {
		p.shades = shades
	}
}

// WithFailsafeBudget sets the line dot at which an unfinished pixel
// transfer is cut short. It is kept between the end of the longest
// legal pixel transfer and the last dot of the line, so HBlank always
// lasts at least one dot.
func WithFailsafeBudget(dot int) Opt {
	return func(p *PPU) {
		p.failsafe = utils.Clamp(oamScanDots+maxDrawingDots, dot, DotsPerLine-1)
	}
}

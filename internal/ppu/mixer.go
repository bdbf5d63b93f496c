package ppu

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// linePixel is a mixed pixel waiting to be resolved to RGB when the
// line enters HBlank.
type linePixel struct {
	colour  uint8 // colour index (0-3)
	object  bool  // sourced from an object rather than the BG/window
	attr    uint8 // OAM attributes when object is set
	palette uint8 // CGB background palette (0-7)
}

// mixer is the model specific half of the pixel pipeline, chosen once
// when the PPU is created.
type mixer interface {
	// background produces the BG/window pixel for the current column,
	// or false when the pipeline has to stall.
	background(p *PPU) (FIFOEntry, bool)
	// mix picks between the BG/window pixel and the object pixel.
	mix(c *lcd.Controller, bg, obj FIFOEntry, hasObj bool) linePixel
	// resolve converts the mixed line to RGB and commits it to the
	// framebuffer.
	resolve(p *PPU)
}

// stepDrawing advances the pixel pipeline by one dot.
func (p *PPU) stepDrawing() {
	if p.cursor == ScreenWidth {
		return // line complete, waiting out the rest of mode 3
	}

	p.checkWindow()
	p.stepFetcher()
	p.loadObjects()
	p.mixPixel()
}

// mixPixel attempts to produce the pixel for the current column. When
// the background FIFO is empty nothing is produced and the cursor stays
// put. Object pixels are only popped alongside a background pixel, so
// the object FIFO always stays aligned with the cursor.
func (p *PPU) mixPixel() {
	bg, ok := p.mixer.background(p)
	if !ok {
		return
	}

	obj, hasObj := p.objFIFO.Pop()
	if !p.lcdc.SpriteEnabled {
		hasObj = false
	}

	p.line[p.cursor] = p.mixer.mix(p.lcdc, bg, obj, hasObj)
	p.cursor++
}

// dmgMixer mixes and resolves pixels the way the DMG does, through the
// BGP/OBP0/OBP1 shade registers.
type dmgMixer struct{}

// background pops the BG FIFO. With LCDC.0 clear the background is
// blank: colour 0 is produced every dot, whether the FIFO has caught
// up or not.
func (dmgMixer) background(p *PPU) (FIFOEntry, bool) {
	bg, ok := p.bgFIFO.Pop()
	if !p.lcdc.BackgroundEnabled {
		return FIFOEntry{}, true
	}
	return bg, ok
}

// mix gives a non-transparent object pixel the win unless its priority
// bit is set and the background is non-zero.
func (dmgMixer) mix(_ *lcd.Controller, bg, obj FIFOEntry, hasObj bool) linePixel {
	if hasObj && obj.Color != 0 && !(obj.Attributes&types.Bit7 != 0 && bg.Color != 0) {
		return linePixel{colour: obj.Color, object: true, attr: obj.Attributes}
	}
	return linePixel{colour: bg.Color}
}

func (dmgMixer) resolve(p *PPU) {
	row := &p.framebuffer[p.ly]
	for x, px := range p.line {
		register := p.bgp
		if px.object {
			register = p.obp0
			if px.attr&types.Bit4 != 0 {
				register = p.obp1
			}
		}
		row[x] = p.shades.Shade(register, px.colour)
	}
}

// cgbMixer mixes and resolves pixels the way the CGB does, through the
// BG and OBJ palette RAM.
type cgbMixer struct{}

// background pops the BG FIFO. As on the DMG, LCDC.0 clear produces
// colour 0 of BG palette 0 every dot, and any non-zero object wins.
func (cgbMixer) background(p *PPU) (FIFOEntry, bool) {
	bg, ok := p.bgFIFO.Pop()
	if !p.lcdc.BackgroundEnabled {
		return FIFOEntry{}, true
	}
	return bg, ok
}

// mix resolves priority between the background and an object:
//
//  1. LCDC.0 clear: the object wins when non-zero
//  2. OAM priority clear: the object wins when non-zero
//  3. BG tile attribute priority set: the background wins
//  4. background colour 0: the object wins when non-zero
//  5. otherwise the background wins
func (cgbMixer) mix(c *lcd.Controller, bg, obj FIFOEntry, hasObj bool) linePixel {
	bgPixel := linePixel{colour: bg.Color, palette: bg.Attributes & 7}
	if !hasObj || obj.Color == 0 {
		return bgPixel
	}
	objPixel := linePixel{colour: obj.Color, object: true, attr: obj.Attributes}

	switch {
	case !c.BackgroundEnabled:
		return objPixel
	case obj.Attributes&types.Bit7 == 0:
		return objPixel
	case bg.Attributes&types.Bit7 != 0:
		return bgPixel
	case bg.Color == 0:
		return objPixel
	}
	return bgPixel
}

func (cgbMixer) resolve(p *PPU) {
	row := &p.framebuffer[p.ly]
	for x, px := range p.line {
		if px.object {
			row[x] = p.objPalette.GetColour(px.attr&7, px.colour)
		} else {
			row[x] = p.bgPalette.GetColour(px.palette, px.colour)
		}
	}
}

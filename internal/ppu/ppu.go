package ppu

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/interrupts"
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
	"github.com/thelolagemann/gomeboy-ppu/pkg/log"
	"github.com/thelolagemann/gomeboy-ppu/pkg/utils"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

const (
	// DotsPerLine is the length of every line, visible or not.
	DotsPerLine = 456
	// LinesPerFrame is the number of lines in a frame, 144 visible
	// lines followed by 10 lines of VBlank.
	LinesPerFrame = 154
	// DotsPerFrame is the length of a frame in dots.
	DotsPerFrame = DotsPerLine * LinesPerFrame

	// oamScanDots is the fixed length of the OAM scan (mode 2).
	oamScanDots = 80
	// minDrawingDots and maxDrawingDots bound the length of the
	// pixel transfer (mode 3). Each object on the line adds
	// objectPenaltyDots.
	minDrawingDots    = 172
	maxDrawingDots    = 289
	objectPenaltyDots = 6

	// defaultFailsafe is the line dot at which a pixel transfer that
	// still hasn't produced 160 pixels is cut short.
	defaultFailsafe = 420

	// maxObjectsPerLine is the number of objects the OAM scan keeps.
	maxObjectsPerLine = 10
)

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit, one dot
// at a time.
//
// The PPU owns VRAM, OAM, palette RAM and the LCD registers. It is
// driven exclusively by Tick, and never touches the rest of the system:
// interrupt requests are latched until the owning bus collects them
// with Interrupts.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
//   - [Hacktix GBEDG](https://hacktix.github.io/GBEDG/ppu/)
//   - [Mooneye test suite](https://github.com/Gekkio/mooneye-test-suite)
type PPU struct {
	// LCD registers
	lcdc *lcd.Controller // LCDC
	stat *lcd.Status     // STAT

	// Position registers
	ly, lyc  uint8 // Current line (0-153) and its comparison target
	scy, scx uint8 // Background viewport position
	wy, wx   uint8 // Window Position

	// DMG palettes
	bgp, obp0, obp1 uint8
	shades          palette.Palette // RGB values of the 4 DMG shades

	// CGB
	cgb        bool                // colour pipeline (model >= CGB0)
	vbk        uint8               // VRAM bank visible to the CPU
	bgPalette  *palette.CGBPalette // BCPS/BCPD
	objPalette *palette.CGBPalette // OCPS/OCPD

	// Memory
	vram [2][0x2000]uint8
	oam  [160]uint8

	// Line timing
	dot           int // Dot within the current line (0-455)
	drawingDots   int // Dots spent in mode 3 on this line
	drawingTarget int // Computed mode 3 length for this line
	failsafe      int // Line dot at which mode 3 is cut short

	// Interrupt lines
	statLine bool  // Current STAT interrupt line
	requests uint8 // Latched interrupt requests (interrupts.VBlankFlag|LCDFlag)

	// Window rendering state
	windowLine   uint8 // Window line counter
	windowActive bool  // Window has taken over the fetcher on this line

	// Pixel pipeline
	fetcher     fetcher
	bgFIFO      *utils.FIFO[FIFOEntry] // Background/Window pixel FIFO
	objFIFO     *utils.FIFO[FIFOEntry] // OBJ pixel FIFO
	objects     [maxObjectsPerLine]Object
	objectCount int // Objects found by the OAM scan
	nextObject  int // Next object to be loaded into objFIFO
	cursor      int // Next column to be produced (0-160)
	mixer       mixer
	line        [ScreenWidth]linePixel // Mixed but unresolved pixels

	// Output
	framebuffer [ScreenHeight][ScreenWidth][3]uint8
	frame       uint64 // Frames completed
	frameReady  bool   // A frame has completed since the last ClearFrame

	model types.Model
	log   log.Logger
	stats Stats
}

// Stats holds diagnostics collected while rendering.
type Stats struct {
	// FailsafeHits counts lines whose pixel transfer was cut short.
	FailsafeHits uint64
	// DrawingDots records the length of mode 3 for every visible
	// line of the last frame.
	DrawingDots [ScreenHeight]int
}

// New creates and initializes a PPU in the state the boot ROM leaves
// it: LCD on, LCDC=0x91, BGP=0xFC, line 0 at the start of the OAM
// scan.
func New(opts ...Opt) *PPU {
	p := &PPU{
		lcdc:       lcd.NewController(0x91),
		stat:       &lcd.Status{Mode: lcd.OAM},
		bgp:        0xFC,
		obp0:       0xFF,
		obp1:       0xFF,
		shades:     palette.Palettes[palette.Greyscale],
		bgPalette:  palette.NewCGBPalette(),
		objPalette: palette.NewCGBPalette(),
		bgFIFO:     utils.NewFIFO[FIFOEntry](16),
		objFIFO:    utils.NewFIFO[FIFOEntry](8),
		failsafe:   defaultFailsafe,
		model:      types.DMGABC,
		log:        log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.cgb = p.model.IsCGB()
	if p.cgb {
		p.mixer = cgbMixer{}
	} else {
		p.mixer = dmgMixer{}
	}

	p.renderBlank()
	p.statUpdate()

	return p
}

// Tick advances the PPU by the given number of dots. The owning bus
// calls this with 4 dots for every machine cycle.
func (p *PPU) Tick(dots int) {
	for ; dots > 0; dots-- {
		p.step()
	}
}

// step advances the PPU by a single dot.
func (p *PPU) step() {
	if !p.lcdc.Enabled {
		p.stat.Coincidence = p.ly == p.lyc
		return
	}

	p.dot++

	switch p.stat.Mode {
	case lcd.OAM:
		if p.dot == oamScanDots {
			p.enterDrawing()
		}
	case lcd.VRAM:
		p.drawingDots++
		p.stepDrawing()

		if p.cursor == ScreenWidth && p.drawingDots >= p.drawingTarget {
			p.enterHBlank()
		} else if p.dot >= p.failsafe {
			p.stats.FailsafeHits++
			p.log.Debugf("ppu: mode 3 cut short on LY %d after %d dots (%d pixels)", p.ly, p.drawingDots, p.cursor)
			p.enterHBlank()
		}
	case lcd.HBlank:
		if p.dot == DotsPerLine {
			p.endHBlank()
		}
	case lcd.VBlank:
		if p.dot == DotsPerLine {
			p.endVBlankLine()
		}
	}

	p.statUpdate()
}

// enterDrawing ends the OAM scan: objects on the line are selected and
// pre-fetched, and the pixel transfer starts.
func (p *PPU) enterDrawing() {
	p.scanOAM()

	p.drawingTarget = utils.Clamp(minDrawingDots, minDrawingDots+objectPenaltyDots*p.objectCount, maxDrawingDots)
	p.drawingDots = 0
	p.startFetcher()
	p.setMode(lcd.VRAM)
}

// enterHBlank ends the pixel transfer. The line is resolved to RGB
// and committed to the framebuffer, the rest of the line is HBlank.
func (p *PPU) enterHBlank() {
	p.stats.DrawingDots[p.ly] = p.drawingDots
	p.mixer.resolve(p)
	p.setMode(lcd.HBlank)
}

// endHBlank moves on to the next line, entering VBlank after line 143.
func (p *PPU) endHBlank() {
	if p.windowActive {
		p.windowLine++
	}

	p.dot = 0
	p.ly++

	if p.ly == ScreenHeight {
		p.frame++
		p.frameReady = true
		p.requests |= interrupts.VBlankFlag
		p.setMode(lcd.VBlank)
		return
	}

	p.startLine()
}

// endVBlankLine handles the end of each of the 10 VBlank lines, wrapping
// back to line 0 after line 153.
func (p *PPU) endVBlankLine() {
	p.dot = 0
	p.ly++

	if p.ly == LinesPerFrame {
		p.ly = 0
		p.windowLine = 0
		p.startLine()
		return
	}

	p.statUpdate()
}

// startLine resets the per-line state and begins the OAM scan.
func (p *PPU) startLine() {
	p.resetLine()
	if p.ly == p.wy {
		p.windowLine = 0
	}
	p.setMode(lcd.OAM)
}

// resetLine clears everything that only lives for a single line.
func (p *PPU) resetLine() {
	p.dot = 0
	p.drawingDots = 0
	p.cursor = 0
	p.windowActive = false
	p.objectCount = 0
	p.nextObject = 0
	p.bgFIFO.Reset()
	p.objFIFO.Reset()
	p.fetcher = fetcher{}
	p.line = [ScreenWidth]linePixel{}
}

// setMode changes the mode reported in STAT and re-evaluates the
// STAT line against it.
func (p *PPU) setMode(mode lcd.Mode) {
	p.stat.Mode = mode
	p.statUpdate()
}

// statUpdate handles updating the STAT interrupt. As the conditions for
// raising a STAT interrupt are checked every dot, this is called from
// step, and whenever one of the dependent conditions changes through a
// register write or a mode change.
//
// The interrupt is only requested when the combined STAT line goes from
// low to high, so a source that stays asserted never requests twice.
func (p *PPU) statUpdate() {
	p.stat.Coincidence = p.ly == p.lyc
	if !p.lcdc.Enabled {
		// STAT & LYC call this but the PPU may be disabled when doing so
		// in which case the STAT line isn't processed
		return
	}

	statINT := p.stat.Line()
	if !p.statLine && statINT {
		p.requests |= interrupts.LCDFlag
	}
	p.statLine = statINT
}

// disable turns the LCD off. LY reads 0, STAT reports HBlank and the
// PPU holds there until the LCD is turned back on.
func (p *PPU) disable() {
	if p.stat.Mode != lcd.VBlank {
		p.log.Debugf("ppu: LCD disabled outside of VBlank (LY %d, %s)", p.ly, p.stat.Mode)
	}

	p.ly = 0
	p.stat.Mode = lcd.HBlank
	p.statLine = false
	p.requests = 0
	p.resetLine()
	p.renderBlank()
}

// enable turns the LCD back on, starting a fresh frame.
func (p *PPU) enable() {
	p.ly = 0
	p.windowLine = 0
	p.statLine = false
	p.startLine()
}

// renderBlank blanks the framebuffer with the lightest colour.
func (p *PPU) renderBlank() {
	white := p.shades.Colors[0]
	if p.cgb {
		white = [3]uint8{0xFF, 0xFF, 0xFF}
	}
	for y := range p.framebuffer {
		for x := range p.framebuffer[y] {
			p.framebuffer[y][x] = white
		}
	}
}

// Interrupts returns the interrupt requests raised since the last call
// (interrupts.VBlankFlag and/or interrupts.LCDFlag), and clears them.
func (p *PPU) Interrupts() uint8 {
	r := p.requests
	p.requests = 0
	return r
}

// Framebuffer returns the framebuffer. Rows are committed as each
// visible line enters HBlank.
func (p *PPU) Framebuffer() *[ScreenHeight][ScreenWidth][3]uint8 {
	return &p.framebuffer
}

// HasFrame reports whether a frame has completed since the last
// call to ClearFrame.
func (p *PPU) HasFrame() bool {
	return p.frameReady
}

// ClearFrame acknowledges the completed frame.
func (p *PPU) ClearFrame() {
	p.frameReady = false
}

// Frame returns the number of frames completed.
func (p *PPU) Frame() uint64 {
	return p.frame
}

// Mode returns the current mode.
func (p *PPU) Mode() lcd.Mode {
	return p.stat.Mode
}

// LY returns the current line.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Stats returns the diagnostics collected so far.
func (p *PPU) Stats() Stats {
	return p.stats
}

// Model returns the model the PPU was created for.
func (p *PPU) Model() types.Model {
	return p.model
}

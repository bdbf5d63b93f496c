package ppu

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gomeboy-ppu/internal/interrupts"
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// countSTAT ticks p one dot at a time, returning the number of STAT
// interrupts requested.
func countSTAT(p *PPU, dots int) int {
	n := 0
	for i := 0; i < dots; i++ {
		p.Tick(1)
		if p.Interrupts()&interrupts.LCDFlag != 0 {
			n++
		}
	}
	return n
}

func TestPPU_Defaults(t *testing.T) {
	p := New()
	if got := p.Read(types.LCDC); got != 0x91 {
		t.Errorf("expected LCDC 0x91, got 0x%02X", got)
	}
	if got := p.Read(types.BGP); got != 0xFC {
		t.Errorf("expected BGP 0xFC, got 0x%02X", got)
	}
	if got := p.Read(types.STAT); got != 0x80|uint8(lcd.OAM)|types.Bit2 {
		t.Errorf("expected STAT 0x86, got 0x%02X", got)
	}
	if p.Model() != types.DMGABC {
		t.Errorf("expected DMG model, got %s", p.Model())
	}
}

func TestPPU_ModeTiming(t *testing.T) {
	p := New()

	steps := []struct {
		dots int
		mode lcd.Mode
		ly   uint8
	}{
		{79, lcd.OAM, 0},
		{1, lcd.VRAM, 0},
		{171, lcd.VRAM, 0},
		{1, lcd.HBlank, 0},
		{203, lcd.HBlank, 0},
		{1, lcd.OAM, 1},
		{80, lcd.VRAM, 1},
	}
	for i, s := range steps {
		p.Tick(s.dots)
		if p.Mode() != s.mode || p.LY() != s.ly {
			t.Fatalf("step %d: expected %s on LY %d, got %s on LY %d", i, s.mode, s.ly, p.Mode(), p.LY())
		}
		if got := lcd.Mode(p.Read(types.STAT) & 3); got != s.mode {
			t.Fatalf("step %d: STAT reports %s, expected %s", i, got, s.mode)
		}
	}
}

func TestPPU_VBlank(t *testing.T) {
	p := New()

	p.Tick(ScreenHeight*DotsPerLine - 1)
	if p.LY() != 143 {
		t.Fatalf("expected LY 143, got %d", p.LY())
	}
	if p.Interrupts()&interrupts.VBlankFlag != 0 {
		t.Fatalf("VBlank requested early")
	}

	p.Tick(1)
	if p.LY() != 144 || p.Mode() != lcd.VBlank {
		t.Fatalf("expected VBlank on LY 144, got %s on LY %d", p.Mode(), p.LY())
	}
	if p.Interrupts()&interrupts.VBlankFlag == 0 {
		t.Errorf("expected VBlank interrupt on entering LY 144")
	}
	if !p.HasFrame() || p.Frame() != 1 {
		t.Errorf("expected first frame to be complete")
	}

	p.Tick(10*DotsPerLine - 1)
	if p.LY() != 153 {
		t.Fatalf("expected LY 153, got %d", p.LY())
	}
	p.Tick(1)
	if p.LY() != 0 || p.Mode() != lcd.OAM {
		t.Fatalf("expected OAM scan on LY 0, got %s on LY %d", p.Mode(), p.LY())
	}
}

func TestPPU_OneVBlankPerFrame(t *testing.T) {
	p := New()

	vblanks := 0
	for i := 0; i < 3*DotsPerFrame; i++ {
		p.Tick(1)
		if p.Interrupts()&interrupts.VBlankFlag != 0 {
			vblanks++
		}
	}
	if vblanks != 3 {
		t.Errorf("expected 3 VBlank interrupts, got %d", vblanks)
	}

	// from anywhere in the frame, a frame later LY is back where it was
	p.Tick(50*DotsPerLine + 123)
	ly := p.LY()
	p.Interrupts()
	p.Tick(DotsPerFrame)
	if p.LY() != ly {
		t.Errorf("expected LY %d after a frame, got %d", ly, p.LY())
	}
	if p.Interrupts()&interrupts.VBlankFlag == 0 {
		t.Errorf("expected a VBlank interrupt within the frame")
	}
}

func TestPPU_STAT(t *testing.T) {
	for _, tt := range []struct {
		name   string
		source uint8
		want   int
	}{
		{"hblank", types.Bit3, ScreenHeight},
		{"vblank", types.Bit4, 1},
		{"oam", types.Bit5, ScreenHeight},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.Write(types.STAT, tt.source)
			p.Interrupts()

			if n := countSTAT(p, DotsPerFrame); n != tt.want {
				t.Errorf("expected %d STAT interrupts, got %d", tt.want, n)
			}
		})
	}

	t.Run("no refire while line stays high", func(t *testing.T) {
		p := New()
		p.Write(types.LYC, 1)
		p.Write(types.STAT, types.Bit6|types.Bit3)
		p.Interrupts()

		// HBlank on LY 0 raises the line, LY 1 keeps it high through
		// the coincidence, and it only drops again on LY 2
		if n := countSTAT(p, 3*DotsPerLine); n != 2 {
			t.Errorf("expected 2 STAT interrupts, got %d", n)
		}
	})

	t.Run("lyc", func(t *testing.T) {
		p := New()
		p.Write(types.LYC, 5)
		p.Write(types.STAT, types.Bit6)
		p.Interrupts()

		if n := countSTAT(p, 5*DotsPerLine); n != 1 {
			t.Fatalf("expected 1 STAT interrupt, got %d", n)
		}
		if p.LY() != 5 || p.Read(types.STAT)&types.Bit2 == 0 {
			t.Errorf("expected coincidence flag on LY 5")
		}
		if n := countSTAT(p, DotsPerFrame-5*DotsPerLine); n != 0 {
			t.Errorf("expected no more STAT interrupts this frame, got %d", n)
		}
	})

	t.Run("lyc write", func(t *testing.T) {
		p := New()
		p.Write(types.LYC, 5)
		p.Write(types.STAT, types.Bit6)
		if p.Interrupts() != 0 {
			t.Fatalf("unexpected interrupt")
		}

		p.Write(types.LYC, 0)
		if p.Interrupts()&interrupts.LCDFlag == 0 {
			t.Errorf("expected writing LYC=LY to raise a STAT interrupt")
		}
	})

	t.Run("ly is read-only", func(t *testing.T) {
		p := New()
		p.Write(types.LY, 0x42)
		if p.Read(types.LY) != 0 {
			t.Errorf("expected LY write to be ignored")
		}
	})
}

func TestPPU_LCDOff(t *testing.T) {
	p := New()
	p.Write(types.STAT, types.Bit3)
	p.Tick(1000)

	p.Write(types.LCDC, 0x11)
	if p.LY() != 0 || p.Mode() != lcd.HBlank {
		t.Fatalf("expected HBlank on LY 0, got %s on LY %d", p.Mode(), p.LY())
	}
	if p.Interrupts() != 0 {
		t.Errorf("expected pending requests to be cleared")
	}

	p.Tick(DotsPerFrame)
	if p.LY() != 0 || p.Interrupts() != 0 {
		t.Errorf("expected PPU to hold while disabled")
	}
	for _, row := range p.Framebuffer() {
		for _, px := range row {
			if px != p.shades.Colors[0] {
				t.Fatalf("expected blank framebuffer, got %v", px)
			}
		}
	}

	// memory is open while the LCD is off
	p.Write(0x8000, 0x12)
	p.Write(0xFE00, 0x34)
	if p.Read(0x8000) != 0x12 || p.Read(0xFE00) != 0x34 {
		t.Errorf("expected VRAM and OAM to be accessible")
	}

	// the coincidence flag follows LYC while the LCD is off
	p.Write(types.LYC, 5)
	p.Tick(1)
	if p.Read(types.STAT)&types.Bit2 != 0 {
		t.Errorf("expected coincidence flag clear with LYC=5")
	}
	p.Write(types.LYC, 0)
	p.Tick(1)
	if p.Read(types.STAT)&types.Bit2 == 0 {
		t.Errorf("expected coincidence flag set with LYC=0")
	}
	if p.Interrupts() != 0 {
		t.Errorf("expected no STAT interrupt while disabled")
	}

	p.Write(types.LCDC, 0x91)
	if p.LY() != 0 || p.Mode() != lcd.OAM {
		t.Fatalf("expected OAM scan on LY 0, got %s on LY %d", p.Mode(), p.LY())
	}
	p.Tick(oamScanDots)
	if p.Mode() != lcd.VRAM {
		t.Errorf("expected fresh line after enabling, got %s", p.Mode())
	}
}

func TestPPU_MemoryGate(t *testing.T) {
	p := New()

	// OAM scan: OAM is locked, VRAM is not
	p.Write(0xFE00, 0x12)
	if got := p.Read(0xFE00); got != 0xFF {
		t.Errorf("expected locked OAM to read 0xFF, got 0x%02X", got)
	}
	p.Write(0x8000, 0x34)
	if got := p.Read(0x8000); got != 0x34 {
		t.Errorf("expected VRAM write during OAM scan, got 0x%02X", got)
	}
	p.DMAWriteOAM(0, 0x56)

	// drawing: both are locked
	p.Tick(oamScanDots)
	p.Write(0x8000, 0x78)
	if got := p.Read(0x8000); got != 0xFF {
		t.Errorf("expected locked VRAM to read 0xFF, got 0x%02X", got)
	}
	p.Write(0xFE01, 0xBC)
	if got := p.Read(0xFE01); got != 0xFF {
		t.Errorf("expected locked OAM to read 0xFF, got 0x%02X", got)
	}
	p.DMAWriteVRAM(0x8001, 0x9A)

	// hblank: both are open
	p.Tick(minDrawingDots)
	if p.Mode() != lcd.HBlank {
		t.Fatalf("expected HBlank, got %s", p.Mode())
	}
	if got := p.Read(0xFE00); got != 0x56 {
		t.Errorf("expected DMA OAM write to land, got 0x%02X", got)
	}
	if got := p.Read(0x8000); got != 0x34 {
		t.Errorf("expected locked VRAM write to be ignored, got 0x%02X", got)
	}
	if got := p.Read(0xFE01); got == 0xBC {
		t.Errorf("expected OAM write during drawing to be ignored")
	}
	if got := p.Read(0x8001); got != 0x9A {
		t.Errorf("expected DMA VRAM write to land, got 0x%02X", got)
	}
	if got := p.DMAReadVRAM(0x8001); got != 0x9A {
		t.Errorf("expected DMA VRAM read 0x9A, got 0x%02X", got)
	}
}

func TestPPU_CGBRegisters(t *testing.T) {
	t.Run("dmg", func(t *testing.T) {
		p := New()
		for _, addr := range []uint16{types.VBK, types.BCPS, types.BCPD, types.OCPS, types.OCPD} {
			p.Write(addr, 0x01)
			if got := p.Read(addr); got != 0xFF {
				t.Errorf("0x%04X: expected 0xFF on DMG, got 0x%02X", addr, got)
			}
		}
	})

	t.Run("vbk", func(t *testing.T) {
		p := New(WithModel(types.CGBABC))
		p.Write(types.LCDC, 0)
		if got := p.Read(types.VBK); got != 0xFE {
			t.Errorf("expected VBK 0xFE, got 0x%02X", got)
		}
		p.Write(types.VBK, 0x01)
		p.Write(0x8000, 0xAB)
		if got := p.Read(types.VBK); got != 0xFF {
			t.Errorf("expected VBK 0xFF, got 0x%02X", got)
		}
		p.Write(types.VBK, 0x00)
		if got := p.Read(0x8000); got != 0x00 {
			t.Errorf("expected bank 0 to be untouched, got 0x%02X", got)
		}
	})

	t.Run("palette index", func(t *testing.T) {
		p := New(WithModel(types.CGBABC))
		p.Write(types.LCDC, 0)

		p.Write(types.BCPS, 0x85)
		if got := p.Read(types.BCPS); got != 0xC5 {
			t.Errorf("expected BCPS 0xC5, got 0x%02X", got)
		}
		p.Write(types.BCPD, 0xAA)
		if got := p.Read(types.BCPS); got != 0xC6 {
			t.Errorf("expected index to advance to 0xC6, got 0x%02X", got)
		}
		p.Write(types.BCPS, 0x05)
		if got := p.Read(types.BCPD); got != 0xAA {
			t.Errorf("expected BCPD 0xAA, got 0x%02X", got)
		}
		if got := p.Read(types.BCPS); got != 0x45 {
			t.Errorf("expected read not to advance the index, got 0x%02X", got)
		}

		p.Write(types.OCPS, 0xBF)
		p.Write(types.OCPD, 0x01)
		if got := p.Read(types.OCPS); got != 0xC0 {
			t.Errorf("expected index to wrap to 0xC0, got 0x%02X", got)
		}
	})

	t.Run("locked palette", func(t *testing.T) {
		p := New(WithModel(types.CGBABC))
		p.Write(types.BCPS, 0x80)
		p.Write(types.BCPD, 0x12)
		if got := p.Read(types.BCPS); got != 0xC1 {
			t.Errorf("expected locked write to advance the index, got 0x%02X", got)
		}
		if got := p.Read(types.BCPD); got != 0xFF {
			t.Errorf("expected locked BCPD to read 0xFF, got 0x%02X", got)
		}
		if p.bgPalette.RAM[0] != 0xFF {
			t.Errorf("expected locked write to be ignored")
		}
	})
}

func TestPPU_FailsafeBudget(t *testing.T) {
	for _, tt := range []struct {
		in, want int
	}{
		{0, oamScanDots + maxDrawingDots},
		{defaultFailsafe, defaultFailsafe},
		{1000, DotsPerLine - 1},
	} {
		if got := New(WithFailsafeBudget(tt.in)).failsafe; got != tt.want {
			t.Errorf("WithFailsafeBudget(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestPPU_State(t *testing.T) {
	p := newScene(t, types.DMGABC)
	p.Tick(DotsPerFrame/2 + 100)

	s := types.NewState()
	p.Save(s)

	loaded := New()
	loaded.Load(types.StateFromBytes(s.Bytes()))
	if loaded.LY() != p.LY() {
		t.Fatalf("expected LY %d, got %d", p.LY(), loaded.LY())
	}
	if loaded.Read(types.WX) != p.Read(types.WX) || loaded.Read(types.LCDC) != p.Read(types.LCDC) {
		t.Fatalf("expected registers to be restored")
	}

	// both must render the next full frame identically
	for _, q := range []*PPU{p, loaded} {
		q.ClearFrame()
		for !q.HasFrame() {
			q.Tick(1)
		}
		q.ClearFrame()
		for !q.HasFrame() {
			q.Tick(1)
		}
	}
	if p.FrameHash() != loaded.FrameHash() {
		t.Errorf("expected restored PPU to render the same frame")
	}

	t.Run("ly out of range", func(t *testing.T) {
		s := types.NewState()
		New().Save(s)
		raw := s.Bytes()
		raw[3] = 200 // model, LCDC, STAT, LY

		p := New()
		p.Load(types.StateFromBytes(raw))
		if p.LY() != LinesPerFrame-1 || p.Mode() != lcd.VBlank {
			t.Fatalf("expected VBlank on LY %d, got %s on LY %d", LinesPerFrame-1, p.Mode(), p.LY())
		}
		p.Tick(DotsPerLine)
		if p.LY() != 0 || p.Mode() != lcd.OAM {
			t.Errorf("expected OAM scan on LY 0, got %s on LY %d", p.Mode(), p.LY())
		}
	})

	t.Run("short", func(t *testing.T) {
		s := types.StateFromBytes([]byte{1, 2, 3})
		New().Load(s)
		if !errors.Is(s.Err(), types.ErrShortState) {
			t.Errorf("expected ErrShortState, got %v", s.Err())
		}
	})
}

func TestPPU_FrameHash(t *testing.T) {
	a, b := newScene(t, types.DMGABC), newScene(t, types.DMGABC)
	a.Tick(DotsPerFrame)
	b.Tick(DotsPerFrame)
	if a.FrameHash() != b.FrameHash() {
		t.Fatalf("expected identical scenes to hash the same")
	}

	b.Write(types.BGP, 0x1B)
	b.Tick(DotsPerFrame)
	if a.FrameHash() == b.FrameHash() {
		t.Errorf("expected a different palette to change the hash")
	}

	img := a.Image()
	if img.Bounds().Dx() != ScreenWidth || img.Bounds().Dy() != ScreenHeight {
		t.Fatalf("unexpected image bounds %v", img.Bounds())
	}
	c := img.RGBAAt(10, 20)
	if px := a.Framebuffer()[20][10]; c.R != px[0] || c.G != px[1] || c.B != px[2] {
		t.Errorf("expected image to match framebuffer, got %v want %v", c, px)
	}
}

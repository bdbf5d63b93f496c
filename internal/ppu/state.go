package ppu

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

var _ types.Stater = (*PPU)(nil)

// Save writes the registers, memory and palettes of the PPU to s.
//
// Mid-line pipeline state isn't saved: a loaded state resumes at the
// start of the line it was saved on.
func (p *PPU) Save(s *types.State) {
	s.Write8(uint8(p.model))
	s.Write8(p.lcdc.Read())
	s.Write8(p.stat.Read())
	s.Write8(p.ly)
	s.Write8(p.lyc)
	s.Write8(p.scy)
	s.Write8(p.scx)
	s.Write8(p.wy)
	s.Write8(p.wx)
	s.Write8(p.bgp)
	s.Write8(p.obp0)
	s.Write8(p.obp1)
	s.Write8(p.vbk)
	s.Write8(p.windowLine)
	s.Write32(uint32(p.frame))
	s.Write32(uint32(p.frame >> 32))
	s.WriteData(p.vram[0][:])
	s.WriteData(p.vram[1][:])
	s.WriteData(p.oam[:])
	p.bgPalette.Save(s)
	p.objPalette.Save(s)
}

// Load restores the PPU from s. Any error reading s is reported by
// s.Err, in which case the PPU is left in an undefined state.
func (p *PPU) Load(s *types.State) {
	if model := types.Model(s.Read8()); model != p.model {
		p.log.Errorf("ppu: loading %s state into %s PPU", model, p.model)
	}
	p.lcdc.Write(s.Read8())
	p.stat.Write(s.Read8())
	p.ly = s.Read8()
	p.lyc = s.Read8()
	p.scy = s.Read8()
	p.scx = s.Read8()
	p.wy = s.Read8()
	p.wx = s.Read8()
	p.bgp = s.Read8()
	p.obp0 = s.Read8()
	p.obp1 = s.Read8()
	p.vbk = s.Read8() & 1
	p.windowLine = s.Read8()
	p.frame = uint64(s.Read32()) | uint64(s.Read32())<<32
	s.ReadData(p.vram[0][:])
	s.ReadData(p.vram[1][:])
	s.ReadData(p.oam[:])
	p.bgPalette.Load(s)
	p.objPalette.Load(s)

	if p.ly >= LinesPerFrame {
		p.log.Errorf("ppu: state has LY %d, clamping to %d", p.ly, LinesPerFrame-1)
		p.ly = LinesPerFrame - 1
	}

	p.requests = 0
	p.frameReady = false
	p.resetLine()

	switch {
	case !p.lcdc.Enabled:
		p.ly = 0
		p.stat.Mode = lcd.HBlank
		p.stat.Coincidence = p.lyc == 0
		p.statLine = false
		return
	case p.ly >= ScreenHeight:
		p.stat.Mode = lcd.VBlank
	default:
		p.stat.Mode = lcd.OAM
	}

	// take on the restored STAT line without raising an interrupt
	p.stat.Coincidence = p.ly == p.lyc
	p.statLine = p.stat.Line()
}

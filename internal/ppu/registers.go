package ppu

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// Read returns the value the CPU sees at address. Addresses the PPU
// doesn't respond to, and CGB registers on DMG, read 0xFF.
func (p *PPU) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return p.readVRAM(address)
	case address >= 0xFE00 && address <= 0xFE9F:
		return p.readOAM(address)
	}

	switch address {
	case types.LCDC:
		return p.lcdc.Read()
	case types.STAT:
		return p.stat.Read()
	case types.SCY:
		return p.scy
	case types.SCX:
		return p.scx
	case types.LY:
		return p.ly
	case types.LYC:
		return p.lyc
	case types.BGP:
		return p.bgp
	case types.OBP0:
		return p.obp0
	case types.OBP1:
		return p.obp1
	case types.WY:
		return p.wy
	case types.WX:
		return p.wx
	}

	if !p.cgb {
		return 0xFF
	}

	switch address {
	case types.VBK:
		return 0xFE | p.vbk
	case types.BCPS:
		return p.bgPalette.GetIndex()
	case types.BCPD:
		if p.oamBlocked() {
			return 0xFF
		}
		return p.bgPalette.Read()
	case types.OCPS:
		return p.objPalette.GetIndex()
	case types.OCPD:
		if p.oamBlocked() {
			return 0xFF
		}
		return p.objPalette.Read()
	}

	return 0xFF
}

// Write handles a CPU write to address. Writes to read-only registers,
// to unmapped addresses, and to CGB registers on DMG are ignored.
func (p *PPU) Write(address uint16, value uint8) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		p.writeVRAM(address, value)
		return
	case address >= 0xFE00 && address <= 0xFE9F:
		p.writeOAM(address, value)
		return
	}

	switch address {
	case types.LCDC:
		wasEnabled := p.lcdc.Enabled
		p.lcdc.Write(value)

		switch {
		case wasEnabled && !p.lcdc.Enabled:
			p.disable()
		case !wasEnabled && p.lcdc.Enabled:
			p.enable()
		}
		p.statUpdate()
		return
	case types.STAT:
		p.stat.Write(value)
		p.statUpdate()
		return
	case types.SCY:
		p.scy = value
		return
	case types.SCX:
		p.scx = value
		return
	case types.LY:
		return // read-only
	case types.LYC:
		p.lyc = value
		p.statUpdate()
		return
	case types.BGP:
		p.bgp = value
		return
	case types.OBP0:
		p.obp0 = value
		return
	case types.OBP1:
		p.obp1 = value
		return
	case types.WY:
		p.wy = value
		return
	case types.WX:
		p.wx = value
		return
	}

	if !p.cgb {
		return
	}

	switch address {
	case types.VBK:
		p.vbk = value & 1
	case types.BCPS:
		p.bgPalette.SetIndex(value)
	case types.BCPD:
		if p.oamBlocked() {
			p.bgPalette.Advance()
			return
		}
		p.bgPalette.Write(value)
	case types.OCPS:
		p.objPalette.SetIndex(value)
	case types.OCPD:
		if p.oamBlocked() {
			p.objPalette.Advance()
			return
		}
		p.objPalette.Write(value)
	}
}

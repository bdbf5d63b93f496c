package ppu

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/lcd"
)

// vramBlocked reports whether the CPU is locked out of VRAM, which is
// the case for the whole of mode 3 while the LCD is on.
func (p *PPU) vramBlocked() bool {
	return p.lcdc.Enabled && p.stat.Mode == lcd.VRAM
}

// oamBlocked reports whether the CPU is locked out of OAM and palette
// RAM, which is the case during modes 2 and 3 while the LCD is on.
func (p *PPU) oamBlocked() bool {
	return p.lcdc.Enabled && (p.stat.Mode == lcd.OAM || p.stat.Mode == lcd.VRAM)
}

// bank returns the VRAM bank selected by VBK. DMG only has bank 0.
func (p *PPU) bank() uint8 {
	if p.cgb {
		return p.vbk & 1
	}
	return 0
}

func (p *PPU) readVRAM(address uint16) uint8 {
	if p.vramBlocked() {
		return 0xFF
	}
	return p.vram[p.bank()][address&0x1FFF]
}

func (p *PPU) writeVRAM(address uint16, value uint8) {
	if p.vramBlocked() {
		return
	}
	p.vram[p.bank()][address&0x1FFF] = value
}

func (p *PPU) readOAM(address uint16) uint8 {
	if p.oamBlocked() {
		return 0xFF
	}
	return p.oam[address-0xFE00]
}

func (p *PPU) writeOAM(address uint16, value uint8) {
	if p.oamBlocked() {
		return
	}
	p.oam[address-0xFE00] = value
}

// DMAWriteOAM writes value to OAM at offset (0-159) regardless of the
// current mode. It is the path used by the OAM DMA engine.
func (p *PPU) DMAWriteOAM(offset uint8, value uint8) {
	if int(offset) < len(p.oam) {
		p.oam[offset] = value
	}
}

// DMAWriteVRAM writes value to the VRAM bank selected by VBK regardless
// of the current mode. It is the path used by the VRAM DMA engines.
func (p *PPU) DMAWriteVRAM(address uint16, value uint8) {
	p.vram[p.bank()][address&0x1FFF] = value
}

// DMAReadVRAM reads from the VRAM bank selected by VBK regardless of
// the current mode, for DMA transfers sourced from VRAM.
func (p *PPU) DMAReadVRAM(address uint16) uint8 {
	return p.vram[p.bank()][address&0x1FFF]
}

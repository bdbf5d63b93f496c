package palette

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
	"github.com/thelolagemann/gomeboy-ppu/pkg/utils"
)

// CGBPalette is the 64 bytes of CGB palette RAM backing either the
// background (BCPS/BCPD) or the object (OCPS/OCPD) palettes. It holds
// 8 palettes of 4 colours, each colour a little-endian RGB555 value:
//
//	Bit 0-4   Red Intensity   (00-1F)
//	Bit 5-9   Green Intensity (00-1F)
//	Bit 10-14 Blue Intensity  (00-1F)
type CGBPalette struct {
	RAM          [64]uint8
	Index        uint8
	Incrementing bool
}

// NewCGBPalette returns palette RAM initialised to white (0xFF).
func NewCGBPalette() *CGBPalette {
	p := &CGBPalette{}
	for i := range p.RAM {
		p.RAM[i] = 0xFF
	}
	return p
}

// SetIndex updates the index of the palette.
func (p *CGBPalette) SetIndex(value byte) {
	p.Index = value & 0x3F
	p.Incrementing = value&types.Bit7 != 0
}

// GetIndex returns the index register. Bit 6 is unused and reads
// back as 1.
func (p *CGBPalette) GetIndex() byte {
	value := p.Index | types.Bit6
	if p.Incrementing {
		value |= types.Bit7
	}
	return value
}

// Read returns the byte at the current index. Reads never
// advance the index.
func (p *CGBPalette) Read() byte {
	return p.RAM[p.Index]
}

// Write stores value at the current index, then advances the
// index if auto-increment is enabled.
func (p *CGBPalette) Write(value byte) {
	p.RAM[p.Index] = value
	p.Advance()
}

// Advance steps the index on by one when auto-increment is
// enabled, wrapping from 0x3F to 0x00. Blocked data writes still
// advance the index.
func (p *CGBPalette) Advance() {
	if p.Incrementing {
		p.Index = (p.Index + 1) & 0x3F
	}
}

// GetColour returns the colour for a given palette index,
// and colour index, scaled from 5 to 8 bits per channel.
func (p *CGBPalette) GetColour(paletteIndex, colourIndex uint8) [3]uint8 {
	offset := utils.Clamp(0, int(paletteIndex)*8+int(colourIndex&3)*2, len(p.RAM)-2)
	colour := uint16(p.RAM[offset]) | uint16(p.RAM[offset+1])<<8

	return [3]uint8{
		scale(uint8(colour) & 0x1F),
		scale(uint8(colour>>5) & 0x1F),
		scale(uint8(colour>>10) & 0x1F),
	}
}

func scale(v uint8) uint8 {
	return v<<3 | v>>2
}

var _ types.Stater = (*CGBPalette)(nil)

// Load implements the types.Stater interface.
func (p *CGBPalette) Load(s *types.State) {
	s.ReadData(p.RAM[:])
	p.SetIndex(s.Read8())
}

// Save implements the types.Stater interface.
func (p *CGBPalette) Save(s *types.State) {
	s.WriteData(p.RAM[:])
	s.Write8(p.GetIndex())
}

package main

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/io"
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// tiles used by the test pattern, as 8 rows of low/high bit-planes
var tiles = [][8][2]uint8{
	{}, // blank
	{{0xFF, 0x00}, {0x81, 0x00}, {0x81, 0x00}, {0x81, 0x00}, {0x81, 0x00}, {0x81, 0x00}, {0x81, 0x00}, {0xFF, 0x00}},
	{{0xAA, 0x00}, {0x55, 0x00}, {0xAA, 0x00}, {0x55, 0x00}, {0xAA, 0x00}, {0x55, 0x00}, {0xAA, 0x00}, {0x55, 0x00}},
	{{0x0F, 0x0F}, {0x0F, 0x0F}, {0x0F, 0x0F}, {0x0F, 0x0F}, {0xF0, 0x00}, {0xF0, 0x00}, {0xF0, 0x00}, {0xF0, 0x00}},
	{{0xFF, 0xFF}, {0x80, 0xFF}, {0x80, 0xFF}, {0x80, 0xFF}, {0x80, 0xFF}, {0x80, 0xFF}, {0x80, 0xFF}, {0xFF, 0xFF}},
	{{0x3C, 0x00}, {0x7E, 0x3C}, {0xFF, 0x66}, {0xFF, 0x42}, {0xFF, 0x42}, {0xFF, 0x66}, {0x7E, 0x3C}, {0x3C, 0x00}},
}

// cgbPalettes holds 4 palettes of 4 RGB555 colours, shared by the
// background and objects.
var cgbPalettes = [4][4]uint16{
	{0x7FFF, 0x56B5, 0x294A, 0x0000},
	{0x7FFF, 0x03FF, 0x001F, 0x0000},
	{0x7FFF, 0x7FE0, 0x7C00, 0x0000},
	{0x7FFF, 0x03E0, 0x0200, 0x0000},
}

// buildScene draws a test pattern using every part of the pipeline:
// scrolled background, window, flipped objects on both palettes and,
// on CGB, tile attributes and palette RAM. OAM is filled through OAM
// DMA and the CGB attribute map through a VRAM DMA, both from WRAM.
func buildScene(b *io.Bus, cgb bool) {
	b.Write(types.LCDC, 0)

	for i, tile := range tiles {
		for row, planes := range tile {
			address := uint16(0x8000 + i*16 + row*2)
			b.Write(address, planes[0])
			b.Write(address+1, planes[1])
		}
	}

	// background map: diagonal stripes, window map: framed
	for y := uint16(0); y < 32; y++ {
		for x := uint16(0); x < 32; x++ {
			b.Write(0x9800+y*32+x, uint8((x+y)%3+1))
			tile := uint8(2)
			if y == 0 || x == 0 || x == 19 || y == 5 {
				tile = 4
			}
			b.Write(0x9C00+y*32+x, tile)
		}
	}
	b.Write(types.WY, 96)
	b.Write(types.WX, 7)

	b.Write(types.BGP, 0xE4)
	b.Write(types.OBP0, 0xD2)
	b.Write(types.OBP1, 0x1B)

	// objects, copied into OAM by DMA
	for i := 0; i < 16; i++ {
		y := uint8(16 + 20 + (i/4)*18)
		x := uint8(8 + 24 + (i%4)*28 + i)
		attr := uint8(i%4)<<5 | uint8(i&1)<<4 | uint8(i%4)
		if i%5 == 0 {
			attr |= types.Bit7
		}
		base := uint16(0xC000 + i*4)
		b.Write(base, y)
		b.Write(base+1, x)
		b.Write(base+2, 5)
		b.Write(base+3, attr)
	}
	b.Write(types.DMA, 0xC0)
	b.Tick(160)

	if cgb {
		writePalettes(b, types.BCPS, types.BCPD)
		writePalettes(b, types.OCPS, types.OCPD)

		// attribute map: palette per quadrant, every other row flipped
		for i := uint16(0); i < 0x400; i++ {
			x, y := i%32, i/32
			attr := uint8((x/8+y/8)%4) | uint8(y&1)<<5
			b.Write(0xC100+i, attr)
		}
		b.Write(types.VBK, 1)
		b.Write(types.HDMA1, 0xC1)
		b.Write(types.HDMA2, 0x00)
		b.Write(types.HDMA3, 0x18)
		b.Write(types.HDMA4, 0x00)
		b.Write(types.HDMA5, 0x3F)
		b.Write(types.VBK, 0)
	}

	b.Write(types.LCDC, 0xF3)
}

func writePalettes(b *io.Bus, index, data uint16) {
	b.Write(index, types.Bit7)
	for _, palette := range cgbPalettes {
		for _, colour := range palette {
			b.Write(data, uint8(colour))
			b.Write(data, uint8(colour>>8))
		}
	}
}

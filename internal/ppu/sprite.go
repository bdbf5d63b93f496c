package ppu

import (
	"math/bits"
	"sort"

	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// Object is an OAM entry selected by the OAM scan for the current line,
// with its row of pixels already fetched from VRAM.
//
//	Byte 0 - Y Position (minus 16)
//	Byte 1 - X Position (minus 8)
//	Byte 2 - Tile Number
//	Byte 3 - Attributes
//	  Bit 7   BG and Window over OBJ (0=No, 1=BG and Window colors 1-3 over the OBJ)
//	  Bit 6   Y flip          (0=Normal, 1=Vertically mirrored)
//	  Bit 5   X flip          (0=Normal, 1=Horizontally mirrored)
//	  Bit 4   Palette number  **Non CGB Mode Only** (0=OBP0, 1=OBP1)
//	  Bit 3   Tile VRAM-Bank  **CGB Mode Only**     (0=Bank 0, 1=Bank 1)
//	  Bit 2-0 Palette number  **CGB Mode Only**     (OBP0-7)
type Object struct {
	index  uint8 // position in OAM (0-39)
	y, x   uint8
	tile   uint8
	attr   uint8
	pixels [8]uint8 // colour indices, left to right, flips applied
}

// scanOAM selects the objects on the current line. An object is on the
// line when LY+16 falls within [Y, Y+height) and X > 0; only the first
// 10 in OAM order are kept. They are then stable sorted by X, so objects
// sharing an X keep their OAM order, which is the order they are drawn
// in and the order of their priority.
func (p *PPU) scanOAM() {
	p.objectCount = 0
	p.nextObject = 0

	if !p.lcdc.SpriteEnabled {
		return
	}

	height := int(p.lcdc.SpriteSize)
	line := int(p.ly) + 16
	for i := 0; i < 40 && p.objectCount < maxObjectsPerLine; i++ {
		y, x := p.oam[i*4], p.oam[i*4+1]
		if x == 0 || line < int(y) || line >= int(y)+height {
			continue
		}

		obj := &p.objects[p.objectCount]
		*obj = Object{
			index: uint8(i),
			y:     y,
			x:     x,
			tile:  p.oam[i*4+2],
			attr:  p.oam[i*4+3],
		}
		p.fetchObject(obj)
		p.objectCount++
	}

	objs := p.objects[:p.objectCount]
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].x < objs[j].x
	})
}

// fetchObject fetches the row of obj that falls on the current line.
// 8x16 objects ignore bit 0 of the tile number, the top half being the
// even tile.
func (p *PPU) fetchObject(obj *Object) {
	height := p.lcdc.SpriteSize
	row := p.ly + 16 - obj.y
	if obj.attr&types.Bit6 != 0 {
		row = height - 1 - row
	}

	tile := obj.tile
	if height == 16 {
		tile &= 0xFE
	}

	var bank uint8
	if p.cgb {
		bank = obj.attr & types.Bit3 >> 3
	}

	address := uint16(tile)<<4 | uint16(row)<<1
	low, high := p.vram[bank][address], p.vram[bank][address+1]
	if obj.attr&types.Bit5 != 0 {
		low, high = bits.Reverse8(low), bits.Reverse8(high)
	}

	for i := range obj.pixels {
		bit := 7 - i
		obj.pixels[i] = (low>>bit)&1 | (high>>bit)&1<<1
	}
}

// loadObjects loads every object whose left edge has been reached into
// the object FIFO. Entry 0 of the FIFO is always the pixel for the
// current cursor, so objects partially off the left of the screen skip
// their hidden pixels.
//
// Objects are merged into pixels already queued: a queued pixel is only
// replaced when it is transparent, so where objects overlap the one
// loaded first (lowest X, then lowest OAM index) wins.
func (p *PPU) loadObjects() {
	for p.nextObject < p.objectCount {
		obj := &p.objects[p.nextObject]
		start := int(obj.x) - 8
		if p.cursor < start {
			return
		}
		p.nextObject++

		skip := p.cursor - start
		for i := skip; i < len(obj.pixels); i++ {
			entry := FIFOEntry{Color: obj.pixels[i], Attributes: obj.attr}
			if j := i - skip; j < p.objFIFO.Size {
				if p.objFIFO.GetIndex(j).Color == 0 {
					p.objFIFO.ReplaceIndex(j, entry)
				}
			} else {
				p.objFIFO.Push(entry)
			}
		}
	}
}

package lcd

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// Controller is the LCD controller. It is responsible for controlling various
// aspects of the LCD, such as enabling the background and window display.
//
// Its value is stored in the LCD Control Register (0xFF40) as follows:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	// Enabled is the LCD Enable bit. When set, the LCD is enabled.
	Enabled bool
	// WindowTileMapAddress represents the Window Tile Map Display Select bit,
	// stored as the start address of the tile map.
	//	(0=9800-9BFF)
	//  (1=9C00-9FFF)
	WindowTileMapAddress uint16
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// UnsignedTileData is the BG & Window Tile Data Select bit. When set, tile
	// numbers index unsigned from 0x8000. Otherwise, they index signed from
	// 0x9000 (covering 0x8800-0x97FF).
	UnsignedTileData bool
	// BackgroundTileMapAddress represents the BG Tile Map Display Select bit,
	// stored as the start address of the tile map.
	//	(0=9800-9BFF)
	//  (1=9C00-9FFF)
	BackgroundTileMapAddress uint16
	// SpriteSize is the height of an object in pixels, 8 when the bit is
	// reset, and 16 when the bit is set.
	SpriteSize uint8
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG/Window Display/Priority bit. On DMG this
	// blanks the background and window, in CGB mode it instead strips the
	// background of its priority over objects.
	BackgroundEnabled bool
}

// NewController returns a new LCD controller holding value.
func NewController(value uint8) *Controller {
	c := &Controller{}
	c.Write(value)
	return c
}

// Write decodes value into the controller.
func (c *Controller) Write(value uint8) {
	c.Enabled = value&types.Bit7 != 0
	c.WindowTileMapAddress = 0x9800
	if value&types.Bit6 != 0 {
		c.WindowTileMapAddress = 0x9C00
	}
	c.WindowEnabled = value&types.Bit5 != 0
	c.UnsignedTileData = value&types.Bit4 != 0
	c.BackgroundTileMapAddress = 0x9800
	if value&types.Bit3 != 0 {
		c.BackgroundTileMapAddress = 0x9C00
	}
	c.SpriteSize = 8 + value&types.Bit2<<1
	c.SpriteEnabled = value&types.Bit1 != 0
	c.BackgroundEnabled = value&types.Bit0 != 0
}

// Read encodes the controller back into its register value.
func (c *Controller) Read() uint8 {
	var value uint8
	if c.Enabled {
		value |= types.Bit7
	}
	if c.WindowTileMapAddress == 0x9C00 {
		value |= types.Bit6
	}
	if c.WindowEnabled {
		value |= types.Bit5
	}
	if c.UnsignedTileData {
		value |= types.Bit4
	}
	if c.BackgroundTileMapAddress == 0x9C00 {
		value |= types.Bit3
	}
	if c.SpriteSize == 16 {
		value |= types.Bit2
	}
	if c.SpriteEnabled {
		value |= types.Bit1
	}
	if c.BackgroundEnabled {
		value |= types.Bit0
	}
	return value
}

// TileDataAddress returns the address of the first byte of tile
// tileNo, honouring the addressing mode selected by LCDC.4.
func (c *Controller) TileDataAddress(tileNo uint8) uint16 {
	if c.UnsignedTileData {
		return 0x8000 + uint16(tileNo)<<4
	}
	return uint16(int32(0x9000) + int32(int8(tileNo))<<4)
}

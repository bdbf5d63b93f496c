package palette

import "strings"

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
	// Red is a red palette.
	Red
	// Yellow is a yellow palette.
	Yellow
)

// Palette is the table of four RGB shades the DMG palette
// registers (BGP, OBP0, OBP1) select from. Shade 0 is the
// lightest.
type Palette struct {
	Colors [4][3]uint8
}

// Palettes is a list of all available palettes.
var Palettes = []Palette{
	Greyscale: {
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	Green: {
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	Red: {
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	Yellow: {
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

var names = map[string]int{
	"greyscale": Greyscale,
	"green":     Green,
	"red":       Red,
	"yellow":    Yellow,
}

// ByName returns the palette called name (case-insensitive).
func ByName(name string) (Palette, bool) {
	i, ok := names[strings.ToLower(name)]
	if !ok {
		return Palette{}, false
	}
	return Palettes[i], true
}

// Shade maps colour index through a DMG palette register and
// returns the resulting RGB value.
func (p Palette) Shade(register, index uint8) [3]uint8 {
	return p.Colors[register>>((index&3)*2)&3]
}

package types

import "strings"

type Model int // The Model used in emulation.

const (
	Unset  Model = iota // Unset - Model hasn't been set - behaves as DMGABC
	DMG0                // DMG0 - early Game Boy, only released in Japan
	DMGABC              // DMGABC - Standard Game Boy
	CGB0                // CGB0 - early Game Boy Colour, only released in Japan
	CGBABC              // CGBABC - Standard Game Boy Colour
)

var ModelNames = map[Model]string{
	Unset:  "Unset",
	DMG0:   "DMG0",
	DMGABC: "DMG",
	CGB0:   "CGB0",
	CGBABC: "CGB",
}

// StringToModel converts a string to a Model.
func StringToModel(s string) Model {
	for m, n := range ModelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}

	return Unset
}

func (m Model) String() string {
	return ModelNames[m]
}

// IsCGB reports whether the model renders with the colour
// pipeline (palette RAM, VRAM banking, tile attributes).
func (m Model) IsCGB() bool {
	return m >= CGB0
}

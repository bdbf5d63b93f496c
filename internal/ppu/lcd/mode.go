package lcd

// Mode represents a mode of the LCD, as reported in STAT bits 0-1.
type Mode uint8

const (
	// HBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM scan mode. The CPU can access the display RAM but not OAM.
	OAM
	// VRAM is the pixel transfer (drawing) mode. The CPU can access neither.
	VRAM
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAM:
		return "OAM Scan"
	case VRAM:
		return "Drawing"
	}
	return "Unknown"
}

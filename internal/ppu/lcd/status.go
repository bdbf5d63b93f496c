package lcd

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// Status represents the LCD status register. It contains information about the
// current state of the LCD controller. Its value is stored in the status
// register (0xFF41) as follows:
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3, see below) (Read Only)
//		0: During H-Blank
//		1: During V-Blank
//		2: During Searching OAM-RAM
//		3: During Transferring Data to LCD Driver
type Status struct {
	CoincidenceInterrupt bool // LYC=LY interrupt source enabled
	OAMInterrupt         bool // mode 2 interrupt source enabled
	VBlankInterrupt      bool // mode 1 interrupt source enabled
	HBlankInterrupt      bool // mode 0 interrupt source enabled
	Coincidence          bool // LY == LYC
	Mode                 Mode // current mode
}

// Write writes the interrupt source selection. Bits 0-2 are
// read-only and bit 7 is unused, so they are ignored.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = value&types.Bit6 != 0
	s.OAMInterrupt = value&types.Bit5 != 0
	s.VBlankInterrupt = value&types.Bit4 != 0
	s.HBlankInterrupt = value&types.Bit3 != 0
}

// Read returns the value of the status register.
func (s *Status) Read() uint8 {
	value := uint8(types.Bit7) // bit 7 is always set
	if s.CoincidenceInterrupt {
		value |= types.Bit6
	}
	if s.OAMInterrupt {
		value |= types.Bit5
	}
	if s.VBlankInterrupt {
		value |= types.Bit4
	}
	if s.HBlankInterrupt {
		value |= types.Bit3
	}
	if s.Coincidence {
		value |= types.Bit2
	}
	return value | uint8(s.Mode)&0x03
}

// ModeInterrupt reports whether the interrupt source for the
// current mode is enabled. Drawing has no source.
func (s *Status) ModeInterrupt() bool {
	switch s.Mode {
	case HBlank:
		return s.HBlankInterrupt
	case VBlank:
		return s.VBlankInterrupt
	case OAM:
		return s.OAMInterrupt
	}
	return false
}

// Line returns the combined STAT condition. A STAT interrupt is
// requested when it goes from false to true.
func (s *Status) Line() bool {
	return s.CoincidenceInterrupt && s.Coincidence || s.ModeInterrupt()
}

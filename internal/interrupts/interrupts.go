package interrupts

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode (lcd.VBlank).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested on a rising edge of the STAT line
	// (types.STAT).
	LCDFlag = types.Bit1
)

// Service holds the interrupt request and enable registers
// on behalf of the CPU. The PPU never writes to it directly,
// its requests are collected by the bus and forwarded here.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Request requests the specified interrupts, by setting
// the corresponding bits in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// Pending returns the interrupts that are both requested
// and enabled.
func (s *Service) Pending() uint8 {
	return s.Flag & s.Enable & 0x1F
}

// Acknowledge clears the given request, as the CPU does when
// it dispatches to the interrupt vector.
func (s *Service) Acknowledge(flag uint8) {
	s.Flag &^= flag
}

// Read returns the value of the IF or IE register.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag | 0xE0 // the upper 3 bits are always set
	case types.IE:
		return s.Enable
	}
	return 0xFF
}

// Write writes to the IF or IE register.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value & 0x1F // only the first 5 bits are used
	case types.IE:
		s.Enable = value
	}
}

var _ types.Stater = (*Service)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Load(st *types.State) {
	s.Flag = st.Read8()
	s.Enable = st.Read8()
}

// Save implements the types.Stater interface.
//
// The values are saved in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Save(st *types.State) {
	st.Write8(s.Flag)
	st.Write8(s.Enable)
}

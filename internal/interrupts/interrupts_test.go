package interrupts

import (
	"testing"

	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

func TestService(t *testing.T) {
	s := NewService()
	s.Request(VBlankFlag | LCDFlag | 0xE0)
	if got := s.Read(types.IF); got != 0xE3 {
		t.Errorf("expected IF 0xE3, got 0x%02X", got)
	}
	if s.Pending() != 0 {
		t.Errorf("expected nothing pending with IE clear")
	}

	s.Write(types.IE, LCDFlag)
	if s.Pending() != LCDFlag {
		t.Errorf("expected LCD interrupt pending, got 0x%02X", s.Pending())
	}
	s.Acknowledge(LCDFlag)
	if s.Pending() != 0 || s.Flag != VBlankFlag {
		t.Errorf("expected only VBlank to remain requested, got 0x%02X", s.Flag)
	}

	s.Write(types.IF, 0xFF)
	if s.Flag != 0x1F {
		t.Errorf("expected IF to keep only 5 bits, got 0x%02X", s.Flag)
	}

	st := types.NewState()
	s.Save(st)
	loaded := NewService()
	loaded.Load(types.StateFromBytes(st.Bytes()))
	if *loaded != *s {
		t.Errorf("expected %+v, got %+v", s, loaded)
	}
}

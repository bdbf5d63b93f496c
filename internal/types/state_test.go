package types

import (
	"errors"
	"testing"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0x3456)
	s.Write32(0x789ABCDE)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	r := StateFromBytes(s.Bytes())
	if v := r.Read8(); v != 0x12 {
		t.Errorf("expected 0x12, got 0x%02X", v)
	}
	if v := r.Read16(); v != 0x3456 {
		t.Errorf("expected 0x3456, got 0x%04X", v)
	}
	if v := r.Read32(); v != 0x789ABCDE {
		t.Errorf("expected 0x789ABCDE, got 0x%08X", v)
	}
	if !r.ReadBool() {
		t.Errorf("expected true, got false")
	}
	data := make([]byte, 3)
	r.ReadData(data)
	if data[0] != 1 || data[1] != 2 || data[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", data)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("short", func(t *testing.T) {
		r := StateFromBytes([]byte{0xAA})
		if v := r.Read16(); v != 0 {
			t.Errorf("expected 0 from short read, got 0x%04X", v)
		}
		if !errors.Is(r.Err(), ErrShortState) {
			t.Errorf("expected ErrShortState, got %v", r.Err())
		}
		// errors are sticky
		if v := r.Read8(); v != 0 {
			t.Errorf("expected 0 after error, got 0x%02X", v)
		}
	})
}

package lcd

import "testing"

func TestController(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		c := NewController(0x91)
		if !c.Enabled || !c.BackgroundEnabled || !c.UnsignedTileData {
			t.Errorf("expected LCD, BG and unsigned tile data enabled for 0x91")
		}
		if c.WindowEnabled || c.SpriteEnabled || c.SpriteSize != 8 {
			t.Errorf("expected window and objects disabled, 8px objects for 0x91")
		}
		if c.BackgroundTileMapAddress != 0x9800 || c.WindowTileMapAddress != 0x9800 {
			t.Errorf("expected both maps at 0x9800")
		}
	})
	t.Run("round trip", func(t *testing.T) {
		c := NewController(0)
		for v := 0; v < 256; v++ {
			c.Write(uint8(v))
			if got := c.Read(); got != uint8(v) {
				t.Errorf("expected 0x%02X, got 0x%02X", v, got)
			}
		}
	})
	t.Run("tile data address", func(t *testing.T) {
		tests := []struct {
			unsigned bool
			tileNo   uint8
			want     uint16
		}{
			{true, 0x00, 0x8000},
			{true, 0x80, 0x8800},
			{true, 0xFF, 0x8FF0},
			{false, 0x00, 0x9000},
			{false, 0x7F, 0x97F0},
			{false, 0x80, 0x8800},
			{false, 0xFF, 0x8FF0},
		}
		c := NewController(0)
		for _, tt := range tests {
			c.UnsignedTileData = tt.unsigned
			if got := c.TileDataAddress(tt.tileNo); got != tt.want {
				t.Errorf("tile 0x%02X (unsigned=%v): expected 0x%04X, got 0x%04X", tt.tileNo, tt.unsigned, tt.want, got)
			}
		}
	})
}

func TestStatus(t *testing.T) {
	s := &Status{}
	s.Write(0xFF)
	s.Mode = VRAM
	if got := s.Read(); got != 0xFB {
		t.Errorf("expected 0xFB (coincidence clear, mode 3), got 0x%02X", got)
	}
	if s.Line() {
		t.Errorf("expected no STAT line during drawing without coincidence")
	}

	s.Write(0)
	if got := s.Read(); got != 0x83 {
		t.Errorf("expected bit 7 to read back set, got 0x%02X", got)
	}

	s.Mode = HBlank
	s.HBlankInterrupt = true
	if !s.Line() {
		t.Errorf("expected STAT line with HBlank source enabled in HBlank")
	}
	s.HBlankInterrupt = false
	s.Coincidence, s.CoincidenceInterrupt = true, true
	if !s.Line() {
		t.Errorf("expected STAT line on coincidence")
	}
	if s.Mode.String() != "HBlank" || VRAM.String() != "Drawing" {
		t.Errorf("unexpected mode names %q %q", s.Mode, VRAM)
	}
}

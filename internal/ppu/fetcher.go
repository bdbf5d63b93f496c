package ppu

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// FetcherState represents the phase of the background/window pixel
// fetcher. GetTile, GetDataLow and GetDataHigh take 2 dots each,
// PushToFIFO is retried every dot until the whole row has gone into
// the background FIFO.
type FetcherState uint8

const (
	GetTile     FetcherState = iota // Read the tile number (and CGB attributes) from the tile map
	GetDataLow                      // Read the low bit-plane of the tile row
	GetDataHigh                     // Read the high bit-plane of the tile row
	PushToFIFO                      // Decode the row and push it into the BG FIFO
)

func (s FetcherState) String() string {
	switch s {
	case GetTile:
		return "GetTile"
	case GetDataLow:
		return "GetDataLow"
	case GetDataHigh:
		return "GetDataHigh"
	case PushToFIFO:
		return "PushToFIFO"
	}
	return "Unknown"
}

// A FIFOEntry represents a single pixel entry in a FIFO.
type FIFOEntry struct {
	Color      uint8 // colour index (0-3)
	Attributes uint8 // CGB tile attributes, or OAM attributes for objects
}

// fetcher holds the state of the background/window pixel fetcher.
type fetcher struct {
	state  FetcherState
	ticks  int  // dots spent in the current phase
	window bool // fetching from the window tile map

	mapX, mapY uint8 // position in the 256x256 tile map, in pixels

	tileNo    uint8
	attr      uint8
	low, high uint8

	pushed  int // pixels of the current row consumed
	discard int // pixels still to be dropped before pushing
}

// startFetcher points the fetcher at the background for a new line.
// The first SCX % 8 pixels fetched are discarded.
func (p *PPU) startFetcher() {
	p.fetcher = fetcher{
		mapX:    p.scx,
		mapY:    p.ly + p.scy,
		discard: int(p.scx & 7),
	}
}

// stepFetcher advances the fetcher by one dot.
func (p *PPU) stepFetcher() {
	f := &p.fetcher

	if f.state == PushToFIFO {
		p.pushRow()
		return
	}

	// every fetch phase takes 2 dots, the read happens on the second
	f.ticks++
	if f.ticks < 2 {
		return
	}
	f.ticks = 0

	switch f.state {
	case GetTile:
		p.fetchTileNo()
	case GetDataLow:
		f.low = p.fetchTileData(0)
	case GetDataHigh:
		f.high = p.fetchTileData(1)
	}
	f.state++
}

// fetchTileNo reads the tile number for the fetcher's map position, and
// on CGB the tile attributes stored at the same address in bank 1.
func (p *PPU) fetchTileNo() {
	f := &p.fetcher

	base := p.lcdc.BackgroundTileMapAddress
	if f.window {
		base = p.lcdc.WindowTileMapAddress
	}
	address := base - 0x8000
	address += uint16(f.mapY>>3) << 5 // Y pos
	address += uint16(f.mapX>>3) & 31 // X pos

	f.tileNo = p.vram[0][address]
	f.attr = 0
	if p.cgb {
		f.attr = p.vram[1][address]
	}
}

// fetchTileData reads one bit-plane of the current tile's row.
//
//	Bit 6 - Vertical Flip (CGB)
//	Bit 3 - VRAM Bank     (CGB)
func (p *PPU) fetchTileData(plane uint16) uint8 {
	f := &p.fetcher

	row := f.mapY & 7
	if f.attr&types.Bit6 != 0 {
		row = 7 - row
	}

	address := p.lcdc.TileDataAddress(f.tileNo) - 0x8000
	address += uint16(row)<<1 | plane

	return p.vram[f.attr&types.Bit3>>3][address]
}

// pushRow pushes as much of the fetched row as fits into the BG FIFO,
// dropping any pending discard first. Once all 8 pixels have been
// consumed the fetcher moves on to the next tile.
func (p *PPU) pushRow() {
	f := &p.fetcher

	for f.pushed < 8 {
		if f.discard > 0 {
			f.discard--
			f.pushed++
			continue
		}
		if p.bgFIFO.Full() {
			return // retry next dot
		}

		bit := 7 - f.pushed
		if f.attr&types.Bit5 != 0 { // horizontal flip (CGB)
			bit = f.pushed
		}
		p.bgFIFO.Push(FIFOEntry{
			Color:      (f.low>>bit)&1 | (f.high>>bit)&1<<1,
			Attributes: f.attr,
		})
		f.pushed++
	}

	f.mapX += 8
	f.pushed = 0
	f.state = GetTile
}

// checkWindow switches the fetcher over to the window once the cursor
// reaches WX-7 on a line at or below WY. The switch is one-way for the
// rest of the line: the BG FIFO is flushed and the fetcher restarts from
// the first window tile of the current window line.
//
// The first (WX-7) % 8 pixels of the first window tile are discarded.
// When WX < 7 the window starts left of the screen, and 7-WX pixels
// are discarded instead.
func (p *PPU) checkWindow() {
	if p.windowActive || !p.lcdc.WindowEnabled || p.ly < p.wy {
		return
	}

	start := int(p.wx) - 7
	if start < 0 {
		start = 0
	}
	if p.cursor < start {
		return
	}

	p.windowActive = true
	p.bgFIFO.Reset()

	discard := (int(p.wx) - 7) & 7
	if p.wx < 7 {
		discard = 7 - int(p.wx)
	}
	p.fetcher = fetcher{
		window:  true,
		mapY:    p.windowLine,
		discard: discard,
	}
}

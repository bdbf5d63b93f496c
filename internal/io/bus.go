// Package io provides a minimal bus for driving the PPU: it owns
// work RAM, the interrupt registers and the DMA engines, and ticks the
// PPU 4 dots for every machine cycle. It stands in for the CPU's memory
// map, which lives outside this module.
package io

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/interrupts"
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu"
	"github.com/thelolagemann/gomeboy-ppu/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
	"github.com/thelolagemann/gomeboy-ppu/pkg/log"
)

// DotsPerMCycle is the number of dots the PPU advances for every
// machine cycle (in normal speed).
const DotsPerMCycle = 4

// Bus connects the PPU to the rest of the system.
type Bus struct {
	ppu        *ppu.PPU
	interrupts *interrupts.Service
	wram       [0x2000]uint8
	log        log.Logger

	cgb bool

	// OAM DMA
	dmaActive   bool
	dmaRegister uint8
	dmaSource   uint16
	dmaOffset   uint8

	// VRAM DMA (CGB)
	hdmaSource      uint16
	hdmaDestination uint16
	hdmaRemaining   uint8 // blocks of 16 bytes left to copy
	hdmaActive      bool  // HBlank transfer in progress
	lastMode        lcd.Mode
}

// NewBus returns a new Bus driving p.
func NewBus(p *ppu.PPU, logger log.Logger) *Bus {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Bus{
		ppu:        p,
		interrupts: interrupts.NewService(),
		log:        logger,
		cgb:        p.Model().IsCGB(),
		lastMode:   p.Mode(),
	}
}

// PPU returns the PPU attached to the bus.
func (b *Bus) PPU() *ppu.PPU {
	return b.ppu
}

// Interrupts returns the interrupt registers.
func (b *Bus) Interrupts() *interrupts.Service {
	return b.interrupts
}

// Tick advances the system by the given number of machine cycles.
// Interrupt requests raised by the PPU are collected into IF after
// every cycle.
func (b *Bus) Tick(mCycles int) {
	for ; mCycles > 0; mCycles-- {
		b.ppu.Tick(DotsPerMCycle)
		b.interrupts.Request(b.ppu.Interrupts())

		if b.dmaActive {
			b.doDMATransfer()
		}

		mode := b.ppu.Mode()
		if b.hdmaActive && mode == lcd.HBlank && b.lastMode != lcd.HBlank && b.ppu.LY() < ppu.ScreenHeight {
			b.doHDMATransfer()
		}
		b.lastMode = mode
	}
}

// Read returns the value at address.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return b.ppu.Read(address)
	case address >= 0xC000 && address <= 0xDFFF:
		return b.wram[address-0xC000]
	case address >= 0xE000 && address <= 0xFDFF:
		return b.wram[address-0xE000]
	case address >= 0xFE00 && address <= 0xFE9F:
		if b.dmaActive {
			return 0xFF
		}
		return b.ppu.Read(address)
	case address >= 0xFF40 && address <= 0xFF4B:
		if address == types.DMA {
			return b.dmaRegister
		}
		return b.ppu.Read(address)
	}

	switch address {
	case types.IF, types.IE:
		return b.interrupts.Read(address)
	case types.VBK, types.BCPS, types.BCPD, types.OCPS, types.OCPD:
		return b.ppu.Read(address)
	case types.HDMA5:
		return b.hdmaStatus()
	}

	return 0xFF
}

// Write writes value to address.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		b.ppu.Write(address, value)
		return
	case address >= 0xC000 && address <= 0xDFFF:
		b.wram[address-0xC000] = value
		return
	case address >= 0xE000 && address <= 0xFDFF:
		b.wram[address-0xE000] = value
		return
	case address >= 0xFE00 && address <= 0xFE9F:
		if !b.dmaActive {
			b.ppu.Write(address, value)
		}
		return
	case address >= 0xFF40 && address <= 0xFF4B:
		if address == types.DMA {
			b.startDMATransfer(value)
			return
		}
		b.ppu.Write(address, value)
		return
	}

	switch address {
	case types.IF, types.IE:
		b.interrupts.Write(address, value)
	case types.VBK, types.BCPS, types.BCPD, types.OCPS, types.OCPD:
		b.ppu.Write(address, value)
	case types.HDMA1, types.HDMA2, types.HDMA3, types.HDMA4, types.HDMA5:
		b.writeHDMA(address, value)
	default:
		b.log.Debugf("io: ignoring write 0x%02X to unmapped address 0x%04X", value, address)
	}
}

// Save saves the state of the bus, the PPU and any DMA in flight.
func (b *Bus) Save(s *types.State) {
	b.interrupts.Save(s)
	s.WriteData(b.wram[:])
	b.ppu.Save(s)

	s.WriteBool(b.dmaActive)
	s.Write8(b.dmaRegister)
	s.Write8(b.dmaOffset)
	s.WriteBool(b.hdmaActive)
	s.Write16(b.hdmaSource)
	s.Write16(b.hdmaDestination)
	s.Write8(b.hdmaRemaining)
}

// Load restores a state written by Save.
func (b *Bus) Load(s *types.State) {
	b.interrupts.Load(s)
	s.ReadData(b.wram[:])
	b.ppu.Load(s)

	b.dmaActive = s.ReadBool()
	b.dmaRegister = s.Read8()
	b.dmaSource = uint16(b.dmaRegister) << 8
	b.dmaOffset = s.Read8()
	if b.dmaOffset >= oamSize {
		b.dmaActive = false
	}
	b.hdmaActive = s.ReadBool() && b.cgb
	b.hdmaSource = s.Read16()
	b.hdmaDestination = s.Read16()
	b.hdmaRemaining = s.Read8()
	b.lastMode = b.ppu.Mode()
}

var _ types.Stater = (*Bus)(nil)

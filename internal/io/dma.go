package io

import (
	"github.com/thelolagemann/gomeboy-ppu/internal/types"
)

// oamSize is the number of bytes copied by an OAM DMA transfer.
const oamSize = 160

// startDMATransfer initiates an OAM DMA transfer from page value. A
// write while a transfer is running restarts it.
func (b *Bus) startDMATransfer(value uint8) {
	if b.dmaActive {
		b.log.Debugf("io: OAM DMA restarted from 0x%02X00 at offset %d", value, b.dmaOffset)
	}
	b.dmaRegister = value
	b.dmaSource = uint16(value) << 8
	b.dmaOffset = 0
	b.dmaActive = true
}

// doDMATransfer transfers a single byte from the source to the
// PPU's OAM.
func (b *Bus) doDMATransfer() {
	b.ppu.DMAWriteOAM(b.dmaOffset, b.dmaRead(b.dmaSource+uint16(b.dmaOffset)))
	b.dmaOffset++

	// are we at the end of the transfer?
	if b.dmaOffset == oamSize {
		b.dmaActive = false
	}
}

// DMAActive reports whether an OAM DMA transfer is in progress.
func (b *Bus) DMAActive() bool {
	return b.dmaActive
}

// dmaRead reads a DMA source byte. Sources from 0xE000 upwards read
// from work RAM, the same as the echo region.
func (b *Bus) dmaRead(address uint16) uint8 {
	if address >= 0xE000 {
		address -= 0x2000
	}
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return b.ppu.DMAReadVRAM(address)
	case address >= 0xC000 && address <= 0xDFFF:
		return b.wram[address-0xC000]
	}
	return 0xFF
}

// writeHDMA handles writes to the VRAM DMA registers (CGB only).
func (b *Bus) writeHDMA(address uint16, value uint8) {
	if !b.cgb {
		return
	}

	switch address {
	case types.HDMA1:
		b.hdmaSource = b.hdmaSource&0x00FF | uint16(value)<<8
	case types.HDMA2:
		b.hdmaSource = b.hdmaSource&0xFF00 | uint16(value&0xF0)
	case types.HDMA3:
		b.hdmaDestination = b.hdmaDestination&0x00FF | uint16(value&0x1F)<<8
	case types.HDMA4:
		b.hdmaDestination = b.hdmaDestination&0xFF00 | uint16(value&0xF0)
	case types.HDMA5:
		// writing bit 7 clear during an HBlank transfer cancels it
		if b.hdmaActive && value&types.Bit7 == 0 {
			b.hdmaActive = false
			return
		}

		length := value&0x7F + 1
		if value&types.Bit7 != 0 {
			b.hdmaRemaining = length
			b.hdmaActive = true
			return
		}

		// general purpose transfers copy everything at once, the CPU
		// being halted until they are done
		for i := uint8(0); i < length; i++ {
			b.copyHDMABlock()
		}
		b.hdmaRemaining = 0
		b.Tick(int(length) * 8)
	}
}

// doHDMATransfer copies a single block at the start of HBlank.
func (b *Bus) doHDMATransfer() {
	b.copyHDMABlock()
	b.hdmaRemaining--
	if b.hdmaRemaining == 0 {
		b.hdmaActive = false
	}
}

// copyHDMABlock copies 16 bytes from the source to VRAM through the
// PPU's DMA path.
func (b *Bus) copyHDMABlock() {
	for j := 0; j < 16; j++ {
		b.ppu.DMAWriteVRAM(0x8000|b.hdmaDestination&0x1FFF, b.dmaRead(b.hdmaSource))

		// increment the source and destination
		b.hdmaSource++
		b.hdmaDestination++
	}
}

// hdmaStatus returns the value of HDMA5: 0xFF when no transfer is
// running, otherwise the number of blocks left minus 1.
func (b *Bus) hdmaStatus() uint8 {
	if !b.cgb || !b.hdmaActive {
		return 0xFF
	}
	return (b.hdmaRemaining - 1) & 0x7F
}

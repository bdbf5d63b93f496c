package types

// HardwareAddress represents the address of a hardware register
// visible on the bus. Only the registers the video subsystem
// and its reference bus respond to are listed here.
type HardwareAddress = uint16

const (
	// IF is the address of the interrupt request register. Bit 0
	// is the VBlank request and bit 1 the LCD STAT request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	IF HardwareAddress = 0xFF0F
	// LCDC is the address of the LCDC hardware register. The LCDC
	// hardware register is used to control the LCD.
	//
	// The register is set as follows:
	//
	//  Bit 7: LCD Enable             (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display (for CGB see below) (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register. It reports
	// the mode the LCD is in and selects the STAT interrupt sources.
	//
	//  Bit 6: LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
	//  Bit 5: mode 2 OAM Interrupt         (1=Enable) (Read/Write)
	//  Bit 4: mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
	//  Bit 3: mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
	//  Bit 2: Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
	//  Bit 1-0: mode Flag       (mode 0-3)            (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the vertical scroll position of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the horizontal scroll position of the background.
	SCX HardwareAddress = 0xFF43
	// LY is the line currently being processed (0-153). It is
	// read-only, writes are ignored.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY every dot. When they match the
	// coincidence flag in STAT is set.
	LYC HardwareAddress = 0xFF45
	// DMA starts an OAM DMA transfer from the page written to it.
	// It belongs to the bus, not the PPU.
	DMA HardwareAddress = 0xFF46
	// BGP is the DMG background palette.
	//
	//  Bit 7-6 - Shade for Color Number 3
	//  Bit 5-4 - Shade for Color Number 2
	//  Bit 3-2 - Shade for Color Number 1
	//  Bit 1-0 - Shade for Color Number 0
	BGP HardwareAddress = 0xFF47
	// OBP0 is the DMG object palette 0. Same layout as BGP, colour
	// number 0 is transparent.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the DMG object palette 1.
	OBP1 HardwareAddress = 0xFF49
	// WY is the window's top edge.
	WY HardwareAddress = 0xFF4A
	// WX is the window's left edge plus 7.
	WX HardwareAddress = 0xFF4B
	// VBK selects the VRAM bank the CPU sees (CGB only). Only bit 0
	// is writable, the rest read back as 1.
	VBK HardwareAddress = 0xFF4F
	// HDMA1 is the high byte of the VRAM DMA source address (CGB only).
	HDMA1 HardwareAddress = 0xFF51
	// HDMA2 is the low byte of the VRAM DMA source address. The lower
	// 4 bits are ignored.
	HDMA2 HardwareAddress = 0xFF52
	// HDMA3 is the high byte of the VRAM DMA destination address. The
	// upper 3 bits are ignored, the destination is always in VRAM.
	HDMA3 HardwareAddress = 0xFF53
	// HDMA4 is the low byte of the VRAM DMA destination address. The
	// lower 4 bits are ignored.
	HDMA4 HardwareAddress = 0xFF54
	// HDMA5 starts a VRAM DMA transfer.
	//
	//  Bit 7   - Transfer Mode (0=General Purpose, 1=H-Blank)
	//  Bit 6-0 - Transfer Length, in blocks of 16 bytes, minus 1
	HDMA5 HardwareAddress = 0xFF55
	// BCPS selects the byte of background palette RAM accessed
	// through BCPD (CGB only).
	//
	//  Bit 7   - Auto Increment  (0=Disabled, 1=Increment after Writing)
	//  Bit 5-0 - Byte Index (00-3F)
	BCPS HardwareAddress = 0xFF68
	// BCPD reads or writes the background palette RAM byte selected
	// by BCPS.
	BCPD HardwareAddress = 0xFF69
	// OCPS is the object equivalent of BCPS.
	OCPS HardwareAddress = 0xFF6A
	// OCPD is the object equivalent of BCPD.
	OCPD HardwareAddress = 0xFF6B
	// IE is the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)

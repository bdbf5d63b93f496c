package ppu

import (
	"image"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-ppu/pkg/utils"
)

// FrameHash returns the xxhash of the framebuffer, so that two frames
// can be compared without holding on to either of them.
func (p *PPU) FrameHash() uint64 {
	d := xxhash.New()
	for y := range p.framebuffer {
		for x := range p.framebuffer[y] {
			d.Write(p.framebuffer[y][x][:])
		}
	}
	return d.Sum64()
}

// Image returns a copy of the framebuffer as an image.
func (p *PPU) Image() *image.RGBA {
	return utils.NewRGBImage(ScreenWidth, ScreenHeight, func(x, y int) [3]uint8 {
		return p.framebuffer[y][x]
	})
}

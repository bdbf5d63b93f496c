package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// NewRGBImage builds an opaque width x height image, asking pixel
// for the colour of every coordinate.
func NewRGBImage(width, height int, pixel func(x, y int) [3]uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixel(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xFF})
		}
	}
	return img
}

// ScaleImage returns img enlarged by factor using nearest neighbour
// sampling, so individual dots stay sharp.
func ScaleImage(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SaveImage encodes img to filename, as BMP when the extension is
// .bmp and as PNG otherwise.
func SaveImage(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}

	return file.Close()
}

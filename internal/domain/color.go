package domain

import "image/color"

// Color is a 0xRRGGBB value as used by the render host.
type Color uint32

const (
	ColorBackground Color = 0x000000
	ColorSnake      Color = 0x00ff00
	ColorApple      Color = 0xff0000
)

func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xff,
	}
}

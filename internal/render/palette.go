package render

import "image/color"

// Empty cells first, then species A through E.
var speciesColors = []color.RGBA{
	{R: 64, G: 64, B: 64, A: 255},
	{R: 255, G: 200, B: 0, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
}

// Palette returns one color per cell value for a grid with the given number
// of species. Index 0 is Empty.
func Palette(species int) []color.RGBA {
	if species < 1 {
		species = 1
	}
	if species >= len(speciesColors) {
		species = len(speciesColors) - 1
	}
	return append([]color.RGBA(nil), speciesColors[:species+1]...)
}

// Darker scales a color towards black, used for cell outlines.
func Darker(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(int(c.R) * 7 / 10),
		G: uint8(int(c.G) * 7 / 10),
		B: uint8(int(c.B) * 7 / 10),
		A: c.A,
	}
}

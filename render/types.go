// Package render defines output formats, rendering options, and sentinel
// errors for the renderer collaborator.
package render

import (
	"errors"
	"image/color"
)

// ErrUnknownFormat indicates a format name outside svg/png.
var ErrUnknownFormat = errors.New("render: unknown output format")

// Format names an output artifact encoding.
type Format string

const (
	// SVG emits a vector image.
	SVG Format = "svg"
	// PNG emits a raster image.
	PNG Format = "png"
)

// ParseFormat maps a user-supplied name onto a Format.
// Returns ErrUnknownFormat for anything but "svg" or "png".
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case SVG:
		return SVG, nil
	case PNG:
		return PNG, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Viewport bounds: the fixed square window every level is drawn into.
const (
	viewMin = -1.0
	viewMax = +1.0
	// gridStep spaces the optional background grid lines.
	gridStep = 0.5
)

// Stroke styling constants shared by both encoders.
const (
	// strokeStyle keeps polylines unfilled with rounded caps.
	strokeStyle = "fill:none;stroke-linecap:round;stroke-linejoin:round"
	gridColor   = "#a0a0a0"
)

// palette is the fixed color cycle used when Options.ColorCycle is set.
// Walking it in drawing order keeps colored renders reproducible.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
}

// paletteRGBA mirrors palette for the raster encoder.
var paletteRGBA = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
}

// Options configures rendering. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Size is the raster edge length in pixels (PNG only; the viewport is
	// square, so width = height = Size).
	Size int

	// StrokeWidth is the line width in viewport units. The raster encoder
	// converts it to pixels via Size/2.
	StrokeWidth float64

	// Grid draws light background grid lines every 0.5 units.
	Grid bool

	// ColorCycle colors successive polylines from the fixed palette
	// instead of black.
	ColorCycle bool
}

// DefaultOptions returns the options used for the reference renderings:
// 800 px rasters, hairline strokes, no grid, black lines.
func DefaultOptions() Options {
	return Options{
		Size:        800,
		StrokeWidth: 0.004,
		Grid:        false,
		ColorCycle:  false,
	}
}

// strokeColor returns the SVG color of polyline i under o.
func (o Options) strokeColor(i int) string {
	if !o.ColorCycle {
		return "#000000"
	}

	return palette[i%len(palette)]
}

// strokeRGBA returns the raster color of polyline i under o.
func (o Options) strokeRGBA(i int) color.RGBA {
	if !o.ColorCycle {
		return color.RGBA{A: 0xff}
	}

	return paletteRGBA[i%len(paletteRGBA)]
}

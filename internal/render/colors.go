package render

import "math/bits"

// 256-color palette indices used by the cell painter.
const (
	// emptyBackground is the background for cells holding no tile.
	emptyBackground = 237
	// darkForeground and lightForeground are the two text colors;
	// one is picked per tile for contrast against its background.
	darkForeground  = 16
	lightForeground = 231

	// brightThreshold splits the tile ramp: backgrounds at or above it
	// are light enough to need dark text.
	brightThreshold = 209

	// extendedBase and extendedCap bound the bit-length walk used for
	// values beyond the fixed table.
	extendedBase = 160
	extendedStep = 6
	extendedCap  = 201
)

// tileBackgrounds maps known powers of two to background color indices.
// The ramp runs warm light shades for small tiles into saturated reds
// and yellows for the big ones.
var tileBackgrounds = map[int]int{
	2:    230,
	4:    223,
	8:    216,
	16:   209,
	32:   202,
	64:   196,
	128:  228,
	256:  227,
	512:  226,
	1024: 220,
	2048: 214,
	4096: 208,
	8192: 202,
}

// Background returns the 256-color background index for a tile value.
// Values beyond the fixed table extend the ramp by walking the value's
// bit length, capped so indices stay inside the palette.
func Background(value int) int {
	if value == 0 {
		return emptyBackground
	}
	if bg, ok := tileBackgrounds[value]; ok {
		return bg
	}

	// 8192 is the last table entry; bits.Len(8192) == 14.
	steps := bits.Len(uint(value)) - 14
	if steps < 1 {
		steps = 1
	}
	bg := extendedBase + extendedStep*steps
	if bg > extendedCap {
		bg = extendedCap
	}
	return bg
}

// Foreground picks dark or light text for contrast against the given
// background index.
func Foreground(bg int) int {
	if bg >= brightThreshold {
		return darkForeground
	}
	return lightForeground
}

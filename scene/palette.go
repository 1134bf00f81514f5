package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a single palette color as an [r, g, b] triplet in 0..255.
type RGB [3]int

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	col := colorful.Color{
		R: float64(c[0]) / 255.0,
		G: float64(c[1]) / 255.0,
		B: float64(c[2]) / 255.0,
	}
	return col.Hex()
}

// HexToRGB parses a "#rrggbb" (or "#rgb") string into an RGB triplet.
func HexToRGB(hex string) (RGB, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := col.RGB255()
	return RGB{int(r), int(g), int(b)}, nil
}

// Palette is an ordered list of colors referenced by index from segment
// color arrays.
type Palette []RGB

// DefaultPalette returns the six-color palette every new scene starts with:
// red, yellow, blue, green, white, black, in that fixed order.
func DefaultPalette() Palette {
	return Palette{
		{255, 0, 0},
		{255, 255, 0},
		{0, 0, 255},
		{0, 255, 0},
		{255, 255, 255},
		{0, 0, 0},
	}
}

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// HexColors returns the palette as hex strings, one per slot.
func (p Palette) HexColors() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

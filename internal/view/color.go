package view

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"ribbit/internal/track"
)

// unknownPurity is the intensity used for regions without a purity score.
const unknownPurity = 0.5

// Palette colors regions by source index, with purity as intensity.
type Palette struct {
	colors []colorful.Color
	bg     colorful.Color
}

// NewPalette parses #rrggbb colors. bg is what low-purity colors fade into.
func NewPalette(colors []string, bg string) (Palette, error) {
	p := Palette{}
	var err error
	if p.bg, err = colorful.Hex(bg); err != nil {
		return Palette{}, errors.Wrapf(err, "background %q", bg)
	}
	for _, c := range colors {
		col, err := colorful.Hex(c)
		if err != nil {
			return Palette{}, errors.Wrapf(err, "palette %q", c)
		}
		p.colors = append(p.colors, col)
	}
	if len(p.colors) == 0 {
		return Palette{}, errors.New("empty palette")
	}
	return p, nil
}

func (p Palette) base(r track.Region) colorful.Color {
	i := r.Index % len(p.colors)
	if i < 0 {
		i += len(p.colors)
	}
	return p.colors[i]
}

func intensity(r track.Region) float64 {
	if !r.HasPurity() {
		return unknownPurity
	}
	return math.Max(0, math.Min(1, r.Purity))
}

// Fill is the palette color with purity as an alpha byte, #rrggbbaa.
func (p Palette) Fill(r track.Region) string {
	a := int(math.Floor(255 * intensity(r)))
	return fmt.Sprintf("%s%02x", p.base(r).Hex(), a)
}

// Blend is the opaque color of r drawn over the background.
func (p Palette) Blend(r track.Region) string {
	return p.bg.BlendRgb(p.base(r), intensity(r)).Clamped().Hex()
}

// Background returns the fade target as #rrggbb.
func (p Palette) Background() string { return p.bg.Hex() }

package view

import (
	"math"

	"ribbit/internal/track"
)

const (
	// bootstrapSpan is the window shown when no contig length is known.
	bootstrapSpan = 1000
	// minSpan bounds both zoom directions.
	minSpan = 10
)

// Viewport is the visible window [Start, End) over one contig. All methods
// return a new, clamped value.
type Viewport struct {
	Contig string
	Start  int
	End    int
	Length int
	// Zoom is a display-only magnification counter.
	Zoom int
}

// Bootstrap is the initial window: the whole contig, or a 1000 wide window
// when the length is unknown.
func Bootstrap(contig string, length int) Viewport {
	if length <= 0 {
		return Viewport{Contig: contig, Start: 0, End: bootstrapSpan, Length: bootstrapSpan, Zoom: 1}
	}
	return Select(contig, length)
}

// Select resets the window to the whole contig.
func Select(contig string, length int) Viewport {
	v := Viewport{Contig: contig, Length: length, Zoom: 1}
	return v.Fit()
}

func (v Viewport) limit() int {
	if v.Length < 1 {
		return 1
	}
	return v.Length
}

func (v Viewport) Span() int { return v.End - v.Start }

func (v Viewport) center() float64 { return float64(v.Start+v.End) / 2 }

// SetRange assigns the window then clamps it to the contig.
func (v Viewport) SetRange(start, end int) Viewport {
	l := v.limit()
	v.Start = clamp(start, 0, l-1)
	v.End = clamp(end, v.Start+1, l)
	return v
}

// ZoomIn shrinks the window to a quarter of its span (at least 10) around
// its center.
func (v Viewport) ZoomIn() Viewport {
	span := math.Max(minSpan, float64(v.Span())/4)
	z := v.Zoom * 2
	v = v.around(span)
	v.Zoom = z
	return v
}

// ZoomOut doubles the span around the center.
func (v Viewport) ZoomOut() Viewport {
	span := math.Max(minSpan, float64(v.Span())*2)
	z := v.Zoom / 2
	if z < 1 {
		z = 1
	}
	v = v.around(span)
	v.Zoom = z
	return v
}

func (v Viewport) around(span float64) Viewport {
	c := v.center()
	start := int(math.Floor(c - span/2))
	end := int(math.Floor(c + span/2))
	return v.SetRange(start, end)
}

// Pan shifts the window by fraction of its span without changing its width
// unless the contig is narrower than the window.
func (v Viewport) Pan(fraction float64) Viewport {
	shift := int(math.Floor(float64(v.Span()) * fraction))
	l := v.limit()
	s, e := v.Start+shift, v.End+shift
	if s < 0 {
		e -= s
		s = 0
	}
	if e > l {
		s -= e - l
		e = l
		if s < 0 {
			s = 0
		}
	}
	v.Start, v.End = s, e
	return v
}

// Fit shows the whole contig.
func (v Viewport) Fit() Viewport {
	v.Start, v.End = 0, v.limit()
	v.Zoom = 1
	return v
}

// Intersects is the visibility filter used before lane packing.
func (v Viewport) Intersects(r track.Region) bool {
	if r.BadCoords {
		return false
	}
	return r.End > v.Start && r.Start < v.End
}

// Visible returns the regions of t inside the window, in track order.
func (v Viewport) Visible(t track.Track) track.Track {
	var out track.Track
	for _, r := range t {
		if v.Intersects(r) {
			out = append(out, r)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

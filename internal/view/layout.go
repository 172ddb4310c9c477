package view

import (
	"math"

	"ribbit/internal/track"
)

// Scale maps genomic coordinates of a viewport onto a linear display axis
// starting at X0 and Width units long.
type Scale struct {
	View  Viewport
	X0    float64
	Width float64
}

// X projects a genomic coordinate.
func (s Scale) X(g int) float64 {
	span := max(1, s.View.Span())
	return s.X0 + float64(g-s.View.Start)/float64(span)*s.Width
}

// Genomic is the inverse of X, floored to an integer coordinate.
func (s Scale) Genomic(x float64) int {
	if s.Width <= 0 {
		return s.View.Start
	}
	span := max(1, s.View.Span())
	return s.View.Start + int(math.Floor((x-s.X0)/s.Width*float64(span)))
}

// Placed is a visible region clipped to the window, projected and assigned
// to a lane.
type Placed struct {
	Region track.Region
	X1     float64
	X2     float64
	Lane   int
}

// Width is the drawn width, never below floor.
func (p Placed) Width(floor float64) float64 {
	return math.Max(floor, p.X2-p.X1)
}

// Layout filters t to the visible regions of s.View, clips and projects
// them, and packs them into lanes in track order.
func Layout(t track.Track, s Scale) []Placed {
	vis := s.View.Visible(t)
	ivs := make([]Interval, len(vis))
	out := make([]Placed, len(vis))
	for i, r := range vis {
		x1 := s.X(max(r.Start, s.View.Start))
		x2 := s.X(min(r.End, s.View.End))
		ivs[i] = Interval{Start: x1, End: x2}
		out[i] = Placed{Region: r, X1: x1, X2: x2}
	}
	for i, lane := range AssignLanes(ivs) {
		out[i].Lane = lane
	}
	return out
}

// Ticks returns n+1 evenly spaced axis labels across the window.
func Ticks(v Viewport, n int) []int {
	if n < 1 {
		n = 1
	}
	span := max(1, v.Span())
	out := make([]int, n+1)
	for i := range out {
		out[i] = v.Start + i*span/n
	}
	return out
}

// Density counts, for each of n equal bins across the whole contig, how many
// regions of t cover the bin.
func Density(t track.Track, length, n int) []int {
	out := make([]int, max(n, 0))
	if n <= 0 || length <= 0 {
		return out
	}
	for _, r := range t {
		if r.BadCoords || r.End <= r.Start {
			continue
		}
		a := clamp(r.Start*n/length, 0, n-1)
		b := clamp((r.End-1)*n/length, 0, n-1)
		for i := a; i <= b; i++ {
			out[i]++
		}
	}
	return out
}

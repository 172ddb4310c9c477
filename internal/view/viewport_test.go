package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ribbit/internal/track"
)

func win(start, end, length int) Viewport {
	return Viewport{Contig: "chr1", Start: start, End: end, Length: length, Zoom: 1}
}

func TestBootstrap(t *testing.T) {
	v := Bootstrap("chr1", 0)
	assert.Equal(t, 0, v.Start)
	assert.Equal(t, 1000, v.End)

	v = Bootstrap("chr1", 1552)
	assert.Equal(t, [2]int{0, 1552}, [2]int{v.Start, v.End})
}

func TestSelect(t *testing.T) {
	v := Select("chr2", 400)
	assert.Equal(t, Viewport{Contig: "chr2", Start: 0, End: 400, Length: 400, Zoom: 1}, v)

	v = Select("empty", 0)
	assert.Equal(t, [2]int{0, 1}, [2]int{v.Start, v.End})
}

func TestSetRangeClamps(t *testing.T) {
	v := win(0, 40, 40).SetRange(-5, 50)
	assert.Equal(t, [2]int{0, 40}, [2]int{v.Start, v.End})

	v = win(0, 40, 40).SetRange(45, 10)
	assert.Equal(t, [2]int{39, 40}, [2]int{v.Start, v.End})

	v = win(0, 40, 40).SetRange(20, 20)
	assert.Equal(t, [2]int{20, 21}, [2]int{v.Start, v.End})
}

func TestZoomIn(t *testing.T) {
	v := win(100, 200, 1000).ZoomIn()
	assert.Equal(t, [2]int{137, 162}, [2]int{v.Start, v.End})
	assert.Equal(t, 2, v.Zoom)

	v = win(100, 120, 1000).ZoomIn()
	assert.Equal(t, [2]int{105, 115}, [2]int{v.Start, v.End})
}

func TestZoomInNegativeCenterFloors(t *testing.T) {
	v := win(0, 7, 1000).ZoomIn()
	// center 3.5, span 10: floor(-1.5) clamps to 0, floor(8.5) = 8
	assert.Equal(t, [2]int{0, 8}, [2]int{v.Start, v.End})
}

func TestZoomOut(t *testing.T) {
	v := win(100, 200, 1000)
	v.Zoom = 4
	v = v.ZoomOut()
	assert.Equal(t, [2]int{50, 250}, [2]int{v.Start, v.End})
	assert.Equal(t, 2, v.Zoom)

	v = win(0, 300, 400).ZoomOut()
	assert.Equal(t, [2]int{0, 400}, [2]int{v.Start, v.End})
	assert.Equal(t, 1, v.Zoom)
}

func TestZoomRoundTrip(t *testing.T) {
	v := win(0, 1000, 1000).ZoomIn().ZoomIn().ZoomOut().ZoomOut()
	assert.Equal(t, 1, v.Zoom)
	assert.True(t, v.Start >= 0 && v.End <= 1000 && v.End > v.Start)
}

func TestPan(t *testing.T) {
	v := win(100, 200, 1000).Pan(0.2)
	assert.Equal(t, [2]int{120, 220}, [2]int{v.Start, v.End})

	v = win(100, 200, 210).Pan(0.2)
	assert.Equal(t, [2]int{110, 210}, [2]int{v.Start, v.End})

	v = win(10, 110, 1000).Pan(-0.2)
	assert.Equal(t, [2]int{0, 100}, [2]int{v.Start, v.End})

	v = win(0, 100, 50).Pan(0.2)
	assert.Equal(t, [2]int{0, 50}, [2]int{v.Start, v.End})
}

func TestPanNegativeFractionFloors(t *testing.T) {
	// floor(15 * -0.2) = floor(-3) = -3; floor(13 * -0.2) = floor(-2.6) = -3
	v := win(100, 113, 1000).Pan(-0.2)
	assert.Equal(t, [2]int{97, 110}, [2]int{v.Start, v.End})
}

func TestFit(t *testing.T) {
	v := win(137, 162, 1000)
	v.Zoom = 8
	v = v.Fit()
	assert.Equal(t, win(0, 1000, 1000), v)
}

func TestViewportInvariantHolds(t *testing.T) {
	ops := []func(Viewport) Viewport{
		Viewport.ZoomIn, Viewport.ZoomOut, Viewport.Fit,
		func(v Viewport) Viewport { return v.Pan(0.2) },
		func(v Viewport) Viewport { return v.Pan(-0.2) },
		func(v Viewport) Viewport { return v.SetRange(-100, 5000) },
	}
	for _, length := range []int{0, 1, 5, 40, 1552} {
		v := Select("c", length)
		for i := 0; i < 60; i++ {
			v = ops[i%len(ops)](v)
			l := max(length, 1)
			assert.True(t, v.Start >= 0 && v.Start < v.End && v.End <= l, "length %d step %d: %+v", length, i, v)
		}
	}
}

func TestIntersects(t *testing.T) {
	v := win(100, 200, 1000)
	assert.True(t, v.Intersects(track.Region{Start: 150, End: 160}))
	assert.True(t, v.Intersects(track.Region{Start: 50, End: 101}))
	assert.False(t, v.Intersects(track.Region{Start: 50, End: 100}))
	assert.False(t, v.Intersects(track.Region{Start: 200, End: 300}))
	assert.False(t, v.Intersects(track.Region{Start: 150, End: 160, BadCoords: true}))
}

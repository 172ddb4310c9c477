package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ribbit/internal/track"
)

func TestScale(t *testing.T) {
	s := Scale{View: win(100, 200, 1000), X0: 60, Width: 1080}
	assert.Equal(t, 60.0, s.X(100))
	assert.Equal(t, 600.0, s.X(150))
	assert.Equal(t, 1140.0, s.X(200))
	assert.Equal(t, 150, s.Genomic(600))
	assert.Equal(t, 100, Scale{View: win(100, 200, 1000)}.Genomic(5))
}

func TestLayout(t *testing.T) {
	tr := track.Track{
		{Start: 0, End: 10},
		{Start: 5, End: 15},
		{Start: 20, End: 30},
		{Start: 150, End: 160},
	}
	s := Scale{View: win(0, 100, 1000), Width: 100}
	placed := Layout(tr, s)
	require.Len(t, placed, 3)
	assert.Equal(t, []int{0, 1, 0}, []int{placed[0].Lane, placed[1].Lane, placed[2].Lane})
	assert.Equal(t, 5.0, placed[1].X1)
	assert.Equal(t, 15.0, placed[1].X2)
}

func TestLayoutClipsToWindow(t *testing.T) {
	tr := track.Track{{Start: 0, End: 500}}
	placed := Layout(tr, Scale{View: win(100, 200, 1000), Width: 10})
	require.Len(t, placed, 1)
	assert.Equal(t, 0.0, placed[0].X1)
	assert.Equal(t, 10.0, placed[0].X2)
	assert.Equal(t, 1.0, Placed{X1: 3, X2: 3.2}.Width(1))
}

func TestLayoutSample(t *testing.T) {
	set := track.ParseString(track.Sample)
	v := Select("chr1", track.BuildIndex(set).Len("chr1"))
	placed := Layout(set.Tracks["chr1"], Scale{View: v, Width: 1080})
	assert.Len(t, placed, 44)
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			if placed[i].Lane == placed[j].Lane {
				a := Interval{placed[i].X1, placed[i].X2}
				b := Interval{placed[j].X1, placed[j].X2}
				assert.False(t, a.Overlaps(b))
			}
		}
	}
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []int{0, 200, 400, 600, 800, 1000}, Ticks(win(0, 1000, 1000), 5))
	assert.Equal(t, []int{137, 142, 147, 152, 157, 162}, Ticks(win(137, 162, 1000), 5))
}

func TestDensity(t *testing.T) {
	tr := track.Track{{Start: 0, End: 10}, {Start: 5, End: 40}, {Start: 90, End: 100}, {BadCoords: true}}
	assert.Equal(t, []int{2, 1, 1, 1, 0, 0, 0, 0, 0, 1}, Density(tr, 100, 10))
	assert.Equal(t, []int{0, 0}, Density(tr, 0, 2))
}

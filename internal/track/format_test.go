package track

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	orig := ParseString(Sample)
	var b strings.Builder
	require.NoError(t, Format(&b, BuildIndex(orig)))
	assert.True(t, strings.HasPrefix(b.String(), Header+"\n"))

	again := ParseString(b.String())
	require.Equal(t, orig.Order, again.Order)
	for _, c := range orig.Order {
		a, z := orig.Tracks[c].TopLevel(), again.Tracks[c].TopLevel()
		require.Len(t, z, len(a))
		for i := range a {
			assert.Equal(t, a[i].Start, z[i].Start)
			assert.Equal(t, a[i].End, z[i].End)
			assert.Equal(t, a[i].Motif, z[i].Motif)
			assert.Equal(t, a[i].Purity, z[i].Purity)
		}
		assert.Equal(t, len(orig.Tracks[c]), len(again.Tracks[c]))
	}
}

func TestRegionFieldsStopAtLastColumn(t *testing.T) {
	r := ParseString("chr1 5 9 AT 0.8").Tracks["chr1"][0]
	assert.Equal(t, []string{"chr1", "5", "9", "AT", "0.8"}, r.Fields())

	sub := ParseString(sampleLine).Tracks["chr1"][1]
	assert.Nil(t, sub.Fields())
}

func TestRegionFieldsKeepBadCoords(t *testing.T) {
	r := ParseString("chr1 x 9").Tracks["chr1"][0]
	assert.Equal(t, []string{"chr1", "x", "9"}, r.Fields())
}

func TestRegionLabel(t *testing.T) {
	assert.Equal(t, "10-20", Region{Start: 10, End: 20, Name: "."}.Label())
	assert.Equal(t, "6 (0.9)", Region{Name: "6 (0.9)"}.Label())
}

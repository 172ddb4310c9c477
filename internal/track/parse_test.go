package track

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = "chr1\t0\t290\tAACCCT\t0.98\t6\t290\t48\tM:7:0-249-6-1.00,97-119-11-1.00:AACCCT,AACCCTAACCC"

func TestParseSampleLine(t *testing.T) {
	set := ParseString(sampleLine)
	tr := set.Tracks["chr1"]
	require.Len(t, tr, 3)

	top := tr[0]
	assert.Equal(t, "chr1", top.Contig)
	assert.Equal(t, 0, top.Start)
	assert.Equal(t, 290, top.End)
	assert.Equal(t, "AACCCT", top.Motif)
	assert.Equal(t, 0.98, top.Purity)
	assert.Equal(t, 6, top.MotifLen)
	assert.Equal(t, 290, top.Length)
	assert.Equal(t, 48, top.Units)
	assert.Equal(t, "6 (0.98)", top.Name)
	assert.Equal(t, 0, top.Depth)
	assert.Equal(t, "M", top.Kind)

	a, b := tr[1], tr[2]
	assert.Equal(t, [2]int{0, 249}, [2]int{a.Start, a.End})
	assert.Equal(t, "AACCCT", a.Motif)
	assert.Equal(t, 249, a.Length)
	assert.Equal(t, 41, a.Units)
	assert.Equal(t, "6 (1)", a.Name)
	assert.Equal(t, 1, a.Depth)
	assert.Equal(t, 0, a.Index)

	assert.Equal(t, [2]int{97, 119}, [2]int{b.Start, b.End})
	assert.Equal(t, "AACCCTAACCC", b.Motif)
	assert.Equal(t, 11, b.MotifLen)
	assert.Equal(t, 2, b.Units)
}

func TestParseCountMismatchWarns(t *testing.T) {
	set := ParseString(sampleLine)
	// the sample line declares 7 sub-regions but lists 2
	assert.Len(t, set.Tracks["chr1"], 3)
	require.Len(t, set.Warnings, 1)
	assert.Contains(t, set.Warnings[0], "declares 7 sub-regions, found 2")
}

func TestParseSkipsCommentsBlankAndShortLines(t *testing.T) {
	text := strings.Join([]string{
		"# header",
		"",
		"   ",
		"chr1\t10",
		"chr1 5   9",
		"chr2\t1\t2\tA",
	}, "\n")
	set := ParseString(text)
	assert.Equal(t, 2, set.Lines)
	assert.Equal(t, 1, set.Skipped)
	assert.Equal(t, []string{"chr1", "chr2"}, set.Order)
	r := set.Tracks["chr1"][0]
	assert.Equal(t, 5, r.Start)
	assert.Equal(t, 9, r.End)
	assert.Equal(t, "", r.Motif)
	assert.True(t, math.IsNaN(r.Purity))
	assert.Equal(t, -1, r.Units)
	assert.Equal(t, "? (?)", r.Name)
	assert.Equal(t, 1, set.Tracks["chr2"][0].Index)
}

func TestParseDegenerateRegion(t *testing.T) {
	set := ParseString("chrX\t100\t100")
	r := set.Tracks["chrX"][0]
	assert.Equal(t, 0, r.Length)
	assert.True(t, r.Degenerate())
	assert.False(t, r.BadCoords)
}

func TestParseMalformedNumbersPropagate(t *testing.T) {
	set := ParseString("chr1\tabc\t20\tAT\tx\tnope\t\tI")
	r := set.Tracks["chr1"][0]
	assert.True(t, r.BadCoords)
	assert.True(t, r.Degenerate())
	assert.True(t, math.IsNaN(r.Purity))
	assert.Equal(t, 0, r.MotifLen)
	assert.Equal(t, 0, set.Tracks["chr1"].Len())
}

func TestParseSubRegionPurityFloor(t *testing.T) {
	line := "chr1\t0\t100\tAT\t0.9\t2\t100\t50\tM:4:0-10-2-0.69,10-20-2-0.70,20-30-2-x,30-40-2-0.95:A,B,C,D"
	set := ParseString(line)
	tr := set.Tracks["chr1"]
	require.Len(t, tr, 3)
	assert.Equal(t, "B", tr[1].Motif)
	assert.Equal(t, "D", tr[2].Motif)
	for _, r := range tr {
		if r.Depth == 1 {
			assert.GreaterOrEqual(t, r.Purity, 0.7)
		}
	}
}

func TestParseNoPurityBelowFloorProperty(t *testing.T) {
	set := ParseString(Sample)
	for _, tr := range set.Tracks {
		for _, r := range tr {
			if r.Depth == 1 {
				assert.True(t, r.Purity >= minSubPurity, "%+v", r)
			}
		}
	}
}

func TestParseInsertionOrderKept(t *testing.T) {
	text := "chr1\t500\t600\tA\t0.9\t1\t100\t100\tM:1:510-520-1-1.0:A\nchr1\t0\t50\tC\t0.9\t1\t50\t50\tI"
	tr := ParseString(text).Tracks["chr1"]
	require.Len(t, tr, 3)
	assert.Equal(t, []int{500, 510, 0}, []int{tr[0].Start, tr[1].Start, tr[2].Start})
	assert.Equal(t, []int{0, 0, 1}, []int{tr[0].Index, tr[1].Index, tr[2].Index})
	assert.Equal(t, 50, tr.Len(), "length is the end of the last appended region")
}

func TestParseSubRegionOutsideParentWarns(t *testing.T) {
	set := ParseString("chr1\t0\t10\tA\t0.9\t1\t10\t10\tM:1:50-60-1-1.0:A")
	require.Len(t, set.Tracks["chr1"], 2)
	require.Len(t, set.Warnings, 1)
	assert.Contains(t, set.Warnings[0], "line 1")
	assert.Contains(t, set.Warnings[0], "outside parent")
}

func TestParseBadInfoKeepsTopLevel(t *testing.T) {
	set := ParseString("chr1\t0\t10\tA\t0.9\t1\t10\t10\tM:1:0-5-1:A")
	require.Len(t, set.Tracks["chr1"], 1)
	require.Len(t, set.Warnings, 1)
	assert.Contains(t, set.Warnings[0], "start-end-motifLength-purity")
}

func TestParseBadQuadKeepsSiblingSubRegions(t *testing.T) {
	set := ParseString("chr1\t0\t100\tAT\t0.9\t2\t100\t50\tM:2:0-5-1,10-20-2-0.9:A,B")
	tr := set.Tracks["chr1"]
	require.Len(t, tr, 2)
	assert.Equal(t, 1, tr[1].Depth)
	assert.Equal(t, 10, tr[1].Start)
	assert.Equal(t, 20, tr[1].End)
	assert.Equal(t, 0.9, tr[1].Purity)
	assert.Equal(t, "B", tr[1].Motif)
	require.Len(t, set.Warnings, 1)
	assert.Contains(t, set.Warnings[0], "sub-region 0")
}

func TestParseInfoExtraFieldsIgnored(t *testing.T) {
	set := ParseString("chr1\t0\t100\tAT\t0.9\t2\t100\t50\tM:1:10-20-2-0.9:A:junk")
	require.Len(t, set.Tracks["chr1"], 2)
	assert.Equal(t, "M", set.Tracks["chr1"][1].Kind)
	require.Len(t, set.Warnings, 1)
	assert.Contains(t, set.Warnings[0], "5 fields")
}

func TestParseMissingInfoHasNoSubRegions(t *testing.T) {
	set := ParseString("chr1\t0\t10\tA\t0.9\t1\t10\t10")
	assert.Len(t, set.Tracks["chr1"], 1)
	assert.Empty(t, set.Warnings)
}

func TestParseSample(t *testing.T) {
	set := ParseString(Sample)
	assert.Equal(t, 8, set.Lines)
	assert.Equal(t, 44, set.Regions())
	assert.Equal(t, 9, set.NonBlankLines())
	assert.Equal(t, 1552, set.Tracks["chr1"].Len())
}

func TestParseCRLF(t *testing.T) {
	set, err := Parse(strings.NewReader("chr1\t1\t2\r\nchr1\t3\t4\r\n"))
	require.NoError(t, err)
	assert.Len(t, set.Tracks["chr1"], 2)
	assert.Equal(t, 4, set.Tracks["chr1"].Len())
}

func TestParseIsIdempotent(t *testing.T) {
	a := ParseString(Sample)
	b := ParseString(Sample)
	assert.Equal(t, a.Tracks, b.Tracks)
	assert.Equal(t, a.Order, b.Order)
}

func TestLeadingInt(t *testing.T) {
	for in, want := range map[string]int{"12": 12, " 7": 7, "10_alt": 10, "-3": -3, "+4x": 4} {
		got, ok := leadingInt(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "X", "-", "_1"} {
		_, ok := leadingInt(in)
		assert.False(t, ok, in)
	}
}

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	q, err := parseRange("100-200")
	require.NoError(t, err)
	assert.Equal(t, rangeQuery{Start: 100, End: 200, HasRange: true}, q)

	q, err = parseRange(" chr2:1,000-2,500 ")
	require.NoError(t, err)
	assert.Equal(t, rangeQuery{Contig: "chr2", Start: 1000, End: 2500, HasRange: true}, q)

	q, err = parseRange("chrX")
	require.NoError(t, err)
	assert.Equal(t, rangeQuery{Contig: "chrX"}, q)

	q, err = parseRange("chr10")
	require.NoError(t, err)
	assert.Equal(t, rangeQuery{Contig: "chr10"}, q)
}

func TestParseRangeErrors(t *testing.T) {
	for _, in := range []string{"", ":1-2", "chr1:12", "chr1:a-2", "5-x"} {
		_, err := parseRange(in)
		assert.Error(t, err, in)
	}
}

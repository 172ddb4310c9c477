package track

import (
	"math"
	"strconv"
	"strings"
)

// Region is one tandem-repeat call (Depth 0) or a sub-call decoded from the
// parent's info column (Depth 1).
type Region struct {
	Contig   string
	Start    int
	End      int
	Motif    string  // empty when unknown
	MotifLen int     // 0 when absent or malformed
	Purity   float64 // NaN when absent or malformed
	Length   int
	Units    int // -1 when MotifLen is unknown
	Name     string
	Depth    int
	Index    int
	Kind     string

	// BadCoords marks a region whose start or end did not parse.
	BadCoords bool

	// raw column text, kept so top-level fields serialize back verbatim
	rawPurity   string
	rawMotifLen string
	src         *record
}

// Degenerate reports regions consumers should treat as low confidence.
func (r Region) Degenerate() bool {
	return r.BadCoords || r.End <= r.Start
}

// HasPurity reports whether a purity score was decoded.
func (r Region) HasPurity() bool { return !math.IsNaN(r.Purity) }

// Label is the text drawn inside a region box.
func (r Region) Label() string {
	if r.Name != "." && r.Name != "" {
		return r.Name
	}
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}

// Track is the insertion-ordered list of regions on one contig.
type Track []Region

// Len is the End of the last appended region. This is not the maximum End:
// a late sub-region with a low coordinate shrinks the reported length.
func (t Track) Len() int {
	if len(t) == 0 {
		return 0
	}
	last := t[len(t)-1]
	if last.BadCoords {
		return 0
	}
	return last.End
}

// TopLevel returns the Depth 0 regions in order.
func (t Track) TopLevel() Track {
	var out Track
	for _, r := range t {
		if r.Depth == 0 {
			out = append(out, r)
		}
	}
	return out
}

// Set is the result of one parse. It is rebuilt in full on every parse.
type Set struct {
	Tracks map[string]Track
	// Order lists contigs in first-seen order.
	Order []string
	// Raw is the verbatim input, used for downloads.
	Raw string

	Lines    int // data lines that produced a region
	Skipped  int // non-comment lines with fewer than 3 fields
	Warnings []string
}

// NonBlankLines counts non-empty lines of the raw text, comments included.
func (s *Set) NonBlankLines() int {
	n := 0
	for _, l := range splitLines(s.Raw) {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}

// Regions counts every region across all contigs.
func (s *Set) Regions() int {
	n := 0
	for _, t := range s.Tracks {
		n += len(t)
	}
	return n
}

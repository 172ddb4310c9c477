package track

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NoSubRegions is the info value of a call without nested sub-calls.
const NoSubRegions = "I"

// Problems found while decoding an info column. They are reported through
// Info.Problems and never stop the decode.
var (
	ErrInfoShape = errors.New("info: want kind:count:regions:motifs")
	ErrSubRegion = errors.New("info: want start-end-motifLength-purity")
)

// Info is the decoded nested annotation column:
//
//	kind : count : start-end-motifLength-purity[,...] : motif[,...]
type Info struct {
	Kind  string
	Count int // -1 when the declared count does not parse
	Subs  []SubCall
	// Problems lists shape errors, wrapping ErrInfoShape or ErrSubRegion.
	Problems []error
}

// SubCall is one decoded quadruple with its positionally aligned motif.
// Numbers that fail to parse or are missing are NaN.
type SubCall struct {
	Start    float64
	End      float64
	MotifLen float64
	Purity   float64
	Motif    string
}

// ParseInfo decodes an info column. Missing colon fields read as empty and
// extra ones are ignored. Each quadruple is decoded on its own: missing
// parts are NaN and extra parts are ignored, so one bad entry never drops
// its siblings.
func ParseInfo(s string) Info {
	parts := strings.Split(s, ":")
	info := Info{Count: -1}
	if len(parts) != 4 {
		info.Problems = append(info.Problems, errors.Wrapf(ErrInfoShape, "%d fields in %q", len(parts), s))
	}
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	info.Kind = parts[0]
	if n, err := strconv.Atoi(parts[1]); err == nil {
		info.Count = n
	}
	var motifs []string
	if parts[3] != "" {
		motifs = strings.Split(parts[3], ",")
	}
	if parts[2] == "" {
		return info
	}
	for i, q := range strings.Split(parts[2], ",") {
		sub, err := parseQuad(q)
		if err != nil {
			info.Problems = append(info.Problems, errors.Wrapf(err, "sub-region %d", i))
		}
		if i < len(motifs) {
			sub.Motif = strings.TrimSpace(motifs[i])
		}
		info.Subs = append(info.Subs, sub)
	}
	return info
}

func parseQuad(q string) (SubCall, error) {
	f := strings.Split(strings.TrimSpace(q), "-")
	num := func(i int) float64 {
		if i < len(f) {
			return parseNum(f[i])
		}
		return math.NaN()
	}
	sub := SubCall{Start: num(0), End: num(1), MotifLen: num(2), Purity: num(3)}
	if len(f) != 4 {
		return sub, errors.Wrapf(ErrSubRegion, "%q", q)
	}
	return sub, nil
}

func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Region converts a sub-call into a Depth 1 region under parent.
func (c SubCall) Region(parent Region) Region {
	r := Region{
		Contig: parent.Contig,
		Motif:  c.Motif,
		Purity: c.Purity,
		Depth:  1,
		Index:  parent.Index,
		Kind:   parent.Kind,
		Units:  -1,
	}
	if isInt(c.Start) && isInt(c.End) {
		r.Start, r.End = int(c.Start), int(c.End)
		r.Length = r.End - r.Start
	} else {
		r.BadCoords = true
	}
	if isInt(c.MotifLen) && c.MotifLen > 0 {
		r.MotifLen = int(c.MotifLen)
		if !r.BadCoords {
			r.Units = floorDiv(r.Length, r.MotifLen)
		}
	}
	r.rawMotifLen = formatNum(c.MotifLen)
	r.rawPurity = formatNum(c.Purity)
	r.Name = displayName(r.rawMotifLen, r.rawPurity)
	return r
}

func isInt(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}

func formatNum(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func displayName(motifLen, purity string) string {
	if motifLen == "" {
		motifLen = "?"
	}
	if purity == "" {
		purity = "?"
	}
	return fmt.Sprintf("%s (%s)", motifLen, purity)
}

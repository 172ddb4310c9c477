package track

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// minSubPurity is the hard floor for keeping a decoded sub-region.
const minSubPurity = 0.7

type optional struct {
	Value string
	OK    bool
}

// record holds the whitespace-separated columns of one data line. Only the
// first three are required.
type record struct {
	Contig, Start, End string

	Motif    optional
	Purity   optional
	MotifLen optional
	Length   optional
	Units    optional
	Info     optional
}

func splitRecord(line string) (record, bool) {
	f := strings.FieldsFunc(line, func(r rune) bool { return r == '\t' || r == ' ' })
	if len(f) < 3 {
		return record{}, false
	}
	at := func(i int) optional {
		if i < len(f) {
			return optional{Value: f[i], OK: true}
		}
		return optional{}
	}
	return record{
		Contig:   f[0],
		Start:    f[1],
		End:      f[2],
		Motif:    at(3),
		Purity:   at(4),
		MotifLen: at(5),
		Length:   at(6),
		Units:    at(7),
		Info:     at(8),
	}, true
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// leadingInt parses an optional sign followed by leading decimal digits,
// ignoring whatever follows ("12abc" is 12). Surrounding space is trimmed.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseString parses annotation text held in memory.
func ParseString(text string) *Set {
	return parseText(text)
}

// Parse reads annotation text from r. Malformed lines never fail the parse;
// the only error is a failed read.
func Parse(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read annotations")
	}
	return parseText(string(data)), nil
}

func parseText(text string) *Set {
	set := &Set{Tracks: map[string]Track{}, Raw: text}
	index := 0
	for n, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, ok := splitRecord(line)
		if !ok {
			set.Skipped++
			continue
		}
		top := topRegion(rec, index)
		var subs Track
		if rec.Info.OK && rec.Info.Value != NoSubRegions {
			var warns []string
			top.Kind, subs, warns = subRegions(top, rec.Info.Value)
			for _, w := range warns {
				set.Warnings = append(set.Warnings, fmt.Sprintf("line %d: %s", n+1, w))
			}
		}
		if _, seen := set.Tracks[top.Contig]; !seen {
			set.Order = append(set.Order, top.Contig)
		}
		set.Tracks[top.Contig] = append(set.Tracks[top.Contig], top)
		set.Tracks[top.Contig] = append(set.Tracks[top.Contig], subs...)
		set.Lines++
		index++
	}
	return set
}

func topRegion(rec record, index int) Region {
	r := Region{
		Contig: rec.Contig,
		Motif:  rec.Motif.Value,
		Purity: math.NaN(),
		Depth:  0,
		Index:  index,
		Units:  -1,
		src:    &rec,
	}
	start, okS := leadingInt(rec.Start)
	end, okE := leadingInt(rec.End)
	r.Start, r.End = start, end
	r.BadCoords = !okS || !okE
	if !r.BadCoords {
		r.Length = r.End - r.Start
	}

	if rec.Purity.OK {
		r.rawPurity = rec.Purity.Value
		if v, err := strconv.ParseFloat(rec.Purity.Value, 64); err == nil {
			r.Purity = v
		}
	}
	if rec.MotifLen.OK {
		r.rawMotifLen = rec.MotifLen.Value
		if v, ok := leadingInt(rec.MotifLen.Value); ok && v > 0 {
			r.MotifLen = v
		}
	}
	if rec.Length.OK {
		if v, ok := leadingInt(rec.Length.Value); ok {
			r.Length = v
		}
	}
	if rec.Units.OK {
		if v, ok := leadingInt(rec.Units.Value); ok {
			r.Units = v
		}
	}
	if r.Units < 0 && r.MotifLen > 0 && !r.BadCoords {
		r.Units = floorDiv(r.Length, r.MotifLen)
	}
	r.Name = displayName(r.rawMotifLen, r.rawPurity)
	return r
}

// subRegions decodes the info column of parent and applies the purity floor.
func subRegions(parent Region, info string) (string, Track, []string) {
	var warns []string
	dec := ParseInfo(info)
	for _, err := range dec.Problems {
		warns = append(warns, err.Error())
	}
	if dec.Count >= 0 && dec.Count != len(dec.Subs) {
		warns = append(warns, fmt.Sprintf("info declares %d sub-regions, found %d", dec.Count, len(dec.Subs)))
	}
	parent.Kind = dec.Kind
	var out Track
	for _, c := range dec.Subs {
		r := c.Region(parent)
		if !(r.Purity >= minSubPurity) {
			continue
		}
		if !r.BadCoords && !parent.BadCoords && !(r.Start < parent.End && parent.Start < r.End) {
			warns = append(warns, fmt.Sprintf("sub-region %d-%d outside parent %d-%d", r.Start, r.End, parent.Start, parent.End))
		}
		out = append(out, r)
	}
	return dec.Kind, out, warns
}

package track

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Header is the comment line Format writes first.
const Header = "#contig\tstart\tend\tmotif\tpurity\tmotif_length\trepeat_length\trepeat_units\tinfo"

// Fields returns the columns of a top-level region, stopping at the last
// column the source line carried. Sub-regions have no columns of their own.
func (r Region) Fields() []string {
	if r.Depth != 0 {
		return nil
	}
	rec := record{
		Motif:    optional{Value: r.Motif, OK: r.Motif != ""},
		Purity:   optional{Value: r.rawPurity, OK: r.rawPurity != ""},
		MotifLen: optional{Value: r.rawMotifLen, OK: r.rawMotifLen != ""},
	}
	if r.src != nil {
		rec = *r.src
	}
	start, end := strconv.Itoa(r.Start), strconv.Itoa(r.End)
	if r.BadCoords && r.src != nil {
		start, end = r.src.Start, r.src.End
	}
	out := []string{r.Contig, start, end}
	for _, col := range []optional{rec.Motif, rec.Purity, rec.MotifLen, rec.Length, rec.Units, rec.Info} {
		if !col.OK {
			break
		}
		out = append(out, col.Value)
	}
	return out
}

// Format writes the top-level regions of set, contigs in index order, one
// tab-separated line each. Parsing the output reproduces the same
// coordinates, motifs, purities and sub-regions.
func Format(w io.Writer, ix *Index) error {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, c := range ix.Contigs() {
		for _, r := range ix.Track(c) {
			if r.Depth != 0 {
				continue
			}
			b.WriteString(strings.Join(r.Fields(), "\t"))
			b.WriteByte('\n')
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write annotations")
	}
	return nil
}

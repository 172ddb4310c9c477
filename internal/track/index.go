package track

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Index orders the contigs of a Set and answers length lookups.
type Index struct {
	set     *Set
	contigs []string
}

// BuildIndex groups set by contig in natural order.
func BuildIndex(set *Set) *Index {
	if set == nil {
		set = &Set{Tracks: map[string]Track{}}
	}
	contigs := append([]string(nil), set.Order...)
	SortContigs(contigs)
	return &Index{set: set, contigs: contigs}
}

// Set returns the parse result behind the index.
func (ix *Index) Set() *Set { return ix.set }

// Contigs returns the contig names in natural order.
func (ix *Index) Contigs() []string {
	return append([]string(nil), ix.contigs...)
}

func (ix *Index) Has(contig string) bool {
	_, ok := ix.set.Tracks[contig]
	return ok
}

func (ix *Index) Track(contig string) Track {
	return ix.set.Tracks[contig]
}

// Len is the track length of contig, see Track.Len.
func (ix *Index) Len(contig string) int {
	return ix.set.Tracks[contig].Len()
}

// Neighbor returns the contig step positions away from contig, wrapping
// around. An unknown contig yields the first one.
func (ix *Index) Neighbor(contig string, step int) string {
	n := len(ix.contigs)
	if n == 0 {
		return ""
	}
	for i, c := range ix.contigs {
		if c == contig {
			return ix.contigs[((i+step)%n+n)%n]
		}
	}
	return ix.contigs[0]
}

// SortContigs sorts names in place: numerically when both names carry an
// integer after an optional "chr" prefix, by collation otherwise.
func SortContigs(names []string) {
	c := collate.New(language.Und)
	sort.SliceStable(names, func(i, j int) bool {
		return compareContigs(c, names[i], names[j]) < 0
	})
}

// CompareContigs returns -1, 0 or 1 following the SortContigs rule.
func CompareContigs(a, b string) int {
	return compareContigs(collate.New(language.Und), a, b)
}

func compareContigs(c *collate.Collator, a, b string) int {
	an, aok := leadingInt(stripChr(a))
	bn, bok := leadingInt(stripChr(b))
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	}
	return c.CompareString(a, b)
}

func stripChr(s string) string {
	if len(s) >= 3 && strings.EqualFold(s[:3], "chr") {
		return s[3:]
	}
	return s
}

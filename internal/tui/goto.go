package tui

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// rangeQuery is a parsed go-to input. Contig is empty when the input named
// only coordinates; HasRange is false when it named only a contig.
type rangeQuery struct {
	Contig   string
	Start    int
	End      int
	HasRange bool
}

// parseRange accepts "start-end", "contig:start-end" and "contig". Digits may
// carry thousands separators.
func parseRange(s string) (rangeQuery, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return rangeQuery{}, errors.New("empty range")
	}
	var q rangeQuery
	coords := s
	if i := strings.LastIndex(s, ":"); i >= 0 {
		q.Contig, coords = s[:i], s[i+1:]
		if q.Contig == "" {
			return rangeQuery{}, errors.Errorf("range %q: empty contig", s)
		}
	} else if !strings.ContainsAny(s, "0123456789") || !strings.Contains(s, "-") {
		return rangeQuery{Contig: s}, nil
	}
	a, b, ok := strings.Cut(coords, "-")
	if !ok {
		return rangeQuery{}, errors.Errorf("range %q: want start-end", s)
	}
	var err error
	if q.Start, err = parseCoord(a); err != nil {
		return rangeQuery{}, errors.Wrapf(err, "range %q start", s)
	}
	if q.End, err = parseCoord(b); err != nil {
		return rangeQuery{}, errors.Wrapf(err, "range %q end", s)
	}
	q.HasRange = true
	return q, nil
}

func parseCoord(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}

// Package server exposes a parsed annotation set over HTTP so a remote
// renderer can draw the same lanes the terminal viewer does.
package server

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"ribbit/internal/config"
	"ribbit/internal/track"
	"ribbit/internal/view"
)

// Drawing geometry of a layout, in axis units.
const (
	axisPadding = 60
	laneTop     = 40
	laneStep    = 26
	boxHeight   = 20
	minBoxWidth = 1
	tickCount   = 5
)

type contigJSON struct {
	Name    string `json:"name"`
	Length  int    `json:"length"`
	Regions int    `json:"regions"`
}

type regionJSON struct {
	Contig    string   `json:"contig"`
	Start     int      `json:"start"`
	End       int      `json:"end"`
	Motif     string   `json:"motif,omitempty"`
	MotifLen  int      `json:"motifLength,omitempty"`
	Purity    *float64 `json:"purity"`
	Length    int      `json:"length"`
	Units     *int     `json:"units"`
	Name      string   `json:"name"`
	Depth     int      `json:"depth"`
	Index     int      `json:"index"`
	Kind      string   `json:"kind,omitempty"`
	BadCoords bool     `json:"badCoords,omitempty"`
}

type placedJSON struct {
	Region regionJSON `json:"region"`
	X      float64    `json:"x"`
	Y      int        `json:"y"`
	Width  float64    `json:"width"`
	Height int        `json:"height"`
	Lane   int        `json:"lane"`
	Fill   string     `json:"fill"`
	Label  string     `json:"label,omitempty"`
}

type tickJSON struct {
	X     float64 `json:"x"`
	Value int     `json:"value"`
}

type layoutJSON struct {
	Contig  string       `json:"contig"`
	Start   int          `json:"start"`
	End     int          `json:"end"`
	Length  int          `json:"length"`
	Width   float64      `json:"width"`
	Lanes   int          `json:"lanes"`
	Ticks   []tickJSON   `json:"ticks"`
	Regions []placedJSON `json:"regions"`
}

func toJSON(r track.Region) regionJSON {
	out := regionJSON{
		Contig:    r.Contig,
		Start:     r.Start,
		End:       r.End,
		Motif:     r.Motif,
		MotifLen:  r.MotifLen,
		Length:    r.Length,
		Name:      r.Label(),
		Depth:     r.Depth,
		Index:     r.Index,
		Kind:      r.Kind,
		BadCoords: r.BadCoords,
	}
	if r.HasPurity() {
		p := r.Purity
		out.Purity = &p
	}
	if r.Units >= 0 {
		u := r.Units
		out.Units = &u
	}
	return out
}

// NewRouter builds the gin engine serving set.
func NewRouter(set *track.Set, cfg config.Config) (*gin.Engine, error) {
	pal, err := view.NewPalette(cfg.Palette, cfg.Background)
	if err != nil {
		return nil, errors.Wrap(err, "palette")
	}
	ix := track.BuildIndex(set)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.GET("/contigs", NewContigsHandler(ix))
	router.GET("/contigs/:contig/layout", NewLayoutHandler(ix, pal, cfg))
	router.GET("/contigs/:contig/regions", NewRegionsHandler(ix))
	router.GET("/raw", NewRawHandler(ix.Set(), cfg.DownloadName))
	return router, nil
}

// NewContigsHandler lists contigs in natural order.
func NewContigsHandler(ix *track.Index) func(c *gin.Context) {
	return func(c *gin.Context) {
		out := make([]contigJSON, 0, len(ix.Contigs()))
		for _, name := range ix.Contigs() {
			out = append(out, contigJSON{Name: name, Length: ix.Len(name), Regions: len(ix.Track(name))})
		}
		c.JSON(http.StatusOK, out)
	}
}

// NewRegionsHandler returns every region of one contig in insertion order.
func NewRegionsHandler(ix *track.Index) func(c *gin.Context) {
	return func(c *gin.Context) {
		name := c.Param("contig")
		if !ix.Has(name) {
			c.String(http.StatusNotFound, "unknown contig %q", name)
			return
		}
		t := ix.Track(name)
		out := make([]regionJSON, 0, len(t))
		for _, r := range t {
			out = append(out, toJSON(r))
		}
		c.JSON(http.StatusOK, out)
	}
}

// NewLayoutHandler packs the regions of a window into lanes. start and end
// default to the whole contig and are clamped like the terminal viewer.
func NewLayoutHandler(ix *track.Index, pal view.Palette, cfg config.Config) func(c *gin.Context) {
	return func(c *gin.Context) {
		name := c.Param("contig")
		if !ix.Has(name) {
			c.String(http.StatusNotFound, "unknown contig %q", name)
			return
		}
		vp := view.Select(name, ix.Len(name))
		start, end := vp.Start, vp.End
		width := cfg.Server.Width
		var err error
		if s := c.Query("start"); s != "" {
			if start, err = strconv.Atoi(s); err != nil {
				c.String(http.StatusBadRequest, "Error parsing start")
				return
			}
		}
		if s := c.Query("end"); s != "" {
			if end, err = strconv.Atoi(s); err != nil {
				c.String(http.StatusBadRequest, "Error parsing end")
				return
			}
		}
		if s := c.Query("width"); s != "" {
			width, err = strconv.ParseFloat(s, 64)
			if err != nil || width <= 0 || math.IsInf(width, 0) || math.IsNaN(width) {
				c.String(http.StatusBadRequest, "Error parsing width")
				return
			}
		}
		vp = vp.SetRange(start, end)
		c.JSON(http.StatusOK, buildLayout(ix.Track(name), vp, pal, width, cfg.Server.LabelMinWidth))
	}
}

func buildLayout(t track.Track, vp view.Viewport, pal view.Palette, width, labelMin float64) layoutJSON {
	s := view.Scale{View: vp, X0: axisPadding, Width: width}
	out := layoutJSON{
		Contig:  vp.Contig,
		Start:   vp.Start,
		End:     vp.End,
		Length:  vp.Length,
		Width:   width,
		Regions: []placedJSON{},
	}
	for i, v := range view.Ticks(vp, tickCount) {
		out.Ticks = append(out.Ticks, tickJSON{X: axisPadding + float64(i)/tickCount*width, Value: v})
	}
	lanes := make([]int, 0)
	for _, p := range view.Layout(t, s) {
		w := p.Width(minBoxWidth)
		pj := placedJSON{
			Region: toJSON(p.Region),
			X:      p.X1,
			Y:      view.LaneY(laneTop, laneStep, p.Lane),
			Width:  w,
			Height: boxHeight,
			Lane:   p.Lane,
			Fill:   pal.Fill(p.Region),
		}
		if w > labelMin {
			pj.Label = p.Region.Label()
		}
		out.Regions = append(out.Regions, pj)
		lanes = append(lanes, p.Lane)
	}
	out.Lanes = view.LaneCount(lanes)
	return out
}

// NewRawHandler serves the verbatim source text as a download.
func NewRawHandler(set *track.Set, filename string) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(set.Raw))
	}
}

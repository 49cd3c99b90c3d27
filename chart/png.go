package chart

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/bitmark-inc/covid-visualizer/schema"
	"github.com/bitmark-inc/covid-visualizer/stats"
)

const (
	pngWidth  = 10 * vg.Inch
	pngHeight = 6 * vg.Inch

	// scatter legends beyond this many countries are unreadable
	maxLegendEntries = 20
)

type png struct {
	dir    string
	titles Titles
	top    int
}

func (p png) Name() string {
	return FormatPNG
}

func (p png) Render(cs schema.Countries) (int, error) {
	if err := os.MkdirAll(p.dir, 0755); nil != err {
		return 0, errors.Wrap(err, "create chart directory")
	}

	bar, err := p.bar(cs)
	if nil != err {
		return 0, err
	}
	if err := save(bar, filepath.Join(p.dir, barFile+".png")); nil != err {
		return 0, err
	}

	scatter, err := p.scatter(cs)
	if nil != err {
		return 0, err
	}
	if err := save(scatter, filepath.Join(p.dir, scatterFile+".png")); nil != err {
		return 0, err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"format": FormatPNG,
	}).Debug("no map projection for static charts, skip choropleth")

	return 2, nil
}

func save(pl *plot.Plot, path string) error {
	if err := pl.Save(pngWidth, pngHeight, path); nil != err {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// bar draws the ranked countries as horizontal bars, largest on top
func (p png) bar(cs schema.Countries) (*plot.Plot, error) {
	top := stats.TopByCases(cs, p.top)

	pl := plot.New()
	pl.Title.Text = p.titles.Bar
	pl.X.Label.Text = p.titles.BarX
	pl.Y.Label.Text = p.titles.BarY

	if len(top) == 0 {
		emptyRange(pl)
		return pl, nil
	}

	names := make([]string, len(top))
	values := make(plotter.Values, len(top))
	for i, c := range top {
		j := len(top) - 1 - i
		names[j] = c.Country
		values[j] = float64(c.Cases)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if nil != err {
		return nil, errors.Wrap(err, "bar chart")
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)

	pl.Add(bars)
	pl.NominalY(names...)

	return pl, nil
}

// scatter plots cases against deaths, one uniformly sized point per
// country in its own colour
func (p png) scatter(cs schema.Countries) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.titles.Scatter
	pl.X.Label.Text = p.titles.ScatterX
	pl.Y.Label.Text = p.titles.ScatterY
	pl.Add(plotter.NewGrid())

	for i, c := range cs {
		s, err := plotter.NewScatter(plotter.XYs{{X: float64(c.Cases), Y: float64(c.Deaths)}})
		if nil != err {
			return nil, errors.Wrapf(err, "scatter point %s", c.Country)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(0)
		s.GlyphStyle.Radius = vg.Points(4)

		pl.Add(s)
		if len(cs) <= maxLegendEntries {
			pl.Legend.Add(c.Country, s)
		}
	}
	pl.Legend.Top = true

	if len(cs) == 0 {
		emptyRange(pl)
	}

	return pl, nil
}

// emptyRange gives a plot without data fixed axes so it still draws
func emptyRange(pl *plot.Plot) {
	pl.X.Min, pl.X.Max = 0, 1
	pl.Y.Min, pl.Y.Max = 0, 1
}

// NewPNG - static gonum/plot renderer, bar chart and scatter plot only
func NewPNG(dir string, titles Titles, top int) Renderer {
	return &png{
		dir:    dir,
		titles: titles,
		top:    top,
	}
}

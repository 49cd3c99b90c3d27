package chart

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/covid-visualizer/schema"
	"github.com/bitmark-inc/covid-visualizer/stats"
)

const (
	chartWidth  = "1000px"
	chartHeight = "600px"
	pointSize   = 10
)

// plasma colour stops, dark to bright
var plasma = []string{
	"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
	"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
}

type renderable interface {
	Render(w io.Writer) error
}

type html struct {
	dir    string
	titles Titles
	top    int
}

func (h html) Name() string {
	return FormatHTML
}

func (h html) Render(cs schema.Countries) (int, error) {
	if err := os.MkdirAll(h.dir, 0755); nil != err {
		return 0, errors.Wrap(err, "create chart directory")
	}

	files := []struct {
		name  string
		chart renderable
	}{
		{barFile + ".html", h.bar(cs)},
		{scatterFile + ".html", h.scatter(cs)},
		{mapFile + ".html", h.choropleth(cs)},
	}
	for _, f := range files {
		if err := writeChart(filepath.Join(h.dir, f.name), f.chart); nil != err {
			return 0, err
		}
	}

	page := components.NewPage()
	page.PageTitle = h.titles.Page
	page.AddCharts(h.bar(cs), h.scatter(cs), h.choropleth(cs))
	if err := writeChart(filepath.Join(h.dir, indexFile), page); nil != err {
		return 0, err
	}

	return len(files), nil
}

func writeChart(path string, c renderable) error {
	f, err := os.Create(path)
	if nil != err {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if err := c.Render(f); nil != err {
		return errors.Wrapf(err, "render %s", path)
	}
	return nil
}

func (h html) initialization(title string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: title,
		Width:     chartWidth,
		Height:    chartHeight,
	})
}

// bar draws the ranked countries as horizontal bars, largest on top
func (h html) bar(cs schema.Countries) *charts.Bar {
	top := stats.TopByCases(cs, h.top)

	// category axes grow upwards, so feed the ranking bottom first
	names := make([]string, len(top))
	items := make([]opts.BarData, len(top))
	for i, c := range top {
		j := len(top) - 1 - i
		names[j] = c.Country
		items[j] = opts.BarData{Name: c.Country, Value: c.Cases}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		h.initialization(h.titles.Bar),
		charts.WithTitleOpts(opts.Title{Title: h.titles.Bar}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: h.titles.BarX, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: h.titles.BarY, Type: "category"}),
	)
	bar.SetXAxis(names).AddSeries(h.titles.BarX, items)
	bar.XYReversal()

	return bar
}

// scatter plots cases against deaths, one series per country so each
// country gets its own colour and legend entry
func (h html) scatter(cs schema.Countries) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		h.initialization(h.titles.Scatter),
		charts.WithTitleOpts(opts.Title{Title: h.titles.Scatter}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: h.titles.ScatterX, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: h.titles.ScatterY, Type: "value"}),
	)

	for _, c := range cs {
		scatter.AddSeries(c.Country, []opts.ScatterData{
			{
				Name:       c.Country,
				Value:      []interface{}{c.Cases, c.Deaths},
				SymbolSize: pointSize,
			},
		})
	}

	return scatter
}

// choropleth shades the world map by cases per 100k. Countries the map
// does not know by name stay unshaded.
func (h html) choropleth(cs schema.Countries) *charts.Map {
	data := mapData(cs)

	highest := float64(0)
	for _, d := range data {
		if v := d.Value.(float64); v > highest {
			highest = v
		}
	}

	m := charts.NewMap()
	m.RegisterMapType("world")
	m.SetGlobalOptions(
		h.initialization(h.titles.Map),
		charts.WithTitleOpts(opts.Title{Title: h.titles.Map}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        0,
			Max:        float32(highest),
			InRange:    &opts.VisualMapInRange{Color: plasma},
		}),
	)
	m.AddSeries(h.titles.MapSeries, data)

	return m
}

// mapData keeps the rows with a finite rate, the rest cannot be encoded
func mapData(cs schema.Countries) []opts.MapData {
	data := make([]opts.MapData, 0, len(cs))
	for _, c := range cs {
		if !stats.IsFinite(c.CasesPer100K) {
			continue
		}
		data = append(data, opts.MapData{Name: c.Country, Value: c.CasesPer100K})
	}
	return data
}

// NewHTML - interactive echarts renderer
func NewHTML(dir string, titles Titles, top int) Renderer {
	return &html{
		dir:    dir,
		titles: titles,
		top:    top,
	}
}

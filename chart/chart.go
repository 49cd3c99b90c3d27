package chart

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-visualizer/schema"
	"github.com/bitmark-inc/covid-visualizer/utils"
)

const (
	logPrefix = "chart"

	// DefaultTop - number of countries in the ranked bar chart
	DefaultTop = 10

	FormatHTML = "html"
	FormatPNG  = "png"

	barFile     = "top_cases"
	scatterFile = "cases_vs_deaths"
	mapFile     = "cases_per_100k"
	indexFile   = "index.html"
)

// Renderer - draws the bar chart, the scatter plot and the choropleth in
// that order and returns how many charts were written
type Renderer interface {
	Name() string
	Render(cs schema.Countries) (int, error)
}

// Titles - chart titles and axis labels in one language
type Titles struct {
	Page      string
	Bar       string
	BarX      string
	BarY      string
	Scatter   string
	ScatterX  string
	ScatterY  string
	Map       string
	MapSeries string
}

// NewTitles localizes the chart titles, unknown languages fall back to english
func NewTitles(lang string, top int) Titles {
	loc := utils.NewLocalizer(lang)
	return Titles{
		Page:      utils.Translate(loc, "chart.page.title", nil),
		Bar:       utils.Translate(loc, "chart.bar.title", map[string]interface{}{"Top": top}),
		BarX:      utils.Translate(loc, "chart.bar.xaxis", nil),
		BarY:      utils.Translate(loc, "chart.bar.yaxis", nil),
		Scatter:   utils.Translate(loc, "chart.scatter.title", nil),
		ScatterX:  utils.Translate(loc, "chart.scatter.xaxis", nil),
		ScatterY:  utils.Translate(loc, "chart.scatter.yaxis", nil),
		Map:       utils.Translate(loc, "chart.map.title", nil),
		MapSeries: utils.Translate(loc, "chart.map.series", nil),
	}
}

// NewRenderer - renderer for one output format writing into dir
func NewRenderer(format, dir string, titles Titles, top int) (Renderer, error) {
	if top <= 0 {
		top = DefaultTop
	}

	switch format {
	case FormatHTML:
		return NewHTML(dir, titles, top), nil
	case FormatPNG:
		return NewPNG(dir, titles, top), nil
	default:
		return nil, fmt.Errorf("unknown chart format: %s", format)
	}
}

// Visualizer runs every configured renderer over the same table
type Visualizer struct {
	renderers []Renderer
}

func NewVisualizer(renderers ...Renderer) *Visualizer {
	return &Visualizer{
		renderers: renderers,
	}
}

// Visualize returns the total number of charts written
func (v *Visualizer) Visualize(cs schema.Countries) (int, error) {
	total := 0
	for _, r := range v.renderers {
		count, err := r.Render(cs)
		if nil != err {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"format": r.Name(),
				"error":  err,
			}).Error("render charts")
			return total, err
		}

		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"format": r.Name(),
			"count":  count,
		}).Info("charts rendered")
		total += count
	}

	return total, nil
}

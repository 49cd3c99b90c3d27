package chart

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bitmark-inc/covid-visualizer/schema"
	"github.com/bitmark-inc/covid-visualizer/stats"
	"github.com/bitmark-inc/covid-visualizer/utils"
)

// Summary prints the countries with the most cases as a table
func Summary(w io.Writer, cs schema.Countries, top int, lang string) {
	if top <= 0 {
		top = DefaultTop
	}

	loc := utils.NewLocalizer(lang)
	p := message.NewPrinter(language.English)

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{
		utils.Translate(loc, "summary.rank", nil),
		utils.Translate(loc, "summary.country", nil),
		utils.Translate(loc, "summary.cases", nil),
		utils.Translate(loc, "summary.deaths", nil),
		utils.Translate(loc, "summary.population", nil),
		utils.Translate(loc, "summary.cases_per_100k", nil),
		utils.Translate(loc, "summary.deaths_per_100k", nil),
	})

	for i, c := range stats.TopByCases(cs, top) {
		t.AppendRow(table.Row{
			i + 1,
			c.Country,
			p.Sprintf("%d", c.Cases),
			p.Sprintf("%d", c.Deaths),
			p.Sprintf("%d", c.Population),
			p.Sprintf("%.1f", c.CasesPer100K),
			p.Sprintf("%.1f", c.DeathsPer100K),
		})
	}

	t.Render()
}

package pipeline

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-visualizer/chart"
	"github.com/bitmark-inc/covid-visualizer/external/disease"
	"github.com/bitmark-inc/covid-visualizer/schema"
	"github.com/bitmark-inc/covid-visualizer/stats"
)

const logPrefix = "pipeline"

// Pipeline fetches country statistics, derives per-100k rates and renders
// the charts, once per Run
type Pipeline struct {
	disease    disease.Disease
	visualizer *chart.Visualizer
	scope      tally.Scope
}

func (p Pipeline) Run(ctx context.Context) (schema.Countries, error) {
	stopwatch := p.scope.Timer("fetch_duration").Start()
	table, err := p.disease.Countries(ctx)
	stopwatch.Stop()
	if nil != err {
		return nil, errors.Wrap(err, "fetch")
	}
	p.scope.Counter("rows_fetched").Inc(int64(table.Len()))

	countries, err := stats.Preprocess(table)
	if nil != err {
		return nil, errors.Wrap(err, "preprocess")
	}

	nonFinite := stats.NonFinite(countries)
	p.scope.Counter("rows_non_finite").Inc(int64(nonFinite))
	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"countries":  len(countries),
		"non_finite": nonFinite,
	}).Info("preprocessed")

	count, err := p.visualizer.Visualize(countries)
	p.scope.Counter("charts_rendered").Inc(int64(count))
	if nil != err {
		return nil, errors.Wrap(err, "visualize")
	}

	return countries, nil
}

// New - new pipeline, a nil scope records nothing
func New(d disease.Disease, v *chart.Visualizer, scope tally.Scope) *Pipeline {
	if scope == nil {
		scope = tally.NoopScope
	}

	return &Pipeline{
		disease:    d,
		visualizer: v,
		scope:      scope,
	}
}

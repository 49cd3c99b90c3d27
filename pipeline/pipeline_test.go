package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-visualizer/chart"
	"github.com/bitmark-inc/covid-visualizer/external/disease"
	"github.com/bitmark-inc/covid-visualizer/external/mocks"
	"github.com/bitmark-inc/covid-visualizer/schema"
	"github.com/bitmark-inc/covid-visualizer/stats"
)

func row(country string, cases, population float64) schema.Row {
	return schema.Row{
		"country":             country,
		"cases":               cases,
		"todayCases":          float64(0),
		"deaths":              float64(1),
		"todayDeaths":         float64(0),
		"recovered":           float64(0),
		"active":              float64(0),
		"critical":            float64(0),
		"casesPerOneMillion":  float64(0),
		"deathsPerOneMillion": float64(0),
		"tests":               float64(0),
		"population":          population,
	}
}

func counter(scope tally.TestScope, name string) int64 {
	for _, c := range scope.Snapshot().Counters() {
		if c.Name() == name {
			return c.Value()
		}
	}
	return 0
}

func TestRun(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDisease(ctl)
	r := mocks.NewMockRenderer(ctl)
	scope := tally.NewTestScope("covid", nil)

	d.EXPECT().Countries(gomock.Any()).Return(schema.NewTable([]schema.Row{
		row("A", 100, 1000),
		row("B", 50, 2000),
		row("C", 10, 0),
	}), nil).Times(1)
	r.EXPECT().Name().Return("mock").AnyTimes()
	r.EXPECT().Render(gomock.Any()).Return(3, nil).Times(1)

	countries, err := New(d, chart.NewVisualizer(r), scope).Run(context.Background())
	require.Nil(t, err)
	require.Len(t, countries, 3)

	assert.InDelta(t, 10000, countries[0].CasesPer100K, 1e-9)
	assert.InDelta(t, 2500, countries[1].CasesPer100K, 1e-9)
	assert.True(t, math.IsInf(countries[2].CasesPer100K, 1))

	assert.Equal(t, int64(3), counter(scope, "covid.rows_fetched"))
	assert.Equal(t, int64(1), counter(scope, "covid.rows_non_finite"))
	assert.Equal(t, int64(3), counter(scope, "covid.charts_rendered"))
}

func TestRunFetchError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDisease(ctl)
	r := mocks.NewMockRenderer(ctl)

	d.EXPECT().Countries(gomock.Any()).Return(schema.Table{}, disease.ErrNotArray).Times(1)
	r.EXPECT().Render(gomock.Any()).Times(0)

	countries, err := New(d, chart.NewVisualizer(r), nil).Run(context.Background())
	assert.Nil(t, countries)
	assert.True(t, errors.Is(err, disease.ErrNotArray))
	assert.Contains(t, err.Error(), "fetch")
}

func TestRunPreprocessError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDisease(ctl)
	r := mocks.NewMockRenderer(ctl)

	broken := row("A", 100, 1000)
	delete(broken, "population")
	d.EXPECT().Countries(gomock.Any()).Return(schema.NewTable([]schema.Row{broken}), nil).Times(1)
	r.EXPECT().Render(gomock.Any()).Times(0)

	_, err := New(d, chart.NewVisualizer(r), nil).Run(context.Background())
	assert.True(t, errors.Is(err, stats.ErrMissingField))
	assert.Contains(t, err.Error(), "preprocess")
}

func TestRunVisualizeError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDisease(ctl)
	r := mocks.NewMockRenderer(ctl)

	d.EXPECT().Countries(gomock.Any()).Return(schema.NewTable([]schema.Row{row("A", 1, 1)}), nil).Times(1)
	r.EXPECT().Name().Return("mock").AnyTimes()
	r.EXPECT().Render(gomock.Any()).Return(0, errors.New("disk full")).Times(1)

	_, err := New(d, chart.NewVisualizer(r), nil).Run(context.Background())
	assert.EqualError(t, err, "visualize: disk full")
}

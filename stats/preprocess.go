package stats

import (
	"math"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/covid-visualizer/schema"
)

const perHundredThousand = 100000

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidField = errors.New("invalid field")
)

// PerHundredThousand normalises a count to population. A zero population
// gives +Inf, or NaN when the count is zero too.
func PerHundredThousand(count, population int64) float64 {
	return float64(count) / float64(population) * perHundredThousand
}

// Preprocess selects the reported columns of every row and appends the
// per-100k case and death rates. The input table is left untouched.
func Preprocess(t schema.Table) (schema.Countries, error) {
	countries := make(schema.Countries, 0, len(t.Rows))

	for i, row := range t.Rows {
		c, err := country(row)
		if nil != err {
			name, _ := row[schema.ColumnCountry].(string)
			return nil, errors.Wrapf(err, "row %d (%s)", i, name)
		}
		countries = append(countries, c)
	}

	return countries, nil
}

func country(row schema.Row) (schema.Country, error) {
	var c schema.Country
	var err error

	if c.Country, err = stringField(row, schema.ColumnCountry); nil != err {
		return c, err
	}

	counts := []struct {
		column string
		value  *int64
	}{
		{schema.ColumnCases, &c.Cases},
		{schema.ColumnTodayCases, &c.TodayCases},
		{schema.ColumnDeaths, &c.Deaths},
		{schema.ColumnTodayDeaths, &c.TodayDeaths},
		{schema.ColumnRecovered, &c.Recovered},
		{schema.ColumnActive, &c.Active},
		{schema.ColumnCritical, &c.Critical},
		{schema.ColumnTests, &c.Tests},
		{schema.ColumnPopulation, &c.Population},
	}
	for _, f := range counts {
		if *f.value, err = intField(row, f.column); nil != err {
			return c, err
		}
	}

	if c.CasesPerOneMillion, err = numberField(row, schema.ColumnCasesPerOneMillion); nil != err {
		return c, err
	}
	if c.DeathsPerOneMillion, err = numberField(row, schema.ColumnDeathsPerOneMillion); nil != err {
		return c, err
	}

	c.CasesPer100K = PerHundredThousand(c.Cases, c.Population)
	c.DeathsPer100K = PerHundredThousand(c.Deaths, c.Population)

	return c, nil
}

func field(row schema.Row, column string) (interface{}, error) {
	v, ok := row[column]
	if !ok || v == nil {
		return nil, errors.Wrap(ErrMissingField, column)
	}
	return v, nil
}

func stringField(row schema.Row, column string) (string, error) {
	v, err := field(row, column)
	if nil != err {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrInvalidField, "%s: %v is not a string", column, v)
	}
	return s, nil
}

func numberField(row schema.Row, column string) (float64, error) {
	v, err := field(row, column)
	if nil != err {
		return 0, err
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, errors.Wrapf(ErrInvalidField, "%s: %v is not a number", column, v)
	}
}

func intField(row schema.Row, column string) (int64, error) {
	f, err := numberField(row, column)
	if nil != err {
		return 0, err
	}
	return int64(math.Round(f)), nil
}

// NonFinite counts rows whose derived rates are NaN or infinite
func NonFinite(cs schema.Countries) int {
	count := 0
	for _, c := range cs {
		if !IsFinite(c.CasesPer100K) || !IsFinite(c.DeathsPer100K) {
			count++
		}
	}
	return count
}

// IsFinite reports whether f is neither NaN nor infinite
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

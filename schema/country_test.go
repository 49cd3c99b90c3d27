package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-visualizer/schema"
)

func TestColumns(t *testing.T) {
	assert.Len(t, schema.SelectedColumns, 12, "wrong selected column count")
	assert.Len(t, schema.Columns, 14, "wrong column count")
	assert.Equal(t, schema.SelectedColumns, schema.Columns[:12], "selected columns should lead")
	assert.Equal(t, schema.ColumnCasesPer100K, schema.Columns[12])
	assert.Equal(t, schema.ColumnDeathsPer100K, schema.Columns[13])
}

func TestCountriesTable(t *testing.T) {
	cs := schema.Countries{
		{Country: "A", Cases: 100, Population: 1000, CasesPer100K: 10000},
		{Country: "B", Cases: 50, Population: 2000, CasesPer100K: 2500},
	}

	table := cs.Table()
	assert.Equal(t, schema.Columns, table.Columns, "wrong columns")
	assert.Equal(t, 2, table.Len(), "wrong row count")

	for _, row := range table.Rows {
		assert.Len(t, row, 14, "wrong row width")
	}

	assert.Equal(t, "A", table.Rows[0][schema.ColumnCountry])
	assert.Equal(t, int64(100), table.Rows[0][schema.ColumnCases])
	assert.Equal(t, float64(2500), table.Rows[1][schema.ColumnCasesPer100K])
}

func TestNewTable(t *testing.T) {
	table := schema.NewTable([]schema.Row{
		{"country": "A", "cases": 1.0},
		{"country": "B", "deaths": 2.0},
	})

	assert.Equal(t, []string{"cases", "country", "deaths"}, table.Columns, "wrong column union")
	assert.Equal(t, 2, table.Len())
}

func TestNewTableEmpty(t *testing.T) {
	table := schema.NewTable([]schema.Row{})
	assert.Empty(t, table.Columns)
	assert.Equal(t, 0, table.Len())
}

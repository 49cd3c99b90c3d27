package schema

// Field names reported by the disease.sh countries endpoint
const (
	ColumnCountry             = "country"
	ColumnCases               = "cases"
	ColumnTodayCases          = "todayCases"
	ColumnDeaths              = "deaths"
	ColumnTodayDeaths         = "todayDeaths"
	ColumnRecovered           = "recovered"
	ColumnActive              = "active"
	ColumnCritical            = "critical"
	ColumnCasesPerOneMillion  = "casesPerOneMillion"
	ColumnDeathsPerOneMillion = "deathsPerOneMillion"
	ColumnTests               = "tests"
	ColumnPopulation          = "population"

	ColumnCasesPer100K  = "cases_per_100k"
	ColumnDeathsPer100K = "deaths_per_100k"
)

// SelectedColumns - columns kept from the raw table, in output order
var SelectedColumns = []string{
	ColumnCountry,
	ColumnCases,
	ColumnTodayCases,
	ColumnDeaths,
	ColumnTodayDeaths,
	ColumnRecovered,
	ColumnActive,
	ColumnCritical,
	ColumnCasesPerOneMillion,
	ColumnDeathsPerOneMillion,
	ColumnTests,
	ColumnPopulation,
}

// Columns - selected columns followed by the derived per-100k rates
var Columns = append(append([]string{}, SelectedColumns...), ColumnCasesPer100K, ColumnDeathsPer100K)

// Country is one preprocessed row of the statistics table
type Country struct {
	Country             string  `json:"country"`
	Cases               int64   `json:"cases"`
	TodayCases          int64   `json:"todayCases"`
	Deaths              int64   `json:"deaths"`
	TodayDeaths         int64   `json:"todayDeaths"`
	Recovered           int64   `json:"recovered"`
	Active              int64   `json:"active"`
	Critical            int64   `json:"critical"`
	CasesPerOneMillion  float64 `json:"casesPerOneMillion"`
	DeathsPerOneMillion float64 `json:"deathsPerOneMillion"`
	Tests               int64   `json:"tests"`
	Population          int64   `json:"population"`
	CasesPer100K        float64 `json:"cases_per_100k"`
	DeathsPer100K       float64 `json:"deaths_per_100k"`
}

// Values returns the row in the order of Columns
func (c Country) Values() []interface{} {
	return []interface{}{
		c.Country,
		c.Cases,
		c.TodayCases,
		c.Deaths,
		c.TodayDeaths,
		c.Recovered,
		c.Active,
		c.Critical,
		c.CasesPerOneMillion,
		c.DeathsPerOneMillion,
		c.Tests,
		c.Population,
		c.CasesPer100K,
		c.DeathsPer100K,
	}
}

// Countries - preprocessed table, rows kept in API order
type Countries []Country

// Table converts the preprocessed rows back into a generic table
func (cs Countries) Table() Table {
	t := Table{
		Columns: append([]string{}, Columns...),
		Rows:    make([]Row, 0, len(cs)),
	}

	for _, c := range cs {
		row := make(Row, len(Columns))
		for i, v := range c.Values() {
			row[Columns[i]] = v
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

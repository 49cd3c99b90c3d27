package schema

import "sort"

// Row is a single decoded JSON object, field name to value
type Row map[string]interface{}

// Table is an ordered collection of rows sharing a column set
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable builds a table from decoded rows. Columns is the sorted union
// of every field name found in the rows.
func NewTable(rows []Row) Table {
	seen := make(map[string]struct{})
	columns := []string{}
	for _, r := range rows {
		for k := range r {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			columns = append(columns, k)
		}
	}
	sort.Strings(columns)

	return Table{
		Columns: columns,
		Rows:    rows,
	}
}

// Len returns the number of rows
func (t Table) Len() int {
	return len(t.Rows)
}

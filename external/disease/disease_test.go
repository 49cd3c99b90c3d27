package disease_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/covid-visualizer/external/disease"
	"github.com/bitmark-inc/covid-visualizer/schema"
)

const countriesJSON = `[
  {"updated":1600000000000,"country":"A","countryInfo":{"iso2":"AA"},"cases":100,"todayCases":1,"deaths":10,"todayDeaths":0,"recovered":80,"active":10,"critical":2,"casesPerOneMillion":100000,"deathsPerOneMillion":10000,"tests":500,"population":1000},
  {"updated":1600000000000,"country":"B","countryInfo":{"iso2":"BB"},"cases":50,"todayCases":0,"deaths":5,"todayDeaths":0,"recovered":40,"active":5,"critical":0,"casesPerOneMillion":25000,"deathsPerOneMillion":2500,"tests":100,"population":2000}
]`

func newServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestCountries(t *testing.T) {
	ts := newServer(http.StatusOK, countriesJSON)
	defer ts.Close()

	d := disease.New(ts.URL, time.Second)
	table, err := d.Countries(context.Background())
	assert.Nil(t, err, "wrong Countries")
	assert.Equal(t, 2, table.Len(), "wrong row count")
	assert.Equal(t, "A", table.Rows[0]["country"], "rows should keep api order")
	assert.Equal(t, "B", table.Rows[1]["country"], "rows should keep api order")
	assert.Equal(t, float64(1000), table.Rows[0]["population"])
	assert.Contains(t, table.Columns, "countryInfo")
	assert.Contains(t, table.Columns, "population")
}

func TestCountriesSingleGet(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(countriesJSON))
	}))
	defer ts.Close()

	_, err := disease.New(ts.URL, 0).Countries(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 1, calls, "wrong request count")
}

func TestCountriesEmptyArray(t *testing.T) {
	ts := newServer(http.StatusOK, "[]")
	defer ts.Close()

	table, err := disease.New(ts.URL, time.Second).Countries(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestCountriesUnexpectedStatus(t *testing.T) {
	ts := newServer(http.StatusBadGateway, `{"message":"bad gateway"}`)
	defer ts.Close()

	table, err := disease.New(ts.URL, time.Second).Countries(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, disease.ErrUnexpectedStatus), "wrong error")
	assert.Equal(t, schema.Table{}, table)
}

func TestCountriesMalformedBody(t *testing.T) {
	bodies := map[string]string{
		"object":        `{"country":"A","cases":1}`,
		"null":          `null`,
		"not json":      `<html>oops</html>`,
		"scalar array":  `[1, 2, 3]`,
		"null element":  `[{"country":"A"}, null]`,
		"truncated":     `[{"country":"A"`,
		"empty body":    ``,
		"string scalar": `"countries"`,
	}

	for name, body := range bodies {
		ts := newServer(http.StatusOK, body)

		table, err := disease.New(ts.URL, time.Second).Countries(context.Background())
		assert.Error(t, err, name)
		assert.True(t, errors.Is(err, disease.ErrNotArray), name)
		assert.Equal(t, 0, table.Len(), name)

		ts.Close()
	}
}

func TestCountriesDecodeErrorMessage(t *testing.T) {
	ts := newServer(http.StatusOK, `[{"country":"A"`)
	defer ts.Close()

	_, err := disease.New(ts.URL, time.Second).Countries(context.Background())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "decode: "), err.Error())
	assert.True(t, strings.HasSuffix(err.Error(), disease.ErrNotArray.Error()), err.Error())
}

func TestCountriesTransportError(t *testing.T) {
	ts := newServer(http.StatusOK, countriesJSON)
	url := ts.URL
	ts.Close()

	_, err := disease.New(url, time.Second).Countries(context.Background())
	assert.Error(t, err)
}

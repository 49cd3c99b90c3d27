package disease

import (
	"bytes"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-visualizer/schema"
)

const (
	// DefaultURL - disease.sh per country statistics
	DefaultURL = "https://disease.sh/v3/covid-19/countries"

	logPrefix = "disease"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrNotArray         = errors.New("response is not a json array of objects")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Disease - interface to fetch country statistics
type Disease interface {
	Countries(ctx context.Context) (schema.Table, error)
}

type disease struct {
	url    string
	client *resty.Client
}

func (d disease) Countries(ctx context.Context) (schema.Table, error) {
	resp, err := d.client.R().SetContext(ctx).Get(d.url)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    d.url,
			"error":  err,
		}).Error("get country statistics")
		return schema.Table{}, errors.Wrap(err, "get country statistics")
	}

	if resp.IsError() {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    d.url,
			"status": resp.StatusCode(),
		}).Error("get country statistics")
		return schema.Table{}, errors.Wrapf(ErrUnexpectedStatus, "status %d", resp.StatusCode())
	}

	rows, err := decode(resp.Body())
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("decode country statistics")
		return schema.Table{}, err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"count":  len(rows),
	}).Debug("country statistics")

	return schema.NewTable(rows), nil
}

// decode parses a json array of flat objects. Anything else, null included,
// is an error.
func decode(data []byte) ([]schema.Row, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var rows []schema.Row
	if err := json.Unmarshal(trimmed, &rows); nil != err {
		return nil, errors.Wrapf(ErrNotArray, "decode: %v", err)
	}

	for i, r := range rows {
		if r == nil {
			return nil, errors.Wrapf(ErrNotArray, "element %d is null", i)
		}
	}

	return rows, nil
}

// New - new disease.sh client, an empty url falls back to DefaultURL
func New(url string, timeout time.Duration) Disease {
	u := DefaultURL
	if url != "" {
		u = url
	}

	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &disease{
		url:    u,
		client: client,
	}
}

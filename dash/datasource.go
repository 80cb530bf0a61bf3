package dash

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/slices"
	"github.com/pkg/errors"

	"github.com/guardflow/charts"
)

const (
	TypeCategory = "category"
	TypeSeries   = "series"
)

var DefaultTimeFormat = "2006-01-02"

// DataSource resolves one dataset for the rendering core. All I/O lives
// here; the core itself never fetches anything.
type DataSource interface {
	Name() string
	Fetch(context.Context) (charts.Dataset, error)
}

type FileSource struct {
	Path       string
	Ident      string
	Type       string
	TimeFormat string
	SkipHeader bool
}

func (f FileSource) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

func (f FileSource) Fetch(ctx context.Context) (charts.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return charts.Dataset{}, err
	}
	r, err := os.Open(f.Path)
	if err != nil {
		return charts.Dataset{}, errors.Wrap(err, "open data file")
	}
	defer r.Close()

	rows, err := f.readRows(r)
	if err != nil {
		return charts.Dataset{}, errors.Wrapf(err, "read %s", f.Path)
	}
	if f.Type == TypeSeries {
		return f.seriesDataset(rows)
	}
	return f.categoryDataset(rows)
}

func (f FileSource) readRows(r io.Reader) ([][]string, error) {
	rs := csv.NewReader(r)
	rs.TrimLeadingSpace = true
	rs.FieldsPerRecord = -1
	rows, err := rs.ReadAll()
	if err != nil {
		return nil, err
	}
	if f.SkipHeader && len(rows) > 0 {
		rows = slices.Rest(rows)
	}
	return rows, nil
}

func (f FileSource) categoryDataset(rows [][]string) (charts.Dataset, error) {
	var ds charts.Dataset
	for _, row := range rows {
		if len(row) < 2 {
			return ds, fmt.Errorf("category row needs label and value, got %d fields", len(row))
		}
		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return ds, errors.Wrapf(err, "value for %q", row[0])
		}
		pt := charts.CategoryPoint{
			Label: row[0],
			Value: value,
		}
		if len(row) > 2 {
			pct, err := strconv.ParseFloat(row[2], 64)
			if err != nil {
				return ds, errors.Wrapf(err, "percentage for %q", row[0])
			}
			pt.Percent = pct
		}
		ds.Categories = append(ds.Categories, pt)
	}
	return ds, nil
}

func (f FileSource) seriesDataset(rows [][]string) (charts.Dataset, error) {
	timefmt := f.TimeFormat
	if timefmt == "" {
		timefmt = DefaultTimeFormat
	}
	ser := charts.Series{
		Title: f.Name(),
	}
	for _, row := range rows {
		if len(row) < 2 {
			return charts.Dataset{}, fmt.Errorf("series row needs date and value, got %d fields", len(row))
		}
		when, err := time.Parse(timefmt, row[0])
		if err != nil {
			return charts.Dataset{}, errors.Wrap(err, "parse date")
		}
		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return charts.Dataset{}, errors.Wrapf(err, "value at %s", row[0])
		}
		ser.Points = append(ser.Points, charts.TimePoint{
			Date:  when,
			Value: value,
		})
	}
	return charts.SeriesDataset(ser), nil
}

type HTTPSource struct {
	URL        string
	Ident      string
	Type       string
	TimeFormat string
	Client     *http.Client
}

func (h HTTPSource) Name() string {
	if h.Ident != "" {
		return h.Ident
	}
	return h.URL
}

func (h HTTPSource) Fetch(ctx context.Context) (charts.Dataset, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return charts.Dataset{}, errors.Wrap(err, "build request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return charts.Dataset{}, errors.Wrap(err, "fetch dataset")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return charts.Dataset{}, errors.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}
	if h.Type == TypeSeries {
		return h.decodeSeries(resp.Body)
	}
	return h.decodeCategories(resp.Body)
}

func (h HTTPSource) decodeCategories(r io.Reader) (charts.Dataset, error) {
	var records []struct {
		Label      string  `json:"label"`
		Value      float64 `json:"value"`
		Percentage float64 `json:"percentage"`
	}
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return charts.Dataset{}, errors.Wrap(err, "decode categories")
	}
	var ds charts.Dataset
	for _, rec := range records {
		ds.Categories = append(ds.Categories, charts.CategoryPoint{
			Label:   rec.Label,
			Value:   rec.Value,
			Percent: rec.Percentage,
		})
	}
	return ds, nil
}

func (h HTTPSource) decodeSeries(r io.Reader) (charts.Dataset, error) {
	var records []struct {
		Date  string  `json:"date"`
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return charts.Dataset{}, errors.Wrap(err, "decode series")
	}
	timefmt := h.TimeFormat
	if timefmt == "" {
		timefmt = DefaultTimeFormat
	}
	ser := charts.Series{
		Title: h.Name(),
	}
	for _, rec := range records {
		when, err := time.Parse(timefmt, rec.Date)
		if err != nil {
			return charts.Dataset{}, errors.Wrap(err, "parse date")
		}
		ser.Points = append(ser.Points, charts.TimePoint{
			Date:  when,
			Value: rec.Value,
		})
	}
	return charts.SeriesDataset(ser), nil
}

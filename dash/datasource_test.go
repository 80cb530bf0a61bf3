package dash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Categories(t *testing.T) {
	path := writeFile(t, "intents.csv", "coding,120,60\ntesting,80,40\n")
	src := FileSource{
		Path: path,
		Type: TypeCategory,
	}
	ds, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, ds.Categories, 2)
	assert.Equal(t, "coding", ds.Categories[0].Label)
	assert.Equal(t, 120.0, ds.Categories[0].Value)
	assert.Equal(t, 60.0, ds.Categories[0].Percent)
}

func TestFileSource_Series(t *testing.T) {
	path := writeFile(t, "volume.csv", "date,value\n2024-01-01,10\n2024-01-02,25\n")
	src := FileSource{
		Path:       path,
		Ident:      "requests",
		Type:       TypeSeries,
		SkipHeader: true,
	}
	ds, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, ds.Series, 1)
	ser := ds.Series[0]
	assert.Equal(t, "requests", ser.Title)
	require.Equal(t, 2, ser.Len())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), ser.Points[1].Date)
	assert.Equal(t, 25.0, ser.Points[1].Value)
}

func TestFileSource_Name(t *testing.T) {
	src := FileSource{Path: "/tmp/data/volume.csv"}
	assert.Equal(t, "volume", src.Name())

	src.Ident = "requests"
	assert.Equal(t, "requests", src.Name())
}

func TestFileSource_BadValue(t *testing.T) {
	path := writeFile(t, "bad.csv", "coding,notanumber\n")
	src := FileSource{Path: path}
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}

func TestHTTPSource_Categories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"label":"coding","value":120,"percentage":60},{"label":"testing","value":80,"percentage":40}]`))
	}))
	defer srv.Close()

	src := HTTPSource{
		URL:  srv.URL,
		Type: TypeCategory,
	}
	ds, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, ds.Categories, 2)
	assert.Equal(t, 40.0, ds.Categories[1].Percent)
}

func TestHTTPSource_Series(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"date":"2024-03-01","value":7}]`))
	}))
	defer srv.Close()

	src := HTTPSource{
		URL:   srv.URL,
		Ident: "volume",
		Type:  TypeSeries,
	}
	ds, err := src.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, ds.Series, 1)
	assert.Equal(t, "volume", ds.Series[0].Title)
	assert.Equal(t, 7.0, ds.Series[0].Points[0].Value)
}

func TestHTTPSource_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := HTTPSource{URL: srv.URL}
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}

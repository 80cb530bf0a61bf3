package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/guardflow/charts"
	"github.com/guardflow/charts/dash"
)

const (
	defaultWidth  = 800.0
	defaultHeight = 400.0
)

func main() {
	godotenv.Load()

	var (
		addr = flag.String("a", envOr("DASH_ADDR", ":8080"), "listening address")
		dir  = flag.String("d", envOr("DASH_DATA_DIR", "."), "dataset directory")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	srv := server{
		dir:      *dir,
		logger:   logger,
		renderer: charts.NewRenderer(nil, nil),
	}
	http.Handle("/chart", srv)

	logger.Info("listening", zap.String("addr", *addr), zap.String("data", *dir))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

type server struct {
	dir      string
	logger   *zap.Logger
	renderer *charts.Renderer
}

func (s server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		query = r.URL.Query()
		name  = query.Get("name")
	)
	if name == "" || name != filepath.Base(name) {
		http.Error(w, "missing or invalid dataset name", http.StatusBadRequest)
		return
	}
	kind, err := parseKind(query.Get("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg := charts.Config{
		Kind:    kind,
		Width:   queryFloat(query.Get("width"), defaultWidth),
		Height:  queryFloat(query.Get("height"), defaultHeight),
		Padding: charts.PadAll(40),
	}

	src := dash.FileSource{
		Path:       filepath.Join(s.dir, name),
		Type:       sourceType(kind),
		SkipHeader: query.Get("header") == "true",
	}
	ds, err := src.Fetch(r.Context())
	if err != nil {
		s.logger.Error("dataset fetch failed", zap.String("name", name), zap.Error(err))
		http.Error(w, "dataset unavailable", http.StatusBadGateway)
		return
	}

	surf, err := s.renderer.Render(ds, cfg)
	if err != nil {
		s.logger.Error("render failed", zap.String("name", name), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	svg, ok := surf.(*charts.SVGSurface)
	if !ok {
		http.Error(w, "surface has no serial form", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := svg.Flush(w); err != nil {
		s.logger.Error("write failed", zap.String("name", name), zap.Error(err))
	}
}

func parseKind(str string) (charts.Kind, error) {
	switch str {
	case "", "pie":
		return charts.KindPie, nil
	case "donut":
		return charts.KindDonut, nil
	case "area":
		return charts.KindArea, nil
	case "dual-axis":
		return charts.KindDualAxis, nil
	}
	return 0, charts.ConfigurationError{Reason: "unknown chart type " + strconv.Quote(str)}
}

func sourceType(kind charts.Kind) string {
	if kind == charts.KindArea || kind == charts.KindDualAxis {
		return dash.TypeSeries
	}
	return dash.TypeCategory
}

func queryFloat(str string, fallback float64) float64 {
	if str == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

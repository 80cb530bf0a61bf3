package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/guardflow/charts"
	"github.com/guardflow/charts/dash"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var defaultPad = charts.PadAll(40)

func main() {
	var (
		kind    = flag.String("type", "pie", "chart type (pie, donut, area, dual-axis)")
		width   = flag.Float64("width", defaultWidth, "chart width")
		height  = flag.Float64("height", defaultHeight, "chart height")
		ratio   = flag.Float64("ratio", 1, "device pixel ratio")
		format  = flag.String("format", "svg", "output format (svg, png)")
		timefmt = flag.String("timefmt", "", "date format of series input")
		header  = flag.Bool("header", false, "input files have a header row")
		result  = flag.String("file", "", "output file (default stdout)")
		verbose = flag.Bool("verbose", false, "log dataset resolution")
	)
	flag.Parse()

	chartKind, err := parseKind(*kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg := charts.Config{
		Kind:       chartKind,
		Width:      *width,
		Height:     *height,
		PixelRatio: *ratio,
		Padding:    defaultPad,
	}

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	var sources []dash.DataSource
	for _, path := range flag.Args() {
		sources = append(sources, dash.FileSource{
			Path:       path,
			Type:       sourceType(chartKind),
			TimeFormat: *timefmt,
			SkipHeader: *header,
		})
	}
	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "no input file given")
		os.Exit(2)
	}
	all, err := dash.FetchAll(context.Background(), logger, sources...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ds := mergeDatasets(all)

	var acquire charts.AcquireFunc
	switch *format {
	case "svg":
		acquire = func(w, h, r float64) charts.Surface {
			return charts.NewSVGSurface(w, h, r)
		}
	case "png":
		acquire = func(w, h, r float64) charts.Surface {
			return charts.NewRasterSurface(w, h, r)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}

	surf, err := charts.NewRenderer(nil, acquire).Render(ds, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeSurface(surf, *result); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseKind(str string) (charts.Kind, error) {
	switch str {
	case "pie":
		return charts.KindPie, nil
	case "donut":
		return charts.KindDonut, nil
	case "area":
		return charts.KindArea, nil
	case "dual-axis":
		return charts.KindDualAxis, nil
	default:
		return 0, fmt.Errorf("unknown chart type %q", str)
	}
}

func sourceType(kind charts.Kind) string {
	if kind == charts.KindArea || kind == charts.KindDualAxis {
		return dash.TypeSeries
	}
	return dash.TypeCategory
}

func mergeDatasets(all []charts.Dataset) charts.Dataset {
	var ds charts.Dataset
	for _, d := range all {
		ds.Categories = append(ds.Categories, d.Categories...)
		ds.Series = append(ds.Series, d.Series...)
	}
	return ds
}

func writeSurface(surf charts.Surface, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	switch s := surf.(type) {
	case *charts.SVGSurface:
		return s.Flush(w)
	case *charts.RasterSurface:
		return s.WritePNG(w)
	default:
		return fmt.Errorf("surface has no serial form")
	}
}

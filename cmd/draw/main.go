package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/midbel/plotlib"
	"github.com/midbel/plotlib/config"
	"github.com/midbel/plotlib/svgplot"
	"github.com/midbel/plotlib/textplot"
	"github.com/spf13/pflag"
)

const (
	defaultCols = 72
	defaultRows = 20
)

type options struct {
	Format  string
	File    string
	Config  string
	Width   float64
	Height  float64
	Cols    int
	Rows    int
	Color   bool
	Force   bool
	Verbose bool

	Title   string
	Kind    string
	Palette string
	XCol    int
	YCol    int
	Bins    int
	XDom    string
	YDom    string
	XLabel  string
	YLabel  string
	Ticks   int
	Nice    bool
	Grid    bool
}

func main() {
	var opts options
	flags := pflag.NewFlagSet("draw", pflag.ExitOnError)
	flags.StringVarP(&opts.Format, "format", "f", "svg", "output format (svg, text)")
	flags.StringVarP(&opts.File, "output", "o", "", "output file (default stdout)")
	flags.StringVarP(&opts.Config, "config", "c", "", "plot description (toml, yaml)")
	flags.Float64Var(&opts.Width, "width", config.DefaultWidth, "plot width")
	flags.Float64Var(&opts.Height, "height", config.DefaultHeight, "plot height")
	flags.IntVar(&opts.Cols, "cols", defaultCols, "columns of a text view")
	flags.IntVar(&opts.Rows, "rows", defaultRows, "rows of a text view")
	flags.BoolVar(&opts.Color, "color", false, "color text output")
	flags.BoolVar(&opts.Force, "force-color", false, "emit colors even when output is not a terminal")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	flags.StringVarP(&opts.Title, "title", "t", "", "plot title")
	flags.StringVar(&opts.Kind, "type", config.LayerScatter, "layer type")
	flags.StringVar(&opts.Palette, "palette", "", "color palette")
	flags.IntVar(&opts.XCol, "xcol", 0, "index of x column")
	flags.IntVar(&opts.YCol, "ycol", 1, "index of y column")
	flags.IntVar(&opts.Bins, "bins", config.DefaultBins, "number of bins of histograms")
	flags.StringVar(&opts.XDom, "xdom", "", "domain of x axis (min:max)")
	flags.StringVar(&opts.YDom, "ydom", "", "domain of y axis (min:max)")
	flags.StringVar(&opts.XLabel, "xlabel", "", "label of x axis")
	flags.StringVar(&opts.YLabel, "ylabel", "", "label of y axis")
	flags.IntVar(&opts.Ticks, "ticks", 0, "number of ticks hint")
	flags.BoolVar(&opts.Nice, "nice", false, "extend domains to round values")
	flags.BoolVar(&opts.Grid, "grid", false, "draw grid lines")
	flags.Parse(os.Args[1:])

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, opts, flags.Args()); err != nil {
		slog.Error("drawing failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, files []string) error {
	desc, err := describe(opts, files)
	if err != nil {
		return err
	}
	slog.Debug("plot described", "views", len(desc.Views), "title", desc.Title)

	plot, err := config.Build(desc)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if opts.File != "" {
		f, err := os.Create(opts.File)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	switch opts.Format {
	case "svg":
		page, err := plot.Render(ctx)
		if err != nil {
			return err
		}
		slog.Debug("svg rendered", "width", page.Width, "height", page.Height, "frames", len(page.Frames))
		return svgplot.Render(w, page)
	case "text", "txt":
		page, err := plot.RenderText(ctx, opts.Cols, opts.Rows)
		if err != nil {
			return err
		}
		slog.Debug("text rendered", "cols", opts.Cols, "rows", opts.Rows, "frames", len(page.Frames))
		return textplot.Render(w, page, textplot.Options{
			Color: opts.Color || opts.Force,
			Force: opts.Force,
		})
	default:
		return fmt.Errorf("%s: unsupported output format", opts.Format)
	}
}

// describe loads the plot description from the config file when one is
// given or builds a single view with one layer per data file.
func describe(opts options, files []string) (*config.Plot, error) {
	if opts.Config != "" {
		slog.Debug("loading plot description", "file", opts.Config)
		desc, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		if opts.Title != "" {
			desc.Title = opts.Title
		}
		if desc.Width <= 0 {
			desc.Width = opts.Width
		}
		if desc.Height <= 0 {
			desc.Height = opts.Height
		}
		return desc, nil
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no data file given")
	}
	xdom, err := parseDomain(opts.XDom)
	if err != nil {
		return nil, fmt.Errorf("x domain: %w", err)
	}
	ydom, err := parseDomain(opts.YDom)
	if err != nil {
		return nil, fmt.Errorf("y domain: %w", err)
	}
	view := config.View{
		Kind: config.KindContinuous,
		X: config.Axis{
			Label:  opts.XLabel,
			Ticks:  opts.Ticks,
			Domain: xdom,
			Nice:   opts.Nice,
			Grid:   opts.Grid,
		},
		Y: config.Axis{
			Label:  opts.YLabel,
			Ticks:  opts.Ticks,
			Domain: ydom,
			Nice:   opts.Nice,
			Grid:   opts.Grid,
		},
	}
	switch opts.Kind {
	case config.LayerBar, config.LayerBox:
		view.Kind = config.KindCategorical
	}
	for _, f := range files {
		view.Layers = append(view.Layers, config.Layer{
			Type:   opts.Kind,
			File:   f,
			X:      opts.XCol,
			Y:      opts.YCol,
			Bins:   opts.Bins,
			Legend: legendOf(f, len(files)),
		})
	}
	desc := config.Plot{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Theme: config.Theme{
			Palette: opts.Palette,
		},
		Views: []config.View{view},
	}
	return &desc, nil
}

func legendOf(file string, count int) string {
	if count <= 1 {
		return ""
	}
	return file
}

func parseDomain(str string) ([]float64, error) {
	if str == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(str, ":")
	if !ok {
		return nil, fmt.Errorf("%s: %w: expected min:max", str, plotlib.ErrDegenerate)
	}
	var (
		dom = make([]float64, 2)
		err error
	)
	if dom[0], err = strconv.ParseFloat(lo, 64); err != nil {
		return nil, err
	}
	if dom[1], err = strconv.ParseFloat(hi, 64); err != nil {
		return nil, err
	}
	return dom, nil
}

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/relief"
	"golang.org/x/image/draw"
	"gonum.org/v1/plot/vg"
)

type Relief struct {
	Config   string `short:"c" desc:"YAML configuration file, flags override its values"`
	Distance string `short:"d" desc:"Offset distance, positive moves overlaps outwards (default 10)"`
	Reverse  bool   `short:"r" desc:"Part is a hole, reverse all curves"`
	Corner   string `desc:"Corner style of offsets: sharp, chamfer or round"`
	KeepJoin bool   `desc:"Keep the first curve of ambiguous joins"`
	Workers  int    `short:"w" default:"0" desc:"Number of candidates processed concurrently"`
	Output   string `short:"o" desc:"Output file (.svg, .geojson, .json or .png), SVG to stdout if empty"`
	Plot     string `desc:"Plot file (.png, .svg or .pdf)"`
	Width    int    `default:"1024" desc:"Image width in pixels of PNG output"`
	Open     bool   `desc:"Open the output file in the browser"`
	Verbose  bool   `short:"v" desc:"Verbose"`
	Input    string `index:"0" desc:"Input file (.svg, .geojson or .json)"`
}

func main() {
	root := argp.NewCmd(&Relief{}, "Relieve pocket boundaries that coincide with a part boundary")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Relief) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	relief.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts, err := cmd.options()
	if err != nil {
		return err
	}

	part, candidates, err := readInput(cmd.Input)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Input, err)
	}

	report, err := relief.NewProcessor(opts).Run(part, candidates)
	if err != nil {
		return err
	}
	for _, failure := range report.Failures {
		fmt.Fprintln(os.Stderr, "WARNING:", failure)
	}
	if cmd.Verbose {
		fmt.Fprintf(os.Stderr, "%d relieved, %d skipped, %d failed\n", len(report.Results), len(report.Skipped), len(report.Failures))
	}

	if err := cmd.write(part, candidates, report); err != nil {
		return err
	}
	if cmd.Plot != "" {
		p, err := relief.Plot(part, candidates, report.Curves())
		if err != nil {
			return err
		} else if err := p.Save(6*vg.Inch, 6*vg.Inch, cmd.Plot); err != nil {
			return err
		}
	}
	if cmd.Open && cmd.Output != "" {
		return browser.OpenFile(cmd.Output)
	}
	return nil
}

func (cmd *Relief) options() (relief.Options, error) {
	opts := relief.DefaultOptions()
	if cmd.Config != "" {
		f, err := os.Open(cmd.Config)
		if err != nil {
			return opts, err
		}
		defer f.Close()

		if opts, err = relief.LoadConfig(f); err != nil {
			return opts, err
		}
	}

	if cmd.Distance != "" {
		d, err := strconv.ParseFloat(cmd.Distance, 64)
		if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
			return opts, fmt.Errorf("bad distance: %s", cmd.Distance)
		}
		opts.Distance = d
	}
	if cmd.Reverse {
		opts.Reverse = true
	}
	if cmd.Corner != "" {
		corner, err := relief.ParseCornerStyle(cmd.Corner)
		if err != nil {
			return opts, err
		}
		opts.Corner = corner
	}
	if cmd.KeepJoin {
		opts.KeepFirstJoin = true
	}
	if 0 < cmd.Workers {
		opts.Workers = cmd.Workers
	}
	return opts, nil
}

func readInput(filename string) (*relief.Curve, []*relief.Curve, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".svg":
		return relief.ReadSVG(bytes.NewReader(data))
	case ".geojson", ".json":
		return relief.ReadGeoJSON(data)
	default:
		return nil, nil, fmt.Errorf("unknown input format: %s", ext)
	}
}

func (cmd *Relief) write(part *relief.Curve, candidates []*relief.Curve, report *relief.Report) error {
	if cmd.Output == "" {
		return relief.WriteSVG(os.Stdout, part, candidates, report.Curves())
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".svg":
		err = relief.WriteSVG(f, part, candidates, report.Curves())
	case ".geojson", ".json":
		err = relief.WriteGeoJSON(f, report.Results)
	case ".png":
		err = png.Encode(f, rasterize(part, candidates, report.Curves(), cmd.Width))
	default:
		err = fmt.Errorf("unknown output format: %s", ext)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rasterize(part *relief.Curve, candidates, results []*relief.Curve, width int) image.Image {
	all := append([]*relief.Curve{part}, candidates...)
	all = append(all, results...)
	view := relief.Bounds(all...)
	view = view.Expand(math.Max(1.0, 0.05*math.Max(view.W(), view.H())))

	height := width
	if 0.0 < view.W() {
		height = int(math.Ceil(float64(width) * view.H() / view.W()))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := relief.NewRasterizer(img, view)
	r.Draw(candidates, relief.Style{Stroke: color.Gray{Y: 0x88}, StrokeWidth: 1.0})
	r.Draw(results, relief.Style{
		Fill:        color.RGBA{R: 0x40, A: 0x40},
		Stroke:      color.RGBA{R: 0xdd, A: 0xff},
		StrokeWidth: 2.0,
	})
	r.Draw([]*relief.Curve{part}, relief.Style{Stroke: color.Black, StrokeWidth: 2.0})
	return img
}

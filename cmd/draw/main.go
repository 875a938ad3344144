package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	_ "time/tzdata"

	"github.com/kballard/go-shellquote"
	"github.com/midbel/xychart"
	"github.com/midbel/xychart/config"
	"github.com/midbel/xychart/svgout"
	"golang.org/x/sync/errgroup"
)

type options struct {
	dir      string
	width    float64
	height   float64
	rotation string
	palette  string
	marker   string
	ticks    int
	noaxis   bool
	split    []string
	stack    []string
}

func main() {
	log.SetPrefix("draw: ")
	log.SetFlags(0)

	var (
		opts  options
		split = flag.String("split", "", "split accessors applied to every series")
		stack = flag.String("stack", "", "stack accessors applied to every series")
	)
	flag.StringVar(&opts.dir, "o", "", "output directory")
	flag.Float64Var(&opts.width, "w", 0, "chart width")
	flag.Float64Var(&opts.height, "h", 0, "chart height")
	flag.StringVar(&opts.rotation, "r", "", "chart rotation (0, 90, -90, 180)")
	flag.StringVar(&opts.palette, "palette", "", "color palette")
	flag.StringVar(&opts.marker, "marker", "circle", "point marker")
	flag.IntVar(&opts.ticks, "ticks", 5, "ticks on axis")
	flag.BoolVar(&opts.noaxis, "no-axis", false, "remove axis")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: draw [options] chart.yml...")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	if opts.split, err = shellquote.Split(*split); err != nil {
		log.Printf("split: %s", err)
		os.Exit(1)
	}
	if opts.stack, err = shellquote.Split(*stack); err != nil {
		log.Printf("stack: %s", err)
		os.Exit(1)
	}

	var grp errgroup.Group
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for _, file := range flag.Args() {
		grp.Go(func() error {
			return draw(file, opts)
		})
	}
	if err := grp.Wait(); err != nil {
		log.Print(err)
		os.Exit(2)
	}
}

func draw(file string, opts options) error {
	cfg, err := config.Load(file)
	if err != nil {
		return err
	}
	chart, err := cfg.Chart()
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := apply(&chart, opts); err != nil {
		return err
	}

	res, err := chart.Compute()
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	out := svgout.DefaultOptions()
	out.Ticks = opts.ticks
	out.NoAxis = opts.noaxis
	if out.Marker, err = svgout.ParseMarker(opts.marker); err != nil {
		return err
	}
	return writeChart(output(file, opts.dir), chart, res, out)
}

func apply(chart *xychart.Chart, opts options) error {
	if opts.width > 0 {
		chart.Width = opts.width
	}
	if opts.height > 0 {
		chart.Height = opts.height
	}
	if opts.rotation != "" {
		r, err := strconv.Atoi(opts.rotation)
		if err != nil {
			return fmt.Errorf("%s: invalid rotation", opts.rotation)
		}
		chart.Rotation = xychart.Rotation(r)
	}
	if opts.palette != "" {
		p, err := xychart.ParsePalette(opts.palette)
		if err != nil {
			return err
		}
		chart.Palette = p
	}
	for i := range chart.Specs {
		if len(opts.split) > 0 {
			chart.Specs[i].SplitSeriesAccessors = opts.split
		}
		if len(opts.stack) > 0 {
			chart.Specs[i].StackAccessors = opts.stack
		}
	}
	return nil
}

func writeChart(file string, chart xychart.Chart, res xychart.Result, opts svgout.Options) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := svgout.Render(w, chart, res, opts); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func output(file, dir string) string {
	name := filepath.Base(file)
	for {
		e := filepath.Ext(name)
		if e == "" {
			break
		}
		name = strings.TrimSuffix(name, e)
	}
	if dir == "" {
		dir = filepath.Dir(file)
	}
	return filepath.Join(dir, name+".svg")
}

// Command mlprep loads a delimited dataset, partitions it into training and
// test sets, vectorizes the labels and prints a summary. Optionally it renders
// a per-label scatter plot and a mosaic of sample rows.
//
// Usage:
//
//	mlprep -input digits.csv.gz -test 0.2 -train 0.8 -seed 42 -mosaic digits.png
//	mlprep -input points.csv -degree 2 -scatter points.png -bounds -1,1,-1,1
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/YuminosukeSato/mlprep/dataset"
	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"github.com/YuminosukeSato/mlprep/pkg/log"
	"github.com/YuminosukeSato/mlprep/visualize"
)

type config struct {
	input    string
	degree   int
	test     float64
	train    float64
	seed     int64
	nominal  string
	logLevel string
	scatter  string
	bounds   string
	mosaic   string
	samples  int
	side     int
	dump     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("mlprep failed", log.ErrAttr(err))
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("mlprep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "input", "", "path to the dataset (.csv, .gz, .zst, .lz4)")
	fs.IntVar(&cfg.degree, "degree", -1, "polynomial degree for the first two columns; -1 keeps all columns")
	fs.Float64Var(&cfg.test, "test", 0.2, "fraction of records tagged test_set")
	fs.Float64Var(&cfg.train, "train", 0.8, "fraction of records tagged training_set")
	fs.Int64Var(&cfg.seed, "seed", -1, "shuffle seed; -1 is random")
	fs.StringVar(&cfg.nominal, "nominal", "zero", "non-numeric features: zero or reject")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&cfg.scatter, "scatter", "", "write a scatter plot of features 1 and 2 to this path")
	fs.StringVar(&cfg.bounds, "bounds", "", "scatter bounds xmin,xmax,ymin,ymax; empty fits the data")
	fs.StringVar(&cfg.mosaic, "mosaic", "", "write a PNG mosaic of test-set samples to this path")
	fs.IntVar(&cfg.samples, "samples", 100, "number of samples in the mosaic")
	fs.IntVar(&cfg.side, "side", 20, "tile side in pixels; rows must hold side*side values")
	fs.BoolVar(&cfg.dump, "dump", false, "print every record")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.input == "" {
		return cfg, errors.NewValidationError("input", "is required", cfg.input)
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	// ログのセットアップ
	level, err := log.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	log.SetupLogger(stderr, level)
	logger := log.NewZerologLogger(stderr, level)
	log.SetLogger(logger)
	errors.SetZerologWarnFunc(logger.WarnFunc())
	defer errors.SetZerologWarnFunc(nil)

	policy, err := dataset.ParseNominalPolicy(cfg.nominal)
	if err != nil {
		return err
	}
	opts := []dataset.LoaderOption{dataset.WithNominalPolicy(policy)}
	if cfg.degree >= 0 {
		opts = append(opts, dataset.WithPolynomialDegree(cfg.degree))
	}

	// 読み込み
	ds, err := dataset.LoadFile(cfg.input, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Loaded %d dataPoints from %s\n", ds.Len(), cfg.input)
	fmt.Fprint(stdout, dataset.FormatLabelFrequencies(ds.LabelFrequencies()))

	// 分割
	p := dataset.NewPartitioner(dataset.WithRandomState(cfg.seed))
	test, err := p.CarveTestSet(ds, cfg.test)
	if err != nil {
		return err
	}
	train, err := p.CarveTrainingSet(ds, cfg.train)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nTraining set: %d dataPoints\n", train.Len())
	fmt.Fprint(stdout, dataset.FormatLabelFrequencies(train.LabelFrequencies()))
	fmt.Fprintf(stdout, "\nTest set: %d dataPoints\n", test.Len())
	fmt.Fprint(stdout, dataset.FormatLabelFrequencies(test.LabelFrequencies()))

	// ラベルのベクトル化と行列化
	lv, err := dataset.VectorizeLabels(ds)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nClasses: %v\n", lv.Classes())
	if train.Len() > 0 {
		X, err := dataset.DesignMatrix(train)
		if err != nil {
			return err
		}
		Y, err := dataset.LabelMatrix(train)
		if err != nil {
			return err
		}
		xr, xc := X.Dims()
		yr, yc := Y.Dims()
		fmt.Fprintf(stdout, "Design matrix: %dx%d, label matrix: %dx%d\n", xr, xc, yr, yc)
	}

	if cfg.dump {
		fmt.Fprint(stdout, "\n", ds.Dump())
	}

	if cfg.scatter != "" {
		if err := renderScatter(ds, cfg); err != nil {
			return err
		}
	}
	if cfg.mosaic != "" {
		if err := renderMosaic(test, cfg, stdout); err != nil {
			return err
		}
	}
	return nil
}

func renderScatter(ds dataset.Dataset, cfg config) error {
	series, err := dataset.ScatterCoordinates(ds)
	if err != nil {
		return err
	}
	var b visualize.Bounds
	if cfg.bounds != "" {
		b, err = visualize.ParseBounds(cfg.bounds)
	} else {
		b, err = visualize.BoundsOf(series, 0.05)
	}
	if err != nil {
		return err
	}
	return visualize.ScatterPlot(series, b, cfg.scatter, visualize.WithTitle(cfg.input))
}

func renderMosaic(test dataset.Dataset, cfg config, stdout io.Writer) error {
	n := cfg.samples
	if n > test.Len() {
		n = test.Len()
	}
	img, err := visualize.SampleMosaic(test, n, cfg.side)
	if err != nil {
		return err
	}
	if err := visualize.SavePNG(img, cfg.mosaic); err != nil {
		return err
	}

	grid, err := dataset.SampleLabelGrid(test, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nSample of %d dataPoints and their ACTUAL classes\n", n)
	for _, row := range grid {
		for _, label := range row {
			fmt.Fprintf(stdout, "%-3s", label)
		}
		fmt.Fprintln(stdout)
	}
	return nil
}

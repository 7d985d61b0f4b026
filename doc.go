// Package mlprep prepares delimited datasets for supervised learning in Go.
//
// mlprep reads CSV-like files (optionally gzip, zstd or lz4 compressed) into
// labeled records, expands two-feature inputs into polynomial terms, shuffles
// and tags records into training and test sets, one-hot encodes labels, and
// assembles gonum design and label matrices that training code can consume
// directly.
//
// # Packages
//
//   - dataset: records, loader, partitioner, label vectors, matrix assembly
//   - preprocessing: PolynomialFeatures and LabelBinarizer transformers
//   - metrics: label counts and Euclidean distance
//   - visualize: per-label scatter plots and sample mosaics
//   - pkg/errors: typed errors with stack traces and warnings
//   - pkg/log: structured logging with a zerolog backend
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mlprep/dataset"
//	)
//
//	func main() {
//	    ds, err := dataset.LoadFile("digits.csv.gz")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    p := dataset.NewPartitioner(dataset.WithRandomState(42))
//	    test, _ := p.CarveTestSet(ds, 0.2)
//	    train, _ := p.CarveTrainingSet(ds, 0.8)
//
//	    if _, err := dataset.VectorizeLabels(ds); err != nil {
//	        log.Fatal(err)
//	    }
//	    X, err := dataset.DesignMatrix(train)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    r, c := X.Dims()
//	    fmt.Printf("train %dx%d, test %d\n", r, c, test.Len())
//	}
//
// # Error Handling
//
// Errors carry stack traces from github.com/cockroachdb/errors. Use errors.As
// to inspect them:
//
//	var pe *errors.ParseError
//	if errors.As(err, &pe) {
//	    fmt.Printf("bad input at line %d\n", pe.Line)
//	}
//
// # Logging
//
// Packages log through pkg/log. Install a backend once at startup:
//
//	logger := log.NewZerologLogger(os.Stderr, log.LevelInfo)
//	log.SetLogger(logger)
//	errors.SetZerologWarnFunc(logger.WarnFunc())
package mlprep

package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"github.com/YuminosukeSato/mlprep/pkg/log"
	"github.com/YuminosukeSato/mlprep/preprocessing"
)

const maxLineBytes = 16 << 20

var numericField = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// NominalPolicy decides what happens to a feature field that is not numeric.
type NominalPolicy int

const (
	// NominalAsZero stores 0 and warns once per column.
	NominalAsZero NominalPolicy = iota
	// NominalReject fails the load with a ParseError.
	NominalReject
)

func (p NominalPolicy) String() string {
	switch p {
	case NominalAsZero:
		return "zero"
	case NominalReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseNominalPolicy accepts "zero" or "reject".
func ParseNominalPolicy(s string) (NominalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "zero":
		return NominalAsZero, nil
	case "reject":
		return NominalReject, nil
	}
	return 0, errors.NewValidationError("nominal", "must be one of zero, reject", s)
}

// Loader parses delimited text into a Dataset.
type Loader struct {
	polynomial bool
	degree     int
	nominal    NominalPolicy
	rewrites   map[string]string
	logger     log.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPolynomialDegree switches the loader to polynomial mode: the first two
// columns are expanded into every monomial up to degree and the rest of the
// feature columns are ignored.
func WithPolynomialDegree(degree int) LoaderOption {
	return func(l *Loader) {
		l.polynomial = true
		l.degree = degree
	}
}

// WithNominalPolicy sets how non-numeric feature fields are handled.
func WithNominalPolicy(p NominalPolicy) LoaderOption {
	return func(l *Loader) {
		l.nominal = p
	}
}

// WithLabelRewrites replaces the label rewrite table. A nil map disables rewriting.
func WithLabelRewrites(m map[string]string) LoaderOption {
	return func(l *Loader) {
		l.rewrites = make(map[string]string, len(m))
		for k, v := range m {
			l.rewrites[k] = v
		}
	}
}

// WithLoaderLogger sets the logger used for load events.
func WithLoaderLogger(logger log.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader. By default it keeps every feature column, stores
// nominal fields as 0 and rewrites the label "10" to "0".
func NewLoader(opts ...LoaderOption) (*Loader, error) {
	l := &Loader{
		nominal:  NominalAsZero,
		rewrites: map[string]string{"10": "0"},
		logger:   log.GetLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.polynomial && l.degree < 0 {
		return nil, errors.NewValidationError("degree", "must be non-negative", l.degree)
	}
	if l.nominal != NominalAsZero && l.nominal != NominalReject {
		return nil, errors.NewValidationError("nominal", "unknown policy", int(l.nominal))
	}
	l.logger = l.logger.With(
		log.ComponentKey, "dataset",
		log.PhaseKey, log.PhasePreprocessing,
		log.OperationKey, log.OperationLoad,
	)
	return l, nil
}

// LoadFile is a shorthand for NewLoader(opts...) followed by LoadFile(path).
func LoadFile(path string, opts ...LoaderOption) (Dataset, error) {
	l, err := NewLoader(opts...)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(path)
}

// LoadFile reads path, decompressing .gz, .zst and .lz4 files on the fly.
// A missing file yields a NotFoundError.
func (l *Loader) LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError(path, err)
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	r, closeFn, err := decompress(path, f)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer closeFn()

	ds, err := l.Load(r)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	l.logger.Debug("Input file read", log.PathKey, path)
	return ds, nil
}

func decompress(path string, f *os.File) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case ".lz4":
		return lz4.NewReader(f), func() {}, nil
	default:
		return f, func() {}, nil
	}
}

// Load parses one Record per non-empty line of r, in input order.
func (l *Loader) Load(r io.Reader) (Dataset, error) {
	start := time.Now()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var ds Dataset
	warned := make(map[int]bool)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := l.parseLine(line, lineNo, len(ds), warned)
		if err != nil {
			return nil, err
		}
		ds = append(ds, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read dataset")
	}

	features := 0
	if len(ds) > 0 {
		features = len(ds[0].Features)
	}
	fields := []any{
		log.SamplesKey, len(ds),
		log.FeaturesKey, features,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	}
	if l.polynomial {
		fields = append(fields, log.DegreeKey, l.degree)
	}
	l.logger.Info("Dataset loaded", fields...)
	if l.polynomial && l.logger.Enabled(context.Background(), log.LevelDebug) {
		l.logger.Debug("Polynomial terms", log.TermsKey, preprocessing.PolynomialFeatureNames(l.degree))
	}
	return ds, nil
}

func (l *Loader) parseLine(line string, lineNo, index int, warned map[int]bool) (*Record, error) {
	columns := strings.Split(line, ",")

	minColumns := 2
	if l.polynomial {
		minColumns = 3
	}
	if len(columns) < minColumns {
		return nil, errors.NewParseError(lineNo, -1,
			fmt.Sprintf("expected at least %d columns, got %d", minColumns, len(columns)))
	}

	label := columns[len(columns)-1]
	if to, ok := l.rewrites[label]; ok {
		label = to
	}

	raw := make([]float64, len(columns)-1)
	for i, field := range columns[:len(columns)-1] {
		if !numericField.MatchString(field) {
			if l.nominal == NominalReject {
				return nil, errors.NewParseError(lineNo, i, fmt.Sprintf("non-numeric feature %q", field))
			}
			l.warnNominal(lineNo, i, field, warned)
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsInf(v, 0) {
			return nil, errors.NewParseError(lineNo, i, fmt.Sprintf("feature %q out of range", field))
		}
		raw[i] = v
	}

	if !l.polynomial {
		features := make([]float64, 0, len(raw)+1)
		features = append(features, 1)
		features = append(features, raw...)
		return NewRecord(label, features), nil
	}

	terms := preprocessing.PolynomialTerms(raw[0], raw[1], l.degree)
	if err := errors.CheckNumericalStability("polynomial_expansion", terms, index); err != nil {
		return nil, err
	}
	return NewRecord(label, terms), nil
}

func (l *Loader) warnNominal(lineNo, column int, field string, warned map[int]bool) {
	if warned[column] {
		return
	}
	warned[column] = true
	errors.Warn(errors.NewDataConversionWarning("string", "float64",
		fmt.Sprintf("column %d holds non-numeric value %q (first seen on line %d); stored as 0", column, field, lineNo)))
	l.logger.Debug("Non-numeric feature stored as zero",
		log.LineKey, lineNo,
		log.ColumnKey, column,
		log.ErrorCodeKey, log.ErrorNominalFeature,
	)
}

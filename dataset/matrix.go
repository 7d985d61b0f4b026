package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"github.com/YuminosukeSato/mlprep/pkg/log"
)

// DesignMatrix stacks the feature vectors of ds row by row. Column 0 is the
// bias column of ones.
func DesignMatrix(ds Dataset) (*mat.Dense, error) {
	if len(ds) == 0 {
		err := errors.NewModelError("DesignMatrix", "empty data", errors.ErrEmptyData)
		logAssemblyError("DesignMatrix", log.ErrorEmptyData, err)
		return nil, err
	}
	cols := len(ds[0].Features)
	if cols == 0 {
		return nil, errors.NewValueError("DesignMatrix", "records have no features")
	}
	for _, r := range ds {
		if len(r.Features) != cols {
			err := errors.NewDimensionError("DesignMatrix", cols, len(r.Features), 1)
			logAssemblyError("DesignMatrix", log.ErrorDimensionMismatch, err)
			return nil, err
		}
	}

	X := mat.NewDense(len(ds), cols, nil)
	for i, r := range ds {
		X.SetRow(i, r.Features)
	}
	return X, nil
}

// logAssemblyError reports a failed matrix assembly on the package logger.
func logAssemblyError(op, code string, err error) {
	log.GetLogger().Error("Matrix assembly failed",
		log.ComponentKey, "dataset",
		log.OperationKey, log.OperationAssemble,
		"op", op,
		log.ErrorCodeKey, code,
		log.ErrorTypeKey, log.ErrorType(err),
		"error", err,
	)
}

// SampleRows returns the first n design-matrix rows without the bias column,
// ready to be drawn as image tiles.
func SampleRows(ds Dataset, n int) (*mat.Dense, error) {
	if n <= 0 || n > len(ds) {
		return nil, errors.NewValueError("SampleRows", fmt.Sprintf("n: %d (must be within [1, %d])", n, len(ds)))
	}
	X, err := DesignMatrix(ds[:n])
	if err != nil {
		return nil, err
	}
	_, cols := X.Dims()
	if cols < 2 {
		return nil, errors.NewDimensionError("SampleRows", 2, cols, 1)
	}
	return mat.DenseCopyOf(X.Slice(0, n, 1, cols)), nil
}

// GridShape returns a near-square grid able to hold n tiles.
func GridShape(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	rows = int(math.Ceil(math.Sqrt(float64(n))))
	cols = (n + rows - 1) / rows
	return rows, cols
}

// SampleLabelGrid lays out the labels of the first n records in the same
// row-major grid the sample mosaic uses.
func SampleLabelGrid(ds Dataset, n int) ([][]string, error) {
	if n <= 0 || n > len(ds) {
		return nil, errors.NewValueError("SampleLabelGrid", fmt.Sprintf("n: %d (must be within [1, %d])", n, len(ds)))
	}
	rows, cols := GridShape(n)
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
	}
	for i := 0; i < n; i++ {
		grid[i/cols][i%cols] = ds[i].Label
	}
	return grid, nil
}

// Coordinates holds the scatter points of one label.
type Coordinates struct {
	X []float64
	Y []float64
}

// Len returns the number of points.
func (c Coordinates) Len() int { return len(c.X) }

// ScatterCoordinates groups features 1 and 2 of every record by label.
func ScatterCoordinates(ds Dataset) (map[string]Coordinates, error) {
	out := make(map[string]Coordinates)
	for _, r := range ds {
		if len(r.Features) < 3 {
			return nil, errors.NewDimensionError("ScatterCoordinates", 3, len(r.Features), 1)
		}
		c := out[r.Label]
		c.X = append(c.X, r.Features[1])
		c.Y = append(c.Y, r.Features[2])
		out[r.Label] = c
	}
	return out, nil
}

package visualize

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlprep/dataset"
	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"github.com/YuminosukeSato/mlprep/pkg/log"
)

// Mosaic draws every row of rows as a side x side grayscale tile and places
// the tiles row-major on a gridRows x gridCols canvas. Row values are read
// column-major within a tile, the layout of the handwritten-digit data, and
// mapped to 255*clamp(v, 0, 1). NaN is drawn as 0.
func Mosaic(rows mat.Matrix, side, gridRows, gridCols int) (*image.Gray, error) {
	n, cols := rows.Dims()
	if side <= 0 {
		return nil, errors.NewValidationError("side", "must be positive", side)
	}
	if cols != side*side {
		return nil, errors.NewDimensionError("Mosaic", side*side, cols, 1)
	}
	if gridRows <= 0 || gridCols <= 0 || gridRows*gridCols < n {
		return nil, errors.NewValueError("Mosaic", "grid is too small for the number of tiles")
	}

	img := image.NewGray(image.Rect(0, 0, gridCols*side, gridRows*side))
	for t := 0; t < n; t++ {
		ox := (t % gridCols) * side
		oy := (t / gridCols) * side
		for x := 0; x < side; x++ {
			for y := 0; y < side; y++ {
				v := rows.At(t, x*side+y)
				if math.IsNaN(v) {
					v = 0
				}
				v = errors.ClipValue(v, 0, 1)
				img.SetGray(ox+x, oy+y, color.Gray{Y: uint8(255 * v)})
			}
		}
	}
	return img, nil
}

// SampleMosaic renders the first n records of ds, bias column dropped, on a
// near-square grid.
func SampleMosaic(ds dataset.Dataset, n, side int) (*image.Gray, error) {
	rows, err := dataset.SampleRows(ds, n)
	if err != nil {
		return nil, err
	}
	gridRows, gridCols := dataset.GridShape(n)
	return Mosaic(rows, side, gridRows, gridCols)
}

// SavePNG encodes img to path.
func SavePNG(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	log.GetLogger().Info("Mosaic written",
		log.ComponentKey, "visualize",
		log.OperationKey, log.OperationRender,
		log.PhaseKey, log.PhaseVisualization,
		log.PathKey, path,
	)
	return nil
}

package visualize

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlprep/dataset"
	"github.com/YuminosukeSato/mlprep/pkg/errors"
)

func TestParseBounds(t *testing.T) {
	b, err := ParseBounds("-1, 1.5,0,10")
	require.NoError(t, err)
	assert.Equal(t, Bounds{XMin: -1, XMax: 1.5, YMin: 0, YMax: 10}, b)

	for _, in := range []string{"", "1,2,3", "a,1,0,1", "1,0,0,1", "0,1,5,5"} {
		_, err := ParseBounds(in)
		var ve *errors.ValidationError
		assert.True(t, errors.As(err, &ve), "input %q", in)
	}
}

func TestMosaicLayout(t *testing.T) {
	// two 2x2 tiles, values stored column-major
	rows := mat.NewDense(2, 4, []float64{
		0, 1, 0, 0,
		1, 1, 1, 2,
	})

	img, err := Mosaic(rows, 2, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	// tile 0: x=0,y=1 holds element 1
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(0), img.GrayAt(1, 0).Y)

	// tile 1 sits to the right, values above 1 are clamped
	for x := 2; x < 4; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, uint8(255), img.GrayAt(x, y).Y)
		}
	}
}

func TestMosaicNaNIsBlack(t *testing.T) {
	rows := mat.NewDense(1, 4, []float64{math.NaN(), 1, math.Inf(1), math.Inf(-1)})

	img, err := Mosaic(rows, 2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(1, 1).Y)
}

func TestMosaicErrors(t *testing.T) {
	rows := mat.NewDense(3, 4, nil)

	_, err := Mosaic(rows, 3, 2, 2)
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))

	_, err = Mosaic(rows, 2, 1, 2)
	var ve *errors.ValueError
	assert.True(t, errors.As(err, &ve))

	_, err = Mosaic(rows, 0, 2, 2)
	var vle *errors.ValidationError
	assert.True(t, errors.As(err, &vle))
}

func TestSampleMosaicAndSavePNG(t *testing.T) {
	ds := make(dataset.Dataset, 5)
	for i := range ds {
		ds[i] = dataset.NewRecord("0", []float64{1, 0.5, 0.5, 0.5, 0.5})
	}

	img, err := SampleMosaic(ds, 5, 2)
	require.NoError(t, err)
	// GridShape(5) = 3 rows x 2 columns
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
	assert.Equal(t, uint8(127), img.GrayAt(0, 0).Y)

	path := filepath.Join(t.TempDir(), "mosaic.png")
	require.NoError(t, SavePNG(img, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestScatterPlot(t *testing.T) {
	series := map[string]dataset.Coordinates{
		"0": {X: []float64{0.1, 0.2}, Y: []float64{0.3, 0.4}},
		"1": {X: []float64{0.5}, Y: []float64{0.6}},
	}
	path := filepath.Join(t.TempDir(), "scatter.png")

	err := ScatterPlot(series, Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, path, WithTitle("labels"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestScatterPlotErrors(t *testing.T) {
	dir := t.TempDir()
	good := Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

	err := ScatterPlot(nil, good, filepath.Join(dir, "a.png"))
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	err = ScatterPlot(map[string]dataset.Coordinates{"a": {X: []float64{1}}}, good, filepath.Join(dir, "b.png"))
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))

	err = ScatterPlot(map[string]dataset.Coordinates{"a": {X: []float64{1}, Y: []float64{1}}}, Bounds{}, filepath.Join(dir, "c.png"))
	var ve *errors.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestBoundsOf(t *testing.T) {
	series := map[string]dataset.Coordinates{
		"a": {X: []float64{0, 2}, Y: []float64{1, 1}},
		"b": {X: []float64{1}, Y: []float64{1}},
	}

	b, err := BoundsOf(series, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, b.XMin, 1e-12)
	assert.InDelta(t, 2.2, b.XMax, 1e-12)
	assert.InDelta(t, 0.9, b.YMin, 1e-12)
	assert.InDelta(t, 1.1, b.YMax, 1e-12)
	assert.NoError(t, b.Validate())

	_, err = BoundsOf(nil, 0.1)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

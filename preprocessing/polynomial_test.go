package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlprep/pkg/errors"
)

func TestPolynomialTerms(t *testing.T) {
	tests := []struct {
		name   string
		x1, x2 float64
		degree int
		want   []float64
	}{
		{"degree 0", 2, 3, 0, []float64{1}},
		{"degree 1", 2, 3, 1, []float64{1, 2, 3}},
		{"degree 2", 2, 3, 2, []float64{1, 2, 3, 4, 6, 9}},
		{"degree 3", 2, 3, 3, []float64{1, 2, 3, 4, 6, 9, 8, 12, 18, 27}},
		{"zero inputs keep bias", 0, 0, 2, []float64{1, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolynomialTerms(tt.x1, tt.x2, tt.degree)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, NPolynomialTerms(tt.degree))
			assert.Equal(t, 1.0, got[0])
		})
	}
}

func TestNPolynomialTerms(t *testing.T) {
	for degree, want := range map[int]int{-1: 0, 0: 1, 1: 3, 2: 6, 3: 10, 6: 28} {
		assert.Equal(t, want, NPolynomialTerms(degree), "degree %d", degree)
	}
}

func TestPolynomialFeatureNames(t *testing.T) {
	names := PolynomialFeatureNames(2)
	assert.Equal(t, []string{
		"x1^0*x2^0",
		"x1^1*x2^0", "x1^0*x2^1",
		"x1^2*x2^0", "x1^1*x2^1", "x1^0*x2^2",
	}, names)
}

func TestPolynomialFeatures(t *testing.T) {
	_, err := NewPolynomialFeatures(-1)
	var ve *errors.ValidationError
	require.True(t, errors.As(err, &ve))

	pf, err := NewPolynomialFeatures(2)
	require.NoError(t, err)

	X := mat.NewDense(2, 3, []float64{
		2, 3, 99,
		1, -1, 99,
	})

	_, err = pf.Transform(X)
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))

	out, err := pf.FitTransform(X)
	require.NoError(t, err)

	r, c := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 6, c)
	assert.Equal(t, []float64{1, 2, 3, 4, 6, 9}, mat.Row(nil, 0, out))
	assert.Equal(t, []float64{1, 1, -1, 1, -1, 1}, mat.Row(nil, 1, out))
	assert.Len(t, pf.FeatureNames(), 6)
	assert.Equal(t, "PolynomialFeatures(degree=2, n_output_features=6)", pf.String())

	_, err = pf.Transform(mat.NewDense(1, 2, []float64{1, 2}))
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))
}

func TestPolynomialFeaturesRejectsNarrowInput(t *testing.T) {
	pf, err := NewPolynomialFeatures(1)
	require.NoError(t, err)

	err = pf.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}))
	var de *errors.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Expected)
	assert.Equal(t, 1, de.Got)
}

func TestPolynomialFeaturesOverflow(t *testing.T) {
	pf, err := NewPolynomialFeatures(3)
	require.NoError(t, err)

	X := mat.NewDense(1, 2, []float64{math.MaxFloat64, 2})
	_, err = pf.FitTransform(X)
	var nie *errors.NumericalInstabilityError
	assert.True(t, errors.As(err, &nie))
}

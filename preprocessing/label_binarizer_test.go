package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlprep/pkg/errors"
)

func TestLabelBinarizerFit(t *testing.T) {
	b := NewLabelBinarizer()
	require.NoError(t, b.Fit([]string{"c", "a", "b", "a", "c"}))

	assert.Equal(t, []string{"a", "b", "c"}, b.Classes())
	assert.Equal(t, "LabelBinarizer(n_classes=3)", b.String())

	for i, label := range []string{"a", "b", "c"} {
		v, err := b.Transform(label)
		require.NoError(t, err)
		require.Equal(t, 3, v.Len())

		sum := 0.0
		for j := 0; j < v.Len(); j++ {
			sum += v.AtVec(j)
		}
		assert.Equal(t, 1.0, sum, "label %s", label)
		assert.Equal(t, 1.0, v.AtVec(i), "label %s", label)

		idx, ok := b.ClassIndex(label)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestLabelBinarizerStableAcrossFits(t *testing.T) {
	labels := []string{"7", "10", "0", "7", "3"}

	first := NewLabelBinarizer()
	require.NoError(t, first.Fit(labels))
	second := NewLabelBinarizer()
	require.NoError(t, second.Fit(labels))

	assert.Equal(t, first.Classes(), second.Classes())
	for _, l := range labels {
		a, err := first.Transform(l)
		require.NoError(t, err)
		b, err := second.Transform(l)
		require.NoError(t, err)
		assert.True(t, mat.Equal(a, b), "label %s", l)
	}

	// Lexicographic, not numeric: "10" sorts before "3".
	assert.Equal(t, []string{"0", "10", "3", "7"}, first.Classes())
}

func TestLabelBinarizerInverseTransform(t *testing.T) {
	b := NewLabelBinarizer()
	require.NoError(t, b.Fit([]string{"cat", "dog", "fish"}))

	got, err := b.InverseTransform(mat.NewVecDense(3, []float64{0, 1, 0}))
	require.NoError(t, err)
	assert.Equal(t, "dog", got)

	got, err = b.InverseTransform(mat.NewVecDense(3, []float64{0.1, 0.2, 0.7}))
	require.NoError(t, err)
	assert.Equal(t, "fish", got)

	_, err = b.InverseTransform(mat.NewVecDense(2, []float64{1, 0}))
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))
}

func TestLabelBinarizerErrors(t *testing.T) {
	b := NewLabelBinarizer()

	_, err := b.Transform("a")
	var nf *errors.NotFittedError
	assert.True(t, errors.As(err, &nf))

	err = b.Fit(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	require.NoError(t, b.Fit([]string{"a"}))
	_, err = b.Transform("z")
	var ve *errors.ValueError
	assert.True(t, errors.As(err, &ve))
}

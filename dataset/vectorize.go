package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"github.com/YuminosukeSato/mlprep/pkg/log"
	"github.com/YuminosukeSato/mlprep/preprocessing"
)

// LabelVectors maps each label to its one-hot vector.
type LabelVectors map[string]*mat.VecDense

// Classes returns the labels in vector-position order.
func (lv LabelVectors) Classes() []string {
	return sortedKeys(lv)
}

// Decode returns the label whose one-hot position matches the largest entry of v.
func (lv LabelVectors) Decode(v mat.Vector) (string, error) {
	classes := lv.Classes()
	if v.Len() != len(classes) {
		return "", errors.NewDimensionError("Decode", len(classes), v.Len(), 0)
	}
	if len(classes) == 0 {
		return "", errors.NewValueError("Decode", "no labels to decode into")
	}
	best := 0
	for i := 1; i < v.Len(); i++ {
		if v.AtVec(i) > v.AtVec(best) {
			best = i
		}
	}
	return classes[best], nil
}

// VectorizeLabels assigns every record the one-hot encoding of its label. Label
// positions follow lexicographic order, so equal label sets always produce the
// same encoding. Records sharing a label share one vector.
func VectorizeLabels(ds Dataset) (LabelVectors, error) {
	lv := make(LabelVectors)
	if len(ds) == 0 {
		return lv, nil
	}

	b := preprocessing.NewLabelBinarizer()
	if err := b.Fit(ds.Labels()); err != nil {
		return nil, err
	}
	for _, class := range b.Classes() {
		v, err := b.Transform(class)
		if err != nil {
			return nil, err
		}
		lv[class] = v
	}
	for _, r := range ds {
		r.VectorLabel = lv[r.Label]
	}

	log.GetLogger().Debug("Labels vectorized",
		log.ComponentKey, "dataset",
		log.OperationKey, log.OperationVectorize,
		log.SamplesKey, len(ds),
		log.ClassesKey, len(lv),
	)
	return lv, nil
}

// LabelMatrix stacks the vector labels of ds into an n x k matrix.
func LabelMatrix(ds Dataset) (*mat.Dense, error) {
	if len(ds) == 0 {
		err := errors.NewModelError("LabelMatrix", "empty data", errors.ErrEmptyData)
		logAssemblyError("LabelMatrix", log.ErrorEmptyData, err)
		return nil, err
	}
	if ds[0].VectorLabel == nil {
		return nil, errors.NewValueError("LabelMatrix", fmt.Sprintf("record 0: %v", errors.ErrMissingVectorLabel))
	}
	k := ds[0].VectorLabel.Len()
	Y := mat.NewDense(len(ds), k, nil)
	for i, r := range ds {
		if r.VectorLabel == nil {
			return nil, errors.NewValueError("LabelMatrix", fmt.Sprintf("record %d: %v", i, errors.ErrMissingVectorLabel))
		}
		if r.VectorLabel.Len() != k {
			err := errors.NewDimensionError("LabelMatrix", k, r.VectorLabel.Len(), 1)
			logAssemblyError("LabelMatrix", log.ErrorDimensionMismatch, err)
			return nil, err
		}
		Y.SetRow(i, r.VectorLabel.RawVector().Data)
	}
	return Y, nil
}

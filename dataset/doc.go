// Package dataset turns delimited text into inputs for supervised learning.
//
// The pipeline is: Loader parses lines into Records, a Partitioner tags them
// held_out / training_set / test_set, VectorizeLabels attaches one-hot label
// vectors, and DesignMatrix stacks the feature vectors into a gonum matrix.
//
// A Dataset is a slice of *Record owned by the caller. Views returned by the
// partitioner are new slices holding the same pointers, so a change made through
// one view is visible through every other view and through the Dataset itself.
//
//	ds, err := dataset.LoadFile("digits.csv")
//	if err != nil {
//	    return err
//	}
//	p := dataset.NewPartitioner(dataset.WithRandomState(42))
//	test, _ := p.CarveTestSet(ds, 0.2)
//	train, _ := p.CarveTrainingSet(ds, 0.8)
//	if _, err := dataset.VectorizeLabels(ds); err != nil {
//	    return err
//	}
//	X, err := dataset.DesignMatrix(train)
//
// Nominal (non-numeric) feature columns are not encoded. By default they are
// stored as 0 and reported once per column as a DataConversionWarning; use
// WithNominalPolicy(NominalReject) to fail with a ParseError instead.
package dataset

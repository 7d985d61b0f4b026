package dataset

import "strconv"

// makeDataset builds n records cycling through labels, with features [1, i, 2i].
func makeDataset(n int, labels ...string) Dataset {
	if len(labels) == 0 {
		labels = []string{"a"}
	}
	ds := make(Dataset, n)
	for i := range ds {
		ds[i] = NewRecord(labels[i%len(labels)], []float64{1, float64(i), float64(2 * i)})
	}
	return ds
}

func labelsOf(ds Dataset) []string {
	out := make([]string, len(ds))
	for i, r := range ds {
		out[i] = r.Label + ":" + strconv.FormatFloat(r.Features[1], 'f', -1, 64)
	}
	return out
}

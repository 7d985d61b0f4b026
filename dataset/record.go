package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlprep/metrics"
)

// Partition tags the subset a Record belongs to.
type Partition string

const (
	HeldOut     Partition = "held_out"
	TrainingSet Partition = "training_set"
	TestSet     Partition = "test_set"
)

// Valid reports whether p is one of the three known tags.
func (p Partition) Valid() bool {
	switch p {
	case HeldOut, TrainingSet, TestSet:
		return true
	}
	return false
}

// Record is one labeled example.
type Record struct {
	// Label is the ground-truth class taken from the last column.
	Label string

	// Features always starts with the constant 1.
	Features []float64

	// Partition is HeldOut until a Partitioner assigns it.
	Partition Partition

	// VectorLabel is the one-hot encoding of Label, nil until VectorizeLabels
	// runs. Records with the same label share one vector; treat it as read-only.
	// It goes stale if labels are added to the dataset afterwards.
	VectorLabel *mat.VecDense
}

// NewRecord returns a held-out Record.
func NewRecord(label string, features []float64) *Record {
	return &Record{Label: label, Features: features, Partition: HeldOut}
}

// String renders the record the way the dataset dump prints it.
func (r *Record) String() string {
	vec := "[]"
	if r.VectorLabel != nil {
		vec = fmt.Sprint(r.VectorLabel.RawVector().Data)
	}
	return fmt.Sprintf("X = %v, label = %s, label as vector: %s", r.Features, r.Label, vec)
}

// Dataset is an ordered, caller-owned collection of records.
type Dataset []*Record

// Len returns the number of records.
func (ds Dataset) Len() int { return len(ds) }

// Labels returns the distinct labels in lexicographic order.
func (ds Dataset) Labels() []string {
	return metrics.UniqueLabels(ds.labelColumn())
}

// LabelFrequencies counts the records per label.
func (ds Dataset) LabelFrequencies() map[string]int {
	return metrics.LabelCounts(ds.labelColumn())
}

func (ds Dataset) labelColumn() []string {
	labels := make([]string, len(ds))
	for i, r := range ds {
		labels[i] = r.Label
	}
	return labels
}

// Subset returns a view of the records currently tagged p, in dataset order.
func (ds Dataset) Subset(p Partition) Dataset {
	var out Dataset
	for _, r := range ds {
		if r.Partition == p {
			out = append(out, r)
		}
	}
	return out
}

// Indices returns the positions of the records currently tagged p. Positions
// refer to the present order of ds and are invalidated by the next shuffle.
func (ds Dataset) Indices(p Partition) *roaring.Bitmap {
	bm := roaring.New()
	for i, r := range ds {
		if r.Partition == p {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// CountPartition returns how many records are tagged p.
func (ds Dataset) CountPartition(p Partition) int {
	n := 0
	for _, r := range ds {
		if r.Partition == p {
			n++
		}
	}
	return n
}

// ResetPartitions tags every record HeldOut.
func (ds Dataset) ResetPartitions() {
	for _, r := range ds {
		r.Partition = HeldOut
	}
}

// Dump renders one line per record, see Record.String.
func (ds Dataset) Dump() string {
	var sb strings.Builder
	for _, r := range ds {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatLabelFrequencies renders "<label> <count> dataPoints" lines sorted by label.
func FormatLabelFrequencies(freq map[string]int) string {
	return metrics.FormatLabelCounts(freq)
}

// Distance is the Euclidean distance between the feature vectors of a and b.
func Distance(a, b *Record) (float64, error) {
	return metrics.EuclideanDistance(a.Features, b.Features)
}

// sortedKeys is shared by the map-returning helpers that need a stable order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"github.com/YuminosukeSato/mlprep/pkg/log"
)

// Partitioner shuffles a Dataset and tags records into training and test sets.
// A Partitioner is not safe for concurrent use.
type Partitioner struct {
	randomState int64
	rng         *rand.Rand
	logger      log.Logger
}

// PartitionOption configures a Partitioner.
type PartitionOption func(*Partitioner)

// WithRandomState fixes the shuffle seed. -1 seeds from the runtime's random source.
func WithRandomState(seed int64) PartitionOption {
	return func(p *Partitioner) {
		p.randomState = seed
	}
}

// WithPartitionLogger sets the logger used for partition events.
func WithPartitionLogger(logger log.Logger) PartitionOption {
	return func(p *Partitioner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPartitioner creates a Partitioner.
func NewPartitioner(opts ...PartitionOption) *Partitioner {
	p := &Partitioner{
		randomState: -1,
		logger:      log.GetLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.randomState >= 0 {
		seed := uint64(p.randomState)
		p.rng = rand.New(rand.NewPCG(seed, seed))
	} else {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p.logger = p.logger.With(
		log.ComponentKey, "dataset",
		log.PhaseKey, log.PhasePreprocessing,
		log.OperationKey, log.OperationPartition,
		log.RandomSeedKey, p.randomState,
	)
	return p
}

// Shuffle permutes ds in place.
func (p *Partitioner) Shuffle(ds Dataset) {
	p.rng.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})
}

// CarveTestSet shuffles ds and tags the first floor(fraction*len(ds)) records
// TestSet. Tags from earlier calls are kept, so repeated calls only grow the
// test set. The returned view aliases the records in ds.
func (p *Partitioner) CarveTestSet(ds Dataset, fraction float64) (Dataset, error) {
	if err := p.validateFraction(fraction); err != nil {
		return nil, err
	}
	p.Shuffle(ds)

	k := targetCount(fraction, len(ds))
	test := make(Dataset, k)
	for i := 0; i < k; i++ {
		ds[i].Partition = TestSet
		test[i] = ds[i]
	}

	p.logger.Info("Test set carved",
		log.PartitionKey, string(TestSet),
		log.FractionKey, fraction,
		log.SamplesKey, k,
	)
	return test, nil
}

// CarveTrainingSet shuffles ds and collects up to floor(fraction*len(ds))
// records that are not in the test set. HeldOut records are tagged
// TrainingSet; records already in the training set are collected as they are.
// Returning fewer records than requested is not an error.
func (p *Partitioner) CarveTrainingSet(ds Dataset, fraction float64) (Dataset, error) {
	if err := p.validateFraction(fraction); err != nil {
		return nil, err
	}
	p.Shuffle(ds)

	k := targetCount(fraction, len(ds))
	train := make(Dataset, 0, k)
	for _, r := range ds {
		if len(train) == k {
			break
		}
		switch r.Partition {
		case TestSet:
			continue
		case HeldOut:
			r.Partition = TrainingSet
		}
		train = append(train, r)
	}

	if len(train) < k {
		p.logger.Debug("Training set smaller than requested",
			"requested", k,
			log.SamplesKey, len(train),
		)
	}
	p.logger.Info("Training set carved",
		log.PartitionKey, string(TrainingSet),
		log.FractionKey, fraction,
		log.SamplesKey, len(train),
	)
	return train, nil
}

func (p *Partitioner) validateFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		p.logger.Error("Invalid partition fraction",
			log.FractionKey, fraction,
			log.ErrorCodeKey, log.ErrorInvalidInput,
		)
		return errors.NewValidationError("fraction", "must be within [0, 1]", fraction)
	}
	return nil
}

// targetCount is floor(fraction*n) with a small tolerance so that values such
// as 0.29*100 land on 29 rather than 28.
func targetCount(fraction float64, n int) int {
	k := int(math.Floor(fraction*float64(n) + 1e-9))
	if k > n {
		k = n
	}
	return k
}

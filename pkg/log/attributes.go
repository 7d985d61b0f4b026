package log

// Standard attribute keys used across mlprep. They follow a hierarchical
// "category.name" convention so log pipelines can filter on prefixes.

// Operation context.
const (
	// OperationKey specifies the pipeline operation being performed.
	// Standard values: see the Operation* constants below.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "dataset", "preprocessing", "visualize"
	ComponentKey = "ml.component"

	// PhaseKey indicates the pipeline phase.
	PhaseKey = "ml.phase"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of records (rows).
	SamplesKey = "data.samples"

	// FeaturesKey is the feature-vector length, bias column included.
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct labels.
	ClassesKey = "data.classes"

	// PathKey is the input file path.
	PathKey = "data.path"

	// LineKey is the 1-based input line number.
	LineKey = "data.line"

	// ColumnKey is the 0-based input column number.
	ColumnKey = "data.column"

	// PartitionKey is a partition tag: held_out, training_set or test_set.
	PartitionKey = "data.partition"
)

// Configuration.
const (
	// DegreeKey is the polynomial expansion degree.
	DegreeKey = "config.degree"

	// FractionKey is the requested partition fraction.
	FractionKey = "config.fraction"

	// RandomSeedKey records the shuffle seed; -1 means clock seeded.
	RandomSeedKey = "config.random_seed"

	// TermsKey lists generated feature names.
	TermsKey = "config.terms"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and warning context.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationLoad      = "load"
	OperationPartition = "partition"
	OperationVectorize = "vectorize"
	OperationAssemble  = "assemble"
	OperationRender    = "render"

	PhasePreprocessing = "preprocessing"
	PhaseVisualization = "visualization"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorNominalFeature    = "NOMINAL_FEATURE"
)

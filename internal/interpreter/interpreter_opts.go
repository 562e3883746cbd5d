package interpreter

// DefaultMaxDepth bounds how deeply the evaluator recurses into nested
// operands. Left-associative chains nest one level per operator.
const DefaultMaxDepth = 10000

// DefaultPrecision prints the shortest representation that round-trips.
const DefaultPrecision = -1

type interpreterOpts struct {
	maxDepth  int
	precision int
}

var defaultInterpreterOpts = interpreterOpts{
	maxDepth:  DefaultMaxDepth,
	precision: DefaultPrecision,
}

type InterpreterOption func(*interpreterOpts)

// WithMaxDepth caps reduction depth; zero or less disables the cap.
func WithMaxDepth(depth int) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.maxDepth = depth
	}
}

// WithPrecision sets the number of significant digits Interpret prints;
// -1 prints the shortest representation that round-trips.
func WithPrecision(precision int) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.precision = precision
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.precision < DefaultPrecision {
		opts.precision = DefaultPrecision
	}

	return &opts
}

package align

import "context"

// Documented defaults for Options; DefaultOptions returns them.
const (
	// DefaultMaxCells bounds the DP matrix at n·m = 2^24 cells (roughly a
	// 4096×4096 alignment, ~400 MB across the three state layers).
	DefaultMaxCells = 1 << 24

	// DefaultOptimaCap bounds AlignAll enumeration. The number of
	// co-optimal alignments can grow exponentially; 64 is far beyond any
	// sensible consumer of "all" alignments.
	DefaultOptimaCap = 64
)

// Options configures one alignment call.
//
//   - Ctx             — cooperative cancellation, sampled once per matrix
//     row; nil means context.Background().
//   - MemoryMode      — FullMatrix (default) or TwoRows (score only).
//   - MaxCells        — ceiling on n·m to bound memory; 0 means
//     DefaultMaxCells.
//   - OptimaCap       — AlignAll fails with ErrTooManyAlignments when more
//     co-optimal alignments exist; 0 means DefaultOptimaCap.
//   - TerminalGapFree — Global only: leading and trailing gaps carry no
//     penalty (semi-global convention).
type Options struct {
	Ctx             context.Context
	MemoryMode      MemoryMode
	MaxCells        int64
	OptimaCap       int
	TerminalGapFree bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MemoryMode: FullMatrix,
		MaxCells:   DefaultMaxCells,
		OptimaCap:  DefaultOptimaCap,
	}
}

// normalize fills zero values with the documented defaults.
// Negative OptimaCap is left in place for Align/AlignAll to reject.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.MaxCells == 0 {
		o.MaxCells = DefaultMaxCells
	}
	if o.OptimaCap == 0 {
		o.OptimaCap = DefaultOptimaCap
	}
}

package align

import "errors"

var (
	// ErrInvalidScoringModel indicates a scoring model that violates the
	// construction contract: a missing substitution entry, a positive gap
	// penalty, or a score magnitude beyond the representable range.
	ErrInvalidScoringModel = errors.New("align: invalid scoring model")
	// ErrNilSequence indicates a nil input sequence.
	ErrNilSequence = errors.New("align: input sequences must be non-nil")
	// ErrNilModel indicates a nil scoring model.
	ErrNilModel = errors.New("align: scoring model must be non-nil")
	// ErrUnknownMode indicates a Mode value outside {Global, Local}.
	ErrUnknownMode = errors.New("align: unknown alignment mode")
	// ErrIncompatibleAlphabet indicates a sequence symbol the scoring model
	// cannot score.
	ErrIncompatibleAlphabet = errors.New("align: sequence symbol outside the scoring model alphabet")
	// ErrSequenceTooLarge indicates the n·m cell count exceeds Options.MaxCells.
	ErrSequenceTooLarge = errors.New("align: sequence length product exceeds the configured ceiling")
	// ErrArithmeticOverflow indicates the worst-case score magnitude cannot be
	// represented safely; no matrix fill is attempted.
	ErrArithmeticOverflow = errors.New("align: score range cannot be represented without overflow")
	// ErrTooManyAlignments indicates more co-optimal alignments exist than
	// Options.OptimaCap permits.
	ErrTooManyAlignments = errors.New("align: optimal alignment count exceeds OptimaCap")
	// ErrCancelled indicates the caller's context was cancelled mid-alignment.
	ErrCancelled = errors.New("align: alignment cancelled")
	// ErrAlignmentNeedsMatrix indicates alignment reconstruction was requested
	// under TwoRows memory mode, which retains no traceback information.
	ErrAlignmentNeedsMatrix = errors.New("align: alignment reconstruction requires MemoryMode=FullMatrix")
	// ErrBadOptimaCap indicates a negative OptimaCap.
	ErrBadOptimaCap = errors.New("align: OptimaCap must be positive")
	// ErrTerminalGapLocal indicates TerminalGapFree combined with Local mode;
	// the option is a global-alignment convention.
	ErrTerminalGapLocal = errors.New("align: TerminalGapFree applies only to Global mode")
)

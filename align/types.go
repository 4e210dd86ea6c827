package align

import (
	"fmt"
	"strings"
)

// Mode selects the alignment variant.
type Mode int

const (
	// Global alignment (Needleman–Wunsch): the alignment spans the full
	// length of both sequences; every leading and trailing gap is charged
	// unless Options.TerminalGapFree is set.
	Global Mode = iota

	// Local alignment (Smith–Waterman): the highest-scoring pair of
	// contiguous subsequences; unaligned flanks are ignored and the score
	// is never negative.
	Local
)

// String renders the mode for diagnostics.
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MemoryMode controls how the engine stores its DP matrices.
//
//   - FullMatrix — keep all three (n+1)×(m+1) state layers and support
//     traceback. Memory: O(N·M).
//   - TwoRows — keep two rows per state layer. Memory: O(min(N,M)).
//     Score only; alignment reconstruction is impossible and is reported
//     as ErrAlignmentNeedsMatrix, never silently degraded.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support traceback.
	FullMatrix MemoryMode = iota
	// TwoRows mode: rolling rows, score only.
	TwoRows
)

// Span is a 0-based half-open [Start, End) range into an input sequence.
type Span struct {
	Start, End int
}

// Len returns the number of positions covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Result is one optimal alignment. X and Y are the gapped renderings of the
// two inputs: equal length, and stripping seq.Gap from each recovers the
// aligned part of the corresponding input exactly.
//
// RangeX and RangeY locate that aligned part in the originals. For Global
// mode they cover the whole inputs; for Local (and TerminalGapFree) they
// mark the aligned core. Under TwoRows memory mode only Score and Mode are
// populated.
type Result struct {
	X, Y   string
	Score  int64
	Mode   Mode
	RangeX Span
	RangeY Span
}

// Identity returns the fraction of columns with identical symbols, in
// [0, 1]. An empty alignment has identity 0.
func (r Result) Identity() float64 {
	if len(r.X) == 0 {
		return 0
	}
	same := 0
	for i := 0; i < len(r.X); i++ {
		if r.X[i] == r.Y[i] && r.X[i] != gapByte {
			same++
		}
	}

	return float64(same) / float64(len(r.X))
}

// String renders the alignment in the conventional three-line form: the
// gapped X row, a rail marking identical columns with '|', the gapped Y
// row, and the score.
func (r Result) String() string {
	rail := make([]byte, len(r.X))
	for i := 0; i < len(r.X); i++ {
		if r.X[i] == r.Y[i] && r.X[i] != gapByte {
			rail[i] = '|'
		} else {
			rail[i] = ' '
		}
	}

	var b strings.Builder
	b.WriteString(r.X)
	b.WriteByte('\n')
	b.WriteString(strings.TrimRight(string(rail), " "))
	b.WriteByte('\n')
	b.WriteString(r.Y)
	fmt.Fprintf(&b, "\nScore = %d", r.Score)

	return b.String()
}

package align

import (
	"fmt"

	"github.com/IkramInf/BioHub/seq"
)

// session carries everything a fill needs after validation: raw symbols,
// dense alphabet codes, and normalized options.
type session struct {
	xb, yb []byte
	xc, yc []int16
	o      Options
}

// Align computes one optimal pairwise alignment of x against y under model.
//
// mode selects Global (end-to-end) or Local (best-scoring segment pair)
// alignment. opts may be nil, which means DefaultOptions. When several
// alignments share the optimal score, the one returned is deterministic:
// at every choice point the engine prefers a match/mismatch column over a
// gap in Y over a gap in X. Use AlignAll to enumerate the rest.
//
// Under MemoryMode TwoRows only Result.Score and Result.Mode are filled;
// row reconstruction needs the full matrix.
func Align(x, y *seq.Sequence, model *ScoringModel, mode Mode, opts *Options) (Result, error) {
	s, err := prepare(x, y, model, mode, opts)
	if err != nil {
		return Result{}, err
	}

	if s.o.MemoryMode == TwoRows {
		score, err := rollingScore(s, model, mode)
		if err != nil {
			return Result{}, err
		}

		return Result{Score: score, Mode: mode}, nil
	}

	d, st, err := fillMatrix(s.o.Ctx, s.xc, s.yc, model, mode, s.o.TerminalGapFree)
	if err != nil {
		return Result{}, err
	}
	tr := &tracer{
		d: d, sm: model,
		xb: s.xb, yb: s.yb,
		xc: s.xc, yc: s.yc,
		mode:         mode,
		terminalFree: s.o.TerminalGapFree,
	}

	return tr.trace(st), nil
}

// AlignAll computes every co-optimal alignment of x against y, in the same
// deterministic order Align uses to pick its single result; the first
// element always equals the Align output. Production stops with
// ErrTooManyAlignments as soon as the count would exceed Options.OptimaCap.
//
// Enumeration replays the full matrix, so MemoryMode TwoRows is rejected
// with ErrAlignmentNeedsMatrix.
func AlignAll(x, y *seq.Sequence, model *ScoringModel, mode Mode, opts *Options) ([]Result, error) {
	s, err := prepare(x, y, model, mode, opts)
	if err != nil {
		return nil, err
	}
	if s.o.MemoryMode == TwoRows {
		return nil, ErrAlignmentNeedsMatrix
	}

	d, st, err := fillMatrix(s.o.Ctx, s.xc, s.yc, model, mode, s.o.TerminalGapFree)
	if err != nil {
		return nil, err
	}
	tr := &tracer{
		d: d, sm: model,
		xb: s.xb, yb: s.yb,
		xc: s.xc, yc: s.yc,
		mode:         mode,
		terminalFree: s.o.TerminalGapFree,
	}

	starts := optimalStarts(d, st, mode, s.o.TerminalGapFree)
	if mode == Local && st.score == 0 {
		// Nothing scores above the empty alignment; every cell would
		// restate it, so report it once.
		return []Result{tr.trace(st)}, nil
	}

	return tr.enumerate(starts, s.o.OptimaCap)
}

// optimalStarts lists every (cell, layer) achieving the optimal score, in
// the order the enumeration visits them: Global takes the corner layers,
// Local scans M row-major, the terminal-free variant scans the last column
// then the last row.
func optimalStarts(d *dpMatrix, st start, mode Mode, terminalFree bool) []start {
	var starts []start
	push := func(i, j int) {
		c := d.at(i, j)
		if d.M[c] == st.score {
			starts = append(starts, start{i: i, j: j, st: stateM, score: st.score})
		}
		if mode == Local {
			return
		}
		if d.Ix[c] == st.score {
			starts = append(starts, start{i: i, j: j, st: stateIx, score: st.score})
		}
		if d.Iy[c] == st.score {
			starts = append(starts, start{i: i, j: j, st: stateIy, score: st.score})
		}
	}

	switch {
	case mode == Local:
		for i := 1; i <= d.n; i++ {
			for j := 1; j <= d.m; j++ {
				push(i, j)
			}
		}
	case terminalFree:
		for i := 0; i <= d.n; i++ {
			push(i, d.m)
		}
		for j := 0; j < d.m; j++ {
			push(d.n, j)
		}
	default:
		push(d.n, d.m)
	}

	return starts
}

// rollingScore runs the two-row fill over the shorter sequence so the
// working set is O(min(n,m)); the substitution lookup is transposed when
// the operands are swapped.
func rollingScore(s *session, model *ScoringModel, mode Mode) (int64, error) {
	xc, yc, flip := s.xc, s.yc, false
	if len(yc) > len(xc) {
		xc, yc, flip = yc, xc, true
	}

	return fillRolling(s.o.Ctx, xc, yc, model, mode, s.o.TerminalGapFree, flip)
}

// prepare validates inputs, normalizes options, encodes both sequences and
// runs the size and overflow pre-checks shared by Align and AlignAll.
func prepare(x, y *seq.Sequence, model *ScoringModel, mode Mode, opts *Options) (*session, error) {
	if x == nil || y == nil {
		return nil, ErrNilSequence
	}
	if model == nil {
		return nil, ErrNilModel
	}
	if mode != Global && mode != Local {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.normalize()
	if o.OptimaCap < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadOptimaCap, o.OptimaCap)
	}
	if o.TerminalGapFree && mode == Local {
		return nil, ErrTerminalGapLocal
	}

	xb, xc, err := encode(x, model, "x")
	if err != nil {
		return nil, err
	}
	yb, yc, err := encode(y, model, "y")
	if err != nil {
		return nil, err
	}

	n, m := int64(len(xc)), int64(len(yc))
	if n*m > o.MaxCells {
		return nil, fmt.Errorf("%w: %d x %d exceeds the %d-cell limit",
			ErrSequenceTooLarge, n, m, o.MaxCells)
	}

	// Any cell value is a path sum of at most n+m+2 terms, each bounded by
	// the model's largest magnitude. Rejecting here keeps the fill free of
	// per-cell overflow checks.
	if maxAbs := model.MaxAbsScore(); maxAbs > 0 && n+m+2 > scoreLimit/maxAbs {
		return nil, fmt.Errorf("%w: |score| may exceed %d for lengths %d and %d",
			ErrArithmeticOverflow, scoreLimit, n, m)
	}

	if err := o.Ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	return &session{xb: xb, yb: yb, xc: xc, yc: yc, o: o}, nil
}

// encode turns a sequence into dense codes under the model's alphabet.
// A symbol outside that alphabet means the sequence and model disagree on
// what they are aligning.
func encode(s *seq.Sequence, model *ScoringModel, name string) ([]byte, []int16, error) {
	raw := s.Bytes()
	codes := make([]int16, len(raw))
	alpha := model.Alphabet()
	for i, b := range raw {
		c := alpha.Code(b)
		if c < 0 {
			return nil, nil, fmt.Errorf("%w: sequence %s symbol %q at position %d is not in alphabet %s",
				ErrIncompatibleAlphabet, name, b, i, alpha)
		}
		codes[i] = int16(c)
	}

	return raw, codes, nil
}

package align

import (
	"fmt"

	"github.com/IkramInf/BioHub/seq"
)

// gapByte is the marker emitted for gap columns in alignment output.
const gapByte = seq.Gap

// maxScoreMagnitude bounds every substitution score and gap penalty a
// ScoringModel may carry. Values beyond it play the role non-finite values
// would in a floating-point model and are rejected at construction, which
// keeps the engine's overflow pre-check exact.
const maxScoreMagnitude int64 = 1 << 56

// ScoringModel combines a substitution table over one alphabet with affine
// gap parameters. Substitution lookup is a pure dense-table read, safe for
// unsynchronized concurrent use, and the model never changes after
// construction.
//
// Penalty convention: scores are maximized, so gapOpen and gapExtend are
// non-positive. gapOpen is charged for the first column of a gap run,
// gapExtend for every further column; a run of length L costs
// gapOpen + (L-1)·gapExtend.
type ScoringModel struct {
	alpha     *seq.Alphabet
	sub       []int64 // dense k×k, row-major by alphabet code
	gapOpen   int64
	gapExtend int64
	maxAbs    int64 // largest |score| across table and gap params
}

// NewScoringModel builds a model from an explicit substitution table.
// The table must define every ordered symbol pair of the alphabet;
// a missing pair, a positive gap parameter, or a score beyond the
// representable magnitude fails with ErrInvalidScoringModel.
func NewScoringModel(alpha *seq.Alphabet, table map[[2]byte]int64, gapOpen, gapExtend int64) (*ScoringModel, error) {
	m, err := newEmptyModel(alpha, gapOpen, gapExtend)
	if err != nil {
		return nil, err
	}
	syms := alpha.Symbols()
	for _, a := range syms {
		for _, b := range syms {
			s, ok := table[[2]byte{a, b}]
			if !ok {
				return nil, fmt.Errorf("%w: missing substitution entry for pair %q,%q", ErrInvalidScoringModel, a, b)
			}
			if err = m.setScore(a, b, s); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// NewMatchMismatch builds the simplest model: one score for identical
// symbols, one for every differing pair.
func NewMatchMismatch(alpha *seq.Alphabet, match, mismatch, gapOpen, gapExtend int64) (*ScoringModel, error) {
	m, err := newEmptyModel(alpha, gapOpen, gapExtend)
	if err != nil {
		return nil, err
	}
	syms := alpha.Symbols()
	for _, a := range syms {
		for _, b := range syms {
			s := mismatch
			if a == b {
				s = match
			}
			if err = m.setScore(a, b, s); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// newEmptyModel validates the shared parameters and allocates the table.
func newEmptyModel(alpha *seq.Alphabet, gapOpen, gapExtend int64) (*ScoringModel, error) {
	if alpha == nil {
		return nil, fmt.Errorf("%w: nil alphabet", ErrInvalidScoringModel)
	}
	if gapOpen > 0 || gapExtend > 0 {
		return nil, fmt.Errorf("%w: gap penalties must be non-positive (gapOpen=%d, gapExtend=%d)",
			ErrInvalidScoringModel, gapOpen, gapExtend)
	}
	if gapOpen < -maxScoreMagnitude || gapExtend < -maxScoreMagnitude {
		return nil, fmt.Errorf("%w: gap penalty magnitude exceeds %d", ErrInvalidScoringModel, maxScoreMagnitude)
	}
	k := alpha.Len()
	m := &ScoringModel{
		alpha:     alpha,
		sub:       make([]int64, k*k),
		gapOpen:   gapOpen,
		gapExtend: gapExtend,
		maxAbs:    maxAbs64(-gapOpen, -gapExtend),
	}

	return m, nil
}

// setScore writes one table entry and folds it into maxAbs.
func (m *ScoringModel) setScore(a, b byte, s int64) error {
	if s > maxScoreMagnitude || s < -maxScoreMagnitude {
		return fmt.Errorf("%w: substitution score %d for pair %q,%q exceeds magnitude %d",
			ErrInvalidScoringModel, s, a, b, maxScoreMagnitude)
	}
	k := m.alpha.Len()
	m.sub[m.alpha.Code(a)*k+m.alpha.Code(b)] = s
	m.maxAbs = maxAbs64(m.maxAbs, s)

	return nil
}

// Score returns the substitution score for the ordered symbol pair (a, b).
// Both symbols must be members of the model's alphabet; passing anything
// else is a programmer error and panics.
func (m *ScoringModel) Score(a, b byte) int64 {
	ca, cb := m.alpha.Code(a), m.alpha.Code(b)
	if ca < 0 || cb < 0 {
		panic(fmt.Sprintf("align: ScoringModel.Score: symbol outside alphabet %q", m.alpha))
	}

	return m.sub[ca*m.alpha.Len()+cb]
}

// scoreCode is the hot-path lookup by dense alphabet codes.
func (m *ScoringModel) scoreCode(ca, cb int) int64 { return m.sub[ca*m.alpha.Len()+cb] }

// Alphabet returns the alphabet the model scores over.
func (m *ScoringModel) Alphabet() *seq.Alphabet { return m.alpha }

// GapOpen returns the cost of the first column of a gap run.
func (m *ScoringModel) GapOpen() int64 { return m.gapOpen }

// GapExtend returns the cost of each further gap column.
func (m *ScoringModel) GapExtend() int64 { return m.gapExtend }

// MaxAbsScore returns the largest score magnitude the model can produce in
// one column; the session uses it to rule out integer overflow up front.
func (m *ScoringModel) MaxAbsScore() int64 { return m.maxAbs }

// maxAbs64 folds |b| into the running maximum a (a is already ≥ 0).
func maxAbs64(a, b int64) int64 {
	if b < 0 {
		b = -b
	}
	if b > a {
		return b
	}

	return a
}

package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IkramInf/BioHub/align"
	"github.com/IkramInf/BioHub/seq"
)

// TestNewMatchMismatch_Scores verifies the two-value scheme lands on every
// symbol pair and that gap penalties are stored as given.
func TestNewMatchMismatch_Scores(t *testing.T) {
	m, err := align.NewMatchMismatch(seq.DNA, 5, -4, -10, -1)
	require.NoError(t, err, "well-formed model must construct")

	assert.Equal(t, int64(5), m.Score('A', 'A'), "match score")
	assert.Equal(t, int64(-4), m.Score('A', 'C'), "mismatch score")
	assert.Equal(t, int64(-4), m.Score('C', 'A'), "mismatch is symmetric here")
	assert.Equal(t, int64(-10), m.GapOpen(), "gap open")
	assert.Equal(t, int64(-1), m.GapExtend(), "gap extend")
	assert.Equal(t, int64(10), m.MaxAbsScore(), "largest magnitude is the open penalty")
}

// TestNewScoringModel_IncompleteTable ensures a substitution table missing
// any ordered symbol pair is rejected.
func TestNewScoringModel_IncompleteTable(t *testing.T) {
	alpha, err := seq.NewAlphabet("AC", 'A')
	require.NoError(t, err)

	table := map[[2]byte]int64{
		{'A', 'A'}: 1,
		{'A', 'C'}: -1,
		{'C', 'A'}: -1,
		// {'C', 'C'} missing
	}
	_, err = align.NewScoringModel(alpha, table, -1, -1)
	assert.ErrorIs(t, err, align.ErrInvalidScoringModel, "missing pair must error")
}

// TestNewScoringModel_ForeignSymbol ensures table entries outside the
// alphabet are rejected rather than silently dropped.
func TestNewScoringModel_ForeignSymbol(t *testing.T) {
	alpha, err := seq.NewAlphabet("AC", 'A')
	require.NoError(t, err)

	table := map[[2]byte]int64{
		{'A', 'A'}: 1, {'A', 'C'}: -1,
		{'C', 'A'}: -1, {'C', 'C'}: 1,
		{'A', 'Z'}: 7,
	}
	_, err = align.NewScoringModel(alpha, table, -1, -1)
	assert.ErrorIs(t, err, align.ErrInvalidScoringModel, "foreign symbol must error")
}

// TestScoringModel_PositiveGapRejected ensures gap penalties must be
// non-positive: a positive "penalty" would reward padding.
func TestScoringModel_PositiveGapRejected(t *testing.T) {
	_, err := align.NewMatchMismatch(seq.DNA, 1, -1, 2, -1)
	assert.ErrorIs(t, err, align.ErrInvalidScoringModel, "positive gap open must error")

	_, err = align.NewMatchMismatch(seq.DNA, 1, -1, -2, 1)
	assert.ErrorIs(t, err, align.ErrInvalidScoringModel, "positive gap extend must error")
}

// TestScoringModel_MagnitudeCeiling ensures scores beyond the representable
// ceiling are rejected at construction, not discovered mid-fill.
func TestScoringModel_MagnitudeCeiling(t *testing.T) {
	huge := int64(1) << 57

	_, err := align.NewMatchMismatch(seq.DNA, huge, -1, -1, -1)
	assert.ErrorIs(t, err, align.ErrInvalidScoringModel, "oversized match score must error")

	_, err = align.NewMatchMismatch(seq.DNA, 1, -huge, -1, -1)
	assert.ErrorIs(t, err, align.ErrInvalidScoringModel, "oversized mismatch score must error")

	_, err = align.NewMatchMismatch(seq.DNA, 1, -1, -huge, -1)
	assert.ErrorIs(t, err, align.ErrInvalidScoringModel, "oversized gap open must error")
}

// TestScoringModel_NilAlphabet ensures construction demands an alphabet.
func TestScoringModel_NilAlphabet(t *testing.T) {
	_, err := align.NewMatchMismatch(nil, 1, -1, -1, -1)
	assert.ErrorIs(t, err, align.ErrInvalidScoringModel, "nil alphabet must error")
}

// TestNucleotideModel_Scheme spot-checks the DNA scheme: +5 identity,
// -4 between complementary bases, -3 otherwise, -2 against N.
func TestNucleotideModel_Scheme(t *testing.T) {
	m, err := align.NucleotideModel(-10, -1)
	require.NoError(t, err)

	assert.Equal(t, int64(5), m.Score('G', 'G'), "identity")
	assert.Equal(t, int64(-4), m.Score('A', 'T'), "complementary transversion")
	assert.Equal(t, int64(-4), m.Score('C', 'G'), "complementary transversion")
	assert.Equal(t, int64(-3), m.Score('A', 'G'), "ordinary mismatch")
	assert.Equal(t, int64(-2), m.Score('A', 'N'), "anything against N")
	assert.Equal(t, int64(-2), m.Score('N', 'N'), "N against N")
}

// TestBlosum62Model_SpotChecks verifies a handful of well-known BLOSUM62
// entries and the table's symmetry.
func TestBlosum62Model_SpotChecks(t *testing.T) {
	m, err := align.Blosum62Model(-11, -1)
	require.NoError(t, err)

	assert.Equal(t, int64(11), m.Score('W', 'W'), "tryptophan self-score")
	assert.Equal(t, int64(9), m.Score('C', 'C'), "cysteine self-score")
	assert.Equal(t, int64(4), m.Score('A', 'A'), "alanine self-score")
	assert.Equal(t, int64(-4), m.Score('P', 'W'), "proline vs tryptophan")
	assert.Equal(t, int64(2), m.Score('W', 'Y'), "tryptophan vs tyrosine")
	assert.Equal(t, int64(1), m.Score('*', '*'), "stop vs stop")

	for _, a := range m.Alphabet().Symbols() {
		for _, b := range m.Alphabet().Symbols() {
			assert.Equal(t, m.Score(a, b), m.Score(b, a), "BLOSUM62 must be symmetric")
		}
	}
}

// TestScoringModel_ScorePanicsOutsideAlphabet documents that Score is a
// programmer-facing accessor: querying a non-member symbol panics.
func TestScoringModel_ScorePanicsOutsideAlphabet(t *testing.T) {
	m, err := align.NewMatchMismatch(seq.DNA, 1, -1, -1, -1)
	require.NoError(t, err)

	assert.Panics(t, func() { m.Score('Z', 'A') }, "non-member symbol must panic")
}

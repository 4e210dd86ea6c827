package seq_test

import (
	"testing"

	"github.com/IkramInf/BioHub/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewAlphabet_Valid verifies construction, membership and code lookup.
func TestNewAlphabet_Valid(t *testing.T) {
	a, err := seq.NewAlphabet("ACGTN", 'N')
	require.NoError(t, err)

	assert.Equal(t, 5, a.Len())
	assert.True(t, a.Contains('A'))
	assert.False(t, a.Contains('X'))
	assert.Equal(t, 0, a.Code('A'))
	assert.Equal(t, 3, a.Code('T'))
	assert.Equal(t, -1, a.Code('x'))
	assert.Equal(t, byte('N'), a.Unknown())
	assert.Equal(t, "ACGTN", a.String())
}

// TestNewAlphabet_Empty verifies ErrEmptyAlphabet on no symbols.
func TestNewAlphabet_Empty(t *testing.T) {
	_, err := seq.NewAlphabet("", 'N')
	assert.ErrorIs(t, err, seq.ErrEmptyAlphabet)
}

// TestNewAlphabet_Duplicate verifies ErrDuplicateSymbol on repeated bytes.
func TestNewAlphabet_Duplicate(t *testing.T) {
	_, err := seq.NewAlphabet("ACGA", 'A')
	assert.ErrorIs(t, err, seq.ErrDuplicateSymbol)
}

// TestNewAlphabet_UnknownOutside verifies the unknown marker must be a member.
func TestNewAlphabet_UnknownOutside(t *testing.T) {
	_, err := seq.NewAlphabet("ACGT", 'N')
	assert.ErrorIs(t, err, seq.ErrUnknownNotMember)
}

// TestNewAlphabet_GapRejected verifies '-' can never be an alphabet symbol.
func TestNewAlphabet_GapRejected(t *testing.T) {
	_, err := seq.NewAlphabet("ACGT-", '-')
	assert.ErrorIs(t, err, seq.ErrGapInAlphabet)
}

// TestPredefinedAlphabets spot-checks DNA, RNA and Protein.
func TestPredefinedAlphabets(t *testing.T) {
	assert.True(t, seq.DNA.Contains('T'))
	assert.False(t, seq.DNA.Contains('U'))
	assert.True(t, seq.RNA.Contains('U'))
	assert.False(t, seq.RNA.Contains('T'))
	assert.Equal(t, byte('X'), seq.Protein.Unknown())
	assert.True(t, seq.Protein.Contains('W'))
	assert.Equal(t, 24, seq.Protein.Len())
}

// TestAlphabet_SymbolsCopy verifies Symbols hands out a defensive copy.
func TestAlphabet_SymbolsCopy(t *testing.T) {
	a, err := seq.NewAlphabet("ACGTN", 'N')
	require.NoError(t, err)

	syms := a.Symbols()
	syms[0] = 'Z'
	assert.Equal(t, "ACGTN", a.String(), "mutating the returned slice must not affect the alphabet")
}

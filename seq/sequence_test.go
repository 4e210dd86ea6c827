package seq_test

import (
	"testing"

	"github.com/IkramInf/BioHub/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Valid verifies a well-formed sequence round-trips its symbols.
func TestNew_Valid(t *testing.T) {
	s, err := seq.New(seq.DNA, "GATTACA")
	require.NoError(t, err)

	assert.Equal(t, 7, s.Len())
	assert.Equal(t, "GATTACA", s.String())
	assert.Equal(t, byte('G'), s.At(0))
	assert.Same(t, seq.DNA, s.Alphabet())
}

// TestNew_Empty verifies a zero-length sequence is legal.
func TestNew_Empty(t *testing.T) {
	s, err := seq.New(seq.DNA, "")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

// TestNew_NilAlphabet verifies ErrNilAlphabet.
func TestNew_NilAlphabet(t *testing.T) {
	_, err := seq.New(nil, "ACGT")
	assert.ErrorIs(t, err, seq.ErrNilAlphabet)
}

// TestNew_InvalidSymbol verifies the offending byte and position are reported.
func TestNew_InvalidSymbol(t *testing.T) {
	_, err := seq.New(seq.DNA, "ACGU")
	require.ErrorIs(t, err, seq.ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "position 3")
}

// TestSequence_BytesCopy verifies Bytes hands out a defensive copy.
func TestSequence_BytesCopy(t *testing.T) {
	s := seq.MustNew(seq.DNA, "ACGT")
	b := s.Bytes()
	b[0] = 'T'
	assert.Equal(t, "ACGT", s.String())
}

// TestReverseComplement_DNA checks the Watson-Crick reverse complement.
func TestReverseComplement_DNA(t *testing.T) {
	s := seq.MustNew(seq.DNA, "GATTACAN")
	rc, err := s.ReverseComplement()
	require.NoError(t, err)
	assert.Equal(t, "NTGTAATC", rc.String())

	// Involution: complementing twice restores the original.
	back, err := rc.ReverseComplement()
	require.NoError(t, err)
	assert.Equal(t, s.String(), back.String())
}

// TestReverseComplement_RNA verifies U pairs with A in both directions.
func TestReverseComplement_RNA(t *testing.T) {
	s := seq.MustNew(seq.RNA, "AUGC")
	rc, err := s.ReverseComplement()
	require.NoError(t, err)
	assert.Equal(t, "GCAU", rc.String())
}

// TestReverseComplement_Protein verifies ErrNoComplement for amino acids.
func TestReverseComplement_Protein(t *testing.T) {
	s := seq.MustNew(seq.Protein, "MKV")
	_, err := s.ReverseComplement()
	assert.ErrorIs(t, err, seq.ErrNoComplement)
}

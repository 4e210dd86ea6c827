package seq

import "fmt"

// Sequence is an ordered run of symbols drawn from one Alphabet.
// It is immutable once constructed: accessors hand out copies, never the
// backing storage, so a Sequence may be shared across concurrent aligners.
type Sequence struct {
	alpha *Alphabet
	data  []byte
}

// New validates every byte of s against alpha and returns the sequence.
// A zero-length sequence is valid. The first offending byte fails with
// ErrInvalidSymbol, reporting its position.
func New(alpha *Alphabet, s string) (*Sequence, error) {
	if alpha == nil {
		return nil, ErrNilAlphabet
	}
	for i := 0; i < len(s); i++ {
		if !alpha.Contains(s[i]) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, s[i], i)
		}
	}

	return &Sequence{alpha: alpha, data: []byte(s)}, nil
}

// MustNew is New panicking on error, for literals in tests and examples.
func MustNew(alpha *Alphabet, s string) *Sequence {
	sq, err := New(alpha, s)
	if err != nil {
		panic(err)
	}

	return sq
}

// Len returns the number of symbols.
func (s *Sequence) Len() int { return len(s.data) }

// At returns the symbol at 0-based position i.
func (s *Sequence) At(i int) byte { return s.data[i] }

// Alphabet returns the alphabet the sequence was validated against.
func (s *Sequence) Alphabet() *Alphabet { return s.alpha }

// String returns the symbols as a plain string.
func (s *Sequence) String() string { return string(s.data) }

// Bytes returns a copy of the underlying symbols.
func (s *Sequence) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)

	return out
}

// ReverseComplement returns the reverse complement of a DNA or RNA sequence.
// Alphabets without a full complement rule (e.g. Protein) fail with
// ErrNoComplement.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	if !s.alpha.nucleic {
		return nil, fmt.Errorf("%w: alphabet %q", ErrNoComplement, s.alpha.String())
	}
	n := len(s.data)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = s.alpha.complementOf(s.data[n-1-i])
	}

	return &Sequence{alpha: s.alpha, data: out}, nil
}

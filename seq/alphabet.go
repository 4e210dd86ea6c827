package seq

import "fmt"

// Gap is the marker used for gap columns in alignment output.
// It is deliberately excluded from every Alphabet.
const Gap byte = '-'

// Alphabet is a finite set of symbols plus a designated "unknown" marker
// (N for nucleotides, X for proteins). It offers O(1) membership tests and
// a dense 0..Len()-1 code per symbol, which scoring tables index by.
//
// An Alphabet never changes after construction and is safe for concurrent use.
type Alphabet struct {
	symbols []byte
	unknown byte
	nucleic bool       // every symbol has a complement within the alphabet
	index   [256]int16 // symbol byte -> dense code, -1 if absent
}

// NewAlphabet builds an alphabet from the given symbol bytes and unknown
// marker. Symbols must be non-empty and unique, the unknown marker must be
// one of them, and the gap marker '-' is rejected outright.
func NewAlphabet(symbols string, unknown byte) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{
		symbols: []byte(symbols),
		unknown: unknown,
	}
	for i := range a.index {
		a.index[i] = -1
	}
	for i, sym := range a.symbols {
		if sym == Gap {
			return nil, ErrGapInAlphabet
		}
		if a.index[sym] >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym)
		}
		a.index[sym] = int16(i)
	}
	if a.index[unknown] < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotMember, unknown)
	}
	a.nucleic = true
	for _, sym := range a.symbols {
		if a.complementOf(sym) == 0 {
			a.nucleic = false

			break
		}
	}

	return a, nil
}

// mustAlphabet backs the package-level predefined alphabets; the inputs are
// compile-time constants, so failure is a programmer error.
func mustAlphabet(symbols string, unknown byte) *Alphabet {
	a, err := NewAlphabet(symbols, unknown)
	if err != nil {
		panic(err)
	}

	return a
}

// Predefined alphabets. DNA and RNA carry N as the unknown marker,
// Protein carries X (the 20 standard amino acids plus B, Z, X and the
// stop symbol *, matching the BLOSUM62 table shipped in package align).
var (
	DNA     = mustAlphabet("ACGTN", 'N')
	RNA     = mustAlphabet("ACGUN", 'N')
	Protein = mustAlphabet("ARNDCQEGHILKMFPSTWYVBZX*", 'X')
)

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Contains reports whether b is a member symbol.
func (a *Alphabet) Contains(b byte) bool { return a.index[b] >= 0 }

// Code returns the dense 0-based code of b, or -1 when b is not a member.
func (a *Alphabet) Code(b byte) int { return int(a.index[b]) }

// Unknown returns the designated unknown marker.
func (a *Alphabet) Unknown() byte { return a.unknown }

// Symbols returns a copy of the member symbols in code order.
func (a *Alphabet) Symbols() []byte {
	out := make([]byte, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// String renders the alphabet as its symbol run, e.g. "ACGTN".
func (a *Alphabet) String() string { return string(a.symbols) }

// complement maps nucleotide symbols to their Watson–Crick partner.
// Zero means "no complement defined for this byte". Initialized as a var
// so it is ready before the predefined alphabets are constructed.
var complement = func() [256]byte {
	var c [256]byte
	c['A'], c['T'] = 'T', 'A'
	c['C'], c['G'] = 'G', 'C'
	c['U'] = 'A'
	c['N'] = 'N'

	return c
}()

// complementOf returns the complement of b under alphabet a, or 0 when the
// alphabet has no complement rule. RNA complements A back to U.
func (a *Alphabet) complementOf(b byte) byte {
	c := complement[b]
	if c == 'T' && a.Contains('U') {
		c = 'U'
	}
	if c == 0 || !a.Contains(c) {
		return 0
	}

	return c
}

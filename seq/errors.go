package seq

import "errors"

var (
	// ErrEmptyAlphabet indicates an alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("seq: alphabet must contain at least one symbol")
	// ErrDuplicateSymbol indicates the same byte listed twice in an alphabet.
	ErrDuplicateSymbol = errors.New("seq: duplicate symbol in alphabet")
	// ErrUnknownNotMember indicates the unknown marker is not an alphabet symbol.
	ErrUnknownNotMember = errors.New("seq: unknown marker must be an alphabet symbol")
	// ErrGapInAlphabet indicates an attempt to include the gap marker '-' as a symbol.
	ErrGapInAlphabet = errors.New("seq: gap marker cannot be an alphabet symbol")
	// ErrNilAlphabet indicates a sequence was constructed without an alphabet.
	ErrNilAlphabet = errors.New("seq: alphabet must not be nil")
	// ErrInvalidSymbol indicates a sequence byte outside its declared alphabet.
	ErrInvalidSymbol = errors.New("seq: symbol not in alphabet")
	// ErrNoComplement indicates ReverseComplement on a non-nucleotide alphabet.
	ErrNoComplement = errors.New("seq: alphabet has no complement rule")
)

package gencode

import "errors"

var (
	// ErrUnknownTable indicates a genetic-code ID this package does not carry.
	ErrUnknownTable = errors.New("gencode: unknown genetic code table")
	// ErrNotNucleotide indicates a translation input whose alphabet is not
	// nucleotide-like (no T or U base).
	ErrNotNucleotide = errors.New("gencode: translation input must be DNA or RNA")
	// ErrCodonLength indicates a translation input whose length is not a
	// multiple of three.
	ErrCodonLength = errors.New("gencode: sequence length must be a multiple of 3")
	// ErrBadCodon indicates a codon symbol no table can read.
	ErrBadCodon = errors.New("gencode: codon contains an unreadable symbol")
)

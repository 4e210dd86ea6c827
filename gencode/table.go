package gencode

import (
	"fmt"
	"sort"

	"github.com/IkramInf/BioHub/seq"
)

// NCBI genetic-code IDs carried by this package.
const (
	// Standard is NCBI table 1 (SGC0).
	Standard = 1
	// VertebrateMitochondrial is NCBI table 2 (SGC1).
	VertebrateMitochondrial = 2
	// Bacterial is NCBI table 11 (Bacterial, Archaeal and Plant Plastid).
	Bacterial = 11
)

// Table is one genetic code: a codon → amino-acid map plus the start-codon
// set. A Table never changes after construction and is safe for concurrent
// use.
type Table struct {
	id    int
	name  string
	desc  string
	aa    [64]byte // amino acid per codon, '*' for stop
	start [64]bool
}

// baseCode maps a nucleotide byte to its 0..3 code in NCBI codon order
// (T, C, A, G); U reads as T. -1 means not a base.
var baseCode = func() [256]int8 {
	var c [256]int8
	for i := range c {
		c[i] = -1
	}
	c['T'], c['U'], c['C'], c['A'], c['G'] = 0, 0, 1, 2, 3

	return c
}()

// codonIndex returns the 0..63 index of a codon, or -1 if any byte is not
// a T/U/C/A/G base.
func codonIndex(b0, b1, b2 byte) int {
	c0, c1, c2 := baseCode[b0], baseCode[b1], baseCode[b2]
	if c0 < 0 || c1 < 0 || c2 < 0 {
		return -1
	}

	return int(c0)<<4 | int(c1)<<2 | int(c2)
}

// mustTable builds a table from the 64-character NCBI ncbieaa string (codon
// order TTT, TTC, TTA, TTG, TCT, ... with bases cycling T, C, A, G) and the
// start-codon list. Inputs are compile-time constants, so failure panics.
func mustTable(id int, name, desc, ncbieaa string, starts ...string) *Table {
	if len(ncbieaa) != 64 {
		panic(fmt.Sprintf("gencode: table %d: ncbieaa length %d", id, len(ncbieaa)))
	}
	t := &Table{id: id, name: name, desc: desc}
	copy(t.aa[:], ncbieaa)
	for _, s := range starts {
		idx := codonIndex(s[0], s[1], s[2])
		if idx < 0 {
			panic(fmt.Sprintf("gencode: table %d: bad start codon %q", id, s))
		}
		t.start[idx] = true
	}

	return t
}

// tables holds every genetic code this package carries, keyed by NCBI ID.
var tables = map[int]*Table{
	Standard: mustTable(Standard, "SGC0", "Standard",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"TTG", "CTG", "ATG"),
	VertebrateMitochondrial: mustTable(VertebrateMitochondrial, "SGC1", "Vertebrate Mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
		"ATT", "ATC", "ATA", "ATG", "GTG"),
	Bacterial: mustTable(Bacterial, "", "Bacterial, Archaeal and Plant Plastid",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"TTG", "CTG", "ATT", "ATC", "ATA", "ATG", "GTG"),
}

// ByID returns the genetic code with the given NCBI ID.
func ByID(id int) (*Table, error) {
	t, ok := tables[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTable, id)
	}

	return t, nil
}

// IDs returns the NCBI IDs of the carried tables in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(tables))
	for id := range tables {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// ID returns the NCBI table number.
func (t *Table) ID() int { return t.id }

// Name returns the short NCBI name (e.g. "SGC0"); may be empty.
func (t *Table) Name() string { return t.name }

// Description returns the NCBI description.
func (t *Table) Description() string { return t.desc }

// AminoAcid returns the amino acid the codon encodes under t, with '*' for
// a stop codon, or 0 when the codon is not readable.
func (t *Table) AminoAcid(codon string) byte {
	if len(codon) != 3 {
		return 0
	}
	idx := codonIndex(codon[0], codon[1], codon[2])
	if idx < 0 {
		return 0
	}

	return t.aa[idx]
}

// IsStart reports whether the codon is a start codon under t.
func (t *Table) IsStart(codon string) bool {
	if len(codon) != 3 {
		return false
	}
	idx := codonIndex(codon[0], codon[1], codon[2])

	return idx >= 0 && t.start[idx]
}

// IsStop reports whether the codon is a stop codon under t.
func (t *Table) IsStop(codon string) bool {
	return t.AminoAcid(codon) == '*'
}

// Translate reads s codon by codon and returns the protein sequence over
// seq.Protein. U is read as T, so DNA and RNA both translate. A codon
// containing the unknown base N yields the unknown amino acid X. The first
// stop codon ends translation; it contributes no output symbol.
func (t *Table) Translate(s *seq.Sequence) (*seq.Sequence, error) {
	if s == nil {
		return nil, ErrNotNucleotide
	}
	if !nucleotideAlphabet(s.Alphabet()) {
		return nil, fmt.Errorf("%w: alphabet %s", ErrNotNucleotide, s.Alphabet())
	}
	raw := s.Bytes()
	if len(raw)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrCodonLength, len(raw))
	}

	out := make([]byte, 0, len(raw)/3)
	unknown := seq.Protein.Unknown()
	for i := 0; i+2 < len(raw); i += 3 {
		b0, b1, b2 := raw[i], raw[i+1], raw[i+2]
		if b0 == 'N' || b1 == 'N' || b2 == 'N' {
			out = append(out, unknown)

			continue
		}
		idx := codonIndex(b0, b1, b2)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadCodon, raw[i:i+3], i)
		}
		aa := t.aa[idx]
		if aa == '*' {
			break
		}
		out = append(out, aa)
	}

	return seq.New(seq.Protein, string(out))
}

// nucleotideAlphabet reports whether every symbol of a is a nucleotide
// base or N. The protein alphabet fails here even though it contains T.
func nucleotideAlphabet(a *seq.Alphabet) bool {
	for _, sym := range a.Symbols() {
		switch sym {
		case 'A', 'C', 'G', 'T', 'U', 'N':
		default:
			return false
		}
	}

	return true
}

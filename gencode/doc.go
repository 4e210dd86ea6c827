// Package gencode ships the NCBI genetic-code tables and translates
// nucleotide sequences into protein sequences.
//
// # What & Why
//
// A genetic code maps each of the 64 nucleotide triplets (codons) to an
// amino acid or a stop signal. The standard code covers most genomes, but
// mitochondria, bacteria and several nuclear lineages reassign a handful of
// codons, so NCBI numbers the variants. This package carries the tables the
// rest of the module needs:
//
//	1  — Standard
//	2  — Vertebrate Mitochondrial
//	11 — Bacterial, Archaeal and Plant Plastid
//
// # Quick start
//
//	tbl, err := gencode.ByID(gencode.Standard)
//	if err != nil { ... }
//	protein, err := tbl.Translate(dnaSeq) // stops at the first stop codon
//
// Translate accepts DNA or RNA input (U is read as T), requires the length
// to be a multiple of three, and renders any codon containing the unknown
// base N as the unknown amino acid X.
//
// # Errors
//
//   - ErrUnknownTable  — ByID called with an ID this package does not carry.
//   - ErrNotNucleotide — input sequence is not DNA/RNA-like.
//   - ErrCodonLength   — input length is not a multiple of three.
//   - ErrBadCodon      — a codon contains a symbol no table can read.
//
// All operations are pure and safe for concurrent use.
package gencode

// Package seq provides the alphabet and sequence primitives shared by the
// alignment and translation packages.
//
// 🚀 What is seq?
//
//	A small, allocation-light foundation for biological strings:
//	  • Alphabet — a finite symbol set with O(1) membership and a
//	    designated "unknown" marker (N for nucleotides, X for proteins)
//	  • Sequence — an immutable run of symbols validated against its
//	    Alphabet at construction time
//	  • ReverseComplement for DNA/RNA sequences
//
// ✨ Guarantees:
//   - Every Sequence symbol is a member of its Alphabet (checked once,
//     at construction; invalid input fails with ErrInvalidSymbol).
//   - The gap marker '-' is never an alphabet member; gaps exist only in
//     alignment output, never in a Sequence.
//   - Values are safe for concurrent read-only use; nothing here mutates
//     after construction.
//
// ⚙️ Usage:
//
//	import "github.com/IkramInf/BioHub/seq"
//
//	s, err := seq.New(seq.DNA, "GATTACA")
//	if err != nil { ... }
//	rc, _ := s.ReverseComplement() // TGTAATC
package seq

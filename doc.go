// Package biohub is a small toolkit for pairwise biological sequence
// analysis: typed sequences over explicit alphabets, optimal alignment,
// and genetic-code translation.
//
// 🚀 What is BioHub?
//
//	A pure-Go library that brings together:
//		• Typed sequences: DNA, RNA and protein over validated alphabets
//		• Pairwise alignment: Needleman–Wunsch (global), Smith–Waterman
//		  (local), affine gap costs, semi-global free end-gaps
//		• Scoring models: match/mismatch schemes, the nucleotide +5/-4/-3
//		  table, BLOSUM62
//		• Co-optimal enumeration: every equally-good alignment, capped
//		• Genetic codes: NCBI translation tables and ORF translation
//
// ✨ Why choose BioHub?
//
//   - Exact, not heuristic – full dynamic programming with deterministic
//     tie-breaking, no seeding shortcuts
//   - Predictable resources – explicit cell ceilings, score-overflow
//     pre-checks, optional O(min(N,M)) score-only memory mode
//   - Cooperative – context cancellation sampled during long fills
//
// Everything is organized under three subpackages:
//
//	seq/     — alphabets, immutable sequences, reverse complement
//	align/   — scoring models, global/local alignment, enumeration
//	gencode/ — NCBI genetic-code tables and translation
//
// Quick example:
//
//	model, _ := align.NucleotideModel(-10, -1)
//	x := seq.MustNew(seq.DNA, "TTGACGAA")
//	y := seq.MustNew(seq.DNA, "CCGACGTT")
//	r, _ := align.Align(x, y, model, align.Local, nil)
//	fmt.Println(r) // the shared GACG core, score 20
//
// See each subpackage's doc.go for the full story.
package biohub

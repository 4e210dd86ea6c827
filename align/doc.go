// Package align computes optimal pairwise alignments of biological
// sequences by exact dynamic programming, with affine gap penalties.
//
// 🚀 What is align?
//
//	An exact O(N·M) alignment engine in two modes:
//	  • Global — Needleman–Wunsch, the alignment spans both sequences
//	  • Local  — Smith–Waterman, the best-scoring subsequence pair
//
// ✨ Key features:
//   - three-state affine DP (match / gap-in-X / gap-in-Y), so opening a
//     gap and extending one carry distinct costs
//   - deterministic traceback: on score ties the match state wins over a
//     gap in Y, which wins over a gap in X — reproducible output, always
//   - pluggable ScoringModel: match/mismatch, the classic nucleotide
//     matrix, BLOSUM62, or any caller-supplied substitution table
//   - full-matrix mode for alignment reconstruction, two-row mode for
//     score-only runs in O(min(N,M)) memory (choose via MemoryMode)
//   - AlignAll enumerates every co-optimal alignment under a hard cap
//   - TerminalGapFree global variant: leading and trailing gaps are free
//   - cooperative cancellation via Options.Ctx, checked once per row
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/IkramInf/BioHub/align"
//	  "github.com/IkramInf/BioHub/seq"
//	)
//
//	x := seq.MustNew(seq.DNA, "GATTACA")
//	y := seq.MustNew(seq.DNA, "GCATGCT")
//	model, _ := align.NewMatchMismatch(seq.DNA, 1, -1, -2, -1)
//	opts := align.DefaultOptions()
//	res, err := align.Align(x, y, model, align.Global, &opts)
//
// Concurrency:
//
//	Each Align call owns its DP matrix; a ScoringModel is immutable after
//	construction. Concurrent Align calls on shared models and sequences
//	need no locking.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows, score only)
package align

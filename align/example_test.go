package align_test

import (
	"fmt"

	"github.com/IkramInf/BioHub/align"
	"github.com/IkramInf/BioHub/seq"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_global
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Align the classic pair GATTACA / GCATGCU end to end with the simplest
//	possible model: match +1, mismatch -1, flat gap cost -1.
//
// Use case:
//
//	The first alignment everyone computes by hand; here it prints the
//	conventional three-line report.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign_global() {
	alpha, _ := seq.NewAlphabet("ACGTUN", 'N')
	model, _ := align.NewMatchMismatch(alpha, 1, -1, -1, -1)
	x, _ := seq.New(alpha, "GATTACA")
	y, _ := seq.New(alpha, "GCATGCU")

	r, err := align.Align(x, y, model, align.Global, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(r)
	// Output:
	// G-ATTACA
	// | ||  |
	// GCAT-GCU
	// Score = 0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_local
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Extract the best-scoring shared segment of two DNA reads with the
//	nucleotide model (+5 match, -4/-3 mismatch, -2 against N).
//
// Use case:
//
//	Finding a conserved motif inside otherwise unrelated flanks.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign_local() {
	model, _ := align.NucleotideModel(-10, -1)
	x := seq.MustNew(seq.DNA, "TTGACGAA")
	y := seq.MustNew(seq.DNA, "CCGACGTT")

	r, err := align.Align(x, y, model, align.Local, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s / %s\nscore=%d x[%d:%d] y[%d:%d]\n",
		r.X, r.Y, r.Score, r.RangeX.Start, r.RangeX.End, r.RangeY.Start, r.RangeY.End)
	// Output:
	// GACG / GACG
	// score=20 x[2:6] y[2:6]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlignAll
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	AT against TA has two equally good global alignments: the middle match
//	can sit on either side of the gap pair. AlignAll lists both.
//
// Use case:
//
//	Downstream tools that must know whether an alignment is ambiguous.
//
// Complexity: O(N·M + K·L) time for K alignments of length L
func ExampleAlignAll() {
	model, _ := align.NewMatchMismatch(seq.DNA, 1, -1, -1, -1)
	x := seq.MustNew(seq.DNA, "AT")
	y := seq.MustNew(seq.DNA, "TA")

	all, err := align.AlignAll(x, y, model, align.Global, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range all {
		fmt.Printf("%s / %s\n", r.X, r.Y)
	}
	// Output:
	// -AT / TA-
	// AT- / -TA
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_terminalGapFree
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Place a short probe inside a longer target. TerminalGapFree waives the
//	penalty on both flanks, so the probe is judged only on its core.
//
// Use case:
//
//	Primer or adapter placement, where overhangs are expected and free.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign_terminalGapFree() {
	model, _ := align.NewMatchMismatch(seq.DNA, 1, -1, -2, -1)
	probe := seq.MustNew(seq.DNA, "ACGT")
	target := seq.MustNew(seq.DNA, "TTACGTGG")

	opts := align.DefaultOptions()
	opts.TerminalGapFree = true
	r, err := align.Align(probe, target, model, align.Global, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s\n%s\nscore=%d\n", r.X, r.Y, r.Score)
	// Output:
	// --ACGT--
	// TTACGTGG
	// score=4
}

package align

import (
	"context"
	"fmt"
)

// negInf marks unreachable DP states. Reachable cell values are bounded by
// scoreLimit (enforced before any fill), so an unreachable value drifted by
// gap additions stays far below every reachable one and no addition in the
// fill can wrap int64.
const negInf int64 = -1 << 62

// scoreLimit bounds the worst-case magnitude of a reachable cell value.
// The session rejects inputs whose bound maxAbs·(n+m+2) exceeds it.
const scoreLimit int64 = 1 << 60

// state identifies the DP layer a value belongs to.
type state uint8

const (
	// stateM: the column consumes one symbol from each sequence.
	stateM state = iota
	// stateIx: the column consumes one X symbol against a gap in Y.
	stateIx
	// stateIy: the column consumes one Y symbol against a gap in X.
	stateIy
)

// dpMatrix holds the three affine-gap layers as flat row-major arenas of
// (n+1)·(m+1) cells each.
type dpMatrix struct {
	n, m int
	w    int // row width, m+1
	M    []int64
	Ix   []int64
	Iy   []int64
}

func (d *dpMatrix) at(i, j int) int { return i*d.w + j }

// start is where traceback begins: cell, layer, and the optimal score.
type start struct {
	i, j  int
	st    state
	score int64
}

// best3 returns the maximum of m, ix, iy and the layer that achieved it,
// preferring M over Ix over Iy on exact ties. This precedence is the one
// tie-break rule of the whole engine; traceback recomputes terms against
// it, so the two must never diverge.
func best3(m, ix, iy int64) (int64, state) {
	v, st := m, stateM
	if ix > v {
		v, st = ix, stateIx
	}
	if iy > v {
		v, st = iy, stateIy
	}

	return v, st
}

// best2 prefers the first argument on exact ties (gap open over extend).
func best2(a, b int64) int64 {
	if b > a {
		return b
	}

	return a
}

// fillMatrix builds and fills the full three-layer DP matrix for sequences
// given as dense alphabet codes, and returns the traceback start.
//
// Recurrences, maximizing, for 1 ≤ i ≤ n, 1 ≤ j ≤ m:
//
//	M[i][j]  = max(M[i-1][j-1], Ix[i-1][j-1], Iy[i-1][j-1]) + sub(x[i], y[j])
//	Ix[i][j] = max(M[i-1][j] + open, Ix[i-1][j] + extend)
//	Iy[i][j] = max(M[i][j-1] + open, Iy[i][j-1] + extend)
//
// Local mode floors M at zero and tracks the best M cell, ties resolved to
// the smallest i, then smallest j (first cell in row-major order).
// Cancellation is sampled once per row.
func fillMatrix(ctx context.Context, xc, yc []int16, sm *ScoringModel, mode Mode, terminalFree bool) (*dpMatrix, start, error) {
	n, m := len(xc), len(yc)
	cells := (n + 1) * (m + 1)
	d := &dpMatrix{
		n: n, m: m, w: m + 1,
		M:  make([]int64, cells),
		Ix: make([]int64, cells),
		Iy: make([]int64, cells),
	}
	open, ext := sm.gapOpen, sm.gapExtend
	k := sm.alpha.Len()

	// Boundary row and column. Local keeps the all-zero boundary the
	// allocation already provides.
	if mode == Global {
		d.Ix[d.at(0, 0)] = negInf
		d.Iy[d.at(0, 0)] = negInf
		for j := 1; j <= m; j++ {
			d.M[d.at(0, j)] = negInf
			d.Ix[d.at(0, j)] = negInf
			if terminalFree {
				d.Iy[d.at(0, j)] = 0
			} else {
				d.Iy[d.at(0, j)] = open + int64(j-1)*ext
			}
		}
		for i := 1; i <= n; i++ {
			d.M[d.at(i, 0)] = negInf
			d.Iy[d.at(i, 0)] = negInf
			if terminalFree {
				d.Ix[d.at(i, 0)] = 0
			} else {
				d.Ix[d.at(i, 0)] = open + int64(i-1)*ext
			}
		}
	}

	best := start{st: stateM} // Local running optimum; zero score floor
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, start{}, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		row := d.at(i, 0)
		prev := d.at(i-1, 0)
		xrow := int(xc[i-1]) * k
		for j := 1; j <= m; j++ {
			diag, _ := best3(d.M[prev+j-1], d.Ix[prev+j-1], d.Iy[prev+j-1])
			mv := diag + sm.sub[xrow+int(yc[j-1])]
			if mode == Local && mv < 0 {
				mv = 0
			}
			d.M[row+j] = mv
			d.Ix[row+j] = best2(d.M[prev+j]+open, d.Ix[prev+j]+ext)
			d.Iy[row+j] = best2(d.M[row+j-1]+open, d.Iy[row+j-1]+ext)
			if mode == Local && mv > best.score {
				best = start{i: i, j: j, st: stateM, score: mv}
			}
		}
	}

	switch {
	case mode == Local:
		return d, best, nil
	case terminalFree:
		return d, terminalStart(d), nil
	default:
		v, st := best3(d.M[d.at(n, m)], d.Ix[d.at(n, m)], d.Iy[d.at(n, m)])

		return d, start{i: n, j: m, st: st, score: v}, nil
	}
}

// terminalStart picks the traceback start for the terminal-gap-free
// variant: the best cell over the last column and last row, ties resolved
// to the last column first, smaller index first, layer order M > Ix > Iy.
// The unaligned remainder beyond the start cell becomes free trailing gaps.
func terminalStart(d *dpMatrix) start {
	v, st := best3(d.M[d.at(0, d.m)], d.Ix[d.at(0, d.m)], d.Iy[d.at(0, d.m)])
	s := start{i: 0, j: d.m, st: st, score: v}
	for i := 1; i <= d.n; i++ {
		if v, st = best3(d.M[d.at(i, d.m)], d.Ix[d.at(i, d.m)], d.Iy[d.at(i, d.m)]); v > s.score {
			s = start{i: i, j: d.m, st: st, score: v}
		}
	}
	for j := 0; j < d.m; j++ {
		if v, st = best3(d.M[d.at(d.n, j)], d.Ix[d.at(d.n, j)], d.Iy[d.at(d.n, j)]); v > s.score {
			s = start{i: d.n, j: j, st: st, score: v}
		}
	}

	return s
}

// fillRolling computes the optimal score only, keeping two rows per layer.
// When flip is set the substitution lookup is transposed; the session uses
// that to roll over the shorter sequence, so memory is O(min(n,m)).
func fillRolling(ctx context.Context, xc, yc []int16, sm *ScoringModel, mode Mode, terminalFree, flip bool) (int64, error) {
	n, m := len(xc), len(yc)
	open, ext := sm.gapOpen, sm.gapExtend
	k := sm.alpha.Len()
	sub := func(ci, cj int) int64 {
		if flip {
			return sm.sub[cj*k+ci]
		}

		return sm.sub[ci*k+cj]
	}

	mp, mc := make([]int64, m+1), make([]int64, m+1)
	ixp, ixc := make([]int64, m+1), make([]int64, m+1)
	iyp, iyc := make([]int64, m+1), make([]int64, m+1)

	// Row 0 boundary; Local keeps all zeros.
	if mode == Global {
		ixp[0], iyp[0] = negInf, negInf
		for j := 1; j <= m; j++ {
			mp[j] = negInf
			ixp[j] = negInf
			if terminalFree {
				iyp[j] = 0
			} else {
				iyp[j] = open + int64(j-1)*ext
			}
		}
	}

	var localBest int64 // Local: floored at zero
	termBest := negInf  // terminal-free: max over last column and last row
	if terminalFree {
		termBest, _ = best3(mp[m], ixp[m], iyp[m])
	}

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		// Column 0 of the current row.
		mc[0], iyc[0] = 0, 0
		ixc[0] = 0
		if mode == Global {
			mc[0], iyc[0] = negInf, negInf
			if terminalFree {
				ixc[0] = 0
			} else {
				ixc[0] = open + int64(i-1)*ext
			}
		}
		ci := int(xc[i-1])
		for j := 1; j <= m; j++ {
			diag, _ := best3(mp[j-1], ixp[j-1], iyp[j-1])
			mv := diag + sub(ci, int(yc[j-1]))
			if mode == Local && mv < 0 {
				mv = 0
			}
			mc[j] = mv
			ixc[j] = best2(mp[j]+open, ixp[j]+ext)
			iyc[j] = best2(mc[j-1]+open, iyc[j-1]+ext)
			if mode == Local && mv > localBest {
				localBest = mv
			}
		}
		if terminalFree {
			if v, _ := best3(mc[m], ixc[m], iyc[m]); v > termBest {
				termBest = v
			}
		}
		mp, mc = mc, mp
		ixp, ixc = ixc, ixp
		iyp, iyc = iyc, iyp
	}

	// After the final swap the previous-row slices hold row n.
	switch {
	case mode == Local:
		return localBest, nil
	case terminalFree:
		for j := 0; j <= m; j++ {
			if v, _ := best3(mp[j], ixp[j], iyp[j]); v > termBest {
				termBest = v
			}
		}

		return termBest, nil
	default:
		v, _ := best3(mp[m], ixp[m], iyp[m])

		return v, nil
	}
}

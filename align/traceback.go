package align

import "fmt"

// tracer walks a filled matrix backward. No move markers are stored during
// the fill; the tracer recomputes which recurrence term produced each cell,
// matching terms in the best3 precedence so the traced path is exactly the
// one the fill preferred.
type tracer struct {
	d            *dpMatrix
	sm           *ScoringModel
	xb, yb       []byte  // original symbols
	xc, yc       []int16 // dense alphabet codes
	mode         Mode
	terminalFree bool
}

func (t *tracer) sub(i, j int) int64 {
	return t.sm.scoreCode(int(t.xc[i-1]), int(t.yc[j-1]))
}

// pick resolves which diagonal layer the value p came from, in precedence
// order. Exactly one call path reaches it, from stateM, and the fill
// guarantees at least one layer matches.
func (t *tracer) pick(i, j int, p int64) state {
	c := t.d.at(i, j)
	switch {
	case t.d.M[c] == p:
		return stateM
	case t.d.Ix[c] == p:
		return stateIx
	default:
		return stateIy
	}
}

// trace recovers the single preferred optimal alignment from s.
//
// Columns are collected last-to-first and reversed in place at the end.
// Global walks stop at (0,0); Local stops at the first M cell holding a
// zero; the terminal-free variant stops at any boundary cell and pads the
// unaligned flanks with free gap columns.
func (t *tracer) trace(s start) Result {
	var bx, by []byte
	i, j, st := s.i, s.j, s.st

	// Trailing flank beyond a terminal-free start, in reverse column order.
	if t.terminalFree {
		for jj := t.d.m; jj > s.j; jj-- {
			bx = append(bx, gapByte)
			by = append(by, t.yb[jj-1])
		}
		for ii := t.d.n; ii > s.i; ii-- {
			bx = append(bx, t.xb[ii-1])
			by = append(by, gapByte)
		}
	}

	for {
		if st == stateM {
			if t.mode == Local && t.d.M[t.d.at(i, j)] == 0 {
				break
			}
			if i == 0 && j == 0 {
				break
			}
		}
		if t.terminalFree && (i == 0 || j == 0) {
			break
		}
		switch st {
		case stateM:
			bx = append(bx, t.xb[i-1])
			by = append(by, t.yb[j-1])
			p := t.d.M[t.d.at(i, j)] - t.sub(i, j)
			i, j = i-1, j-1
			st = t.pick(i, j, p)
		case stateIx:
			bx = append(bx, t.xb[i-1])
			by = append(by, gapByte)
			v := t.d.Ix[t.d.at(i, j)]
			i--
			if t.d.M[t.d.at(i, j)]+t.sm.gapOpen == v {
				st = stateM
			}
		case stateIy:
			bx = append(bx, gapByte)
			by = append(by, t.yb[j-1])
			v := t.d.Iy[t.d.at(i, j)]
			j--
			if t.d.M[t.d.at(i, j)]+t.sm.gapOpen == v {
				st = stateM
			}
		}
	}
	coreI, coreJ := i, j

	// Leading flank before a terminal-free stop, still in reverse order.
	if t.terminalFree {
		for ; j > 0; j-- {
			bx = append(bx, gapByte)
			by = append(by, t.yb[j-1])
		}
		for ; i > 0; i-- {
			bx = append(bx, t.xb[i-1])
			by = append(by, gapByte)
		}
	}

	reverseBytes(bx)
	reverseBytes(by)

	return t.result(bx, by, s, coreI, coreJ)
}

// result assembles a Result from forward-order alignment rows and the
// half-open core ranges [coreI, s.i) × [coreJ, s.j).
func (t *tracer) result(bx, by []byte, s start, coreI, coreJ int) Result {
	r := Result{
		X:     string(bx),
		Y:     string(by),
		Score: s.score,
		Mode:  t.mode,
	}
	switch {
	case t.mode == Local || t.terminalFree:
		r.RangeX = Span{Start: coreI, End: s.i}
		r.RangeY = Span{Start: coreJ, End: s.j}
	default:
		r.RangeX = Span{Start: 0, End: t.d.n}
		r.RangeY = Span{Start: 0, End: t.d.m}
	}

	return r
}

// enumerate emits every co-optimal alignment reachable from starts, in the
// deterministic order induced by the start order and the M > Ix > Iy term
// order at each branch. Shared column buffers grow and shrink with the
// depth-first walk; rows are copied out only when a path terminates.
// Exceeding limit aborts with ErrTooManyAlignments.
func (t *tracer) enumerate(starts []start, limit int) ([]Result, error) {
	var (
		out    []Result
		bx, by []byte
		cur    start
	)

	var visit func(i, j int, st state) error
	visit = func(i, j int, st state) error {
		stop := false
		if st == stateM {
			if t.mode == Local {
				stop = t.d.M[t.d.at(i, j)] == 0
			} else {
				stop = i == 0 && j == 0
			}
		}
		if !stop && t.terminalFree && (i == 0 || j == 0) {
			stop = true
		}
		if stop {
			r := t.emit(bx, by, cur, i, j)
			out = append(out, r)
			if len(out) > limit {
				return fmt.Errorf("%w: more than %d co-optimal alignments", ErrTooManyAlignments, limit)
			}

			return nil
		}

		switch st {
		case stateM:
			bx = append(bx, t.xb[i-1])
			by = append(by, t.yb[j-1])
			p := t.d.M[t.d.at(i, j)] - t.sub(i, j)
			c := t.d.at(i-1, j-1)
			if t.d.M[c] == p {
				if err := visit(i-1, j-1, stateM); err != nil {
					return err
				}
			}
			if t.d.Ix[c] == p {
				if err := visit(i-1, j-1, stateIx); err != nil {
					return err
				}
			}
			if t.d.Iy[c] == p {
				if err := visit(i-1, j-1, stateIy); err != nil {
					return err
				}
			}
		case stateIx:
			bx = append(bx, t.xb[i-1])
			by = append(by, gapByte)
			v := t.d.Ix[t.d.at(i, j)]
			c := t.d.at(i-1, j)
			if t.d.M[c]+t.sm.gapOpen == v {
				if err := visit(i-1, j, stateM); err != nil {
					return err
				}
			}
			if t.d.Ix[c]+t.sm.gapExtend == v {
				if err := visit(i-1, j, stateIx); err != nil {
					return err
				}
			}
		case stateIy:
			bx = append(bx, gapByte)
			by = append(by, t.yb[j-1])
			v := t.d.Iy[t.d.at(i, j)]
			c := t.d.at(i, j-1)
			if t.d.M[c]+t.sm.gapOpen == v {
				if err := visit(i, j-1, stateM); err != nil {
					return err
				}
			}
			if t.d.Iy[c]+t.sm.gapExtend == v {
				if err := visit(i, j-1, stateIy); err != nil {
					return err
				}
			}
		}
		bx = bx[:len(bx)-1]
		by = by[:len(by)-1]

		return nil
	}

	for _, s := range starts {
		cur = s
		bx, by = bx[:0], by[:0]
		if t.terminalFree {
			for jj := t.d.m; jj > s.j; jj-- {
				bx = append(bx, gapByte)
				by = append(by, t.yb[jj-1])
			}
			for ii := t.d.n; ii > s.i; ii-- {
				bx = append(bx, t.xb[ii-1])
				by = append(by, gapByte)
			}
		}
		if err := visit(s.i, s.j, s.st); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// emit copies the current backward buffers into a Result, appending the
// free leading flank for terminal-free stops at (i, j).
func (t *tracer) emit(bx, by []byte, s start, i, j int) Result {
	lead := 0
	if t.terminalFree {
		lead = i + j // one of the two is zero at a terminal-free stop
	}
	rx := make([]byte, 0, len(bx)+lead)
	ry := make([]byte, 0, len(by)+lead)
	rx = append(rx, bx...)
	ry = append(ry, by...)
	if t.terminalFree {
		for jj := j; jj > 0; jj-- {
			rx = append(rx, gapByte)
			ry = append(ry, t.yb[jj-1])
		}
		for ii := i; ii > 0; ii-- {
			rx = append(rx, t.xb[ii-1])
			ry = append(ry, gapByte)
		}
	}
	reverseBytes(rx)
	reverseBytes(ry)

	return t.result(rx, ry, s, i, j)
}

func reverseBytes(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

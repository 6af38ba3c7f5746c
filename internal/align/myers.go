// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package align

import (
	"context"
	"math"
)

// minCostLimit is a lower bound for the TOO_EXPENSIVE heuristic. That is the heuristic is only
// applied when the cost exceeds this number (large files with a lot of differences).
const minCostLimit = 4096

// myers is the linear space variant of Myers' algorithm with the TOO_EXPENSIVE heuristic by Paul
// Eggert.
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
type myers struct {
	ctx context.Context
	err error

	// Interned inputs to compare.
	x, y []int

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k]. The endpoints only store the
	// s-coordinate since t = s - k.
	vf, vb []int
	v0     int

	// Limit for the TOO_EXPENSIVE heuristic.
	costLimit int

	// Mapping of s, t indices to the location in the result vectors.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

// init prepares m for comparing x and y and returns the bounds without common prefix and
// suffix. The result vectors and index mappings must be set before calling init.
func (m *myers) init(ctx context.Context, x, y []int) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	diagonals := (smax - smin) + (tmax - tmin)
	vlen := 2*diagonals + 3    // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	m.ctx = ctx
	m.x, m.y = x, y
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1

	// Set the costLimit to the approximate square root of the number of diagonals bounded by
	// minCostLimit.
	costLimit := 1
	for i := diagonals; i != 0; i >>= 2 {
		costLimit <<= 1
	}
	m.costLimit = max(minCostLimit, costLimit)
	return
}

// compare finds an optimal d-path from (smin, tmin) to (smax, tmax).
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix.
func (m *myers) compare(smin, smax, tmin, tmax int, optimal bool) {
	if m.err != nil {
		return
	}
	if err := m.ctx.Err(); err != nil {
		m.err = err
		return
	}
	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	default:
		// Split into a, possibly empty, rect before the middle diagonal, the diagonal and a,
		// possibly empty, rect after it. Neither rect has a common prefix or suffix.
		s0, s1, t0, t1, opt0, opt1 := m.split(smin, smax, tmin, tmax, optimal)
		m.compare(smin, s0, tmin, t0, opt0)
		m.compare(s1, smax, t1, tmax, opt1)
	}
}

// split finds the endpoints of a, potentially empty, sequence of diagonals in the middle of an
// optimal path from (smin, tmin) to (smax, tmax).
func (m *myers) split(smin, smax, tmin, tmax int, optimal bool) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Since t = s - k, k is bounded by k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// Forward and backward searches are centered around different diagonals so that k is
	// consistent between both searches.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The optimal path length has the same parity as N-M, overlaps are only checked in the
	// matching direction.
	odd := (N-M)%2 != 0

	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; ; d++ {
		// Forwards iteration, the diagonals outside of the grid are initialized as borders.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1] // vertical edge
			} else {
				s = vf[k0-1] + 1 // horizontal edge, prefers deletions over insertions
			}
			t := s - k
			s0, t0 := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s
			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t, true, true
			}
		}

		// Backwards iteration, analogous to the forward iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k
			s0, t0 := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s
			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s0, t, t0, true, true
			}
		}

		if optimal || d < m.costLimit {
			continue
		}

		// Heuristic (TOO_EXPENSIVE): Pick a good-enough middle diagonal once we're over the cost
		// limit. Find the forward path that maximizes s+t and the backward path that minimizes
		// it and use the better of both.
		fbest, fbestk := math.MinInt, math.MinInt
		for k := fmin; k <= fmax; k += 2 {
			s := vf[k+v0]
			t := s - k
			if smin <= s && s < smax && tmin <= t && t < tmax && fbest < s+t {
				fbest = s + t
				fbestk = k
			}
		}
		bbest, bbestk := math.MaxInt, math.MaxInt
		for k := bmin; k <= bmax; k += 2 {
			s := vb[k+v0]
			t := s - k
			if smin <= s && s < smax && tmin <= t && t < tmax && s+t < bbest {
				bbest = s + t
				bbestk = k
			}
		}

		switch {
		case fbest != math.MinInt && (smax+tmax)-bbest < fbest-(smin+tmin):
			k := fbestk
			k0 := k + v0
			s := vf[k0]
			t := s - k
			// Reconstruct the diagonal by repeating the decision of the forward iteration.
			pk := k - 1
			if vf[k0-1] < vf[k0+1] {
				pk = k + 1
			}
			ps := vf[pk+v0]
			pt := ps - pk
			diag := min(s-ps, t-pt)
			return s - diag, s, t - diag, t, true, false
		case bbest != math.MaxInt:
			k := bbestk
			k0 := k + v0
			s := vb[k0]
			t := s - k
			pk := k + 1
			if vb[k0-1] < vb[k0+1] {
				pk = k - 1
			}
			ps := vb[pk+v0]
			pt := ps - pk
			diag := min(ps-s, pt-t)
			return s, s + diag, t, t + diag, false, true
		default:
			panic("no best path found")
		}
	}
}

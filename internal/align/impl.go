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

//
// The segments function is derived from Go's src/internal/diff/diff.go
// which has the following copyright and license:
//
// Copyright 2022 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google LLC nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package align

import (
	"context"
	"fmt"
	"sort"

	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/rvecs"
)

// anchoringHeuristicMinInputLen is the minimum input length for enabling the anchoring heuristic.
const anchoringHeuristicMinInputLen = 5_000

// diff compares x and y, both given as dense IDs, and returns the result vectors.
func diff(ctx context.Context, x, y []int, cfg config.Config) (rx, ry []bool, err error) {
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := findChangeBounds(x, y)
	if handleTrivialBounds(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry, nil
	}

	x0, y0, xidx, yidx, counts, nanchors := preprocess(rx, ry, smin, smax, tmin, tmax, x, y)

	m := myers{xidx: xidx, yidx: yidx, rx: rx, ry: ry}
	smin0, smax0, tmin0, tmax0 := m.init(ctx, x0, y0)

	switch cfg.Mode {
	case config.ModeMinimal:
		m.compare(smin0, smax0, tmin0, tmax0, true)
	case config.ModeDefault:
		// Heuristic (ANCHORING): If the input is large and we have found anchors, compare the
		// segments between anchors individually.
		anchoring := nanchors > 0 && (smax0-smin0)+(tmax0-tmin0) > anchoringHeuristicMinInputLen
		if !anchoring && !cfg.ForceAnchoringHeuristic {
			m.compare(smin0, smax0, tmin0, tmax0, false)
			break
		}
		segments := segments(smin0, smax0, tmin0, tmax0, nanchors, counts, x0, y0)
		done := segments[0]
		for _, anchor := range segments[1:] {
			if anchor.s < done.s {
				// Already handled scanning forward from earlier match.
				continue
			}
			start := anchor
			for start.s > done.s && start.t > done.t && x0[start.s-1] == y0[start.t-1] {
				start.s--
				start.t--
			}
			end := anchor
			for end.s < smax0 && end.t < tmax0 && x0[end.s] == y0[end.t] {
				end.s++
				end.t++
			}
			m.compare(done.s, start.s, done.t, start.t, false)
			if end.s >= smax0 && end.t >= tmax0 {
				break
			}
			done = end
		}
	default:
		panic(fmt.Sprintf("unknown mode: %v", cfg.Mode))
	}

	if m.err != nil {
		return nil, nil, m.err
	}
	return rx, ry, nil
}

// findChangeBounds returns the upper and lower bounds for the changed portion of the inputs.
func findChangeBounds(x, y []int) (smin, smax, tmin, tmax int) {
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
	return
}

// handleTrivialBounds handles trivial bounds. It returns true if the bounds are trivial.
func handleTrivialBounds(rx, ry []bool, smin, smax, tmin, tmax int) bool {
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return true
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return true
	case smin == smax && tmin == tmax:
		return true
	default:
		return false
	}
}

// preprocess reduces the problem size before running Myers' algorithm.
//
// Elements that only appear in x or y are always deletions or insertions respectively, they are
// dropped from the input. At the same time, we count the occurrences of every ID as 0, 1, many
// using 0, 1, 2 for x and 0, 4, 8 for y. A count of 1+4 marks an anchor, an element that appears
// exactly once in both inputs.
//
// The results are the following slices:
//   - x0:     x[smin:smax] without elements that only appear in x
//   - y0:     y[tmin:tmax] without elements that only appear in y
//   - xidx:   A mapping from x0 to x: x0[s] corresponds to x[xidx[s]]
//   - yidx:   A mapping from y0 to y: y0[t] corresponds to y[yidx[t]]
//   - counts: The occurrence counts per ID.
func preprocess(rx, ry []bool, smin, smax, tmin, tmax int, x, y []int) (x0, y0, xidx, yidx, counts []int, nanchors int) {
	// IDs are dense, the largest ID is bounded by the number of distinct lines.
	maxID := 0
	for _, e := range x[smin:smax] {
		maxID = max(maxID, e)
	}
	for _, e := range y[tmin:tmax] {
		maxID = max(maxID, e)
	}
	counts = make([]int, maxID+1)

	x0 = make([]int, 0, smax-smin)
	xidx = make([]int, 0, smax-smin)
	y0 = make([]int, 0, tmax-tmin)
	yidx = make([]int, 0, tmax-tmin)

	for _, e := range x[smin:smax] {
		if c := counts[e]; c < 2 {
			counts[e] = c + 1
		}
	}
	for i, e := range y[tmin:tmax] {
		c := counts[e]
		if c&3 == 0 {
			// Not in x, this is always an insertion.
			ry[i+tmin] = true
			continue
		}
		if c < 8 {
			counts[e] = c + 4
		}
		yidx = append(yidx, i+tmin)
		y0 = append(y0, e)
	}
	for j, e := range x[smin:smax] {
		c := counts[e]
		if c < 4 {
			// Not in y, this is always a deletion.
			rx[j+smin] = true
			continue
		}
		if c == 1+4 {
			nanchors++
		}
		xidx = append(xidx, j+smin)
		x0 = append(x0, e)
	}
	return
}

type pair struct{ s, t int }

// segments returns the pairs of indexes of the longest common subsequence of anchors in x and y.
//
// The longest common subsequence algorithm is as described in Thomas G. Szymanski, “A Special Case
// of the Maximal Common Subsequence Problem,” Princeton TR #170 (January 1975), available at
// https://research.swtch.com/tgs170.pdf.
func segments(smin, smax, tmin, tmax int, nanchors int, counts []int, x, y []int) []pair {
	idx := make(map[int]int, nanchors)
	xi := make([]int, 0, nanchors)
	yi := make([]int, 0, nanchors)
	inv := make([]int, 0, nanchors)

	// Gather the indices of anchors in x and y:
	//	xi[i] = increasing indexes of unique elements in x.
	//	yi[i] = increasing indexes of unique elements in y.
	//	inv[i] = index j such that x[xi[i]] = y[yi[j]].
	for i, e := range y[tmin:tmax] {
		if counts[e] == 1+4 {
			idx[e] = len(yi)
			yi = append(yi, tmin+i)
		}
	}
	for i, e := range x[smin:smax] {
		if counts[e] == 1+4 {
			xi = append(xi, smin+i)
			inv = append(inv, idx[e])
		}
	}

	// Apply Algorithm A from Szymanski's paper. In those terms, A = J = inv and B = [0, n). We
	// add sentinel pairs {smin,tmin}, and {smax,tmax} to the returned sequence, to help the
	// processing loop.
	J := inv
	n := len(xi)
	T := make([]int, n)
	L := make([]int, n)
	for i := range T {
		T[i] = n + 1
	}
	for i := range n {
		k := sort.Search(n, func(k int) bool {
			return T[k] >= J[i]
		})
		T[k] = J[i]
		L[i] = k + 1
	}
	k := 0
	for _, v := range L {
		k = max(k, v)
	}
	anchors := make([]pair, 2+k)
	anchors[1+k] = pair{smax, tmax}
	lastj := n
	for i := n - 1; i >= 0; i-- {
		if L[i] == k && J[i] < lastj {
			anchors[k] = pair{xi[i], yi[J[i]]}
			lastj = J[i]
			k--
		}
	}
	anchors[0] = pair{smin, tmin}
	return anchors
}

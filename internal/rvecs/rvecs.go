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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's used by the myers algorithm. Result vectors are translated to alignments before they
// leave the raw aligner.
package rvecs

import "znkr.io/linediff/internal/ranges"

// Make allocates result vectors for x and y. Both have a border element at the end that makes it
// easier to iterate over them.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}

// Ranges converts the result vectors into the unchanged ranges of an alignment. Consecutive
// matches are merged into a single range.
func Ranges(rx, ry []bool) []ranges.Range {
	var out []ranges.Range
	n, m := len(rx)-1, len(ry)-1
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			s++
		}
		for t < m && ry[t] {
			t++
		}
		s0, t0 := s, t
		for s < n && t < m && !rx[s] && !ry[t] {
			s++
			t++
		}
		if s0 != s {
			out = append(out, ranges.Range{Start1: s0, End1: s, Start2: t0, End2: t})
		}
	}
	return out
}

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

// Package edits groups the changes of an alignment into hunks and renders them.
package edits

import (
	"fmt"
	"iter"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/ranges"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\n\\ No newline at end of file\n"

// Hunk describes a sequence of consecutive changes with unchanged context around them.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
}

// Hunks groups the changes of alignment, an alignment of inputs of length n and m, into hunks.
// Every hunk includes up to context unchanged elements before its first and after its last
// change. Changes with at most 2*context unchanged elements between them end up in the same hunk.
func Hunks(alignment []ranges.Range, n, m, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		var h Hunk
		open := false
		last1 := 0 // end of the previous change in x
		for ch := range ranges.Changes(alignment, n, m) {
			gap := ch.Start1 - last1 // number of unchanged elements before ch
			if open && gap <= 2*context {
				h.S1, h.T1 = ch.End1, ch.End2
			} else {
				if open {
					post := min(context, gap)
					h.S1, h.T1 = h.S1+post, h.T1+post
					if !yield(h) {
						return
					}
				}
				pre := min(context, gap)
				h = Hunk{S0: ch.Start1 - pre, S1: ch.End1, T0: ch.Start2 - pre, T1: ch.End2}
				open = true
			}
			last1 = ch.End1
		}
		if open {
			post := min(context, n-last1)
			h.S1, h.T1 = h.S1+post, h.T1+post
			yield(h)
		}
	}
}

// Unified renders the hunks of alignment in unified format. Lines in x and y are expected to end
// in a newline character, except for the lines at index missing1 in x and missing2 in y.
func Unified[T string | []byte](x, y []byteview.ByteView, missing1, missing2 int, alignment []ranges.Range, context int) T {
	var b byteview.Builder[T]
	line := func(prefix string, v byteview.ByteView, missing bool) {
		b.WriteString(prefix)
		b.WriteByteView(v)
		if missing {
			b.WriteString(missingNewline)
		}
	}
	for h := range Hunks(alignment, len(x), len(y), context) {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)
		s, t := h.S0, h.T0
		for _, r := range alignment {
			if r.End1 <= h.S0 || r.End2 <= h.T0 {
				continue
			}
			if r.Start1 >= h.S1 && r.Start2 >= h.T1 {
				break
			}
			for ; s < min(r.Start1, h.S1); s++ {
				line(prefixDelete, x[s], s == missing1)
			}
			for ; t < min(r.Start2, h.T1); t++ {
				line(prefixInsert, y[t], t == missing2)
			}
			for ; s < min(r.End1, h.S1); s, t = s+1, t+1 {
				if s == missing1 && t != missing2 || s != missing1 && t == missing2 {
					line(prefixDelete, x[s], s == missing1)
					line(prefixInsert, y[t], t == missing2)
				} else {
					line(prefixMatch, x[s], s == missing1)
				}
			}
		}
		for ; s < h.S1; s++ {
			line(prefixDelete, x[s], s == missing1)
		}
		for ; t < h.T1; t++ {
			line(prefixInsert, y[t], t == missing2)
		}
	}
	return b.Build()
}


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

package ranges

import "fmt"

// Builder accumulates pairs of equal elements into an alignment.
//
// Pairs must be marked in strictly increasing order on both sides. Everything that isn't marked
// equal becomes part of a changed range.
type Builder struct {
	n, m           int
	index1, index2 int // first index after the last marked pair
	expand         func(Range) Range
	out            []Range
}

// NewBuilder returns a builder for an alignment of inputs of length n and m.
func NewBuilder(n, m int) *Builder {
	return &Builder{n: n, m: m}
}

// NewExpandBuilder returns a builder that tightens every changed range with [Expand] before
// adding it, that is equal elements at the edges of a change are added as unchanged elements.
func NewExpandBuilder[T any](x, y []T, eq func(a, b T) bool) *Builder {
	return &Builder{
		n: len(x),
		m: len(y),
		expand: func(r Range) Range {
			return Expand(x, y, eq, r)
		},
	}
}

// Index1 returns the first index in x after the last marked pair.
func (b *Builder) Index1() int { return b.index1 }

// Index2 returns the first index in y after the last marked pair.
func (b *Builder) Index2() int { return b.index2 }

// MarkEqual marks x[index1] and y[index2] as equal.
func (b *Builder) MarkEqual(index1, index2 int) {
	b.MarkEqualRange(index1, index2, index1+1, index2+1)
}

// MarkEqualN marks x[index1:index1+n] and y[index2:index2+n] as equal.
func (b *Builder) MarkEqualN(index1, index2, n int) {
	b.MarkEqualRange(index1, index2, index1+n, index2+n)
}

// MarkEqualRange marks x[start1:end1] as equal to y[start2:end2]. Both spans must have the same
// length.
func (b *Builder) MarkEqualRange(start1, start2, end1, end2 int) {
	if start1 == end1 && start2 == end2 {
		return
	}
	if end1-start1 != end2-start2 {
		panic(fmt.Sprintf("marked range [%d,%d)-[%d,%d) has spans of different length", start1, end1, start2, end2))
	}
	if start1 < b.index1 || start2 < b.index2 || end1 < start1 {
		panic(fmt.Sprintf("marked range [%d,%d)-[%d,%d) is not after [%d,%d)", start1, end1, start2, end2, b.index1, b.index2))
	}
	if b.index1 != start1 || b.index2 != start2 {
		b.addChange(Range{b.index1, start1, b.index2, start2})
	}
	b.addUnchanged(Range{start1, end1, start2, end2})
	b.index1, b.index2 = end1, end2
}

// Finish returns the alignment. The builder must not be used afterwards.
func (b *Builder) Finish() []Range {
	if b.index1 != b.n || b.index2 != b.m {
		b.addChange(Range{b.index1, b.n, b.index2, b.m})
		b.index1, b.index2 = b.n, b.m
	}
	out := b.out
	b.out = nil
	return out
}

func (b *Builder) addChange(ch Range) {
	if b.expand == nil {
		return
	}
	ex := b.expand(ch)
	if fwd := ex.Start1 - ch.Start1; fwd > 0 {
		b.addUnchanged(Range{ch.Start1, ex.Start1, ch.Start2, ex.Start2})
	}
	if bwd := ch.End1 - ex.End1; bwd > 0 {
		b.addUnchanged(Range{ex.End1, ch.End1, ex.End2, ch.End2})
	}
}

// addUnchanged appends r to the output and merges it with the previous range if they touch.
func (b *Builder) addUnchanged(r Range) {
	if n := len(b.out); n > 0 {
		last := &b.out[n-1]
		if last.End1 == r.Start1 && last.End2 == r.Start2 {
			last.End1, last.End2 = r.End1, r.End2
			return
		}
	}
	b.out = append(b.out, r)
}

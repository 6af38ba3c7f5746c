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

// Package optimize moves the boundaries between unchanged and changed chunks of an alignment.
//
// A minimal alignment is rarely unique. Whenever an unchanged range is followed by a change that
// is equal to its own beginning (or preceded by one that is equal to its own end), the change can
// slide along the unchanged lines without changing the result. The optimizer merges unchanged
// ranges wherever sliding makes a change disappear entirely and otherwise asks a [Shifter] where
// the boundary looks best.
package optimize

import (
	"context"
	"slices"

	"znkr.io/linediff/internal/ranges"
)

// Side identifies one of the two inputs of an alignment.
type Side int

const (
	Side1 Side = iota
	Side2
)

// Other returns the opposite side.
func (s Side) Other() Side { return 1 - s }

func pick[T any](s Side, a, b T) T {
	if s == Side1 {
		return a
	}
	return b
}

// Shifter decides where to place the boundary between two unchanged ranges r1 and r2 that touch
// on side touch. The boundary can move at most equalForward elements forward and at most
// equalBackward elements backward. A positive result grows r1 and shrinks r2, a negative result
// does the opposite.
type Shifter interface {
	Shift(touch Side, equalForward, equalBackward int, r1, r2 ranges.Range) int
}

// maxPasses bounds the number of passes over an alignment. A pass only differs from the previous
// one if a shift changed a range whose predecessor was already optimized.
const maxPasses = 4

// Chunks optimizes alignment, an alignment of x and y. The result is a fixed point: optimizing it
// again doesn't change it.
func Chunks[T any](ctx context.Context, x, y []T, eq func(a, b T) bool, alignment []ranges.Range, s Shifter) ([]ranges.Range, error) {
	for range maxPasses {
		out, err := pass(ctx, x, y, eq, alignment, s)
		if err != nil {
			return nil, err
		}
		if slices.Equal(out, alignment) {
			return out, nil
		}
		alignment = out
	}
	return alignment, nil
}

func pass[T any](ctx context.Context, x, y []T, eq func(a, b T) bool, alignment []ranges.Range, s Shifter) ([]ranges.Range, error) {
	out := make([]ranges.Range, 0, len(alignment))
	for _, r := range alignment {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, r)
		out = processLast(x, y, eq, out, s)
	}
	return out, nil
}

// processLast optimizes the boundary between the last two ranges in out. Merging or shifting
// changes the second to last range, which is then checked for merges with its predecessors.
func processLast[T any](x, y []T, eq func(a, b T) bool, out []ranges.Range, s Shifter) []ranges.Range {
	for len(out) >= 2 {
		n := len(out)
		if r, ok := merge(x, y, eq, out[n-2], out[n-1]); ok {
			out[n-2] = r
			out = out[:n-1]
		} else if !shift(x, y, eq, out[n-2:], s) {
			return out
		} else if !mergeBackward(x, y, eq, &out) {
			return out
		}
		for mergeBackward(x, y, eq, &out) {
		}
	}
	return out
}

// mergeBackward merges the second and third to last ranges in out if possible.
func mergeBackward[T any](x, y []T, eq func(a, b T) bool, out *[]ranges.Range) bool {
	n := len(*out)
	if n < 3 {
		return false
	}
	r, ok := merge(x, y, eq, (*out)[n-3], (*out)[n-2])
	if !ok {
		return false
	}
	(*out)[n-3] = r
	*out = append((*out)[:n-2], (*out)[n-1])
	return true
}

// equalEdges returns how far the boundary between r1 and r2 can move forward and backward.
func equalEdges[T any](x, y []T, eq func(a, b T) bool, r1, r2 ranges.Range) (equalForward, equalBackward int) {
	if r1.End1 != r2.Start1 && r1.End2 != r2.Start2 {
		return 0, 0
	}
	count1, count2 := r1.Len1(), r2.Len1()
	equalForward = ranges.ExpandForward(x, y, eq, r1.End1, r1.End2, r1.End1+count2, r1.End2+count2)
	equalBackward = ranges.ExpandBackward(x, y, eq, r2.Start1-count1, r2.Start2-count1, r2.Start1, r2.Start2)
	return equalForward, equalBackward
}

// merge returns the union of r1 and r2 if the change between them can slide out entirely.
func merge[T any](x, y []T, eq func(a, b T) bool, r1, r2 ranges.Range) (ranges.Range, bool) {
	equalForward, equalBackward := equalEdges(x, y, eq, r1, r2)
	switch count1, count2 := r1.Len1(), r2.Len1(); {
	case equalForward == count2 && count2 > 0:
		return ranges.Range{Start1: r1.Start1, End1: r1.End1 + count2, Start2: r1.Start2, End2: r1.End2 + count2}, true
	case equalBackward == count1 && count1 > 0:
		return ranges.Range{Start1: r2.Start1 - count1, End1: r2.End1, Start2: r2.Start2 - count1, End2: r2.End2}, true
	default:
		return ranges.Range{}, false
	}
}

// shift moves the boundary between pair[0] and pair[1] where s prefers it and reports whether it
// moved.
func shift[T any](x, y []T, eq func(a, b T) bool, pair []ranges.Range, s Shifter) bool {
	r1, r2 := pair[0], pair[1]
	equalForward, equalBackward := equalEdges(x, y, eq, r1, r2)
	if equalForward == 0 && equalBackward == 0 {
		return false
	}
	touch := Side2
	if r1.End1 == r2.Start1 {
		touch = Side1
	}
	n := s.Shift(touch, equalForward, equalBackward, r1, r2)
	n = max(-equalBackward, min(equalForward, n))
	if n == 0 {
		return false
	}
	pair[0] = ranges.Range{Start1: r1.Start1, End1: r1.End1 + n, Start2: r1.Start2, End2: r1.End2 + n}
	pair[1] = ranges.Range{Start1: r2.Start1 + n, End1: r2.End1, Start2: r2.Start2 + n, End2: r2.End2}
	return true
}

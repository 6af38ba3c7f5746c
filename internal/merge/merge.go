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

// Package merge combines two alignments against a common base into three-way merge ranges.
package merge

import (
	"iter"

	"znkr.io/linediff/internal/ranges"
)

// Kind classifies a changed merge range.
type Kind int

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind

const (
	// KindLeft is a change on the left side only.
	KindLeft Kind = iota
	// KindRight is a change on the right side only.
	KindRight
	// KindBoth is the same change on both sides.
	KindBoth
	// KindConflict is a change on both sides that differs.
	KindConflict
)

// Fair returns the changed merge ranges of left, base, and right. baseLeft is an alignment of
// base and left, baseRight is an alignment of base and right. In the result, the first span is
// left, the second span is base, and the third span is right.
//
// Only base lines that are unchanged in both alignments are unchanged in the result. Every
// changed merge range is tightened by removing lines that are equal on all three sides.
func Fair[T any](left, base, right []T, eq func(a, b T) bool, baseLeft, baseRight []ranges.Range) []ranges.MergeRange {
	var out []ranges.MergeRange
	last := ranges.MergeRange{}
	emit := func(r ranges.MergeRange) {
		ch := ranges.MergeRange{
			Start1: last.End1, End1: r.Start1,
			Start2: last.End2, End2: r.Start2,
			Start3: last.End3, End3: r.Start3,
		}
		if !ch.IsEmpty() {
			if ch = ranges.Expand3(left, base, right, eq, ch); !ch.IsEmpty() {
				out = append(out, ch)
			}
		}
		last = r
	}

	for r := range Unchanged(baseLeft, baseRight) {
		emit(r)
	}
	emit(ranges.MergeRange{
		Start1: len(left), End1: len(left),
		Start2: len(base), End2: len(base),
		Start3: len(right), End3: len(right),
	})
	return out
}

// Unchanged returns the merge ranges that are unchanged in both baseLeft and baseRight.
func Unchanged(baseLeft, baseRight []ranges.Range) iter.Seq[ranges.MergeRange] {
	return func(yield func(ranges.MergeRange) bool) {
		i, j := 0, 0
		for i < len(baseLeft) && j < len(baseRight) {
			r1, r2 := baseLeft[i], baseRight[j]
			start, end := max(r1.Start1, r2.Start1), min(r1.End1, r2.End1)
			if start < end {
				r := ranges.MergeRange{
					Start1: r1.Start2 + start - r1.Start1, End1: r1.End2 - (r1.End1 - end),
					Start2: start, End2: end,
					Start3: r2.Start2 + start - r2.Start1, End3: r2.End2 - (r2.End1 - end),
				}
				if !yield(r) {
					return
				}
			}
			if r1.End1 <= r2.End1 {
				i++
			} else {
				j++
			}
		}
	}
}

// Classify returns the kind of the changed merge range r.
func Classify[T any](left, base, right []T, eq func(a, b T) bool, r ranges.MergeRange) Kind {
	l, b, rr := left[r.Start1:r.End1], base[r.Start2:r.End2], right[r.Start3:r.End3]
	switch {
	case equal(l, b, eq):
		return KindRight
	case equal(rr, b, eq):
		return KindLeft
	case equal(l, rr, eq):
		return KindBoth
	default:
		return KindConflict
	}
}

func equal[T any](a, b []T, eq func(a, b T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

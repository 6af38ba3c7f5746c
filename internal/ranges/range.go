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

// Package ranges contains the index range types shared by all comparison algorithms in this
// module together with the low-level primitives that trim and expand them.
//
// An alignment of two sequences x and y is represented by the ordered list of its unchanged
// ranges. Changed ranges are implicit: they are the gaps before the first, between consecutive,
// and after the last unchanged range.
package ranges

import (
	"fmt"
	"iter"
)

// Range describes the paired spans x[Start1:End1] and y[Start2:End2].
type Range struct {
	Start1, End1 int
	Start2, End2 int
}

// IsEmpty reports whether both spans of r are empty.
func (r Range) IsEmpty() bool { return r.Start1 == r.End1 && r.Start2 == r.End2 }

// Len1 returns the length of the span in x.
func (r Range) Len1() int { return r.End1 - r.Start1 }

// Len2 returns the length of the span in y.
func (r Range) Len2() int { return r.End2 - r.Start2 }

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)-[%d,%d)", r.Start1, r.End1, r.Start2, r.End2)
}

// MergeRange is the three sequence equivalent of Range. By convention, the second span is the
// base of a three-way comparison, the first and the third spans are the two sides compared
// against it.
type MergeRange struct {
	Start1, End1 int
	Start2, End2 int
	Start3, End3 int
}

// IsEmpty reports whether all spans of r are empty.
func (r MergeRange) IsEmpty() bool {
	return r.Start1 == r.End1 && r.Start2 == r.End2 && r.Start3 == r.End3
}

func (r MergeRange) String() string {
	return fmt.Sprintf("[%d,%d)-[%d,%d)-[%d,%d)", r.Start1, r.End1, r.Start2, r.End2, r.Start3, r.End3)
}

// Changes iterates over the changed ranges implied by the unchanged ranges in alignment for
// inputs of length n and m.
func Changes(alignment []Range, n, m int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		last1, last2 := 0, 0
		for _, r := range alignment {
			if last1 != r.Start1 || last2 != r.Start2 {
				if !yield(Range{last1, r.Start1, last2, r.Start2}) {
					return
				}
			}
			last1, last2 = r.End1, r.End2
		}
		if last1 != n || last2 != m {
			yield(Range{last1, n, last2, m})
		}
	}
}

// FromChanges is the inverse of Changes, it returns the unchanged ranges between changes.
func FromChanges(changes []Range, n, m int) []Range {
	var out []Range
	last1, last2 := 0, 0
	for _, ch := range changes {
		if last1 != ch.Start1 || last2 != ch.Start2 {
			out = append(out, Range{last1, ch.Start1, last2, ch.Start2})
		}
		last1, last2 = ch.End1, ch.End2
	}
	if last1 != n || last2 != m {
		out = append(out, Range{last1, n, last2, m})
	}
	return out
}

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

package merge

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"znkr.io/linediff/internal/ranges"
)

func TestFair(t *testing.T) {
	tests := []struct {
		name                string
		left, base, right   string
		baseLeft, baseRight []ranges.Range
		want                []ranges.MergeRange
		kinds               []Kind
	}{
		{
			name:      "identical",
			left:      "abc",
			base:      "abc",
			right:     "abc",
			baseLeft:  []ranges.Range{{Start1: 0, End1: 3, Start2: 0, End2: 3}},
			baseRight: []ranges.Range{{Start1: 0, End1: 3, Start2: 0, End2: 3}},
			want:      nil,
		},
		{
			name:      "separate-changes",
			left:      "aBcd",
			base:      "abcd",
			right:     "abcD",
			baseLeft:  []ranges.Range{{Start1: 0, End1: 1, Start2: 0, End2: 1}, {Start1: 2, End1: 4, Start2: 2, End2: 4}},
			baseRight: []ranges.Range{{Start1: 0, End1: 3, Start2: 0, End2: 3}},
			want: []ranges.MergeRange{
				{Start1: 1, End1: 2, Start2: 1, End2: 2, Start3: 1, End3: 2},
				{Start1: 3, End1: 4, Start2: 3, End2: 4, Start3: 3, End3: 4},
			},
			kinds: []Kind{KindLeft, KindRight},
		},
		{
			name:      "conflict",
			left:      "aXc",
			base:      "abc",
			right:     "aYc",
			baseLeft:  []ranges.Range{{Start1: 0, End1: 1, Start2: 0, End2: 1}, {Start1: 2, End1: 3, Start2: 2, End2: 3}},
			baseRight: []ranges.Range{{Start1: 0, End1: 1, Start2: 0, End2: 1}, {Start1: 2, End1: 3, Start2: 2, End2: 3}},
			want:      []ranges.MergeRange{{Start1: 1, End1: 2, Start2: 1, End2: 2, Start3: 1, End3: 2}},
			kinds:     []Kind{KindConflict},
		},
		{
			name:      "same-change",
			left:      "aXc",
			base:      "abc",
			right:     "aXc",
			baseLeft:  []ranges.Range{{Start1: 0, End1: 1, Start2: 0, End2: 1}, {Start1: 2, End1: 3, Start2: 2, End2: 3}},
			baseRight: []ranges.Range{{Start1: 0, End1: 1, Start2: 0, End2: 1}, {Start1: 2, End1: 3, Start2: 2, End2: 3}},
			want:      []ranges.MergeRange{{Start1: 1, End1: 2, Start2: 1, End2: 2, Start3: 1, End3: 2}},
			kinds:     []Kind{KindBoth},
		},
		{
			name:      "insertions",
			left:      "xab",
			base:      "ab",
			right:     "aby",
			baseLeft:  []ranges.Range{{Start1: 0, End1: 2, Start2: 1, End2: 3}},
			baseRight: []ranges.Range{{Start1: 0, End1: 2, Start2: 0, End2: 2}},
			want: []ranges.MergeRange{
				{Start1: 0, End1: 1, Start2: 0, End2: 0, Start3: 0, End3: 0},
				{Start1: 3, End1: 3, Start2: 2, End2: 2, Start3: 2, End3: 3},
			},
			kinds: []Kind{KindLeft, KindRight},
		},
		{
			name:      "overlapping",
			left:      "aXYd",
			base:      "abcd",
			right:     "abZd",
			baseLeft:  []ranges.Range{{Start1: 0, End1: 1, Start2: 0, End2: 1}, {Start1: 3, End1: 4, Start2: 3, End2: 4}},
			baseRight: []ranges.Range{{Start1: 0, End1: 2, Start2: 0, End2: 2}, {Start1: 3, End1: 4, Start2: 3, End2: 4}},
			want:      []ranges.MergeRange{{Start1: 1, End1: 3, Start2: 1, End2: 3, Start3: 1, End3: 3}},
			kinds:     []Kind{KindConflict},
		},
	}

	eq := func(a, b string) bool { return a == b }
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, base, right := strings.Split(tt.left, ""), strings.Split(tt.base, ""), strings.Split(tt.right, "")
			got := Fair(left, base, right, eq, tt.baseLeft, tt.baseRight)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Fair(...) result differs [-want,+got]:\n%s", diff)
			}
			var kinds []Kind
			for _, r := range got {
				kinds = append(kinds, Classify(left, base, right, eq, r))
			}
			if diff := cmp.Diff(tt.kinds, kinds); diff != "" {
				t.Errorf("Classify(...) result differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestUnchanged(t *testing.T) {
	baseLeft := []ranges.Range{{Start1: 0, End1: 4, Start2: 1, End2: 5}}
	baseRight := []ranges.Range{{Start1: 0, End1: 1, Start2: 0, End2: 1}, {Start1: 2, End1: 4, Start2: 3, End2: 5}}
	got := slices.Collect(Unchanged(baseLeft, baseRight))
	want := []ranges.MergeRange{
		{Start1: 1, End1: 2, Start2: 0, End2: 1, Start3: 0, End3: 1},
		{Start1: 3, End1: 5, Start2: 2, End2: 4, Start3: 3, End3: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unchanged(...) result differs [-want,+got]:\n%s", diff)
	}
}

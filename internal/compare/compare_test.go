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

package compare

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/ranges"
)

func TestTwo(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []string
		policy line.Policy
		want   []ranges.Range
	}{
		{
			name:   "identical",
			x:      []string{"a", "b", "c"},
			y:      []string{"a", "b", "c"},
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 0, End1: 3, Start2: 0, End2: 3}},
		},
		{
			name:   "empty",
			policy: line.Exact,
			want:   nil,
		},
		{
			name:   "shifted-block",
			x:      []string{" {", "  {", "   {"},
			y:      []string{"  {", "   {"},
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 1, End1: 3, Start2: 0, End2: 2}},
		},
		{
			name:   "reversed-block",
			x:      []string{" {", "  {", "   {"},
			y:      []string{"   {", "  {", " {"},
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 1, End1: 2, Start2: 1, End2: 2}},
		},
		{
			name:   "trim-edges",
			x:      []string{" a", "b", "c"},
			y:      []string{"a ", "b", "d"},
			policy: line.TrimEdges,
			want:   []ranges.Range{{Start1: 0, End1: 2, Start2: 0, End2: 2}},
		},
		{
			name:   "exact-whitespace",
			x:      []string{" a", "b", "c"},
			y:      []string{"a ", "b", "c"},
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 1, End1: 3, Start2: 1, End2: 3}},
		},
		{
			name:   "ignore-whitespace",
			x:      []string{"a b", "c", "e"},
			y:      []string{"ab", "d", "e"},
			policy: line.IgnoreWhitespace,
			want: []ranges.Range{
				{Start1: 0, End1: 1, Start2: 0, End2: 1},
				{Start1: 2, End1: 3, Start2: 2, End2: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Two(t.Context(), byteview.FromStrings(tt.x), byteview.FromStrings(tt.y), tt.policy, config.Default)
			if err != nil {
				t.Fatalf("Two(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Two(...) result differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

// TestTwoRandom checks alignment validity for random inputs under every policy and
// configuration.
func TestTwoRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	variants := []string{"", " ", "a", " a", "a ", "b", "\tb", "}", "  }", "c c", "cc"}
	gen := func() []string {
		out := make([]string, rng.IntN(40))
		for i := range out {
			out[i] = variants[rng.IntN(len(variants))]
		}
		return out
	}
	configs := map[string]config.Config{
		"default":   config.Default,
		"threshold": {Threshold: 1},
		"indent":    {IndentHeuristic: true},
		"minimal":   {Mode: config.ModeMinimal},
		"dmp":       {Aligner: config.AlignerDMP},
	}
	for range 100 {
		x, y := gen(), gen()
		for name, cfg := range configs {
			for _, policy := range []line.Policy{line.Exact, line.TrimEdges, line.IgnoreWhitespace} {
				got, err := Two(t.Context(), byteview.FromStrings(x), byteview.FromStrings(y), policy, cfg)
				if err != nil {
					t.Fatalf("Two(...) failed: %v", err)
				}
				last1, last2 := 0, 0
				for _, r := range got {
					if r.Start1 < last1 || r.Start2 < last2 || r.Len1() != r.Len2() || r.Len1() == 0 || r.End1 > len(x) || r.End2 > len(y) {
						t.Fatalf("[%s, %v] Two(%q, %q) returned invalid range %v in %v", name, policy, x, y, r, got)
					}
					for i := range r.Len1() {
						a, b := byteview.From(x[r.Start1+i]), byteview.From(y[r.Start2+i])
						if !line.Equal(a, b, policy) {
							t.Fatalf("[%s, %v] Two(%q, %q) pairs unequal lines in %v", name, policy, x, y, r)
						}
					}
					last1, last2 = r.End1, r.End2
				}
			}
		}
	}
}

func TestThree(t *testing.T) {
	left := byteview.FromStrings([]string{"a", "X", "c", "d"})
	base := byteview.FromStrings([]string{"a", "b", "c", "d"})
	right := byteview.FromStrings([]string{"a", "b", "c", "Y", "d"})
	got, err := Three(t.Context(), left, base, right, line.Exact, config.Default)
	if err != nil {
		t.Fatalf("Three(...) failed: %v", err)
	}
	want := []ranges.MergeRange{
		{Start1: 1, End1: 2, Start2: 1, End2: 2, Start3: 1, End3: 2},
		{Start1: 3, End1: 3, Start2: 3, End2: 3, Start3: 3, End3: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Three(...) result differs [-want,+got]:\n%s", diff)
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name         string
		text1, text2 string
		policy       line.Policy
		want         []ranges.Range
	}{
		{
			name:   "identical",
			text1:  "foo bar",
			text2:  "foo bar",
			policy: line.Exact,
			want:   nil,
		},
		{
			name:   "inserted-version",
			text1:  "1.0.123 1.0.155",
			text2:  "1.0.123 1.0.134 1.0.155",
			policy: line.IgnoreWhitespace,
			want:   []ranges.Range{{Start1: 8, End1: 8, Start2: 8, End2: 15}},
		},
		{
			name:   "inserted-version-exact",
			text1:  "1.0.123 1.0.155",
			text2:  "1.0.123 1.0.134 1.0.155",
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 8, End1: 8, Start2: 8, End2: 16}},
		},
		{
			name:   "replaced-word",
			text1:  "the quick fox",
			text2:  "the slow fox",
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 4, End1: 9, Start2: 4, End2: 8}},
		},
		{
			name:   "whitespace-exact",
			text1:  "a b",
			text2:  "a  b",
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 2, End1: 2, Start2: 2, End2: 3}},
		},
		{
			name:   "whitespace-ignored",
			text1:  "a b",
			text2:  "a  b",
			policy: line.IgnoreWhitespace,
			want:   nil,
		},
		{
			name:   "edges-trimmed",
			text1:  "  a b",
			text2:  "a b\t",
			policy: line.TrimEdges,
			want:   nil,
		},
		{
			name:   "edges-exact",
			text1:  "  a b",
			text2:  "a b",
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 0, End1: 2, Start2: 0, End2: 0}},
		},
		{
			name:   "punctuation",
			text1:  "f(a, b)",
			text2:  "f(a; b)",
			policy: line.Exact,
			want:   []ranges.Range{{Start1: 3, End1: 4, Start2: 3, End2: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Words(t.Context(), byteview.From(tt.text1), byteview.From(tt.text2), tt.policy, config.Default)
			if err != nil {
				t.Fatalf("Words(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Words(%q, %q) result differs [-want,+got]:\n%s", tt.text1, tt.text2, diff)
			}
		})
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	x := byteview.FromStrings([]string{"a", "b"})

	check := func(name string, got any, err error) {
		t.Helper()
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s(...) error = %v, want %v", name, err, context.Canceled)
		}
		if !isNil(got) {
			t.Errorf("%s(...) = %v, want nil", name, got)
		}
	}
	for _, policy := range []line.Policy{line.Exact, line.TrimEdges, line.IgnoreWhitespace} {
		got, err := Two(ctx, x, x, policy, config.Default)
		check("Two", got, err)
	}
	got3, err := Three(ctx, x, x, x, line.Exact, config.Default)
	check("Three", got3, err)
	gotw, err := Words(ctx, byteview.From("a b"), byteview.From("a c"), line.Exact, config.Default)
	check("Words", gotw, err)
}

func isNil(v any) bool {
	switch v := v.(type) {
	case []ranges.Range:
		return v == nil
	case []ranges.MergeRange:
		return v == nil
	default:
		return v == nil
	}
}

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
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/ranges"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DIMDMMDMI",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "largish",
			x:    strings.Split("xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaay", ""),
			y:    strings.Split("waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaait", ""),
			want: "DIMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMDII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := lines(tt.x, line.Exact), lines(tt.y, line.Exact)

			t.Run("myers", func(t *testing.T) {
				got, err := Lines(t.Context(), x, y, config.Default)
				if err != nil {
					t.Fatalf("Lines(...) failed: %v", err)
				}
				if diff := cmp.Diff(tt.want, render(got, len(x), len(y))); diff != "" {
					t.Errorf("Lines(...) differs [-want,+got]:\n%s", diff)
				}
			})

			t.Run("myers_with_anchoring", func(t *testing.T) {
				cfg := config.Default
				cfg.ForceAnchoringHeuristic = true
				got, err := Lines(t.Context(), x, y, cfg)
				if err != nil {
					t.Fatalf("Lines(...) failed: %v", err)
				}
				if diff := cmp.Diff(tt.want, render(got, len(x), len(y))); diff != "" {
					t.Errorf("Lines(...) differs [-want,+got]:\n%s", diff)
				}
			})

			t.Run("dmp", func(t *testing.T) {
				cfg := config.Default
				cfg.Aligner = config.AlignerDMP
				got, err := Lines(t.Context(), x, y, cfg)
				if err != nil {
					t.Fatalf("Lines(...) failed: %v", err)
				}
				// diffmatchpatch may place changes differently, but it must find an alignment
				// of the same size.
				if gotN, wantN := strings.Count(render(got, len(x), len(y)), "M"), strings.Count(tt.want, "M"); gotN != wantN {
					t.Errorf("Lines(...) found %d matches, want %d", gotN, wantN)
				}
				validate(t, got, x, y)
			})
		})
	}
}

func TestLinesIgnoreWhitespace(t *testing.T) {
	x := lines([]string{"a b", " c", "d"}, line.IgnoreWhitespace)
	y := lines([]string{"ab", "c ", "e"}, line.IgnoreWhitespace)
	got, err := Lines(t.Context(), x, y, config.Default)
	if err != nil {
		t.Fatalf("Lines(...) failed: %v", err)
	}
	if diff := cmp.Diff("MMDI", render(got, len(x), len(y))); diff != "" {
		t.Errorf("Lines(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestLinesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	x, y := lines([]string{"a"}, line.Exact), lines([]string{"b"}, line.Exact)
	got, err := Lines(ctx, x, y, config.Default)
	if err != context.Canceled {
		t.Errorf("Lines(...) returned error %v, want %v", err, context.Canceled)
	}
	if got != nil {
		t.Errorf("Lines(...) returned %v for a canceled context, want nil", got)
	}
}

func TestIntern(t *testing.T) {
	x := lines([]string{"a", "b", "a"}, line.TrimEdges)
	y := lines([]string{" b", "c", "a "}, line.TrimEdges)
	xi, yi := Intern(x, y)
	if diff := cmp.Diff([]int{0, 1, 0}, xi); diff != "" {
		t.Errorf("Intern(...) IDs for x differ [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 0}, yi); diff != "" {
		t.Errorf("Intern(...) IDs for y differ [-want,+got]:\n%s", diff)
	}
}

func TestRandomMinimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			x := lines(randomLines(rng, 30), line.Exact)
			y := lines(randomLines(rng, 30), line.Exact)

			cfg := config.Default
			cfg.Mode = config.ModeMinimal
			myers, err := Lines(t.Context(), x, y, cfg)
			if err != nil {
				t.Fatalf("Lines(...) failed: %v", err)
			}
			validate(t, myers, x, y)

			cfg = config.Default
			cfg.Aligner = config.AlignerDMP
			dmp, err := Lines(t.Context(), x, y, cfg)
			if err != nil {
				t.Fatalf("Lines(...) failed: %v", err)
			}
			validate(t, dmp, x, y)

			if got, want := matches(dmp), matches(myers); got != want {
				t.Errorf("diffmatchpatch found %d matches, myers found %d", got, want)
			}
		})
	}
}

func lines(in []string, policy line.Policy) []line.Line {
	return line.FromViews(byteview.FromStrings(in), policy)
}

func randomLines(rng *rand.Rand, n int) []string {
	out := make([]string, rng.IntN(n))
	for i := range out {
		out[i] = string(rune('a' + rng.IntN(4)))
	}
	return out
}

func matches(alignment []ranges.Range) int {
	n := 0
	for _, r := range alignment {
		n += r.Len1()
	}
	return n
}

func validate(t *testing.T, alignment []ranges.Range, x, y []line.Line) {
	t.Helper()
	last1, last2 := -1, -1
	for _, r := range alignment {
		if r.Len1() != r.Len2() || r.Len1() == 0 {
			t.Fatalf("invalid range %v", r)
		}
		if r.Start1 < last1 || r.Start2 < last2 || (r.Start1 == last1 && r.Start2 == last2) {
			t.Fatalf("range %v is not after [%d,%d)", r, last1, last2)
		}
		for i := range r.Len1() {
			if !x[r.Start1+i].Equal(y[r.Start2+i]) {
				t.Fatalf("range %v contains unequal lines at offset %d", r, i)
			}
		}
		last1, last2 = r.End1, r.End2
	}
}

func render(alignment []ranges.Range, n, m int) string {
	var sb strings.Builder
	s, t := 0, 0
	gap := func(s1, t1 int) {
		sb.WriteString(strings.Repeat("D", s1-s))
		sb.WriteString(strings.Repeat("I", t1-t))
	}
	for _, r := range alignment {
		gap(r.Start1, r.Start2)
		sb.WriteString(strings.Repeat("M", r.Len1()))
		s, t = r.End1, r.End2
	}
	gap(n, m)
	return sb.String()
}

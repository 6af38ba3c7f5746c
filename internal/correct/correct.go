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

// Package correct repairs alignments computed under a whitespace insensitive policy.
//
// A whitespace insensitive alignment pairs lines that differ in whitespace and can mis-pair lines
// inside a block of whitespace equivalent lines. The corrector keeps only pairs that are equal
// under the target policy and re-pairs every ambiguous block so that the number of truly equal
// pairs is maximal.
package correct

import (
	"context"
	"fmt"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/ranges"
)

// maxSearch is the largest block size for which all combinations are searched.
const maxSearch = 10

// Lines corrects alignment, an alignment of x and y under [line.IgnoreWhitespace]. The lines in x
// and y must use the target policy.
func Lines(ctx context.Context, x, y []line.Line, alignment []ranges.Range) ([]ranges.Range, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := corrector{
		ctx: ctx,
		x:   x,
		y:   y,
		b:   ranges.NewExpandBuilder(x, y, line.Eq),
	}
	for _, r := range alignment {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range r.Len1() {
			index1, index2 := r.Start1+i, r.Start2+i
			if c.st.hasSample && line.EqualIgnoreWhitespace(c.st.sample, x[index1].Text()) {
				continue
			}
			if err := c.flush(index1, index2); err != nil {
				return nil, err
			}
			if x[index1].Equal(y[index2]) {
				c.b.MarkEqual(index1, index2)
			} else {
				c.st.sample, c.st.hasSample = x[index1].Text(), true
			}
		}
	}
	if err := c.flush(len(x), len(y)); err != nil {
		return nil, err
	}
	return c.b.Finish(), nil
}

// state tracks the block of whitespace equivalent lines that is currently being collected.
type state struct {
	sample       byteview.ByteView
	hasSample    bool
	last1, last2 int // first indices that haven't been assigned to a block yet
}

type corrector struct {
	ctx  context.Context
	x, y []line.Line
	b    *ranges.Builder
	st   state
}

// flush aligns all lines before end1 and end2 that are whitespace equivalent to the current
// sample.
func (c *corrector) flush(end1, end2 int) error {
	if !c.st.hasSample {
		return nil
	}
	sample := c.st.sample
	c.st.sample, c.st.hasSample = byteview.ByteView{}, false

	var s1, s2 []int
	for i := max(c.st.last1, c.b.Index1()); i < end1; i++ {
		if line.EqualIgnoreWhitespace(sample, c.x[i].Text()) {
			s1 = append(s1, i)
			c.st.last1 = i + 1
		}
	}
	for i := max(c.st.last2, c.b.Index2()); i < end2; i++ {
		if line.EqualIgnoreWhitespace(sample, c.y[i].Text()) {
			s2 = append(s2, i)
			c.st.last2 = i + 1
		}
	}
	if len(s1) == 0 || len(s2) == 0 {
		panic(fmt.Sprintf("empty block for %q before %d, %d", sample.String(), end1, end2))
	}
	return c.alignExactMatching(s1, s2)
}

// alignExactMatching marks pairs of equal lines from s1 and s2.
func (c *corrector) alignExactMatching(s1, s2 []int) error {
	p, q := len(s1), len(s2)
	if p == q || max(p, q) > maxSearch {
		for i := range min(p, q) {
			if c.x[s1[i]].Equal(c.y[s2[i]]) {
				c.b.MarkEqual(s1[i], s2[i])
			}
		}
		return nil
	}

	if p < q {
		comb, err := bestCombination(c.ctx, p, q, func(i, j int) bool { return c.x[s1[i]].Equal(c.y[s2[j]]) })
		if err != nil {
			return err
		}
		for i, j := range comb {
			if c.x[s1[i]].Equal(c.y[s2[j]]) {
				c.b.MarkEqual(s1[i], s2[j])
			}
		}
		return nil
	}

	comb, err := bestCombination(c.ctx, q, p, func(i, j int) bool { return c.y[s2[i]].Equal(c.x[s1[j]]) })
	if err != nil {
		return err
	}
	for i, j := range comb {
		if c.x[s1[j]].Equal(c.y[s2[i]]) {
			c.b.MarkEqual(s1[j], s2[i])
		}
	}
	return nil
}

// bestCombination returns the increasing combination comb of p indices from [0, q) that maximizes
// the number of pairs (i, comb[i]) for which eq holds. Combinations are enumerated in
// lexicographic order and the first combination with the maximal weight wins.
func bestCombination(ctx context.Context, p, q int, eq func(i, j int) bool) ([]int, error) {
	weight := func(comb []int) int {
		w := 0
		for i, j := range comb {
			if eq(i, j) {
				w++
			}
		}
		return w
	}

	comb := make([]int, p)
	for i := range comb {
		comb[i] = i
	}
	best := make([]int, p)
	copy(best, comb)
	bestWeight := weight(comb)

	for {
		i := p - 1
		for i >= 0 && comb[i] == q-p+i {
			i--
		}
		if i < 0 {
			return best, nil
		}
		comb[i]++
		for j := i + 1; j < p; j++ {
			comb[j] = comb[j-1] + 1
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if w := weight(comb); w > bestWeight {
			copy(best, comb)
			bestWeight = w
		}
	}
}

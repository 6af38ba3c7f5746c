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

// Package anchor speeds up line alignments by aligning only significant lines first.
//
// Lines with few non-whitespace characters (blank lines, lone braces) match almost everywhere and
// make poor anchors. They are filtered out for a first alignment pass. Afterwards, every gap
// between two aligned anchor lines is aligned again with all its lines.
package anchor

import (
	"context"

	"znkr.io/linediff/internal/align"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/ranges"
)

// Lines aligns x and y. If cfg.Threshold is zero, this is the same as [align.Lines].
func Lines(ctx context.Context, x, y []line.Line, cfg config.Config) ([]ranges.Range, error) {
	if cfg.Threshold <= 0 {
		return align.Lines(ctx, x, y, cfg)
	}
	bx, ix := Filter(x, cfg.Threshold)
	by, iy := Filter(y, cfg.Threshold)
	alignment, err := align.Lines(ctx, bx, by, cfg)
	if err != nil {
		return nil, err
	}
	return Correct(ctx, x, y, ix, iy, alignment, cfg)
}

// Filter returns all lines with more than threshold non-whitespace characters together with
// their indices in lines.
func Filter(lines []line.Line, threshold int) ([]line.Line, []int) {
	var out []line.Line
	var idx []int
	for i, l := range lines {
		if l.NonSpaceChars() > threshold {
			out = append(out, l)
			idx = append(idx, i)
		}
	}
	return out, idx
}

// Correct maps an alignment of filtered lines back to x and y. The lines in between two aligned
// lines are aligned again.
func Correct(ctx context.Context, x, y []line.Line, ix, iy []int, alignment []ranges.Range, cfg config.Config) ([]ranges.Range, error) {
	c := corrector{
		ctx: ctx,
		x:   x,
		y:   y,
		cfg: cfg,
		b:   ranges.NewBuilder(len(x), len(y)),
	}
	last1, last2 := 0, 0
	for _, r := range alignment {
		for i := range r.Len1() {
			index1, index2 := ix[r.Start1+i], iy[r.Start2+i]
			if err := c.matchGap(last1, index1, last2, index2); err != nil {
				return nil, err
			}
			c.b.MarkEqual(index1, index2)
			last1, last2 = index1+1, index2+1
		}
	}
	if err := c.matchGap(last1, len(x), last2, len(y)); err != nil {
		return nil, err
	}
	return c.b.Finish(), nil
}

type corrector struct {
	ctx  context.Context
	x, y []line.Line
	cfg  config.Config
	b    *ranges.Builder
}

func (c *corrector) matchGap(start1, end1, start2, end2 int) error {
	if start1 == end1 && start2 == end2 {
		return nil
	}
	ex := ranges.Expand(c.x, c.y, line.Eq, ranges.Range{Start1: start1, End1: end1, Start2: start2, End2: end2})
	inner, err := align.Lines(c.ctx, c.x[ex.Start1:ex.End1], c.y[ex.Start2:ex.End2], c.cfg)
	if err != nil {
		return err
	}
	c.b.MarkEqualRange(start1, start2, ex.Start1, ex.Start2)
	for _, r := range inner {
		c.b.MarkEqualN(ex.Start1+r.Start1, ex.Start2+r.Start2, r.Len1())
	}
	c.b.MarkEqualRange(ex.End1, ex.End2, end1, end2)
	return nil
}

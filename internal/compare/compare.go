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

// Package compare implements the comparison pipelines of this module.
//
// Line comparisons under a whitespace sensitive policy run in two steps: the inputs are aligned
// ignoring whitespace first, then the alignment is corrected to the target policy. This way,
// lines that differ only in whitespace can never push the alignment of other lines apart.
package compare

import (
	"context"

	"golang.org/x/sync/errgroup"

	"znkr.io/linediff/internal/anchor"
	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/correct"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/merge"
	"znkr.io/linediff/internal/optimize"
	"znkr.io/linediff/internal/ranges"
)

// Two returns an alignment of x and y under policy.
func Two(ctx context.Context, x, y []byteview.ByteView, policy line.Policy, cfg config.Config) ([]ranges.Range, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return lines(ctx, line.FromViews(x, policy), line.FromViews(y, policy), policy, cfg)
}

// lines aligns x and y, all lines must use policy.
func lines(ctx context.Context, x, y []line.Line, policy line.Policy, cfg config.Config) ([]ranges.Range, error) {
	if policy == line.IgnoreWhitespace {
		alignment, err := anchor.Lines(ctx, x, y, cfg)
		if err != nil {
			return nil, err
		}
		alignment, err = optimize.Chunks(ctx, x, y, line.Eq, alignment, shifter(x, y, cfg))
		if err != nil {
			return nil, err
		}
		return expandChanges(x, y, alignment), nil
	}

	ix, iy := line.Convert(x, line.IgnoreWhitespace), line.Convert(y, line.IgnoreWhitespace)
	alignment, err := anchor.Lines(ctx, ix, iy, cfg)
	if err != nil {
		return nil, err
	}
	alignment, err = optimize.Chunks(ctx, x, y, line.Eq, alignment, shifter(x, y, cfg))
	if err != nil {
		return nil, err
	}
	return correct.Lines(ctx, x, y, alignment)
}

func shifter(x, y []line.Line, cfg config.Config) optimize.Shifter {
	if cfg.IndentHeuristic {
		return optimize.IndentShifter{X: x, Y: y}
	}
	return optimize.LineShifter{X: x, Y: y, Threshold: cfg.Threshold}
}

// expandChanges tightens every change in alignment to the lines that are actually different.
func expandChanges(x, y []line.Line, alignment []ranges.Range) []ranges.Range {
	var changes []ranges.Range
	for ch := range ranges.Changes(alignment, len(x), len(y)) {
		if ex := ranges.Expand(x, y, line.Eq, ch); !ex.IsEmpty() {
			changes = append(changes, ex)
		}
	}
	return ranges.FromChanges(changes, len(x), len(y))
}

// Three returns the changed merge ranges of left, base, and right under policy. Both sides are
// compared against base concurrently.
func Three(ctx context.Context, left, base, right []byteview.ByteView, policy line.Policy, cfg config.Config) ([]ranges.MergeRange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, b, r := line.FromViews(left, policy), line.FromViews(base, policy), line.FromViews(right, policy)

	var baseLeft, baseRight []ranges.Range
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		baseLeft, err = lines(gctx, b, l, policy, cfg)
		return err
	})
	g.Go(func() (err error) {
		baseRight, err = lines(gctx, b, r, policy, cfg)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merge.Fair(l, b, r, line.Eq, baseLeft, baseRight), nil
}

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

package linediff

import (
	"context"
	"slices"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/compare"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/edits"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/ranges"
)

// Policy describes how whitespace is treated when lines are compared.
type Policy = line.Policy

const (
	Exact            = line.Exact            // Lines must be identical
	TrimEdges        = line.TrimEdges        // Leading and trailing whitespace is ignored
	IgnoreWhitespace = line.IgnoreWhitespace // All whitespace is ignored
)

// Range describes an unchanged or changed pair of spans x[Start1:End1] and y[Start2:End2].
type Range = ranges.Range

// MergeRange describes a changed triple of spans in a three-way comparison. The first span is in
// left, the second span is in base, and the third span is in right.
type MergeRange = ranges.MergeRange

// Hunk describes a contiguous block of changes together with some unchanged context lines.
type Hunk struct {
	PosX, EndX int // Start and end position in x.
	PosY, EndY int // Start and end position in y.
}

const lineFlags = config.Threshold | config.Minimal | config.IndentHeuristic | config.DiffMatchPatch | config.AnchoringHeuristic

// Lines compares the lines in x and y under policy and returns the alignment of both.
//
// The following options are supported: [Threshold], [Minimal], [IndentHeuristic],
// [DiffMatchPatch]
func Lines(ctx context.Context, x, y []string, policy Policy, opts ...Option) ([]Range, error) {
	cfg := config.FromOptions(opts, lineFlags)
	return compare.Two(ctx, byteview.FromStrings(x), byteview.FromStrings(y), policy, cfg)
}

// Text splits x and y into lines and compares them under policy. Lines include their newline
// character, the last line may lack it.
//
// The following options are supported: [Threshold], [Minimal], [IndentHeuristic],
// [DiffMatchPatch]
func Text[T string | []byte](ctx context.Context, x, y T, policy Policy, opts ...Option) ([]Range, error) {
	cfg := config.FromOptions(opts, lineFlags)
	xlines, _ := byteview.SplitLines(byteview.From(x))
	ylines, _ := byteview.SplitLines(byteview.From(y))
	return compare.Two(ctx, xlines, ylines, policy, cfg)
}

// Lines3 compares left and right to base under policy and returns the changed merge ranges in
// base order.
//
// The following options are supported: [Threshold], [Minimal], [IndentHeuristic],
// [DiffMatchPatch]
func Lines3(ctx context.Context, left, base, right []string, policy Policy, opts ...Option) ([]MergeRange, error) {
	cfg := config.FromOptions(opts, lineFlags)
	return compare.Three(ctx, byteview.FromStrings(left), byteview.FromStrings(base), byteview.FromStrings(right), policy, cfg)
}

// Words compares x and y word by word and returns the changed fragments as byte offset ranges.
// Words are determined using Unicode word boundaries, line breaks are treated as words of their
// own. Whitespace between words is compared according to policy.
//
// The following options are supported: [Minimal], [DiffMatchPatch]
func Words(ctx context.Context, x, y string, policy Policy, opts ...Option) ([]Range, error) {
	cfg := config.FromOptions(opts, config.Minimal|config.DiffMatchPatch|config.AnchoringHeuristic)
	return compare.Words(ctx, byteview.From(x), byteview.From(y), policy, cfg)
}

// Changes returns the changed ranges of alignment, an alignment of inputs of length n and m.
func Changes(alignment []Range, n, m int) []Range {
	return slices.Collect(ranges.Changes(alignment, n, m))
}

// Hunks groups the changes of alignment, an alignment of inputs of length n and m, into hunks.
//
// If there are no changes, the output has length zero.
//
// The following option is supported: [Context]
func Hunks(alignment []Range, n, m int, opts ...Option) []Hunk {
	cfg := config.FromOptions(opts, config.Context)
	var out []Hunk
	for h := range edits.Hunks(alignment, n, m, cfg.Context) {
		out = append(out, Hunk{PosX: h.S0, EndX: h.S1, PosY: h.T0, EndY: h.T1})
	}
	return out
}

// Unified compares the lines in x and y under policy and returns the changes in unified format.
//
// The following options are supported: [Context], [Threshold], [Minimal], [IndentHeuristic],
// [DiffMatchPatch]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Unified[T string | []byte](ctx context.Context, x, y T, policy Policy, opts ...Option) (T, error) {
	cfg := config.FromOptions(opts, config.Context|lineFlags)
	xlines, missing1 := byteview.SplitLines(byteview.From(x))
	ylines, missing2 := byteview.SplitLines(byteview.From(y))
	alignment, err := compare.Two(ctx, xlines, ylines, policy, cfg)
	if err != nil {
		var zero T
		return zero, err
	}
	return edits.Unified[T](xlines, ylines, missing1, missing2, alignment, cfg.Context), nil
}

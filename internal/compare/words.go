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

	"znkr.io/linediff/internal/align"
	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/optimize"
	"znkr.io/linediff/internal/ranges"
	"znkr.io/linediff/internal/words"
)

// Words compares text1 and text2 word by word and returns the changed fragments as byte offset
// ranges.
//
// Whitespace between words is compared according to policy: [line.Exact] reports every
// whitespace difference, [line.TrimEdges] ignores whitespace at the beginning and the end of the
// texts, and [line.IgnoreWhitespace] ignores all whitespace.
func Words(ctx context.Context, text1, text2 byteview.ByteView, policy line.Policy, cfg config.Config) ([]ranges.Range, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c1, c2 := words.Split(text1), words.Split(text2)
	x := line.FromViews(words.Views(text1, c1), line.Exact)
	y := line.FromViews(words.Views(text2, c2), line.Exact)

	alignment, err := align.Lines(ctx, x, y, cfg)
	if err != nil {
		return nil, err
	}
	s := optimize.WordShifter{Text1: text1, Text2: text2, Chunks1: c1, Chunks2: c2}
	alignment, err = optimize.Chunks(ctx, x, y, line.Eq, alignment, s)
	if err != nil {
		return nil, err
	}

	f := fragments{
		text1:   text1,
		text2:   text2,
		chunks1: c1,
		chunks2: c2,
		policy:  policy,
	}
	last1, last2 := 0, 0
	for _, r := range append(alignment, ranges.Range{Start1: len(c1), End1: len(c1), Start2: len(c2), End2: len(c2)}) {
		change := last1 != r.Start1 || last2 != r.Start2
		edge := (last1 == 0 && last2 == 0) || (r.Start1 == len(c1) && r.Start2 == len(c2))
		if change || edge {
			f.gap(last1, r.Start1, last2, r.Start2, change)
		}
		for i := r.Start1 + 1; i < r.End1; i++ {
			f.gap(i, i, r.Start2+i-r.Start1, r.Start2+i-r.Start1, false)
		}
		last1, last2 = r.End1, r.End2
	}
	return f.out, nil
}

type fragments struct {
	text1, text2     byteview.ByteView
	chunks1, chunks2 []words.Chunk
	policy           line.Policy
	out              []ranges.Range
}

// gap adds the text between the chunks before start and at end on each side. Unless changed is
// set, the gap consists of whitespace only.
func (f *fragments) gap(start1, end1, start2, end2 int, changed bool) {
	r := ranges.Range{
		Start1: before(f.chunks1, start1), End1: after(f.text1, f.chunks1, end1),
		Start2: before(f.chunks2, start2), End2: after(f.text2, f.chunks2, end2),
	}
	switch f.policy {
	case line.IgnoreWhitespace:
		r = ranges.Trim(f.text1, f.text2, r)
	case line.TrimEdges:
		if r.Start1 == 0 && r.Start2 == 0 {
			r.Start1 = ranges.TrimStart(f.text1, r.Start1, r.End1)
			r.Start2 = ranges.TrimStart(f.text2, r.Start2, r.End2)
		}
		if r.End1 == f.text1.Len() && r.End2 == f.text2.Len() {
			r.End1 = ranges.TrimEnd(f.text1, r.Start1, r.End1)
			r.End2 = ranges.TrimEnd(f.text2, r.Start2, r.End2)
		}
		fallthrough
	default:
		fwd := ranges.ExpandForwardW(f.text1, f.text2, r.Start1, r.Start2, r.End1, r.End2)
		r.Start1, r.Start2 = r.Start1+fwd, r.Start2+fwd
		bwd := ranges.ExpandBackwardW(f.text1, f.text2, r.Start1, r.Start2, r.End1, r.End2)
		r.End1, r.End2 = r.End1-bwd, r.End2-bwd
	}
	if r.IsEmpty() || !changed && f.text1.Slice(r.Start1, r.End1).Equal(f.text2.Slice(r.Start2, r.End2)) {
		return
	}
	f.out = append(f.out, r)
}

// before returns the end of the chunk before index i.
func before(chunks []words.Chunk, i int) int {
	if i == 0 {
		return 0
	}
	return chunks[i-1].End
}

// after returns the start of the chunk at index i.
func after(text byteview.ByteView, chunks []words.Chunk, i int) int {
	if i == len(chunks) {
		return text.Len()
	}
	return chunks[i].Start
}

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

package optimize

import (
	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/ranges"
	"znkr.io/linediff/internal/words"
)

// WordShifter prefers boundaries between words that are separated by whitespace or line breaks.
// This keeps tokens like "1.0.123" together even if parts of them are equal to their surroundings.
type WordShifter struct {
	Text1, Text2     byteview.ByteView
	Chunks1, Chunks2 []words.Chunk
}

func (s WordShifter) Shift(touch Side, equalForward, equalBackward int, r1, r2 ranges.Range) int {
	text := pick(touch, s.Text1, s.Text2)
	chunks := pick(touch, s.Chunks1, s.Chunks2)
	start := pick(touch, r2.Start1, r2.Start2)

	if words.IsSeparated(text, chunks[start-1], chunks[start]) {
		return 0
	}
	if shift := findEdgeShift(text, chunks, start, equalForward, true); shift > 0 {
		return shift
	}
	if shift := findEdgeShift(text, chunks, start-1, equalBackward, false); shift > 0 {
		return -shift
	}
	return 0
}

// findEdgeShift returns the distance to the closest separated chunk boundary within count chunks
// from offset, or -1.
func findEdgeShift(text byteview.ByteView, chunks []words.Chunk, offset, count int, forward bool) int {
	for i := range count {
		var a, b int
		if forward {
			a, b = offset+i, offset+i+1
		} else {
			a, b = offset-i-1, offset-i
		}
		if a < 0 || b >= len(chunks) {
			return -1
		}
		if words.IsSeparated(text, chunks[a], chunks[b]) {
			return i + 1
		}
	}
	return -1
}

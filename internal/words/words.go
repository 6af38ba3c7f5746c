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

// Package words splits text into word chunks for word level comparisons.
package words

import (
	"strings"

	segment "github.com/clipperhouse/uax29/v2/words"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/ranges"
)

// Chunk is a word or a line break in a text, identified by its byte offsets.
type Chunk struct {
	Start, End int
	Newline    bool
}

// Text returns the text of c.
func (c Chunk) Text(text byteview.ByteView) byteview.ByteView { return text.Slice(c.Start, c.End) }

// Split splits text into chunks using Unicode word boundaries (UAX #29). Every token that isn't
// whitespace becomes a chunk, line breaks become newline chunks and all other whitespace is
// dropped.
func Split(text byteview.ByteView) []Chunk {
	var out []Chunk
	tokens := segment.FromString(text.String())
	for tokens.Next() {
		tok := tokens.Value()
		switch {
		case strings.IndexByte(tok, '\n') >= 0:
			out = append(out, Chunk{Start: tokens.Start(), End: tokens.End(), Newline: true})
		case isSpace(tok):
			// separator
		default:
			out = append(out, Chunk{Start: tokens.Start(), End: tokens.End()})
		}
	}
	return out
}

// Views returns the text of every chunk.
func Views(text byteview.ByteView, chunks []Chunk) []byteview.ByteView {
	out := make([]byteview.ByteView, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text(text)
	}
	return out
}

// IsSeparated returns true if a and b are separated by a line break or whitespace.
func IsSeparated(text byteview.ByteView, a, b Chunk) bool {
	if a.Newline || b.Newline {
		return true
	}
	for i := a.End; i < b.Start; i++ {
		if ranges.IsSpace(text.At(i)) {
			return true
		}
	}
	return false
}

func isSpace(s string) bool {
	for i := range len(s) {
		if !ranges.IsSpace(s[i]) {
			return false
		}
	}
	return true
}

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

// Package line implements the line model that all line comparisons in this module are based on.
//
// A [Line] wraps the text of a line together with the [Policy] used to compare it. The hash and
// the number of non-whitespace characters are computed once when the line is created.
package line

import (
	"fmt"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/ranges"
)

// Policy controls how two lines are compared.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Policy
type Policy int

const (
	Exact            Policy = iota // Lines are compared byte by byte.
	TrimEdges                      // Leading and trailing whitespace is ignored.
	IgnoreWhitespace               // All whitespace is ignored.
)

// Line is a line of text prepared for comparison under a policy.
type Line struct {
	text     byteview.ByteView
	policy   Policy
	hash     uint64
	nonSpace int
}

// New creates a new line.
func New(text byteview.ByteView, policy Policy) Line {
	l := Line{text: text, policy: policy}
	switch policy {
	case Exact:
		l.hash = hash(offset64, text, 0, text.Len())
	case TrimEdges:
		start, end := ranges.TrimSpan(text, 0, text.Len())
		l.hash = hash(offset64, text, start, end)
	case IgnoreWhitespace:
		l.hash = hashIgnoreWhitespace(text)
	default:
		panic(fmt.Sprintf("unknown policy: %v", policy))
	}
	for i := range text.Len() {
		if !ranges.IsSpace(text.At(i)) {
			l.nonSpace++
		}
	}
	return l
}

// FromViews creates lines for all texts.
func FromViews(texts []byteview.ByteView, policy Policy) []Line {
	out := make([]Line, len(texts))
	for i, text := range texts {
		out[i] = New(text, policy)
	}
	return out
}

// Convert returns lines with the same texts as in, but using a different policy.
func Convert(in []Line, policy Policy) []Line {
	out := make([]Line, len(in))
	for i, l := range in {
		if l.policy == policy {
			out[i] = l
			continue
		}
		out[i] = New(l.text, policy)
	}
	return out
}

// Text returns the text of the line.
func (l Line) Text() byteview.ByteView { return l.text }

// Policy returns the comparison policy of the line.
func (l Line) Policy() Policy { return l.policy }

// Hash returns the hash of l, two lines that are equal have the same hash.
func (l Line) Hash() uint64 { return l.hash }

// NonSpaceChars returns the number of non-whitespace bytes in the line.
func (l Line) NonSpaceChars() int { return l.nonSpace }

// Equal reports whether l and o are equal under their policy. It panics if the policies differ.
func (l Line) Equal(o Line) bool {
	if l.policy != o.policy {
		panic(fmt.Sprintf("comparing lines with different policies: %v and %v", l.policy, o.policy))
	}
	if l.hash != o.hash {
		return false
	}
	return Equal(l.text, o.text, l.policy)
}

// Eq is [Line.Equal] as a function, useful as argument for the generic algorithms in this
// module.
func Eq(a, b Line) bool { return a.Equal(b) }

// Equal compares two texts using policy.
func Equal(a, b byteview.ByteView, policy Policy) bool {
	switch policy {
	case Exact:
		return a.Equal(b)
	case TrimEdges:
		start1, end1 := ranges.TrimSpan(a, 0, a.Len())
		start2, end2 := ranges.TrimSpan(b, 0, b.Len())
		return a.Slice(start1, end1).Equal(b.Slice(start2, end2))
	case IgnoreWhitespace:
		return EqualIgnoreWhitespace(a, b)
	default:
		panic(fmt.Sprintf("unknown policy: %v", policy))
	}
}

// EqualIgnoreWhitespace reports whether a and b are equal when all whitespace is removed.
func EqualIgnoreWhitespace(a, b byteview.ByteView) bool {
	i, j := 0, 0
	for {
		for i < a.Len() && ranges.IsSpace(a.At(i)) {
			i++
		}
		for j < b.Len() && ranges.IsSpace(b.At(j)) {
			j++
		}
		if i == a.Len() || j == b.Len() {
			return i == a.Len() && j == b.Len()
		}
		if a.At(i) != b.At(j) {
			return false
		}
		i++
		j++
	}
}

// FNV-1a over the bytes that take part in the comparison.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

func hash(h uint64, text byteview.ByteView, start, end int) uint64 {
	for i := start; i < end; i++ {
		h ^= uint64(text.At(i))
		h *= prime64
	}
	return h
}

func hashIgnoreWhitespace(text byteview.ByteView) uint64 {
	h := uint64(offset64)
	for i := range text.Len() {
		if c := text.At(i); !ranges.IsSpace(c) {
			h ^= uint64(c)
			h *= prime64
		}
	}
	return h
}

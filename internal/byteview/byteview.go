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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
//
// All comparison code in this module works on byte views, that way callers can pass either
// strings or byte slices without copying.
package byteview

import (
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// ByteView is an immutable view of a string or a byte slice.
type ByteView struct {
	data string
}

// From creates a ByteView for in without copying it. The caller must not modify a byte slice
// while a view of it is in use.
func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

// At returns the i-th byte of v.
func (v ByteView) At(i int) byte { return v.data[i] }

// Slice returns the view v[i:j].
func (v ByteView) Slice(i, j int) ByteView { return ByteView{v.data[i:j]} }

// String returns the content of v. It doesn't copy.
func (v ByteView) String() string { return v.data }

// Equal reports whether v and w have the same content.
func (v ByteView) Equal(w ByteView) bool { return v.data == w.data }

// SplitLines splits the input on '\n' and returns the lines including the newline character
// and either -1 if the last line ends in a newline character or len([]ByteView) if it's missing
// a newline character.
func SplitLines(v ByteView) (lines []ByteView, missingNewline int) {
	s := v.data
	n := strings.Count(v.data, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	a := make([]ByteView, n)
	for i := range n {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			break
		}
		a[i] = ByteView{s[:m+1]}
		s = s[m+1:]
	}
	missingNewline = -1
	if len(s) > 0 {
		a[n-1] = ByteView{s}
		missingNewline = n - 1
	}
	return a, missingNewline
}

// FromStrings converts a slice of strings into byte views.
func FromStrings(in []string) []ByteView {
	out := make([]ByteView, len(in))
	for i, s := range in {
		out[i] = ByteView{s}
	}
	return out
}

// Builder accumulates output and hands it out as T without an additional copy.
type Builder[T string | []byte] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) Write(v []byte) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) WriteByteView(v ByteView) (n int, err error) {
	b.buf = append(b.buf, v.data...)
	return len(v.data), nil
}

func (b *Builder[T]) WriteString(v string) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

// Build returns the accumulated output and resets b.
func (b *Builder[T]) Build() T {
	defer func() {
		b.buf = nil
	}()
	switch any((*T)(nil)).(type) {
	case *string:
		return T(unsafe.String(unsafe.SliceData(b.buf), len(b.buf)))
	case *[]byte:
		return T(b.buf)
	}
	panic("never reached")
}

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

package ranges

import "znkr.io/linediff/internal/byteview"

// IsSpace reports whether c is an ASCII whitespace character. Multi-byte UTF-8 sequences never
// contain these bytes, so all primitives in this package can work byte by byte.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// TrimStart returns the first index in text[start:end] that isn't whitespace, or end.
func TrimStart(text byteview.ByteView, start, end int) int {
	for start < end && IsSpace(text.At(start)) {
		start++
	}
	return start
}

// TrimEnd returns the index after the last byte in text[start:end] that isn't whitespace, or
// start.
func TrimEnd(text byteview.ByteView, start, end int) int {
	for start < end && IsSpace(text.At(end-1)) {
		end--
	}
	return end
}

// TrimSpan trims whitespace from both edges of text[start:end].
func TrimSpan(text byteview.ByteView, start, end int) (int, int) {
	start = TrimStart(text, start, end)
	end = TrimEnd(text, start, end)
	return start, end
}

// Trim trims whitespace from both edges of both spans of r.
func Trim(text1, text2 byteview.ByteView, r Range) Range {
	start1, end1 := TrimSpan(text1, r.Start1, r.End1)
	start2, end2 := TrimSpan(text2, r.Start2, r.End2)
	return Range{start1, end1, start2, end2}
}

// ExpandForward returns the length of the longest common prefix of x[start1:end1] and
// y[start2:end2].
func ExpandForward[T any](x, y []T, eq func(a, b T) bool, start1, start2, end1, end2 int) int {
	old := start1
	for start1 < end1 && start2 < end2 && eq(x[start1], y[start2]) {
		start1++
		start2++
	}
	return start1 - old
}

// ExpandBackward returns the length of the longest common suffix of x[start1:end1] and
// y[start2:end2].
func ExpandBackward[T any](x, y []T, eq func(a, b T) bool, start1, start2, end1, end2 int) int {
	old := end1
	for start1 < end1 && start2 < end2 && eq(x[end1-1], y[end2-1]) {
		end1--
		end2--
	}
	return old - end1
}

// Expand shrinks the changed range r by the common prefix and suffix of its spans. The
// result is empty if both spans are equal.
func Expand[T any](x, y []T, eq func(a, b T) bool, r Range) Range {
	fwd := ExpandForward(x, y, eq, r.Start1, r.Start2, r.End1, r.End2)
	start1, start2 := r.Start1+fwd, r.Start2+fwd
	bwd := ExpandBackward(x, y, eq, start1, start2, r.End1, r.End2)
	return Range{start1, r.End1 - bwd, start2, r.End2 - bwd}
}

// ExpandForward3 is the three sequence equivalent of ExpandForward.
func ExpandForward3[T any](x, y, z []T, eq func(a, b T) bool, start1, start2, start3, end1, end2, end3 int) int {
	old := start1
	for start1 < end1 && start2 < end2 && start3 < end3 && eq(x[start1], y[start2]) && eq(y[start2], z[start3]) {
		start1++
		start2++
		start3++
	}
	return start1 - old
}

// ExpandBackward3 is the three sequence equivalent of ExpandBackward.
func ExpandBackward3[T any](x, y, z []T, eq func(a, b T) bool, start1, start2, start3, end1, end2, end3 int) int {
	old := end1
	for start1 < end1 && start2 < end2 && start3 < end3 && eq(x[end1-1], y[end2-1]) && eq(y[end2-1], z[end3-1]) {
		end1--
		end2--
		end3--
	}
	return old - end1
}

// Expand3 is the three sequence equivalent of Expand.
func Expand3[T any](x, y, z []T, eq func(a, b T) bool, r MergeRange) MergeRange {
	fwd := ExpandForward3(x, y, z, eq, r.Start1, r.Start2, r.Start3, r.End1, r.End2, r.End3)
	start1, start2, start3 := r.Start1+fwd, r.Start2+fwd, r.Start3+fwd
	bwd := ExpandBackward3(x, y, z, eq, start1, start2, start3, r.End1, r.End2, r.End3)
	return MergeRange{start1, r.End1 - bwd, start2, r.End2 - bwd, start3, r.End3 - bwd}
}

// ExpandForwardW returns the length of the longest common prefix of text1[start1:end1] and
// text2[start2:end2] that consists of whitespace only.
func ExpandForwardW(text1, text2 byteview.ByteView, start1, start2, end1, end2 int) int {
	old := start1
	for start1 < end1 && start2 < end2 {
		c1, c2 := text1.At(start1), text2.At(start2)
		if c1 != c2 || !IsSpace(c1) {
			break
		}
		start1++
		start2++
	}
	return start1 - old
}

// ExpandBackwardW returns the length of the longest common suffix of text1[start1:end1] and
// text2[start2:end2] that consists of whitespace only.
func ExpandBackwardW(text1, text2 byteview.ByteView, start1, start2, end1, end2 int) int {
	old := end1
	for start1 < end1 && start2 < end2 {
		c1, c2 := text1.At(end1-1), text2.At(end2-1)
		if c1 != c2 || !IsSpace(c1) {
			break
		}
		end1--
		end2--
	}
	return old - end1
}

// ExpandForwardW3 is the three sequence equivalent of ExpandForwardW.
func ExpandForwardW3(text1, text2, text3 byteview.ByteView, start1, start2, start3, end1, end2, end3 int) int {
	old := start1
	for start1 < end1 && start2 < end2 && start3 < end3 {
		c1, c2, c3 := text1.At(start1), text2.At(start2), text3.At(start3)
		if c1 != c2 || c2 != c3 || !IsSpace(c1) {
			break
		}
		start1++
		start2++
		start3++
	}
	return start1 - old
}

// ExpandBackwardW3 is the three sequence equivalent of ExpandBackwardW.
func ExpandBackwardW3(text1, text2, text3 byteview.ByteView, start1, start2, start3, end1, end2, end3 int) int {
	old := end1
	for start1 < end1 && start2 < end2 && start3 < end3 {
		c1, c2, c3 := text1.At(end1-1), text2.At(end2-1), text3.At(end3-1)
		if c1 != c2 || c2 != c3 || !IsSpace(c1) {
			break
		}
		end1--
		end2--
		end3--
	}
	return old - end1
}

// ExpandForwardIW advances over text1[start1:end1] and text2[start2:end2] as long as both
// sides agree or the diverging side(s) hold whitespace, then skips the whitespace left at the
// new boundary. It returns the new start positions.
func ExpandForwardIW(text1, text2 byteview.ByteView, start1, start2, end1, end2 int) (int, int) {
	for start1 < end1 && start2 < end2 {
		c1, c2 := text1.At(start1), text2.At(start2)
		if c1 == c2 {
			start1++
			start2++
			continue
		}
		skipped := false
		if IsSpace(c1) {
			skipped = true
			start1++
		}
		if IsSpace(c2) {
			skipped = true
			start2++
		}
		if !skipped {
			break
		}
	}
	return TrimStart(text1, start1, end1), TrimStart(text2, start2, end2)
}

// ExpandBackwardIW is the backward equivalent of ExpandForwardIW. It returns the new end
// positions.
func ExpandBackwardIW(text1, text2 byteview.ByteView, start1, start2, end1, end2 int) (int, int) {
	for start1 < end1 && start2 < end2 {
		c1, c2 := text1.At(end1-1), text2.At(end2-1)
		if c1 == c2 {
			end1--
			end2--
			continue
		}
		skipped := false
		if IsSpace(c1) {
			skipped = true
			end1--
		}
		if IsSpace(c2) {
			skipped = true
			end2--
		}
		if !skipped {
			break
		}
	}
	return TrimEnd(text1, start1, end1), TrimEnd(text2, start2, end2)
}

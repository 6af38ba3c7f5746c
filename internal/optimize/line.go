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
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/ranges"
)

// LineShifter prefers boundaries next to insignificant lines, that is lines with at most
// Threshold non-whitespace characters. Blank lines are preferred over other insignificant lines.
type LineShifter struct {
	X, Y      []line.Line
	Threshold int
}

func (s LineShifter) Shift(touch Side, equalForward, equalBackward int, r1, r2 ranges.Range) int {
	if shift, ok := s.unchangedBoundaryShift(touch, equalForward, equalBackward, r2, 0); ok {
		return shift
	}
	if shift, ok := s.changedBoundaryShift(touch, equalForward, equalBackward, r1, r2, 0); ok {
		return shift
	}
	if s.Threshold <= 0 {
		return 0
	}
	if shift, ok := s.unchangedBoundaryShift(touch, equalForward, equalBackward, r2, s.Threshold); ok {
		return shift
	}
	if shift, ok := s.changedBoundaryShift(touch, equalForward, equalBackward, r1, r2, s.Threshold); ok {
		return shift
	}
	return 0
}

// unchangedBoundaryShift looks for an insignificant line among the unchanged lines on the
// touching side.
func (s LineShifter) unchangedBoundaryShift(touch Side, equalForward, equalBackward int, r2 ranges.Range, threshold int) (int, bool) {
	lines := pick(touch, s.X, s.Y)
	start := pick(touch, r2.Start1, r2.Start2)
	fwd := findNext(lines, start, equalForward+1, threshold)
	bwd := findPrev(lines, start-1, equalBackward+1, threshold)
	return combine(fwd, bwd)
}

// changedBoundaryShift looks for an insignificant line among the changed lines on the other side.
func (s LineShifter) changedBoundaryShift(touch Side, equalForward, equalBackward int, r1, r2 ranges.Range, threshold int) (int, bool) {
	other := touch.Other()
	lines := pick(other, s.X, s.Y)
	start := pick(other, r1.End1, r1.End2)
	end := pick(other, r2.Start1, r2.Start2)
	fwd := findNext(lines, start, equalForward+1, threshold)
	bwd := findPrev(lines, end-1, equalBackward+1, threshold)
	return combine(fwd, bwd)
}

func combine(fwd, bwd int) (int, bool) {
	switch {
	case fwd == -1 && bwd == -1:
		return 0, false
	case fwd == 0 || bwd == 0:
		return 0, true
	case fwd != -1:
		return fwd, true
	default:
		return -bwd, true
	}
}

// findNext returns the smallest i < count such that lines[offset+i] is insignificant, or -1.
func findNext(lines []line.Line, offset, count, threshold int) int {
	for i := range count {
		if offset+i >= len(lines) {
			break
		}
		if lines[offset+i].NonSpaceChars() <= threshold {
			return i
		}
	}
	return -1
}

// findPrev returns the smallest i < count such that lines[offset-i] is insignificant, or -1.
func findPrev(lines []line.Line, offset, count, threshold int) int {
	for i := range count {
		if offset-i < 0 {
			break
		}
		if lines[offset-i].NonSpaceChars() <= threshold {
			return i
		}
	}
	return -1
}

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
	"cmp"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/ranges"
)

// IndentShifter places boundaries using the indentation heuristic by Michael Haggerty
// (https://github.com/mhagger/diff-slider-tools).
//
// Every admissible position of the changed lines is scored by the indentation and the blank lines
// around its first and last line. The scores are derived from human rated diffs and prefer changes
// that start and end at block boundaries.
type IndentShifter struct {
	X, Y []line.Line
}

// Never move a group more than this many lines.
const maxSliding = 100

// We don't care if a line is indented more than this and clamp the value to maxIndent. That way,
// we don't overflow an int and avoid unnecessary work on input that's not human readable text.
const maxIndent = 200

// Don't consider more than this number of consecutive blank lines.
const maxBlanks = 20

const startOfFilePenalty = 1               // No non-blank lines before the split
const endOfFilePenalty = 21                // No non-blank lines after the split
const totalBlankWeight = -30               // Weight for number of blank lines around the split
const postBlankWeight = 6                  // Weight for number of blank lines after the split
const relativeIndentPenalty = -4           // Indented more than predecessor
const relativeIndentWithBlankPenalty = 10  // Indented more than predecessor, with blank lines
const relativeOutdentPenalty = 24          // Indented less than predecessor
const relativeOutdentWithBlankPenalty = 17 // Indented less than predecessor, with blank lines
const relativeDentPenalty = 23             // Indented less than predecessor but not less than successor
const relativeDentWithBlankPenalty = 17    // Indented less than predecessor but not less than successor, with blank lines

// We only consider whether the sum of the effective indents for splits are less than (-1), equal
// to (0), or greater than (+1) each other. The resulting value is multiplied by the following
// weight and combined with the penalty to determine the better of two scores.
const indentWeight = 60

func (s IndentShifter) Shift(touch Side, equalForward, equalBackward int, r1, r2 ranges.Range) int {
	// The changed lines are on the side that doesn't touch.
	other := touch.Other()
	lines := pick(other, s.X, s.Y)
	start := pick(other, r1.End1, r1.End2)
	end := pick(other, r2.Start1, r2.Start2)

	best := 0
	var bestScore shiftScore
	first := true
	for k := -min(equalBackward, maxSliding); k <= min(equalForward, maxSliding); k++ {
		score := shiftScore{}
		score.add(measureShift(lines, end+k))
		score.add(measureShift(lines, start+k))
		if first || score.cmp(bestScore) <= 0 {
			best, bestScore, first = k, score, false
		}
	}
	return best
}

type measure struct {
	endOfFile  bool
	indent     int
	preBlank   int
	preIndent  int
	postBlank  int
	postIndent int
}

func measureShift(lines []line.Line, split int) measure {
	m := measure{}
	if split >= len(lines) {
		m.endOfFile = true
		m.indent = -1
	} else {
		m.indent = getIndent(lines[split].Text())
	}

	m.preIndent = -1
	for i := split - 1; i >= 0; i-- {
		m.preIndent = getIndent(lines[i].Text())
		if m.preIndent != -1 {
			break
		}
		m.preBlank++
		if m.preBlank == maxBlanks {
			m.preIndent = 0
			break
		}
	}

	m.postIndent = -1
	for i := split + 1; i < len(lines); i++ {
		m.postIndent = getIndent(lines[i].Text())
		if m.postIndent != -1 {
			break
		}
		m.postBlank++
		if m.postBlank == maxBlanks {
			m.postIndent = 0
			break
		}
	}
	return m
}

func getIndent(text byteview.ByteView) int {
	indent := 0
	for i := range text.Len() {
		switch text.At(i) {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		case '\n', '\v', '\r', '\f':
			// Ignore other whitespace.
		default:
			return indent
		}
		if indent >= maxIndent {
			return maxIndent
		}
	}
	return -1 // only whitespace
}

type shiftScore struct {
	effectiveIndent int // smaller is better
	penalty         int // smaller is better
}

func (s *shiftScore) add(m measure) {
	if m.preIndent == -1 && m.preBlank == 0 {
		s.penalty += startOfFilePenalty
	}
	if m.endOfFile {
		s.penalty += endOfFilePenalty
	}

	postBlank := 0
	if m.indent == -1 {
		postBlank = 1 + m.postBlank
	}
	totalBlank := m.preBlank + postBlank

	// Penalties based on nearby blank lines
	s.penalty += totalBlankWeight * totalBlank
	s.penalty += postBlankWeight * postBlank

	indent := m.indent
	if indent == -1 {
		indent = m.postIndent
	}

	s.effectiveIndent += indent

	switch {
	case indent == -1 || m.preIndent == -1:
		// No additional adjustment needed.
	case indent > m.preIndent:
		if totalBlank != 0 {
			s.penalty += relativeIndentWithBlankPenalty
		} else {
			s.penalty += relativeIndentPenalty
		}
	case indent == m.preIndent:
		// Same indentation as previous line.
	default:
		// The line is indented less than its predecessor. It could be the block terminator of the
		// previous block or the start of a new block (e.g., an "else" block). Try to distinguish
		// those cases based on what comes next.
		if m.postIndent != -1 && m.postIndent > indent {
			if totalBlank != 0 {
				s.penalty += relativeOutdentWithBlankPenalty
			} else {
				s.penalty += relativeOutdentPenalty
			}
		} else {
			if totalBlank != 0 {
				s.penalty += relativeDentWithBlankPenalty
			} else {
				s.penalty += relativeDentPenalty
			}
		}
	}
}

func (s *shiftScore) cmp(t shiftScore) int {
	return indentWeight*cmp.Compare(s.effectiveIndent, t.effectiveIndent) + s.penalty - t.penalty
}

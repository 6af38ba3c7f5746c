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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/linediff"
	"znkr.io/linediff/internal/merge"
)

// writeWords writes y with the changes from x marked inline.
func writeWords(w io.Writer, x, y string, changes []linediff.Range, p palette) {
	pos := 0
	for _, r := range changes {
		io.WriteString(w, y[pos:r.Start2])
		if r.Start1 < r.End1 {
			io.WriteString(w, p.wrap(p.delete, "[-"+x[r.Start1:r.End1]+"-]"))
		}
		if r.Start2 < r.End2 {
			io.WriteString(w, p.wrap(p.insert, "{+"+y[r.Start2:r.End2]+"+}"))
		}
		pos = r.End2
	}
	io.WriteString(w, y[pos:])
}

const (
	markUnchanged = ' '
	markChanged   = '|'
	markDeleted   = '<'
	markInserted  = '>'
)

// writeSideBySide writes the hunks of alignment in two columns. Deleted and inserted lines of a
// change are paired up in order.
func writeSideBySide(w io.Writer, x, y []string, alignment []linediff.Range, context, width int) {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	col := max((width-3)/2, 1)
	cell := func(s string) string {
		s = strings.TrimRight(s, "\r\n")
		s = strings.ReplaceAll(s, "\t", "    ")
		return cond.Truncate(s, col, "…")
	}
	row := func(left string, mark byte, right string) {
		fmt.Fprintf(w, "%s %c %s\n", cond.FillRight(cell(left), col), mark, cell(right))
	}

	for i, h := range linediff.Hunks(alignment, len(x), len(y), linediff.Context(context)) {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("~", width))
		}
		s, t := h.PosX, h.PosY
		changes := func(end1, end2 int) {
			for s < end1 || t < end2 {
				switch {
				case s < end1 && t < end2:
					row(x[s], markChanged, y[t])
					s, t = s+1, t+1
				case s < end1:
					row(x[s], markDeleted, "")
					s++
				default:
					row("", markInserted, y[t])
					t++
				}
			}
		}
		for _, r := range alignment {
			if r.End1 <= s {
				continue
			}
			if r.Start1 >= h.EndX {
				break
			}
			changes(max(r.Start1, s), max(r.Start2, t))
			for ; s < min(r.End1, h.EndX); s, t = s+1, t+1 {
				row(x[s], markUnchanged, y[t])
			}
		}
		changes(h.EndX, h.EndY)
	}
}

// writeMerge writes base with the merged changes from left and right applied. Conflicting
// changes are written with conflict markers labeled with names. It returns the number of
// conflicts.
func writeMerge(w io.Writer, left, base, right []string, merged []linediff.MergeRange, names []string) int {
	eq := func(a, b string) bool { return a == b }
	lines := func(lines []string, terminate bool) {
		for i, l := range lines {
			io.WriteString(w, l)
			if terminate && i == len(lines)-1 && !strings.HasSuffix(l, "\n") {
				io.WriteString(w, "\n")
			}
		}
	}

	conflicts := 0
	pos := 0
	for _, r := range merged {
		lines(base[pos:r.Start2], false)
		switch merge.Classify(left, base, right, eq, r) {
		case merge.KindLeft, merge.KindBoth:
			lines(left[r.Start1:r.End1], false)
		case merge.KindRight:
			lines(right[r.Start3:r.End3], false)
		case merge.KindConflict:
			conflicts++
			fmt.Fprintf(w, "<<<<<<< %s\n", names[0])
			lines(left[r.Start1:r.End1], true)
			fmt.Fprintf(w, "||||||| %s\n", names[1])
			lines(base[r.Start2:r.End2], true)
			fmt.Fprintln(w, "=======")
			lines(right[r.Start3:r.End3], true)
			fmt.Fprintf(w, ">>>>>>> %s\n", names[2])
		}
		pos = r.End2
	}
	lines(base[pos:], false)
	return conflicts
}

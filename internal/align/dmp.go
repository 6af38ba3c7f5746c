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

package align

import (
	"context"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/ranges"
	"znkr.io/linediff/internal/rvecs"
)

// Runes in the surrogate range can't be represented in a string. IDs at or above the start of the
// range are shifted past it.
const (
	surrogateMin = 0xD800
	surrogateLen = 0x800
	maxRuneID    = utf8.MaxRune - surrogateLen
)

// dmp aligns x and y using the bisect implementation of diffmatchpatch. The IDs are used as runes,
// diffmatchpatch never inspects them beyond equality.
func dmp(ctx context.Context, x, y []int) ([]ranges.Range, error) {
	xr, yr := toRunes(x), toRunes(y)
	if xr == nil || yr == nil {
		// Too many distinct lines to map them to runes.
		rx, ry, err := diff(ctx, x, y, config.Default)
		if err != nil {
			return nil, err
		}
		return rvecs.Ranges(rx, ry), nil
	}

	d := diffmatchpatch.New()
	d.DiffTimeout = 0 // no deadline, the result is a minimal alignment
	diffs := d.DiffMainRunes(xr, yr, false)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []ranges.Range
	s, t := 0, 0
	for _, df := range diffs {
		n := utf8.RuneCountInString(df.Text)
		switch df.Type {
		case diffmatchpatch.DiffEqual:
			if k := len(out) - 1; k >= 0 && out[k].End1 == s && out[k].End2 == t {
				out[k].End1 += n
				out[k].End2 += n
			} else {
				out = append(out, ranges.Range{Start1: s, End1: s + n, Start2: t, End2: t + n})
			}
			s += n
			t += n
		case diffmatchpatch.DiffDelete:
			s += n
		case diffmatchpatch.DiffInsert:
			t += n
		}
	}
	if s != len(x) || t != len(y) {
		panic("diffmatchpatch result doesn't cover the input")
	}
	return out, nil
}

// toRunes converts IDs to runes. It returns nil if an ID can't be represented as a rune.
func toRunes(ids []int) []rune {
	out := make([]rune, len(ids))
	for i, id := range ids {
		if id > maxRuneID {
			return nil
		}
		if id >= surrogateMin {
			id += surrogateLen
		}
		out[i] = rune(id)
	}
	return out
}

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

// Package align is the raw aligner: it computes an alignment of two line sequences without
// any knowledge about whitespace or chunk boundaries.
//
// Lines are interned to dense integer IDs first, that way the aligner only compares integers. The
// default implementation is Myers' algorithm with preprocessing and cost limiting heuristics,
// alternatively the bisect implementation of github.com/sergi/go-diff can be used.
package align

import (
	"context"
	"fmt"

	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/line"
	"znkr.io/linediff/internal/ranges"
	"znkr.io/linediff/internal/rvecs"
)

// Lines computes an alignment of x and y. The only error returned is the context's error.
func Lines(ctx context.Context, x, y []line.Line, cfg config.Config) ([]ranges.Range, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	xi, yi := Intern(x, y)
	switch cfg.Aligner {
	case config.AlignerMyers:
		rx, ry, err := diff(ctx, xi, yi, cfg)
		if err != nil {
			return nil, err
		}
		return rvecs.Ranges(rx, ry), nil
	case config.AlignerDMP:
		return dmp(ctx, xi, yi)
	default:
		panic(fmt.Sprintf("unknown aligner: %v", cfg.Aligner))
	}
}

// Intern assigns a dense ID to every line in x and y such that two lines have the same ID if and
// only if they are equal.
func Intern(x, y []line.Line) (xi, yi []int) {
	buckets := make(map[uint64][]int, len(x))
	var reps []line.Line
	id := func(l line.Line) int {
		for _, id := range buckets[l.Hash()] {
			if reps[id].Equal(l) {
				return id
			}
		}
		id := len(reps)
		reps = append(reps, l)
		buckets[l.Hash()] = append(buckets[l.Hash()], id)
		return id
	}

	buf := make([]int, len(x)+len(y))
	xi, yi = buf[:len(x):len(x)], buf[len(x):]
	for i, l := range x {
		xi[i] = id(l)
	}
	for i, l := range y {
		yi[i] = id(l)
	}
	return xi, yi
}

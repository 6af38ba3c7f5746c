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

package linediff

import "znkr.io/linediff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of unchanged lines to include as a prefix and postfix for hunks returned
// by [Hunks] and [Unified]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Threshold sets the maximal number of non-whitespace characters of an insignificant line.
//
// Insignificant lines (lone braces, short keywords) match almost everywhere. With a threshold
// greater than zero, lines are first aligned using only significant lines, which is much faster
// for large inputs, and chunk boundaries are moved next to insignificant lines when there are no
// blank lines to move them to. The default is 0, which disables both.
func Threshold(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Threshold = max(0, n)
		return config.Threshold
	}
}

// Minimal finds a minimal alignment irrespective of the cost. By default, the comparison functions
// in this package limit the cost for large inputs with many differences by applying heuristics
// that reduce the time complexity.
//
// With this option, the runtime is O(ND) where N = len(x) + len(y), and D is the number of
// differences between x and y.
func Minimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeMinimal
		return config.Minimal
	}
}

// IndentHeuristic moves chunk boundaries based on the indentation of the surrounding lines
// instead of looking for blank or insignificant lines.
//
// This implements a heuristic that shifts boundaries to align with indentation patterns, making
// the resulting diff more readable for humans. The heuristic is particularly effective with code
// and structured text.
func IndentHeuristic() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IndentHeuristic = true
		return config.IndentHeuristic
	}
}

// DiffMatchPatch uses the bisection algorithm of github.com/sergi/go-diff for the raw alignment
// instead of the built-in implementation of Myers' algorithm. The result is always minimal.
func DiffMatchPatch() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Aligner = config.AlignerDMP
		return config.DiffMatchPatch
	}
}

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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// linediff.Option.
package config

// Mode describes the mode of the raw aligner.
type Mode int

const (
	// Limit the cost for large inputs with many differences by applying heuristics that reduce the
	// time complexity at the cost of non-minimal alignments.
	ModeDefault Mode = iota

	// Find a minimal alignment irrespective of the cost.
	ModeMinimal
)

// Aligner selects the implementation of the raw aligner.
type Aligner int

const (
	// AlignerMyers is the built-in implementation of Myers' algorithm.
	AlignerMyers Aligner = iota

	// AlignerDMP uses the bisect implementation of github.com/sergi/go-diff.
	AlignerDMP
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of unchanged lines to include as a prefix and postfix for hunks.
	Context int

	// Threshold is the maximal number of non-whitespace characters of an insignificant line.
	// Insignificant lines are preferred as chunk boundaries and are skipped by the anchor pass.
	// Zero disables the anchor pass and restricts the boundary preference to blank lines.
	Threshold int

	// Raw aligner mode.
	Mode Mode

	// Raw aligner implementation.
	Aligner Aligner

	// If set, the line chunk optimizer scores boundaries by indentation instead of searching for
	// insignificant lines.
	IndentHeuristic bool

	// If set, the raw aligner will always use the anchoring heuristic. This configuration is only
	// exposed via an experimental option, its main use is for testing.
	ForceAnchoringHeuristic bool
}

// Default is the default configuration.
var Default = Config{
	Context:                 3,
	Threshold:               0,
	Mode:                    ModeDefault,
	Aligner:                 AlignerMyers,
	IndentHeuristic:         false,
	ForceAnchoringHeuristic: false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	Threshold
	Minimal
	IndentHeuristic
	DiffMatchPatch
	AnchoringHeuristic
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Mode != ModeDefault && cfg.ForceAnchoringHeuristic {
		panic("ForceAnchoringHeuristic may only be set for ModeDefault")
	}
	if cfg.Aligner == AlignerDMP && cfg.ForceAnchoringHeuristic {
		panic("ForceAnchoringHeuristic may only be set for AlignerMyers")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "linediff.Context"
	case Threshold:
		return "linediff.Threshold"
	case Minimal:
		return "linediff.Minimal"
	case IndentHeuristic:
		return "linediff.IndentHeuristic"
	case DiffMatchPatch:
		return "linediff.DiffMatchPatch"
	case AnchoringHeuristic:
		return "linediff.AnchoringHeuristic"
	default:
		panic("never reached")
	}
}

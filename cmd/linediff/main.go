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

// linediff compares two files line by line, or merges three.
//
//	linediff [flags] old new
//	linediff [flags] left base right
//
// With two files, the changes are printed in unified format, side by side (--side-by-side), or as
// an inline word diff (--words). With three files, the changes from base to left and from base to
// right are merged and the result is printed with conflict markers.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"znkr.io/linediff"
)

type cli struct {
	Policy     string   `short:"p" enum:"exact,trim,ignore" default:"exact" help:"Whitespace policy: exact, trim, or ignore."`
	Threshold  int      `help:"Lines with at most this many non-whitespace characters are insignificant."`
	Context    int      `short:"U" default:"3" help:"Number of unchanged lines around changes."`
	Minimal    bool     `help:"Compute a minimal alignment."`
	Indent     bool     `help:"Place changes using the indentation heuristic."`
	DMP        bool     `name:"dmp" help:"Use the diff-match-patch aligner."`
	Words      bool     `short:"w" help:"Compare word by word."`
	SideBySide bool     `short:"y" name:"side-by-side" help:"Print lines side by side."`
	Width      int      `default:"130" help:"Width of the side by side output."`
	Color      bool     `help:"Color the output using terminal escape sequences."`
	Files      []string `arg:"" name:"file" help:"Files to compare (old new) or merge (left base right)."`
}

var policies = map[string]linediff.Policy{
	"exact":  linediff.Exact,
	"trim":   linediff.TrimEdges,
	"ignore": linediff.IgnoreWhitespace,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var c cli
	parser, err := kong.New(&c, kong.Name("linediff"), kong.Description("Compare two files or merge three."))
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}
	policy := policies[c.Policy]

	texts := make([]string, len(c.Files))
	for i, name := range c.Files {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading %s: %v", name, err)
		}
		texts[i] = string(data)
	}

	var colors palette
	if c.Color {
		colors = terminalColors
	}

	var opts []linediff.Option
	if c.Minimal {
		opts = append(opts, linediff.Minimal())
	}
	if c.DMP {
		opts = append(opts, linediff.DiffMatchPatch())
	}

	switch {
	case len(texts) == 2 && c.Words:
		if c.SideBySide {
			return errors.New("--words and --side-by-side are mutually exclusive")
		}
		changes, err := linediff.Words(ctx, texts[0], texts[1], policy, opts...)
		if err != nil {
			return err
		}
		writeWords(stdout, texts[0], texts[1], changes, colors)
		return nil
	case len(texts) == 2:
		opts = append(opts, lineOptions(c)...)
		if c.SideBySide {
			x, y := splitLines(texts[0]), splitLines(texts[1])
			alignment, err := linediff.Lines(ctx, x, y, policy, opts...)
			if err != nil {
				return err
			}
			writeSideBySide(stdout, x, y, alignment, c.Context, c.Width)
			return nil
		}
		unified, err := linediff.Unified(ctx, texts[0], texts[1], policy, append(opts, linediff.Context(c.Context))...)
		if err != nil {
			return err
		}
		if len(unified) > 0 {
			fmt.Fprintf(stdout, "--- %s\n+++ %s\n", c.Files[0], c.Files[1])
			writeUnified(stdout, unified, colors)
		}
		return nil
	case len(texts) == 3:
		if c.Words || c.SideBySide {
			return errors.New("--words and --side-by-side are not supported for merges")
		}
		opts = append(opts, lineOptions(c)...)
		left, base, right := splitLines(texts[0]), splitLines(texts[1]), splitLines(texts[2])
		merged, err := linediff.Lines3(ctx, left, base, right, policy, opts...)
		if err != nil {
			return err
		}
		if n := writeMerge(stdout, left, base, right, merged, c.Files); n > 0 {
			return fmt.Errorf("%d conflicts", n)
		}
		return nil
	default:
		return fmt.Errorf("expected 2 or 3 files, got %d", len(texts))
	}
}

func lineOptions(c cli) []linediff.Option {
	var opts []linediff.Option
	if c.Threshold > 0 {
		opts = append(opts, linediff.Threshold(c.Threshold))
	}
	if c.Indent {
		opts = append(opts, linediff.IndentHeuristic())
	}
	return opts
}

// splitLines splits s after every newline character.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff
//
// The whitespace policy and the threshold can be set with the LINEDIFF_POLICY (exact, trim, or
// ignore) and LINEDIFF_THRESHOLD environment variables. Changes are placed using the indentation
// heuristic.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"znkr.io/linediff"
)

func main() {
	if err := run(context.Background(), os.Args, os.Getenv, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// settings are the comparison settings read from the environment.
type settings struct {
	policy    linediff.Policy
	threshold int
}

func readSettings(getenv func(string) string) (settings, error) {
	var st settings
	switch p := getenv("LINEDIFF_POLICY"); p {
	case "", "exact":
		st.policy = linediff.Exact
	case "trim":
		st.policy = linediff.TrimEdges
	case "ignore":
		st.policy = linediff.IgnoreWhitespace
	default:
		return settings{}, fmt.Errorf("unknown LINEDIFF_POLICY %q", p)
	}
	if s := getenv("LINEDIFF_THRESHOLD"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return settings{}, fmt.Errorf("parsing LINEDIFF_THRESHOLD: %v", err)
		}
		if n < 0 {
			return settings{}, fmt.Errorf("LINEDIFF_THRESHOLD must not be negative, got %d", n)
		}
		st.threshold = n
	}
	return st, nil
}

func run(ctx context.Context, args []string, getenv func(string) string, w io.Writer) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, newFile, newHex, newMode := args[1], args[2], args[3], args[5], args[6], args[7]

	st, err := readSettings(getenv)
	if err != nil {
		return err
	}

	old, err := read(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := read(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	diff, err := linediff.Unified(ctx, old, new, st.policy, linediff.IndentHeuristic(), linediff.Threshold(st.threshold))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)
	fmt.Fprintf(w, "--- a/%s\n", path)
	fmt.Fprintf(w, "+++ b/%s\n", path)
	w.Write(diff)

	return nil
}

func read(name string) ([]byte, error) {
	if name == "/dev/null" {
		return nil, nil
	}
	return os.ReadFile(name)
}

func abbrev(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}

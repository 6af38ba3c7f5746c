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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/linediff"
)

func TestReadSettings(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    settings
		wantErr bool
	}{
		{
			name: "default",
			want: settings{policy: linediff.Exact},
		},
		{
			name: "trim",
			env:  map[string]string{"LINEDIFF_POLICY": "trim"},
			want: settings{policy: linediff.TrimEdges},
		},
		{
			name: "ignore-threshold",
			env:  map[string]string{"LINEDIFF_POLICY": "ignore", "LINEDIFF_THRESHOLD": "2"},
			want: settings{policy: linediff.IgnoreWhitespace, threshold: 2},
		},
		{
			name:    "unknown-policy",
			env:     map[string]string{"LINEDIFF_POLICY": "none"},
			wantErr: true,
		},
		{
			name:    "invalid-threshold",
			env:     map[string]string{"LINEDIFF_THRESHOLD": "two"},
			wantErr: true,
		},
		{
			name:    "negative-threshold",
			env:     map[string]string{"LINEDIFF_THRESHOLD": "-1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSettings(func(key string) string { return tt.env[key] })
			if (err != nil) != tt.wantErr {
				t.Fatalf("readSettings(...) error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(settings{})); diff != "" {
				t.Errorf("readSettings(...) result differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old")
	if err := os.WriteFile(old, []byte("a\n  b\n"), 0o644); err != nil {
		t.Fatalf("failed to write old file: %v", err)
	}
	new := filepath.Join(dir, "new")
	if err := os.WriteFile(new, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatalf("failed to write new file: %v", err)
	}
	args := []string{"gitdiff", "f.txt", old, "0123456789abcdef", "100644", new, "fedcba9876543210", "100644"}

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "exact",
			want: "diff --git a/f.txt b/f.txt\nindex 0123456789..fedcba9876 100644\n--- a/f.txt\n+++ b/f.txt\n@@ -1,2 +1,2 @@\n a\n-  b\n+b\n",
		},
		{
			name: "trim",
			env:  map[string]string{"LINEDIFF_POLICY": "trim"},
			want: "diff --git a/f.txt b/f.txt\nindex 0123456789..fedcba9876 100644\n--- a/f.txt\n+++ b/f.txt\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := run(t.Context(), args, func(key string) string { return tt.env[key] }, &sb); err != nil {
				t.Fatalf("run(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, sb.String()); diff != "" {
				t.Errorf("run(...) output differs [-want,+got]:\n%s", diff)
			}
		})
	}

	if err := run(t.Context(), args[:4], os.Getenv, &strings.Builder{}); err == nil {
		t.Errorf("run(...) with too few arguments succeeded, want error")
	}
}

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
)

// palette holds the escape sequences used to color the output. The zero value disables colors.
type palette struct {
	header, delete, insert, reset string
}

var terminalColors = palette{
	header: sgr(36),
	delete: sgr(31),
	insert: sgr(32),
	reset:  sgr(0),
}

// sgr returns a select graphic rendition escape sequence.
func sgr(params ...int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}

func (p palette) wrap(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + p.reset
}

// writeUnified writes unified output line by line, coloring each line by its prefix.
func writeUnified(w io.Writer, unified string, p palette) {
	for l := range strings.Lines(unified) {
		text, nl := strings.CutSuffix(l, "\n")
		var color string
		switch {
		case strings.HasPrefix(text, "@@"):
			color = p.header
		case strings.HasPrefix(text, "-"):
			color = p.delete
		case strings.HasPrefix(text, "+"):
			color = p.insert
		}
		io.WriteString(w, p.wrap(color, text))
		if nl {
			io.WriteString(w, "\n")
		}
	}
}

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

// Package linediff compares text line by line or word by word and produces diffs that respect
// whitespace policies and look natural to humans.
//
// All comparisons return an alignment: the ordered list of unchanged [Range] values between the
// two inputs. Changed ranges are the gaps between them, see [Changes] and [Hunks].
//
// Lines are always aligned ignoring whitespace first. For the [Exact] and [TrimEdges] policies,
// the alignment is corrected afterwards so that lines that only differ in whitespace are matched
// with the lines they are really equal to. Finally, chunk boundaries are moved to places that are
// easier to read, for example to blank lines.
//
// Every comparison takes a [context.Context]. Cancellation is the only error ever returned, there
// is no partial result.
//
// Performance: By default, the raw alignment uses Myers' algorithm with heuristics that limit the
// cost for large inputs. Use [Minimal] to disable these heuristics when you need the smallest
// possible diff and [Threshold] to speed up inputs with many insignificant lines.
package linediff

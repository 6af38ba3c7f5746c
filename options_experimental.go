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

//go:build experimental

package linediff

import "znkr.io/linediff/internal/config"

// AnchoringHeuristic forces the raw alignment to anchor around lines that are provably 1:1
// correspondences in both inputs, even for small inputs.
//
// The heuristic is similar to the patience diff algorithm. By default it's only used for large
// inputs. It's experimental, because it's unclear if it should be used for all inputs.
func AnchoringHeuristic() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ForceAnchoringHeuristic = true
		return config.AnchoringHeuristic
	}
}

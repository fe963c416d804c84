// Copyright 2026 Google LLC. All Rights Reserved.
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

package merkle

import (
	"github.com/google/levelmerkle/merkle/hashers"
	"github.com/google/levelmerkle/monitoring"
	"github.com/google/levelmerkle/util/clock"
)

// Option configures a Tree created by New.
type Option func(*Tree)

// WithHasher sets the hasher for leaves and interior nodes.
func WithHasher(h hashers.LogHasher) Option {
	return func(t *Tree) {
		t.hasher = h
	}
}

// WithIncrementalUpdates makes Append recompute only the last node of each
// upper level instead of rebuilding every upper level. Both modes produce
// identical levels.
func WithIncrementalUpdates() Option {
	return func(t *Tree) {
		t.incremental = true
	}
}

// WithMetricFactory reports tree metrics through mf.
func WithMetricFactory(mf monitoring.MetricFactory) Option {
	return func(t *Tree) {
		t.metrics = newTreeMetrics(mf)
	}
}

// WithTimeSource sets the clock used to measure update latency.
func WithTimeSource(ts clock.TimeSource) Option {
	return func(t *Tree) {
		t.timeSource = ts
	}
}

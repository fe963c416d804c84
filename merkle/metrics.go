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

import "github.com/google/levelmerkle/monitoring"

const (
	modeLabel       = "mode"
	fullMode        = "full"
	incrementalMode = "incremental"
)

type treeMetrics struct {
	leavesAppended monitoring.Counter
	treeSize       monitoring.Gauge
	treeHeight     monitoring.Gauge
	hashChildren   monitoring.Counter
	updateLatency  monitoring.Histogram
}

func newTreeMetrics(mf monitoring.MetricFactory) *treeMetrics {
	return &treeMetrics{
		leavesAppended: mf.NewCounter("leaves_appended", "Number of leaves appended"),
		treeSize:       mf.NewGauge("tree_size", "Number of leaves in the most recently updated tree"),
		treeHeight:     mf.NewGauge("tree_height", "Number of levels in the most recently updated tree"),
		hashChildren:   mf.NewCounter("hash_children_total", "Interior node hashes computed by appends", modeLabel),
		updateLatency:  mf.NewHistogramWithBuckets("rebuild_seconds", "Time spent hashing a leaf and updating the levels above it", monitoring.RebuildBuckets(), modeLabel),
	}
}

func (m *treeMetrics) observeAppend(t *Tree, hashed int, seconds float64) {
	mode := t.mode()
	m.leavesAppended.Inc()
	m.treeSize.Set(float64(t.Size()))
	m.treeHeight.Set(float64(t.Height()))
	m.hashChildren.Add(float64(hashed), mode)
	m.updateLatency.Observe(seconds, mode)
}

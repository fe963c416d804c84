// Copyright 2018 Google LLC. All Rights Reserved.
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

package testonly

import (
	"fmt"
	"strings"
)

// Valuer is the read side shared by monitoring.Counter and monitoring.Gauge.
type Valuer interface {
	Value(labelVals ...string) float64
}

// Snapshot remembers the values of one metric per label combination, so a
// test can assert on the change it caused to a metric other trees also
// update.
type Snapshot struct {
	m      Valuer
	values map[string]float64
}

// NewSnapshot returns a Snapshot of m that records each of the given label
// combinations immediately. A nil entry records the unlabelled value.
func NewSnapshot(m Valuer, labelSets ...[]string) *Snapshot {
	s := &Snapshot{m: m, values: make(map[string]float64)}
	for _, labels := range labelSets {
		s.Record(labels...)
	}
	return s
}

// Record stores the current value for labels, replacing any earlier one.
func (s *Snapshot) Record(labels ...string) {
	s.values[strings.Join(labels, "|")] = s.m.Value(labels...)
}

// Delta returns the current value for labels minus the recorded one. It
// panics if labels were never recorded.
func (s *Snapshot) Delta(labels ...string) float64 {
	old, ok := s.values[strings.Join(labels, "|")]
	if !ok {
		panic(fmt.Sprintf("no snapshot recorded for labels %v", labels))
	}
	return s.m.Value(labels...) - old
}

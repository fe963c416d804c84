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
	"sync"

	"github.com/google/levelmerkle"
)

// LockedTree is a Tree that is safe for concurrent use. Appends are
// exclusive; reads may proceed concurrently with each other but never with an
// append.
type LockedTree struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewLocked returns an empty LockedTree configured with opts.
func NewLocked(opts ...Option) *LockedTree {
	return &LockedTree{tree: New(opts...)}
}

// Append appends key while holding the write lock.
func (l *LockedTree) Append(key uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.Append(key)
}

// AppendKeys appends every key under a single acquisition of the write lock,
// so no reader observes a partial batch.
func (l *LockedTree) AppendKeys(keys ...uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.AppendKeys(keys...)
}

// Root returns the current root, see Tree.Root.
func (l *LockedTree) Root() (levelmerkle.Hash, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Root()
}

// Size returns the number of leaves.
func (l *LockedTree) Size() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Size()
}

// Snapshot returns the size and root observed under one read lock, so the
// pair is always consistent.
func (l *LockedTree) Snapshot() (uint64, levelmerkle.Hash, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	root, ok := l.tree.Root()
	return l.tree.Size(), root, ok
}

// Levels returns a copy of every level.
func (l *LockedTree) Levels() [][]levelmerkle.Hash {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Levels()
}

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

// Package merkle implements an append-only Merkle tree that keeps the hashes
// of every level in memory.
//
// Level 0 holds one hash per appended key, in append order. Every higher
// level holds ceil(n/2) hashes of the level below it, where each hash covers
// two adjacent nodes; on a level with an odd number of nodes the last node
// is paired with itself. The topmost level has a single hash, the root.
//
// Keys are unsigned 64-bit integers and are hashed in their 8-byte
// big-endian encoding. The encoding is part of the tree's contract: changing
// it changes every root.
//
// A Tree is not safe for concurrent use. Use LockedTree when several
// goroutines share a tree.
package merkle

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/levelmerkle"
	"github.com/google/levelmerkle/merkle/hashers"
	"github.com/google/levelmerkle/merkle/plain"
	"github.com/google/levelmerkle/monitoring"
	"github.com/google/levelmerkle/util/clock"
	"k8s.io/klog/v2"
)

// KeySize is the number of bytes a key is serialized to before hashing.
const KeySize = 8

// ErrLeafIndexOutOfRange is returned when a leaf index is not below the
// current tree size.
var ErrLeafIndexOutOfRange = errors.New("leaf index out of range")

// KeyBytes returns the big-endian encoding of key, which is the input of its
// leaf hash.
func KeyBytes(key uint64) []byte {
	b := make([]byte, KeySize)
	binary.BigEndian.PutUint64(b, key)
	return b
}

// HashKey returns the leaf hash of key under the given hasher.
func HashKey(h hashers.LogHasher, key uint64) levelmerkle.Hash {
	return h.HashLeaf(KeyBytes(key))
}

// Tree is an append-only Merkle tree. The zero value is not usable; create
// trees with New.
type Tree struct {
	hasher      hashers.LogHasher
	incremental bool
	timeSource  clock.TimeSource
	metrics     *treeMetrics
	levels      [][]levelmerkle.Hash // Node hashes, indexed by (level, index).
}

// New returns an empty tree. Without options the tree uses the plain SHA-256
// hasher and rebuilds all upper levels on every append.
func New(opts ...Option) *Tree {
	t := &Tree{
		hasher:     plain.DefaultHasher,
		timeSource: clock.System,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.metrics == nil {
		t.metrics = newTreeMetrics(monitoring.InertMetricFactory{})
	}
	return t
}

// Append hashes key into a new leaf at the end of level 0 and recomputes the
// levels above it. Append cannot fail.
func (t *Tree) Append(key uint64) {
	start := t.timeSource.Now()
	leaf := HashKey(t.hasher, key)
	if len(t.levels) == 0 {
		t.levels = append(t.levels, []levelmerkle.Hash{leaf})
	} else {
		t.levels[0] = append(t.levels[0], leaf)
	}

	var hashed int
	if t.incremental {
		hashed = t.updateRightEdge()
	} else {
		hashed = t.rebuild()
	}
	t.metrics.observeAppend(t, hashed, clock.SecondsSince(t.timeSource, start))
	if klog.V(2).Enabled() {
		klog.Infof("Appended key %d: size=%d height=%d hashed=%d mode=%s", key, t.Size(), len(t.levels), hashed, t.mode())
	}
}

// AppendKeys appends every key in order.
func (t *Tree) AppendKeys(keys ...uint64) {
	for _, key := range keys {
		t.Append(key)
	}
}

// rebuild discards every level above the leaves and recomputes them from
// scratch. It returns the number of interior hashes computed.
func (t *Tree) rebuild() int {
	clear(t.levels[1:])
	t.levels = t.levels[:1]
	hashed := 0
	for below := t.levels[0]; len(below) > 1; below = t.levels[len(t.levels)-1] {
		next := t.parentLevel(below)
		hashed += len(next)
		t.levels = append(t.levels, next)
	}
	return hashed
}

// parentLevel hashes adjacent pairs of child. The last node of an odd-sized
// level is paired with itself.
func (t *Tree) parentLevel(child []levelmerkle.Hash) []levelmerkle.Hash {
	parent := make([]levelmerkle.Hash, 0, (len(child)+1)/2)
	for i := 0; i < len(child); i += 2 {
		left, right := child[i], child[i]
		if i+1 < len(child) {
			right = child[i+1]
		}
		parent = append(parent, t.hasher.HashChildren(left, right))
	}
	return parent
}

// updateRightEdge recomputes only the last node of every upper level, which
// is the only node an append can change, and adds a new top level when the
// previous root gained a sibling. It returns the number of interior hashes
// computed, one per upper level.
func (t *Tree) updateRightEdge() int {
	hashed := 0
	for level := 1; len(t.levels[level-1]) > 1; level++ {
		below := t.levels[level-1]
		last := len(below) - 1
		index := last / 2
		// below[2*index] is below[last] itself when last is even.
		hash := t.hasher.HashChildren(below[2*index], below[last])
		hashed++

		if level == len(t.levels) {
			t.levels = append(t.levels, nil)
		}
		switch row := t.levels[level]; {
		case index < len(row):
			row[index] = hash
		case index == len(row):
			t.levels[level] = append(row, hash)
		default:
			panic(fmt.Sprintf("gap in tree level %d: node %d after %d nodes", level, index, len(row)))
		}
	}
	return hashed
}

// Root returns the root hash of the tree. The second return value is false
// if no key has been appended yet.
func (t *Tree) Root() (levelmerkle.Hash, bool) {
	if len(t.levels) == 0 {
		return levelmerkle.Hash{}, false
	}
	return t.levels[len(t.levels)-1][0], true
}

// Size returns the number of leaves in the tree.
func (t *Tree) Size() uint64 {
	if len(t.levels) == 0 {
		return 0
	}
	return uint64(len(t.levels[0]))
}

// Height returns the number of levels, including the leaves. An empty tree
// has height 0 and a single-leaf tree has height 1.
func (t *Tree) Height() int {
	return len(t.levels)
}

// LeafHash returns the leaf hash at the given index.
func (t *Tree) LeafHash(index uint64) (levelmerkle.Hash, error) {
	if size := t.Size(); index >= size {
		return levelmerkle.Hash{}, fmt.Errorf("leaf %d in tree of size %d: %w", index, size, ErrLeafIndexOutOfRange)
	}
	return t.levels[0][index], nil
}

// Levels returns a copy of every level of the tree, leaves first.
func (t *Tree) Levels() [][]levelmerkle.Hash {
	levels := make([][]levelmerkle.Hash, len(t.levels))
	for i, row := range t.levels {
		levels[i] = append([]levelmerkle.Hash(nil), row...)
	}
	return levels
}

func (t *Tree) mode() string {
	if t.incremental {
		return incrementalMode
	}
	return fullMode
}

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

// Package hashers defines the hashing interface used by Merkle trees and a
// registry of implementations keyed by levelmerkle.HashStrategy.
package hashers

import (
	"fmt"
	"sync"

	"github.com/google/levelmerkle"
	"k8s.io/klog/v2"
)

// LogHasher provides the hash functions needed to compute the levels of an
// append-only Merkle tree.
type LogHasher interface {
	// HashLeaf computes the hash of a leaf from its serialized input.
	HashLeaf(leaf []byte) levelmerkle.Hash
	// HashChildren computes an interior node from its left and right
	// children. When a level has an odd number of nodes the last node is
	// passed as both l and r.
	HashChildren(l, r levelmerkle.Hash) levelmerkle.Hash
	// Size is the number of bytes in the underlying hash function.
	Size() int
}

// NewHasherFunc creates a LogHasher.
type NewHasherFunc func() LogHasher

var (
	mu         sync.RWMutex
	logHashers = make(map[levelmerkle.HashStrategy]NewHasherFunc)
)

// RegisterLogHasher registers a hasher for use. It is intended to be called
// from init functions and panics on unknown or duplicate strategies.
func RegisterLogHasher(h levelmerkle.HashStrategy, f NewHasherFunc) {
	if h == levelmerkle.UnknownHashStrategy {
		panic(fmt.Sprintf("RegisterLogHasher(%s) of unknown hasher", h))
	}
	mu.Lock()
	defer mu.Unlock()
	if logHashers[h] != nil {
		panic(fmt.Sprintf("%v already registered as a LogHasher", h))
	}
	logHashers[h] = f
	klog.V(1).Infof("Registered LogHasher %v", h)
}

// NewLogHasher returns a new LogHasher for the given strategy.
func NewLogHasher(h levelmerkle.HashStrategy) (LogHasher, error) {
	mu.RLock()
	f := logHashers[h]
	mu.RUnlock()
	if f != nil {
		return f(), nil
	}
	return nil, fmt.Errorf("LogHasher(%s) is an unknown hasher", h)
}

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

// Package plain implements a LogHasher that applies SHA-256 to node inputs
// without domain separation: leaves hash to SHA256(data) and interior nodes
// to SHA256(l || r).
package plain

import (
	"crypto/sha256"

	"github.com/google/levelmerkle"
	"github.com/google/levelmerkle/merkle/hashers"
)

func init() {
	hashers.RegisterLogHasher(levelmerkle.PlainSHA256, func() hashers.LogHasher { return DefaultHasher })
}

// DefaultHasher is the plain SHA-256 LogHasher.
var DefaultHasher = Hasher{}

// Hasher implements undecorated SHA-256 tree hashing. It holds no state.
type Hasher struct{}

// HashLeaf returns SHA256(leaf).
func (Hasher) HashLeaf(leaf []byte) levelmerkle.Hash {
	return sha256.Sum256(leaf)
}

// HashChildren returns SHA256(l || r).
func (Hasher) HashChildren(l, r levelmerkle.Hash) levelmerkle.Hash {
	var buf [2 * levelmerkle.HashSize]byte
	copy(buf[:levelmerkle.HashSize], l[:])
	copy(buf[levelmerkle.HashSize:], r[:])
	return sha256.Sum256(buf[:])
}

// Size returns the number of bytes in output hashes.
func (Hasher) Size() int {
	return levelmerkle.HashSize
}

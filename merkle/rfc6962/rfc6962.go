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

// Package rfc6962 adapts the RFC 6962 hasher from
// github.com/transparency-dev/merkle to the levelmerkle LogHasher interface.
// Leaves are hashed as SHA256(0x00 || data) and interior nodes as
// SHA256(0x01 || l || r), so an interior node can never be passed off as a
// leaf. The tree shape, including duplication of the last node on odd
// levels, is unchanged.
package rfc6962

import (
	"fmt"

	"github.com/google/levelmerkle"
	"github.com/google/levelmerkle/merkle/hashers"
	tdrfc6962 "github.com/transparency-dev/merkle/rfc6962"
)

func init() {
	hashers.RegisterLogHasher(levelmerkle.RFC6962SHA256, func() hashers.LogHasher { return DefaultHasher })
}

// DefaultHasher is a SHA256 based LogHasher.
var DefaultHasher = New(tdrfc6962.DefaultHasher)

// Hasher implements the RFC 6962 domain-separated hashing scheme.
type Hasher struct {
	h *tdrfc6962.Hasher
}

// New wraps h, which must produce levelmerkle.HashSize byte digests.
func New(h *tdrfc6962.Hasher) *Hasher {
	if got := h.Size(); got != levelmerkle.HashSize {
		panic(fmt.Sprintf("rfc6962: hash size %d, want %d", got, levelmerkle.HashSize))
	}
	return &Hasher{h: h}
}

// HashLeaf returns SHA256(0x00 || leaf).
func (t *Hasher) HashLeaf(leaf []byte) levelmerkle.Hash {
	return toHash(t.h.HashLeaf(leaf))
}

// HashChildren returns SHA256(0x01 || l || r).
func (t *Hasher) HashChildren(l, r levelmerkle.Hash) levelmerkle.Hash {
	return toHash(t.h.HashChildren(l[:], r[:]))
}

// Size returns the number of bytes in output hashes.
func (t *Hasher) Size() int {
	return t.h.Size()
}

func toHash(b []byte) levelmerkle.Hash {
	var h levelmerkle.Hash
	copy(h[:], b)
	return h
}

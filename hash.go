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

// Package levelmerkle holds the types shared by the packages of the
// append-only level-stored Merkle tree.
package levelmerkle

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// HashSize is the number of bytes in every Hash.
const HashSize = sha256.Size

// Hash is the digest of a leaf or of an interior node. Hashes are values:
// they compare with == and are never modified once computed.
type Hash [HashSize]byte

// String returns the lower-case hex encoding of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Base64 returns the standard base64 encoding of the hash.
func (h Hash) Base64() string {
	return base64.StdEncoding.EncodeToString(h[:])
}

// Bytes returns a copy of the hash as a slice.
func (h Hash) Bytes() []byte {
	return append([]byte(nil), h[:]...)
}

// HashFromBytes converts b into a Hash. It fails if b is not exactly
// HashSize bytes long.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashSize {
		return h, fmt.Errorf("hash has %d bytes, want %d", len(b), HashSize)
	}
	copy(h[:], b)
	return h, nil
}

// ParseHash decodes a hex string produced by Hash.String.
func ParseHash(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hex hash %q: %w", s, err)
	}
	return HashFromBytes(b)
}

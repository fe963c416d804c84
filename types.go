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

package levelmerkle

import "fmt"

// HashStrategy selects how leaf and interior node hashes are computed.
type HashStrategy int32

const (
	// UnknownHashStrategy is the zero value and never registered.
	UnknownHashStrategy HashStrategy = iota
	// PlainSHA256 hashes leaves as SHA256(data) and nodes as SHA256(l || r).
	PlainSHA256
	// RFC6962SHA256 prefixes leaf inputs with 0x00 and node inputs with 0x01
	// before hashing with SHA-256, as in RFC 6962.
	RFC6962SHA256
)

var hashStrategyNames = map[HashStrategy]string{
	UnknownHashStrategy: "UNKNOWN_HASH_STRATEGY",
	PlainSHA256:         "PLAIN_SHA256",
	RFC6962SHA256:       "RFC6962_SHA256",
}

func (s HashStrategy) String() string {
	if name, ok := hashStrategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("HashStrategy(%d)", int32(s))
}

// ParseHashStrategy returns the strategy whose String() is name.
func ParseHashStrategy(name string) (HashStrategy, error) {
	for s, n := range hashStrategyNames {
		if n == name && s != UnknownHashStrategy {
			return s, nil
		}
	}
	return UnknownHashStrategy, fmt.Errorf("unknown hash strategy %q", name)
}

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

// Package testonly contains known-answer data for testing Merkle trees.
package testonly

import (
	"encoding/hex"
	"fmt"

	"github.com/google/levelmerkle"
)

// hx decodes a hex string into a Hash or panics.
func hx(s string) levelmerkle.Hash {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Errorf("failed to decode test data: %s", s))
	}
	h, err := levelmerkle.HashFromBytes(b)
	if err != nil {
		panic(err)
	}
	return h
}

// LeafKeys returns the keys 0..7 used to build the known-answer trees. The
// tree of size n is built from the first n keys.
func LeafKeys() []uint64 {
	return []uint64{0, 1, 2, 3, 4, 5, 6, 7}
}

// LevelHashes returns every level of the tree built from the first five
// LeafKeys with the plain SHA-256 hasher. Index 0 is the leaves level.
func LevelHashes() [][]levelmerkle.Hash {
	return [][]levelmerkle.Hash{{
		hx("af5570f5a1810b7af78caf4bc70a660f0df51e42baf91d4de5b2328de0e83dfc"),
		hx("cd2662154e6d76b2b2b92e70c0cac3ccf534f9b74eb5b89819ec509083d00a50"),
		hx("cd04a4754498e06db5a13c5f371f1f04ff6d2470f24aa9bd886540e5dce77f70"),
		hx("d5688a52d55a02ec4aea5ec1eadfffe1c9e0ee6a4ddbe2377f98326d42dfc975"),
		hx("8005f02d43fa06e7d0585fb64c961d57e318b27a145c857bcd3a6bdb413ff7fc"),
	}, {
		hx("112d546d426b0f655fabc3e3481c1d626b6f08641fd692d03298caf014b83955"),
		hx("7d04a469cff52e32606f78733e608285fabaa484622c5445b95819acbfd30001"),
		hx("9669b6417f0410fe0fd3a48db08ad8aa23d4a2b7e2304fd5151779a7167f6807"),
	}, {
		hx("80d9a4bf12ae810bd2ccf0fdf95540719ab49b08c99fba603b662745f21273d5"),
		hx("cd820b6375dda344802dabbccf460b497f1ecd77b6f3a287af726893dd7dce4b"),
	}, {
		hx("bccef70e49c512165e375beeee0cd9a4fd31c1cc9cb9a110b89d123e0b3669d8"),
	}}
}

// RootHashes returns the plain SHA-256 root of the tree built from the first
// n LeafKeys at index n-1, for n in 1..8.
func RootHashes() []levelmerkle.Hash {
	return []levelmerkle.Hash{
		hx("af5570f5a1810b7af78caf4bc70a660f0df51e42baf91d4de5b2328de0e83dfc"),
		hx("112d546d426b0f655fabc3e3481c1d626b6f08641fd692d03298caf014b83955"),
		hx("a87598f3778ccb364e9f4c35ee58539cd049b564a5fb4f6342948cbd83658099"),
		hx("80d9a4bf12ae810bd2ccf0fdf95540719ab49b08c99fba603b662745f21273d5"),
		hx("bccef70e49c512165e375beeee0cd9a4fd31c1cc9cb9a110b89d123e0b3669d8"),
		hx("ef848434097f03f6011a0c6d285b154efa510354c64975ef1789a2625c685028"),
		hx("2ed8b8467a4a642d2f9f2d20c522e09d9545a8aa14e0cc9e5e5f837ea5a25c3b"),
		hx("8bad90db1d14c89a4efad7446090ec18ebae364b0faeab226c6f9b16ecec53b0"),
	}
}

// RFC6962RootHashes is RootHashes for the RFC 6962 domain-separated hasher.
func RFC6962RootHashes() []levelmerkle.Hash {
	return []levelmerkle.Hash{
		hx("3e7077fd2f66d689e0cee6a7cf5b37bf2dca7c979af356d0a31cbc5c85605c7d"),
		hx("a7d91894b61fbf46378d88e3e1b1f7aef39532c504b484bd31551d15e0a09dff"),
		hx("20e88d46377508cfa7e26bed4ca3d3e20c2bd9662ef95e93a3cc12ecaa453726"),
		hx("b15d2b1b07adada9b13b555c08062b1ae78ad1b0b7e99d97d942c936a6244439"),
		hx("a1e3d146d67a9671b77e3f69bac127f607dabe96cc133c7a616773123e606090"),
		hx("20acf07e8b832ace3132ccd7fa61cbe7c0d9538d12a4bc47212d67e8373f422b"),
		hx("681435cc2d679eab4af7c993838b279e7f3ad074e397f181c14fb1003050beb8"),
		hx("b15acd8b1ccf7a9b81c04f69b27e5cabd67e90be0e6ff6a4d1ed87004a4f0cc1"),
	}
}

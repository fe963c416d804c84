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
	"crypto/sha256"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/levelmerkle"
	"github.com/google/levelmerkle/merkle/plain"
	"github.com/google/levelmerkle/merkle/rfc6962"
	"github.com/google/levelmerkle/merkle/testonly"
)

// modes lists the tree configurations that must behave identically.
var modes = []struct {
	name string
	opts []Option
}{
	{name: "full"},
	{name: "incremental", opts: []Option{WithIncrementalUpdates()}},
}

func sha(parts ...[]byte) levelmerkle.Hash {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out levelmerkle.Hash
	copy(out[:], h.Sum(nil))
	return out
}

func leafOf(key uint64) levelmerkle.Hash {
	return sha(KeyBytes(key))
}

func mustRoot(t *testing.T, tree *Tree) levelmerkle.Hash {
	t.Helper()
	root, ok := tree.Root()
	if !ok {
		t.Fatalf("Root() of tree with %d leaves is absent", tree.Size())
	}
	return root
}

func TestKeyBytes(t *testing.T) {
	for _, tc := range []struct {
		key  uint64
		want []byte
	}{
		{key: 0, want: []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{key: 1, want: []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{key: 0x0102030405060708, want: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{key: math.MaxUint64, want: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	} {
		if diff := cmp.Diff(tc.want, KeyBytes(tc.key)); diff != "" {
			t.Errorf("KeyBytes(%#x) diff (-want +got):\n%s", tc.key, diff)
		}
	}
}

func TestEmptyTree(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			tree := New(mode.opts...)
			if root, ok := tree.Root(); ok {
				t.Errorf("Root()=%s, want absent", root)
			}
			if got, want := tree.Size(), uint64(0); got != want {
				t.Errorf("Size()=%d, want %d", got, want)
			}
			if got, want := tree.Height(), 0; got != want {
				t.Errorf("Height()=%d, want %d", got, want)
			}
			if got := tree.Levels(); len(got) != 0 {
				t.Errorf("Levels()=%v, want none", got)
			}
			if _, err := tree.LeafHash(0); !errors.Is(err, ErrLeafIndexOutOfRange) {
				t.Errorf("LeafHash(0)=%v, want %v", err, ErrLeafIndexOutOfRange)
			}
		})
	}
}

func TestSmallTrees(t *testing.T) {
	const k0, k1, k2 = 5, 10, 30
	h0, h1, h2 := leafOf(k0), leafOf(k1), leafOf(k2)

	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			tree := New(mode.opts...)

			tree.Append(k0)
			if got, want := mustRoot(t, tree), h0; got != want {
				t.Errorf("one leaf: Root()=%s, want %s", got, want)
			}
			if got, want := tree.Height(), 1; got != want {
				t.Errorf("one leaf: Height()=%d, want %d", got, want)
			}

			tree.Append(k1)
			if got, want := mustRoot(t, tree), sha(h0[:], h1[:]); got != want {
				t.Errorf("two leaves: Root()=%s, want %s", got, want)
			}

			tree.Append(k2)
			p0, p1 := sha(h0[:], h1[:]), sha(h2[:], h2[:])
			want := [][]levelmerkle.Hash{{h0, h1, h2}, {p0, p1}, {sha(p0[:], p1[:])}}
			if diff := cmp.Diff(want, tree.Levels()); diff != "" {
				t.Errorf("three leaves: Levels() diff (-want +got):\n%s", diff)
			}
			if got, want := mustRoot(t, tree), sha(p0[:], p1[:]); got != want {
				t.Errorf("three leaves: Root()=%s, want %s", got, want)
			}
		})
	}
}

func TestKnownRoots(t *testing.T) {
	keys := testonly.LeafKeys()
	for _, mode := range modes {
		for _, tc := range []struct {
			desc  string
			opts  []Option
			roots []levelmerkle.Hash
		}{
			{desc: "plain", roots: testonly.RootHashes()},
			{desc: "rfc6962", opts: []Option{WithHasher(rfc6962.DefaultHasher)}, roots: testonly.RFC6962RootHashes()},
		} {
			t.Run(fmt.Sprintf("%s/%s", mode.name, tc.desc), func(t *testing.T) {
				tree := New(append(tc.opts, mode.opts...)...)
				for i, key := range keys {
					tree.Append(key)
					if got, want := mustRoot(t, tree), tc.roots[i]; got != want {
						t.Errorf("size %d: Root()=%s, want %s", i+1, got, want)
					}
				}
			})
		}
	}
}

func TestKnownLevels(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			tree := New(mode.opts...)
			tree.AppendKeys(testonly.LeafKeys()[:5]...)
			if diff := cmp.Diff(testonly.LevelHashes(), tree.Levels()); diff != "" {
				t.Errorf("Levels() diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRootIsStable(t *testing.T) {
	tree := New()
	tree.AppendKeys(1, 2, 3)
	first, second := mustRoot(t, tree), mustRoot(t, tree)
	if first != second {
		t.Errorf("Root() changed between reads: %s then %s", first, second)
	}
}

func TestRootDependsOnOrder(t *testing.T) {
	a, b := New(), New()
	a.AppendKeys(1, 2)
	b.AppendKeys(2, 1)
	if ra, rb := mustRoot(t, a), mustRoot(t, b); ra == rb {
		t.Errorf("trees [1 2] and [2 1] share root %s", ra)
	}
}

func TestRootIsDeterministic(t *testing.T) {
	keys := []uint64{42, 0, math.MaxUint64, 7, 7, 1 << 40}
	a, b := New(), New()
	for _, key := range keys {
		a.Append(key)
		b.Append(key)
		if ra, rb := mustRoot(t, a), mustRoot(t, b); ra != rb {
			t.Fatalf("after %d keys: roots %s and %s differ", a.Size(), ra, rb)
		}
	}
}

// An odd level is padded with a copy of its last node, so a tree ending in a
// repeated key can share a root with the tree lacking the repeat. This is a
// known weakness of the scheme.
func TestDuplicateLastNodeAmbiguity(t *testing.T) {
	a, b := New(), New()
	a.AppendKeys(1, 2, 3)
	b.AppendKeys(1, 2, 3, 3)
	if ra, rb := mustRoot(t, a), mustRoot(t, b); ra != rb {
		t.Errorf("roots of [1 2 3] and [1 2 3 3] differ: %s vs %s", ra, rb)
	}
}

func TestLevelShape(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			tree := New(mode.opts...)
			for n := 1; n <= 130; n++ {
				tree.Append(uint64(n))
				levels := tree.Levels()
				if got, want := len(levels[0]), n; got != want {
					t.Fatalf("len(level 0)=%d, want %d", got, want)
				}
				if got, want := tree.Height(), upperLevels(n)+1; got != want {
					t.Errorf("size %d: Height()=%d, want %d", n, got, want)
				}
				for i := 1; i < len(levels); i++ {
					if got, want := len(levels[i]), (len(levels[i-1])+1)/2; got != want {
						t.Errorf("size %d: len(level %d)=%d, want %d", n, i, got, want)
					}
				}
				if top := levels[len(levels)-1]; len(top) != 1 {
					t.Errorf("size %d: top level has %d nodes", n, len(top))
				}
				if got, want := mustRoot(t, tree), refRoot(levels[0], plain.DefaultHasher); got != want {
					t.Errorf("size %d: Root()=%s, want %s", n, got, want)
				}
			}
		})
	}
}

func TestIncrementalMatchesFull(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	full, inc := New(), New(WithIncrementalUpdates())
	for i := 0; i < 300; i++ {
		key := rng.Uint64()
		full.Append(key)
		inc.Append(key)
		if diff := cmp.Diff(full.Levels(), inc.Levels()); diff != "" {
			t.Fatalf("size %d: Levels() diff (-full +incremental):\n%s", i+1, diff)
		}
	}
}

func TestLevelsReturnsCopy(t *testing.T) {
	tree := New()
	tree.AppendKeys(1, 2, 3)
	want := tree.Levels()

	got := tree.Levels()
	got[0][0] = levelmerkle.Hash{}
	got[1] = nil
	if diff := cmp.Diff(want, tree.Levels()); diff != "" {
		t.Errorf("Levels() aliases the tree, diff (-want +got):\n%s", diff)
	}
}

func TestLeafHash(t *testing.T) {
	tree := New()
	tree.AppendKeys(3, 4)
	for i, key := range []uint64{3, 4} {
		got, err := tree.LeafHash(uint64(i))
		if err != nil {
			t.Fatalf("LeafHash(%d): %v", i, err)
		}
		if want := HashKey(plain.DefaultHasher, key); got != want {
			t.Errorf("LeafHash(%d)=%s, want %s", i, got, want)
		}
	}
	if _, err := tree.LeafHash(2); !errors.Is(err, ErrLeafIndexOutOfRange) {
		t.Errorf("LeafHash(2)=%v, want %v", err, ErrLeafIndexOutOfRange)
	}
}

func BenchmarkAppend(b *testing.B) {
	for _, mode := range modes {
		b.Run(mode.name, func(b *testing.B) {
			tree := New(mode.opts...)
			for i := 0; i < b.N; i++ {
				tree.Append(uint64(i))
			}
		})
	}
}

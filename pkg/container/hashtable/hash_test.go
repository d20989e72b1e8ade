// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hashtable

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

type color struct{ name string }

func (c color) String() string { return "color:" + c.name }

type point struct{ x, y int }

func TestHomeSlot(t *testing.T) {
	for _, capacity := range []int{1, 7, 10, 1024} {
		for i := 0; i < 1000; i++ {
			idx := homeSlot(rand.Uint64(), capacity)
			require.True(t, idx >= 0 && idx < capacity)
		}
	}
	require.Equal(t, 5, homeSlot(math.MaxUint64, 10))
	require.Equal(t, 2, homeSlot(12, 10))
}

func TestIdentityHasher(t *testing.T) {
	h := NewIdentityHasher[int]()
	require.Equal(t, uint64(12), h.Hash(12))
	require.Equal(t, 3, homeSlot(h.Hash(-3), 10))
	require.Equal(t, 3, homeSlot(NewIdentityHasher[int8]().Hash(-3), 10))
}

func TestWyHasher(t *testing.T) {
	h := NewWyHasher[int64]()
	require.Equal(t, h.Hash(42), h.Hash(42))
	require.NotEqual(t, h.Hash(1), h.Hash(2))
}

func TestDefaultHasher(t *testing.T) {
	require.Equal(t, uint64(12), DefaultHasher[int]().Hash(12))
	require.Equal(t, uint64(math.MaxUint64), DefaultHasher[int64]().Hash(-1))
	require.Equal(t, uint64(7), DefaultHasher[uint16]().Hash(7))

	require.Equal(t, xxhash.Sum64String("abc"), DefaultHasher[string]().Hash("abc"))
	require.Equal(t, xxhash.Sum64String("abc"), StringHasher{}.Hash("abc"))

	require.Equal(t, xxhash.Sum64String("color:red"), DefaultHasher[color]().Hash(color{"red"}))

	ph := DefaultHasher[point]()
	require.Equal(t, ph.Hash(point{1, 2}), ph.Hash(point{1, 2}))
	require.Equal(t, xxhash.Sum64String("{1 2}"), ph.Hash(point{1, 2}))
}

type port uint16

type label string

func TestDefaultHasherFollowsKind(t *testing.T) {
	require.Equal(t, uint64(12), DefaultHasher[accountID]().Hash(12))
	require.Equal(t, uint64(math.MaxUint64), DefaultHasher[accountID]().Hash(-1))
	require.Equal(t, uint64(8080), DefaultHasher[port]().Hash(8080))
	require.Equal(t, xxhash.Sum64String("abc"), DefaultHasher[label]().Hash("abc"))
}

func TestDefaultHasherFloats(t *testing.T) {
	h := DefaultHasher[float64]()
	negZero := math.Copysign(0, -1)
	require.Equal(t, h.Hash(0), h.Hash(negZero))
	require.Equal(t, h.Hash(2.5), h.Hash(2.5))
	require.NotEqual(t, h.Hash(1), h.Hash(2))

	h32 := DefaultHasher[float32]()
	require.Equal(t, h32.Hash(0), h32.Hash(float32(negZero)))
	require.Equal(t, h.Hash(2.5), h32.Hash(2.5))
}

func TestHasherFunc(t *testing.T) {
	h := HasherFunc[string](func(key string) uint64 { return uint64(len(key)) })
	require.Equal(t, uint64(5), h.Hash("hello"))
}

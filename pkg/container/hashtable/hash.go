// Copyright 2021 Matrix Origin
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

package hashtable

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

var hashkey [2]uint64

func init() {
	hashkey[0] = rand.Uint64()
	hashkey[1] = rand.Uint64()
}

const (
	m1 = 0xa0761d6478bd642f
	m2 = 0xe7037ed1a0b428db
	m5 = 0x1d8e4e27c47d124f
)

// stringHash is the hash of string keys, and of every key rendered as a string.
var stringHash = xxhash.Sum64String

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// HasherFunc adapts a plain function to Hasher.
type HasherFunc[K any] func(key K) uint64

func (f HasherFunc[K]) Hash(key K) uint64 {
	return f(key)
}

// IdentityHasher uses the integer value itself as hash, so keys that are
// equal modulo the capacity share a home slot.
type IdentityHasher[K constraints.Integer] struct{}

func (IdentityHasher[K]) Hash(key K) uint64 {
	return uint64(key)
}

func NewIdentityHasher[K constraints.Integer]() Hasher[K] {
	return IdentityHasher[K]{}
}

// WyHasher spreads integer keys with the wyhash mixer, seeded per process.
type WyHasher[K constraints.Integer] struct{}

func (WyHasher[K]) Hash(key K) uint64 {
	return wyhash64(uint64(key))
}

func NewWyHasher[K constraints.Integer]() Hasher[K] {
	return WyHasher[K]{}
}

type StringHasher struct{}

func (StringHasher) Hash(key string) uint64 {
	return stringHash(key)
}

// DefaultHasher picks a hash by the kind of the key: integers hash to
// themselves, floats through the wyhash mixer of their bits, strings
// through xxhash, and everything else through xxhash of its Stringer or
// %v rendering. Named types follow their underlying kind.
func DefaultHasher[K comparable]() Hasher[K] {
	return HasherFunc[K](defaultHash[K])
}

func defaultHash[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case int:
		return uint64(k)
	case int64:
		return uint64(k)
	case string:
		return stringHash(k)
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return floatHash(rv.Float())
	case reflect.String:
		return stringHash(rv.String())
	}

	if k, ok := any(key).(fmt.Stringer); ok {
		return stringHash(k.String())
	}
	return stringHash(fmt.Sprintf("%v", key))
}

// floatHash hashes -0 and +0 alike, they compare equal.
func floatHash(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return wyhash64(math.Float64bits(f))
}

// homeSlot is where probing for a hash starts. The hash is unsigned, so the
// result is always within [0, capacity).
func homeSlot(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func wyhash64(x uint64) uint64 {
	return mix(m5^8, mix(x^m2, x^hashkey[1]^hashkey[0]^m1))
}

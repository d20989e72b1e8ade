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
	"sync"
)

// SyncFixedHashTable guards a FixedHashTable with a single mutex held for
// the whole of every operation.
type SyncFixedHashTable[K comparable, V any] struct {
	sync.Mutex
	ht *FixedHashTable[K, V]
}

func NewSync[K comparable, V any](capacity int, opts ...Option[K]) (*SyncFixedHashTable[K, V], error) {
	ht, err := New[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncFixedHashTable[K, V]{ht: ht}, nil
}

func (st *SyncFixedHashTable[K, V]) Insert(key K, value V) (Outcome, error) {
	st.Lock()
	defer st.Unlock()
	return st.ht.Insert(key, value)
}

func (st *SyncFixedHashTable[K, V]) InsertEntry(e *Entry[K, V]) (Outcome, error) {
	st.Lock()
	defer st.Unlock()
	return st.ht.InsertEntry(e)
}

func (st *SyncFixedHashTable[K, V]) Search(key K) (V, bool, error) {
	st.Lock()
	defer st.Unlock()
	return st.ht.Search(key)
}

func (st *SyncFixedHashTable[K, V]) Update(key K, newValue V) (Outcome, error) {
	st.Lock()
	defer st.Unlock()
	return st.ht.Update(key, newValue)
}

func (st *SyncFixedHashTable[K, V]) Remove(key K) (Outcome, error) {
	st.Lock()
	defer st.Unlock()
	return st.ht.Remove(key)
}

func (st *SyncFixedHashTable[K, V]) Contains(key K) bool {
	st.Lock()
	defer st.Unlock()
	return st.ht.Contains(key)
}

func (st *SyncFixedHashTable[K, V]) Count() int {
	st.Lock()
	defer st.Unlock()
	return st.ht.Count()
}

func (st *SyncFixedHashTable[K, V]) Capacity() int {
	return st.ht.Capacity()
}

func (st *SyncFixedHashTable[K, V]) Keys() []K {
	st.Lock()
	defer st.Unlock()
	return st.ht.Keys()
}

// Entries returns copies, the originals stay under the lock.
func (st *SyncFixedHashTable[K, V]) Entries() []Entry[K, V] {
	st.Lock()
	defer st.Unlock()
	entries := make([]Entry[K, V], 0, st.ht.Count())
	st.ht.ForEach(func(key K, value V) bool {
		entries = append(entries, Entry[K, V]{key: key, value: value})
		return true
	})
	return entries
}

// ForEach holds the lock while fn runs, fn must not call back into st.
func (st *SyncFixedHashTable[K, V]) ForEach(fn func(key K, value V) bool) {
	st.Lock()
	defer st.Unlock()
	st.ht.ForEach(fn)
}

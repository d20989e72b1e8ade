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
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/matrixorigin/fixedhash/pkg/common/moerr"
	"github.com/matrixorigin/fixedhash/pkg/logutil"
)

const DefaultCapacity = 10

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	// slotDeleted is a tombstone: probing goes on past it, inserts may reuse it.
	slotDeleted
)

type slot[K comparable, V any] struct {
	state slotState
	entry *Entry[K, V]
}

// FixedHashTable is an open addressing table with linear probing over a
// slot array whose length never changes. Keys present in the slots are
// also kept, in insertion order, in presentKeys, which answers membership
// before any probing happens.
//
// A FixedHashTable is not safe for concurrent use, see SyncFixedHashTable.
type FixedHashTable[K comparable, V any] struct {
	capacity    int
	slots       []slot[K, V]
	presentKeys []K
	hasher      Hasher[K]
	logger      *zap.Logger
}

type options[K comparable] struct {
	hasher Hasher[K]
	logger *zap.Logger
}

type Option[K comparable] func(*options[K])

func WithHasher[K comparable](hasher Hasher[K]) Option[K] {
	return func(opts *options[K]) {
		opts.hasher = hasher
	}
}

func WithLogger[K comparable](logger *zap.Logger) Option[K] {
	return func(opts *options[K]) {
		opts.logger = logger
	}
}

func New[K comparable, V any](capacity int, opts ...Option[K]) (*FixedHashTable[K, V], error) {
	if capacity <= 0 {
		return nil, moerr.NewInvalidArgNoCtx("capacity", capacity)
	}

	o := options[K]{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasher == nil {
		o.hasher = DefaultHasher[K]()
	}
	if o.logger == nil {
		o.logger = logutil.Named("fixed-hashtable")
	}

	return &FixedHashTable[K, V]{
		capacity:    capacity,
		slots:       make([]slot[K, V], capacity),
		presentKeys: make([]K, 0, capacity),
		hasher:      o.hasher,
		logger:      o.logger,
	}, nil
}

func NewDefault[K comparable, V any](opts ...Option[K]) *FixedHashTable[K, V] {
	ht, _ := New[K, V](DefaultCapacity, opts...)
	return ht
}

// Insert builds an entry from key and value and inserts it.
func (ht *FixedHashTable[K, V]) Insert(key K, value V) (Outcome, error) {
	e, err := NewEntry(key, value)
	if err != nil {
		return NoOutcome, err
	}
	return ht.InsertEntry(e)
}

// InsertEntry places e into the first vacant slot of the probe sequence of
// its key. A key that is already present leaves the table untouched.
func (ht *FixedHashTable[K, V]) InsertEntry(e *Entry[K, V]) (Outcome, error) {
	if e == nil {
		return NoOutcome, moerr.NewInvalidArgNoCtx("entry", "<nil>")
	}
	if err := e.validate(); err != nil {
		return NoOutcome, err
	}

	if slices.Contains(ht.presentKeys, e.key) {
		ht.logger.Info("key already exists, insert ignored",
			zap.Any("key", e.key), zap.Any("value", e.value))
		return AlreadyExists, nil
	}

	idx, ok := ht.findVacant(e.key)
	if !ok {
		return NoOutcome, moerr.NewTableFullNoCtx(ht.capacity)
	}

	ht.slots[idx] = slot[K, V]{state: slotOccupied, entry: e}
	ht.presentKeys = append(ht.presentKeys, e.key)
	return Inserted, nil
}

// Search returns the value stored under key. found is false on a miss.
func (ht *FixedHashTable[K, V]) Search(key K) (value V, found bool, err error) {
	if isInvalidKey(key) {
		err = moerr.NewInvalidArgNoCtx("key", key)
		return
	}

	idx, ok := ht.lookup(key)
	if !ok {
		ht.logger.Debug("key not found", zap.Any("key", key))
		return
	}
	return ht.slots[idx].entry.value, true, nil
}

// Update replaces the value stored under key in place.
func (ht *FixedHashTable[K, V]) Update(key K, newValue V) (Outcome, error) {
	if isInvalidKey(key) {
		return NoOutcome, moerr.NewInvalidArgNoCtx("key", key)
	}
	if isAbsent(newValue) {
		return NoOutcome, moerr.NewInvalidArgNoCtx("value", newValue)
	}

	idx, ok := ht.lookup(key)
	if !ok {
		ht.logger.Info("key not found, cannot update", zap.Any("key", key))
		return NotFound, nil
	}

	e := ht.slots[idx].entry
	ht.logger.Info("value changed",
		zap.Any("key", key), zap.Any("from", e.value), zap.Any("to", newValue))
	e.value = newValue
	return Updated, nil
}

// Remove vacates the slot holding key and leaves a tombstone in it.
func (ht *FixedHashTable[K, V]) Remove(key K) (Outcome, error) {
	if isInvalidKey(key) {
		return NoOutcome, moerr.NewInvalidArgNoCtx("key", key)
	}

	idx, ok := ht.lookup(key)
	if !ok {
		ht.logger.Info("key not found, nothing to delete", zap.Any("key", key))
		return NotFound, nil
	}

	ht.slots[idx] = slot[K, V]{state: slotDeleted}
	if i := slices.Index(ht.presentKeys, key); i >= 0 {
		ht.presentKeys = slices.Delete(ht.presentKeys, i, i+1)
	}
	return Removed, nil
}

// Contains answers from presentKeys only, no probing.
func (ht *FixedHashTable[K, V]) Contains(key K) bool {
	return slices.Contains(ht.presentKeys, key)
}

// Count is the number of occupied slots.
func (ht *FixedHashTable[K, V]) Count() int {
	return len(ht.presentKeys)
}

func (ht *FixedHashTable[K, V]) Capacity() int {
	return ht.capacity
}

// Keys returns the present keys in insertion order.
func (ht *FixedHashTable[K, V]) Keys() []K {
	return slices.Clone(ht.presentKeys)
}

// Entries returns the occupied entries in slot order.
func (ht *FixedHashTable[K, V]) Entries() []*Entry[K, V] {
	entries := make([]*Entry[K, V], 0, len(ht.presentKeys))
	for i := range ht.slots {
		if ht.slots[i].state == slotOccupied {
			entries = append(entries, ht.slots[i].entry)
		}
	}
	return entries
}

// ForEach calls fn for every entry in slot order until fn returns false.
func (ht *FixedHashTable[K, V]) ForEach(fn func(key K, value V) bool) {
	for i := range ht.slots {
		if ht.slots[i].state != slotOccupied {
			continue
		}
		if e := ht.slots[i].entry; !fn(e.key, e.value) {
			return
		}
	}
}

func (ht *FixedHashTable[K, V]) NewIterator() *FixedHashTableIterator[K, V] {
	it := &FixedHashTableIterator[K, V]{}
	it.Init(ht)
	return it
}

// lookup checks presentKeys and then probes for the slot holding key.
func (ht *FixedHashTable[K, V]) lookup(key K) (int, bool) {
	if !slices.Contains(ht.presentKeys, key) {
		return 0, false
	}
	idx, ok := ht.findCell(key)
	if !ok {
		ht.logger.Error("present key is not reachable by probing", zap.Any("key", key))
	}
	return idx, ok
}

// findCell walks the probe sequence of key. An empty slot ends the walk,
// tombstones do not.
func (ht *FixedHashTable[K, V]) findCell(key K) (idx int, ok bool) {
	idx = homeSlot(ht.hasher.Hash(key), ht.capacity)
	for i := 0; i < ht.capacity; i, idx = i+1, ht.next(idx) {
		s := &ht.slots[idx]
		switch s.state {
		case slotEmpty:
			return idx, false
		case slotOccupied:
			if s.entry.key == key {
				return idx, true
			}
		}
	}
	return idx, false
}

// findVacant returns the first empty or deleted slot on the probe sequence of key.
func (ht *FixedHashTable[K, V]) findVacant(key K) (idx int, ok bool) {
	idx = homeSlot(ht.hasher.Hash(key), ht.capacity)
	for i := 0; i < ht.capacity; i, idx = i+1, ht.next(idx) {
		if ht.slots[idx].state != slotOccupied {
			return idx, true
		}
	}
	return idx, false
}

func (ht *FixedHashTable[K, V]) next(idx int) int {
	idx++
	if idx == ht.capacity {
		return 0
	}
	return idx
}

// checkInvariant verifies that presentKeys and the occupied slots describe
// the same key set and that every key is reachable by probing.
func (ht *FixedHashTable[K, V]) checkInvariant() error {
	occupied := 0
	for i := range ht.slots {
		s := &ht.slots[i]
		switch s.state {
		case slotOccupied:
			occupied++
			if !slices.Contains(ht.presentKeys, s.entry.key) {
				return moerr.NewInvalidStateNoCtx("slot %d holds key %v missing from present keys", i, s.entry.key)
			}
		default:
			if s.entry != nil {
				return moerr.NewInvalidStateNoCtx("vacant slot %d holds an entry", i)
			}
		}
	}
	if occupied != len(ht.presentKeys) {
		return moerr.NewInvalidStateNoCtx("%d occupied slots, %d present keys", occupied, len(ht.presentKeys))
	}
	for i, key := range ht.presentKeys {
		if slices.Index(ht.presentKeys, key) != i {
			return moerr.NewInvalidStateNoCtx("key %v present twice", key)
		}
		if _, ok := ht.findCell(key); !ok {
			return moerr.NewInvalidStateNoCtx("key %v not reachable", key)
		}
	}
	return nil
}

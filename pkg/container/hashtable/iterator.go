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
	"errors"
)

// ErrOutOfRange is returned by Next once every occupied slot was visited.
var ErrOutOfRange = errors.New("out of range")

// FixedHashTableIterator visits occupied slots in physical order.
type FixedHashTableIterator[K comparable, V any] struct {
	table *FixedHashTable[K, V]
	pos   int
}

func (it *FixedHashTableIterator[K, V]) Init(ht *FixedHashTable[K, V]) {
	it.table = ht
	it.pos = 0
}

// Reset starts the pass over from slot 0.
func (it *FixedHashTableIterator[K, V]) Reset() {
	it.pos = 0
}

func (it *FixedHashTableIterator[K, V]) Next() (entry *Entry[K, V], err error) {
	for it.pos < it.table.capacity && it.table.slots[it.pos].state != slotOccupied {
		it.pos++
	}

	if it.pos >= it.table.capacity {
		err = ErrOutOfRange
		return
	}

	entry = it.table.slots[it.pos].entry
	it.pos++

	return
}

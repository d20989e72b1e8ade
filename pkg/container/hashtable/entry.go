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
	"fmt"
	"math"
	"reflect"

	"github.com/matrixorigin/fixedhash/pkg/common/moerr"
)

// Entry is a key-value pair owned by a FixedHashTable. The key never changes
// once the entry is built.
type Entry[K comparable, V any] struct {
	key   K
	value V
}

func NewEntry[K comparable, V any](key K, value V) (*Entry[K, V], error) {
	e := &Entry[K, V]{key: key, value: value}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) Value() V {
	return e.value
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%v - %v", e.key, e.value)
}

func (e *Entry[K, V]) validate() error {
	if isInvalidKey(e.key) {
		return moerr.NewInvalidArgNoCtx("key", e.key)
	}
	if isAbsent(e.value) {
		return moerr.NewInvalidArgNoCtx("value", e.value)
	}
	return nil
}

// isInvalidKey also rejects NaN, which never equals itself and so could
// never be found again.
func isInvalidKey(key any) bool {
	if isAbsent(key) {
		return true
	}
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// isAbsent reports whether v is nil-like or an empty string.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

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

// Outcome tells what a table operation did. Misses and duplicate inserts
// are outcomes, not errors.
type Outcome uint8

const (
	// NoOutcome goes along with a non-nil error.
	NoOutcome Outcome = iota
	Inserted
	AlreadyExists
	Updated
	NotFound
	Removed
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "Inserted"
	case AlreadyExists:
		return "AlreadyExists"
	case Updated:
		return "Updated"
	case NotFound:
		return "NotFound"
	case Removed:
		return "Removed"
	default:
		return "NoOutcome"
	}
}

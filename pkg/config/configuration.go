// Copyright 2021 Matrix Origin
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

package config

import (
	"context"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/fixedhash/pkg/common/moerr"
	"github.com/matrixorigin/fixedhash/pkg/container/hashtable"
	"github.com/matrixorigin/fixedhash/pkg/logutil"
)

const (
	HasherDefault  = "default"
	HasherIdentity = "identity"
	HasherWyhash   = "wyhash"
)

// Parameters of a fixed hash table and its surroundings
type Parameters struct {
	//number of slots, fixed for the life of the table. default: 10
	Capacity int64 `toml:"capacity"`

	//hash function for integer keys: default, identity or wyhash. default: default
	Hasher string `toml:"hasher"`

	//log settings
	Log logutil.LogConfig `toml:"log"`
}

// SetDefaultValues fills every unset field.
func (p *Parameters) SetDefaultValues() {
	if p.Capacity == 0 {
		p.Capacity = hashtable.DefaultCapacity
	}

	if p.Hasher == "" {
		p.Hasher = HasherDefault
	}

	if p.Log.Level == "" {
		p.Log.Level = "info"
	}

	if p.Log.Format == "" {
		p.Log.Format = "console"
	}
}

// Validate checks the values after defaults have been applied.
func (p *Parameters) Validate(ctx context.Context) error {
	if p.Capacity <= 0 {
		return moerr.NewBadConfig(ctx, "capacity must be positive, got %d", p.Capacity)
	}

	switch p.Hasher {
	case HasherDefault, HasherIdentity, HasherWyhash:
	default:
		return moerr.NewBadConfig(ctx, "unknown hasher %s", p.Hasher)
	}

	switch p.Log.Format {
	case "json", "console":
	default:
		return moerr.NewBadConfig(ctx, "unknown log format %s", p.Log.Format)
	}
	return nil
}

// LoadParameters reads a toml file, applies defaults and validates.
// An empty path yields the defaults.
func LoadParameters(ctx context.Context, path string) (*Parameters, error) {
	p := &Parameters{}
	if path != "" {
		if _, err := toml.DecodeFile(path, p); err != nil {
			return nil, moerr.NewBadConfig(ctx, "decode %s: %v", path, err)
		}
	}
	p.SetDefaultValues()
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

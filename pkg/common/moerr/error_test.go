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

package moerr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMoErrCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		err      error
		code     uint16
		expected bool
	}{
		{
			name:     "nil error is ok",
			err:      nil,
			code:     Ok,
			expected: true,
		},
		{
			name:     "nil error is not table full",
			err:      nil,
			code:     ErrTableFull,
			expected: false,
		},
		{
			name:     "ErrTableFull",
			err:      NewTableFull(ctx, 10),
			code:     ErrTableFull,
			expected: true,
		},
		{
			name:     "ErrInvalidArg",
			err:      NewInvalidArgNoCtx("key", "<nil>"),
			code:     ErrInvalidArg,
			expected: true,
		},
		{
			name:     "ErrBadConfig is not ErrInvalidArg",
			err:      NewBadConfig(ctx, "capacity %d", 0),
			code:     ErrInvalidArg,
			expected: false,
		},
		{
			name:     "standard error",
			err:      errors.New("some error"),
			code:     ErrInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMoErrCode(tt.err, tt.code))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "table is full, capacity 10", NewTableFull(ctx, 10).Error())
	assert.Equal(t, "invalid argument value, bad value <nil>", NewInvalidArg(ctx, "value", nil).Error())
	assert.Equal(t, "internal error: boom 1", NewInternalErrorNoCtx("boom %d", 1).Error())
	assert.Equal(t, "invalid configuration: hasher foo", NewBadConfigNoCtx("hasher %s", "foo").Error())
	assert.False(t, NewTableFullNoCtx(1).Succeeded())
}

func TestConvertGoError(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, ConvertGoError(ctx, nil))

	full := NewTableFull(ctx, 3)
	assert.Equal(t, full, ConvertGoError(ctx, full))

	err := ConvertGoError(ctx, errors.New("disk on fire"))
	assert.True(t, IsMoErrCode(err, ErrInternal))
	assert.Equal(t, "internal error: convert go error to mo error disk on fire", err.Error())
}

func TestConvertPanicError(t *testing.T) {
	ctx := context.Background()

	full := NewTableFull(ctx, 3)
	assert.Equal(t, full, ConvertPanicError(ctx, full))
	assert.Equal(t, ErrInternal, ConvertPanicError(ctx, "oops").ErrorCode())
}

func TestNewErrorUnknownCode(t *testing.T) {
	assert.Panics(t, func() {
		_ = newError(context.Background(), 12345)
	})
}

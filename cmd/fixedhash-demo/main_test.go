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

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/fixedhash/pkg/common/moerr"
	"github.com/matrixorigin/fixedhash/pkg/config"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), "", &buf))
	output := buf.String()

	// the second listing follows the last remove
	i := strings.Index(output, "remove 3")
	require.True(t, i > 0)
	before, after := output[:i], output[i:]

	require.Contains(t, before, "update 4: Updated")
	require.Contains(t, before, "4 - AB")
	require.Contains(t, before, "101 - Hundred and one")
	require.Contains(t, before, "search 101: Hundred and one")
	require.Contains(t, before, "search 1: One")
	require.Contains(t, before, "remove 7: NotFound")
	require.Contains(t, before, "remove 101: Removed")
	require.Contains(t, before, "6 of 10 slots occupied")

	require.Contains(t, after, "remove 3: NotFound")
	require.Contains(t, after, "5 of 10 slots occupied")
	require.Contains(t, after, "201 - Two hundred and one")
	require.NotContains(t, after, "101 - Hundred and one")
}

func TestRunSmallTable(t *testing.T) {
	stubs := gostub.Stub(&loadParameters, func(ctx context.Context, path string) (*config.Parameters, error) {
		p := &config.Parameters{Capacity: 3, Hasher: config.HasherIdentity}
		p.SetDefaultValues()
		return p, nil
	})
	defer stubs.Reset()

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), "", &buf))
	output := buf.String()
	require.Contains(t, output, "insert 101: table is full, capacity 3")
	require.Contains(t, output, "insert 5: table is full, capacity 3")
	require.Contains(t, output, "update 4: Updated")
	require.Contains(t, output, "remove 101: NotFound")
}

func TestRunBadConfig(t *testing.T) {
	path := filepath.Join("..", "..", "pkg", "config", "test", "bad_hasher.toml")
	err := run(context.Background(), path, &bytes.Buffer{})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadConfig))

	stubs := gostub.Stub(&loadParameters, func(context.Context, string) (*config.Parameters, error) {
		return nil, moerr.NewInternalErrorNoCtx("boom")
	})
	defer stubs.Reset()
	err = run(context.Background(), "", &bytes.Buffer{})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))
}

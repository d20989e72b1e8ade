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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/matrixorigin/fixedhash/pkg/common/moerr"
	"github.com/matrixorigin/fixedhash/pkg/config"
	"github.com/matrixorigin/fixedhash/pkg/container/hashtable"
	"github.com/matrixorigin/fixedhash/pkg/logutil"
)

var loadParameters = config.LoadParameters

type pair struct {
	key   int
	value string
}

var seed = []pair{
	{1, "One"},
	{2, "Two"},
	{4, "Four"},
	{101, "Hundred and one"},
	{201, "Two hundred and one"},
	{5, "Five"},
}

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := run(context.Background(), path, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fixedhash-demo: %v\n", err)
		os.Exit(1)
	}
}

func intHasher(name string) hashtable.Hasher[int] {
	switch name {
	case config.HasherIdentity:
		return hashtable.NewIdentityHasher[int]()
	case config.HasherWyhash:
		return hashtable.NewWyHasher[int]()
	default:
		return hashtable.DefaultHasher[int]()
	}
}

func run(ctx context.Context, path string, out io.Writer) error {
	params, err := loadParameters(ctx, path)
	if err != nil {
		return err
	}
	logutil.SetupLogger(&params.Log)

	printer := logrus.New()
	printer.SetOutput(out)
	printer.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	ht, err := hashtable.New[int, string](int(params.Capacity),
		hashtable.WithHasher(intHasher(params.Hasher)))
	if err != nil {
		return err
	}

	for _, p := range seed {
		outcome, err := ht.Insert(p.key, p.value)
		if err != nil {
			if moerr.IsMoErrCode(err, moerr.ErrTableFull) {
				printer.Warnf("insert %d: %v", p.key, err)
				continue
			}
			return err
		}
		printer.Infof("insert %d: %s", p.key, outcome)
	}

	outcome, err := ht.Update(4, "AB")
	if err != nil {
		return err
	}
	printer.Infof("update 4: %s", outcome)
	printEntries(printer, ht)

	for _, key := range []int{101, 1} {
		value, found, err := ht.Search(key)
		if err != nil {
			return err
		}
		if found {
			printer.Infof("search %d: %s", key, value)
		} else {
			printer.Infof("search %d: not found", key)
		}
	}

	for _, key := range []int{7, 101, 103, 3} {
		outcome, err := ht.Remove(key)
		if err != nil {
			return err
		}
		printer.Infof("remove %d: %s", key, outcome)
	}
	printEntries(printer, ht)
	return nil
}

func printEntries(printer *logrus.Logger, ht *hashtable.FixedHashTable[int, string]) {
	printer.Infof("%d of %d slots occupied", ht.Count(), ht.Capacity())
	it := ht.NewIterator()
	for e, err := it.Next(); err == nil; e, err = it.Next() {
		printer.Info(e.String())
	}
}

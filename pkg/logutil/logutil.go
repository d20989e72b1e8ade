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

package logutil

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/matrixorigin/fixedhash/pkg/common/moerr"
)

var _globalLogger atomic.Value

func init() {
	SetupLogger(&LogConfig{
		Level:  zapcore.InfoLevel.String(),
		Format: "console",
	})
}

// SetupLogger replaces the global logger with one built from conf.
func SetupLogger(conf *LogConfig) {
	replaceGlobalLogger(initLogger(conf))
}

func initLogger(conf *LogConfig) *zap.Logger {
	level := conf.getLevel()
	cores := make([]zapcore.Core, 0, 1)
	for _, sink := range conf.getSinks() {
		cores = append(cores, zapcore.NewCore(sink.enc, sink.out, level))
	}
	return zap.New(zapcore.NewTee(cores...), conf.getOptions()...)
}

func replaceGlobalLogger(logger *zap.Logger) {
	_globalLogger.Store(logger)
}

// GetGlobalLogger returns the current global zap Logger.
func GetGlobalLogger() *zap.Logger {
	return _globalLogger.Load().(*zap.Logger)
}

func unsupportedFormat(format string) *moerr.Error {
	return moerr.NewInternalError(context.TODO(), "unsupported log format: %s", format)
}

// Copyright 2021 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	debugLevel   = "debug"
	infoLevel    = "info"
	warningLevel = "warn"
	errorLevel   = "error"
	offLevel     = "off"
)

const (
	logfmtFormat = "logfmt"
	jsonFormat   = "json"
)

// NewDefaultLogger creates a new go-kit logger writing to stderr with the configured level and format.
// Unrecognized values fall back to logging everything in logfmt format.
func NewDefaultLogger(lv, format string) log.Logger {
	logger, err := NewLogger(os.Stderr, lv, format)
	if err != nil {
		logger, _ = NewLogger(os.Stderr, debugLevel, logfmtFormat)
		level.Warn(logger).Log("msg", "invalid logger configuration", "err", err)
	}
	return logger
}

// NewLogger creates a new go-kit logger writing to w.
// An empty level or format selects "debug" and "logfmt" respectively.
func NewLogger(w io.Writer, lv, format string) (log.Logger, error) {
	var logger log.Logger
	var allow level.Option

	sw := log.NewSyncWriter(w)
	switch format {
	case jsonFormat:
		logger = log.NewJSONLogger(sw)
	case logfmtFormat, "":
		logger = log.NewLogfmtLogger(sw)
	default:
		return nil, fmt.Errorf("log: unrecognized format: %s", format)
	}
	switch lv {
	case debugLevel, "":
		allow = level.AllowDebug()
	case infoLevel:
		allow = level.AllowInfo()
	case warningLevel:
		allow = level.AllowWarn()
	case errorLevel:
		allow = level.AllowError()
	case offLevel:
		allow = level.AllowNone()
	default:
		return nil, fmt.Errorf("log: unrecognized level: %s", lv)
	}
	return log.With(level.NewFilter(logger, allow), "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

const component = "aclpfx"

var plog atomic.Pointer[logrus.Entry]

func init() {
	plog.Store(logrus.WithField("component", component))
}

// SetLogger routes the debug traces of this package to l,
// nil restores the logrus standard logger.
//
// The algorithms only log at debug level: vetoed merges and
// per call summaries.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	plog.Store(l.WithField("component", component))
}

// debugLog returns the package logger if debug logging is enabled, else nil.
func debugLog() *logrus.Entry {
	e := plog.Load()
	if !e.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return nil
	}
	return e
}

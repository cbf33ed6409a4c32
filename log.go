//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	pkgLogger     = zerolog.Nop()
	pkgLoggerLock sync.Mutex
)

// SetLogger sets the logger used by the package. Logging is disabled by
// default.
func SetLogger(l zerolog.Logger) {
	pkgLoggerLock.Lock()
	defer pkgLoggerLock.Unlock()
	pkgLogger = l
}

func logger() *zerolog.Logger {
	pkgLoggerLock.Lock()
	l := pkgLogger
	pkgLoggerLock.Unlock()
	return &l
}

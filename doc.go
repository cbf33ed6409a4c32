//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package spinfetch downloads a single file picked from a catalog while a
// terminal spinner runs in the background. The spinner is supervised: it is
// cancelled, and its output erased, as soon as the download completes or
// fails.
package spinfetch

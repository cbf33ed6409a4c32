//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"
)

// DefaultFrames are the braille characters cycled by a Spinner.
const DefaultFrames = "⠇⠋⠙⠸⠴⠦"

// Spinner draws a rotating indicator followed by a label, overwriting the
// previous frame in place, until its context is cancelled.
//
// The erased width is the number of runes of the last frame, which matches
// the terminal columns only for narrow characters: a label containing
// double-width (e.g. CJK) characters leaves part of it on screen.
type Spinner struct {
	// Out receives the frames, os.Stdout if nil.
	Out io.Writer
	// Label is printed after the indicator
	Label string
	// Frames to cycle through, DefaultFrames if empty.
	Frames string
	// Interval between two frames, 100ms if zero.
	Interval time.Duration

	renders atomic.Int64
}

// NewSpinner returns a Spinner writing to out with the default frames and
// interval.
func NewSpinner(out io.Writer, label string) *Spinner {
	return &Spinner{Out: out, Label: label}
}

// Renders returns how many frames have been drawn so far.
func (s *Spinner) Renders() int64 {
	return s.renders.Load()
}

// Run draws frames until ctx is cancelled, then erases the last frame and
// returns nil. Cancellation is the normal way to stop a Spinner and is not
// reported as an error.
func (s *Spinner) Run(ctx context.Context) error {
	frames := []rune(s.Frames)
	if len(frames) == 0 {
		frames = []rune(DefaultFrames)
	}
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	interval := s.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	log := logger()
	log.Debug().Str("label", s.Label).Dur("interval", interval).Msg("spinner started")
	var width int
	for i := 0; ; i = (i + 1) % len(frames) {
		status := fmt.Sprintf("%c %s", frames[i], s.Label)
		width = utf8.RuneCountInString(status)
		_, _ = io.WriteString(out, "\r"+status)
		s.renders.Add(1)

		select {
		case <-t.C:
		case <-ctx.Done():
			_, _ = io.WriteString(out, "\r"+strings.Repeat(" ", width)+"\r")
			log.Debug().Int64("renders", s.Renders()).Msg("spinner stopped")
			return nil
		}
	}
}

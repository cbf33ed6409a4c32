//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"context"
	"time"
)

// Runner is a long-lived background activity that runs until its context
// is cancelled.
type Runner interface {
	Run(ctx context.Context) error
}

// Result is the outcome of a download: the number of bytes fetched and the
// name they were saved under.
type Result struct {
	Size int64
	Name string
}

// Supervise starts bg in the background, runs work and returns its result.
// bg is cancelled, and Supervise waits for it to terminate, on every exit
// path, including a failure or a panic of work.
func Supervise(ctx context.Context, bg Runner, work func(ctx context.Context) (Result, error)) (Result, error) {
	log := logger()
	task := Spawn(ctx, bg.Run)
	log.Debug().Msg("background task started")
	defer func() {
		task.Cancel()
		if err := task.Wait(); err != nil {
			log.Warn().Err(err).Msg("background task failed")
		}
		log.Debug().Msg("background task stopped")
	}()

	start := time.Now()
	res, err := work(ctx)
	log.Debug().Dur("elapsed", time.Since(start)).Err(err).Msg("work completed")
	return res, err
}

//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"context"
	"sync"
)

// Task is a handle to a function running in its own goroutine.
type Task struct {
	cancel     context.CancelFunc
	cancelOnce sync.Once
	done       chan struct{}
	err        error
}

// Spawn runs fn in a new goroutine and returns immediately. The context
// passed to fn is derived from ctx and is cancelled by Task.Cancel.
func Spawn(ctx context.Context, fn func(ctx context.Context) error) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		defer cancel()
		t.err = fn(ctx)
	}()
	return t
}

// Cancel requests the task to stop. It does not wait for the task to
// terminate. Only the first call has an effect; it returns true for that
// call and false for the following ones.
func (t *Task) Cancel() bool {
	issued := false
	t.cancelOnce.Do(func() {
		t.cancel()
		issued = true
	})
	return issued
}

// Done returns a channel that is closed when the task terminates.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task terminates and returns its error.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"context"
	"fmt"
	"time"
)

// Report is returned by Run
type Report struct {
	Result
	Elapsed time.Duration
}

// FetchBySize picks from the catalog the image matching target, downloads it
// and saves it in cfg.OutputDir.
func FetchBySize(ctx context.Context, cfg Config, target int64) (Result, error) {
	img, err := cfg.catalog().PickBySize(target)
	if err != nil {
		return Result{}, err
	}
	reqURL, err := ResolveURL(cfg.BaseURL, img.Path)
	if err != nil {
		return Result{}, err
	}
	logger().Info().Str("url", reqURL).Int64("catalog_size", img.Size).Msg("downloading")

	data, err := Fetch(ctx, cfg, reqURL)
	if err != nil {
		return Result{}, err
	}
	name, err := Save(cfg.OutputDir, reqURL, data)
	if err != nil {
		return Result{}, fmt.Errorf("saving %s: %w", reqURL, err)
	}
	return Result{Size: int64(len(data)), Name: name}, nil
}

// Run downloads the image matching cfg.TargetSize while a spinner labelled
// cfg.Label is drawn on cfg.Out, and reports how long it took.
func Run(ctx context.Context, cfg Config) (Report, error) {
	spinner := &Spinner{
		Out:      cfg.out(),
		Label:    cfg.Label,
		Interval: cfg.SpinInterval,
	}

	start := time.Now()
	res, err := Supervise(ctx, spinner, func(ctx context.Context) (Result, error) {
		return FetchBySize(ctx, cfg, cfg.TargetSize)
	})
	return Report{Result: res, Elapsed: time.Since(start)}, err
}

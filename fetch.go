//
// Copyright 2018 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnexpectedStatus is wrapped by every StatusError.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// maxPreallocSize caps the buffer reserved upfront from Content-Length; a
// larger body still grows as it is read.
const maxPreallocSize = 64 << 20

// StatusError is returned by Fetch when the server answers with anything
// other than 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s: %s", e.URL, ErrUnexpectedStatus, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

// Fetch performs a GET request on reqURL and returns the whole response
// body. The response is always released before Fetch returns, whatever the
// outcome.
func Fetch(ctx context.Context, cfg Config, reqURL string) ([]byte, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	ctx, wd := newWatchdog(ctx, cfg.InactivityTimeout)
	defer wd.stop()

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("setting up HTTP request: %w", err)
	}
	for k, v := range cfg.ExtraHeaders {
		req.Header.Set(k, v)
	}

	log := logger()
	log.Debug().Str("url", reqURL).Msg("fetching")
	resp, err := cfg.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing GET request: %w", cause(ctx, err))
	}
	defer resp.Body.Close()
	log.Debug().Str("url", reqURL).Int("status", resp.StatusCode).Int64("length", resp.ContentLength).Msg("response received")

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: reqURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body bytes.Buffer
	if n := resp.ContentLength; n > 0 && n <= maxPreallocSize {
		body.Grow(int(n))
	}
	buff := [32 * 1024]byte{}
	for {
		n, err := resp.Body.Read(buff[:])
		if n > 0 {
			body.Write(buff[:n])
			wd.kick()
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", cause(ctx, err))
		}
	}
	return body.Bytes(), nil
}

//
// Copyright 2018 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

type trackedBody struct {
	io.Reader
	closed atomic.Bool
}

func (b *trackedBody) Close() error {
	b.closed.Store(true)
	return nil
}

func clientReturning(status int, body *trackedBody) http.Client {
	return clientReturningLength(status, body, -1)
}

func clientReturningLength(status int, body *trackedBody, length int64) http.Client {
	return http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode:    status,
			Status:        http.StatusText(status),
			Body:          body,
			ContentLength: length,
			Request:       r,
		}, nil
	})}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.Header.Get("User-Agent") != "spinfetch-test" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = io.WriteString(w, "0123456789")
	}))
	defer srv.Close()

	cfg := Config{ExtraHeaders: map[string]string{"User-Agent": "spinfetch-test"}}
	data, err := Fetch(context.Background(), cfg, srv.URL+"/img/a.jpg")
	require.NoError(t, err)
	require.Equal(t, []byte("0123456789"), data)
}

func TestFetchNotOK(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	data, err := Fetch(context.Background(), Config{}, srv.URL+"/missing.jpg")
	require.Nil(t, data)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchOnlyAccepts200(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader("")}
	_, err := Fetch(context.Background(), Config{HttpClient: clientReturning(http.StatusNoContent, body)}, "http://example.invalid/a")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	require.True(t, body.closed.Load())
}

func TestFetchReleasesResponse(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader("payload")}
	data, err := Fetch(context.Background(), Config{HttpClient: clientReturning(http.StatusOK, body)}, "http://example.invalid/a")
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
	require.True(t, body.closed.Load())

	body = &trackedBody{Reader: io.MultiReader(strings.NewReader("pay"), errReader{})}
	_, err = Fetch(context.Background(), Config{HttpClient: clientReturning(http.StatusOK, body)}, "http://example.invalid/a")
	require.ErrorContains(t, err, "reading response body")
	require.True(t, body.closed.Load())
}

func TestFetchOversizedContentLength(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader("tiny")}
	cfg := Config{HttpClient: clientReturningLength(http.StatusOK, body, 1<<62)}

	var data []byte
	var err error
	require.NotPanics(t, func() {
		data, err = Fetch(context.Background(), cfg, "http://example.invalid/a")
	})
	require.NoError(t, err)
	require.Equal(t, "tiny", string(data))
	require.True(t, body.closed.Load())
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestFetchInvalidURL(t *testing.T) {
	_, err := Fetch(context.Background(), Config{}, "asd://go.bug.st/test.txt")
	require.Error(t, err)
}

func TestFetchInactivityTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "partial")
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	start := time.Now()
	_, err := Fetch(context.Background(), Config{InactivityTimeout: 50 * time.Millisecond}, srv.URL)
	require.ErrorIs(t, err, os.ErrDeadlineExceeded)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), Config{Timeout: 50 * time.Millisecond}, srv.URL)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

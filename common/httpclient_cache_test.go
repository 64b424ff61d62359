// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestCacheTransport(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("hello"))
	}))
	defer server.Close()

	t.Run("should serve the second GET request from the cache", func(t *testing.T) {
		calls.Store(0)
		client := &http.Client{}
		WrapHTTPClient(client, NewCacheTransport(10, time.Minute).Handler())

		for range 2 {
			res, err := client.Get(server.URL + "/ok")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, res.StatusCode)
			res.Body.Close()
		}

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should not cache failed responses", func(t *testing.T) {
		calls.Store(0)
		client := &http.Client{}
		cache := NewCacheTransport(10, time.Minute)
		WrapHTTPClient(client, cache.Handler())

		for range 2 {
			res, err := client.Get(server.URL + "/fail")
			require.NoError(t, err)
			res.Body.Close()
		}

		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("should hash keys of requests with credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "https://example.com/a", nil)
		assert.Equal(t, "https://example.com/a", cacheKey(req))

		req.Header.Set("X-Api-Key", "secret")
		key := cacheKey(req)
		assert.NotContains(t, key, "secret")
		assert.Len(t, key, 64)
	})
}

func TestRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := &http.Client{}
	// no burst left after the first request
	WrapHTTPClient(client, RateLimit(rate.NewLimiter(rate.Every(time.Hour), 1)))

	res, err := client.Get(server.URL)
	require.NoError(t, err)
	res.Body.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Millisecond)
	defer cancel()

	_, err = client.Do(req.WithContext(ctx))
	assert.Error(t, err)
}

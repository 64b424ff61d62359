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

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openMeteoBody = `{
	"latitude": 35.12,
	"longitude": -106.54,
	"current": {
		"time": "2025-06-01T12:00",
		"interval": 900,
		"temperature_2m": 28.4,
		"wind_speed_10m": 12.5,
		"precipitation": 0,
		"weather_code": 1
	}
}`

func TestWeatherServiceGetCurrent(t *testing.T) {
	t.Run("should map the response and cache it", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, "/v1/forecast", r.URL.Path)
			assert.Equal(t, "35.1235", r.URL.Query().Get("latitude"))
			assert.Equal(t, "key", r.Header.Get("X-Api-Key"))
			_, _ = w.Write([]byte(openMeteoBody))
		}))
		defer server.Close()

		s := newWeatherService(server.URL+"/", "key", time.Minute, 100)

		weather, err := s.GetCurrent(context.Background(), 35.12347, -106.54)
		require.NoError(t, err)
		assert.Equal(t, 28.4, weather.TemperatureCelsius)
		assert.Equal(t, 12.5, weather.WindSpeedKmh)
		assert.Equal(t, "Partly cloudy", weather.Description)
		assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), weather.ObservedAt)
		assert.True(t, weather.WorkableConditions)

		_, err = s.GetCurrent(context.Background(), 35.12347, -106.54)
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should fall back to the default rate limit if it is not positive", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(openMeteoBody))
		}))
		defer server.Close()

		for _, limit := range []float64{0, -1} {
			s := newWeatherService(server.URL, "", time.Minute, limit)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			// different coordinates miss the cache, every call needs a token
			for i := range 3 {
				_, err := s.GetCurrent(ctx, float64(i), 2)
				require.NoError(t, err)
			}
			cancel()
		}
	})

	t.Run("should return bad gateway if the weather api fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		s := newWeatherService(server.URL, "", time.Minute, 100)
		_, err := s.GetCurrent(context.Background(), 1, 2)
		assert.Equal(t, http.StatusBadGateway, httpStatus(t, err))
	})
}

func TestOpenMeteoToWeather(t *testing.T) {
	var response openMeteoResponse
	response.Current.Time = "2025-06-01T12:00"
	response.Current.WindSpeed = 55
	response.Current.WeatherCode = 95

	weather := openMeteoToWeather(response)
	assert.False(t, weather.WorkableConditions)
	assert.Equal(t, "Thunderstorm", weather.Description)
}

func TestDescribeWeatherCode(t *testing.T) {
	assert.Equal(t, "Clear sky", DescribeWeatherCode(0))
	assert.Equal(t, "Rain", DescribeWeatherCode(63))
	assert.Equal(t, "Snow", DescribeWeatherCode(75))
	assert.Equal(t, "Unknown", DescribeWeatherCode(42))
}

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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/l3montree-dev/piletracker/common"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/monitoring"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultWeatherAPIURL    = "https://api.open-meteo.com"
	defaultWeatherRateLimit = 5.0
	weatherCacheSize        = 512
	// piles are driven with heavy machinery, above this wind speed work stops
	maxWorkableWindSpeedKmh  = 40
	maxWorkablePrecipitation = 2.5
)

type openMeteoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Current   struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

type weatherService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ shared.WeatherService = &weatherService{}

func NewWeatherService() *weatherService {
	return newWeatherService(
		shared.GetEnvOr("WEATHER_API_URL", defaultWeatherAPIURL),
		os.Getenv("WEATHER_API_KEY"),
		shared.GetEnvDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		shared.GetEnvFloat("WEATHER_RATE_LIMIT", defaultWeatherRateLimit),
	)
}

func newWeatherService(baseURL, apiKey string, cacheTTL time.Duration, requestsPerSecond float64) *weatherService {
	// a zero limit would let one request through and block every later one
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultWeatherRateLimit
	}
	httpClient := &http.Client{Timeout: 10 * time.Second}
	// the limiter sits behind the cache, cached responses do not consume tokens
	common.WrapHTTPClient(httpClient, common.RateLimit(rate.NewLimiter(rate.Limit(requestsPerSecond), max(1, int(requestsPerSecond)))))
	common.WrapHTTPClient(httpClient, common.NewCacheTransport(weatherCacheSize, cacheTTL).Handler())

	return &weatherService{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// coordinates are rounded to about 10 meters. nearby requests share the cache entry.
func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func (s *weatherService) GetCurrent(ctx context.Context, latitude, longitude float64) (dtos.Weather, error) {
	start := time.Now()
	defer func() {
		monitoring.WeatherRequestDuration.Observe(time.Since(start).Seconds())
	}()

	query := url.Values{}
	query.Set("latitude", formatCoordinate(latitude))
	query.Set("longitude", formatCoordinate(longitude))
	query.Set("current", "temperature_2m,wind_speed_10m,precipitation,weather_code")
	query.Set("timezone", "UTC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/forecast?%s", s.baseURL, query.Encode()), nil)
	if err != nil {
		return dtos.Weather{}, echo.NewHTTPError(500, "could not build weather request").WithInternal(err)
	}
	if s.apiKey != "" {
		req.Header.Set("X-Api-Key", s.apiKey)
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return dtos.Weather{}, echo.NewHTTPError(502, "could not reach the weather service").WithInternal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return dtos.Weather{}, echo.NewHTTPError(502, "the weather service returned an error").WithInternal(fmt.Errorf("could not get weather: %s", res.Status))
	}

	var response openMeteoResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return dtos.Weather{}, echo.NewHTTPError(502, "could not read the weather response").WithInternal(err)
	}

	return openMeteoToWeather(response), nil
}

func openMeteoToWeather(response openMeteoResponse) dtos.Weather {
	observedAt, err := time.Parse("2006-01-02T15:04", response.Current.Time)
	if err != nil {
		observedAt = time.Now().UTC().Truncate(time.Minute)
	}

	return dtos.Weather{
		Latitude:           response.Latitude,
		Longitude:          response.Longitude,
		TemperatureCelsius: response.Current.Temperature,
		WindSpeedKmh:       response.Current.WindSpeed,
		PrecipitationMm:    response.Current.Precipitation,
		WeatherCode:        response.Current.WeatherCode,
		Description:        DescribeWeatherCode(response.Current.WeatherCode),
		ObservedAt:         observedAt,
		WorkableConditions: response.Current.WindSpeed < maxWorkableWindSpeedKmh &&
			response.Current.Precipitation < maxWorkablePrecipitation &&
			response.Current.WeatherCode < 95,
	}
}

// DescribeWeatherCode translates a WMO weather interpretation code.
func DescribeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code >= 1 && code <= 3:
		return "Partly cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain showers"
	case code == 85 || code == 86:
		return "Snow showers"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}

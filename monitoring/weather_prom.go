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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPCacheHitAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "piletracker_http_cache_hit_amount",
	Help: "The total number of outgoing GET requests served from the cache",
})

var HTTPCacheMissAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "piletracker_http_cache_miss_amount",
	Help: "The total number of outgoing GET requests which were not cached",
})

var WeatherRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "piletracker_weather_request_duration_seconds",
	Help:    "Duration of weather api requests in seconds",
	Buckets: prometheus.DefBuckets,
})

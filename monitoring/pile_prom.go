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

var PilesCreatedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "piletracker_piles_created_amount",
	Help: "The total number of created piles by status",
}, []string{"status"})

var PilesUpdatedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "piletracker_piles_updated_amount",
	Help: "The total number of updated piles by status",
}, []string{"status"})

var PilesDeletedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "piletracker_piles_deleted_amount",
	Help: "The total number of deleted piles",
})

var ImportRowsAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "piletracker_import_rows_amount",
	Help: "The total number of imported rows by result (created, updated, skipped)",
}, []string{"result"})

var ImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "piletracker_import_duration_seconds",
	Help:    "Duration of pile imports in seconds",
	Buckets: prometheus.DefBuckets,
})

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

var ExpireInvitationsDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "piletracker_daemon_expire_invitations_duration_minutes",
	Help:    "Duration of the invitation expiry daemon in minutes",
	Buckets: prometheus.DefBuckets,
})

var PurgePilesDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "piletracker_daemon_purge_piles_duration_minutes",
	Help:    "Duration of the soft deleted pile purge in minutes",
	Buckets: prometheus.DefBuckets,
})

var ExpiredInvitationsAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "piletracker_daemon_expired_invitations_amount",
	Help: "The total number of invitations marked as expired",
})

var PurgedPilesAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "piletracker_daemon_purged_piles_amount",
	Help: "The total number of soft deleted piles removed permanently",
})

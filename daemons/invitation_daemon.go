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

package daemons

import (
	"log/slog"
	"time"

	"github.com/l3montree-dev/piletracker/monitoring"
)

// ExpireInvitations marks pending invitations past their expiry as expired.
func (runner *DaemonRunner) ExpireInvitations() error {
	start := time.Now()
	defer func() {
		monitoring.ExpireInvitationsDuration.Observe(time.Since(start).Minutes())
	}()

	count, err := runner.invitationService.ExpireOutdated(runner.now())
	if err != nil {
		return err
	}

	monitoring.ExpiredInvitationsAmount.Add(float64(count))
	if count > 0 {
		slog.Info("expired invitations", "count", count)
	}
	return nil
}

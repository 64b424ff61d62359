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

// soft deleted piles are kept this long. purging a pile removes its events too (ON DELETE CASCADE)
const deletedPileRetention = 30 * 24 * time.Hour

func (runner *DaemonRunner) PurgeDeletedPiles() error {
	start := time.Now()
	defer func() {
		monitoring.PurgePilesDuration.Observe(time.Since(start).Minutes())
	}()

	count, err := runner.pileRepository.PurgeDeletedBefore(nil, runner.now().Add(-deletedPileRetention))
	if err != nil {
		return err
	}

	monitoring.PurgedPilesAmount.Add(float64(count))
	if count > 0 {
		slog.Info("purged deleted piles", "count", count)
	}
	return nil
}

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

	"github.com/l3montree-dev/piletracker/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	expireInvitationsKey = "daemons.expireInvitations"
	purgePilesKey        = "daemons.purgePiles"
)

func getLastRunTime(configService shared.ConfigService, key string) (time.Time, error) {
	var lastRun struct {
		Time time.Time `json:"time"`
	}

	err := configService.GetJSONConfig(key, &lastRun)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("could not get last run time", "err", err, "key", key)
		return time.Time{}, err
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Info("no last run time found. Setting to 0", "key", key)
		return time.Time{}, nil
	}

	return lastRun.Time, nil
}

func shouldRun(configService shared.ConfigService, key string, interval time.Duration, now time.Time) bool {
	lastTime, err := getLastRunTime(configService, key)
	if err != nil {
		return false
	}

	return now.Sub(lastTime) > interval
}

func markRun(configService shared.ConfigService, key string, now time.Time) error {
	return configService.SetJSONConfig(key, struct {
		Time time.Time `json:"time"`
	}{
		Time: now,
	})
}

func (runner *DaemonRunner) runDaemons() {
	daemonStart := runner.now()
	slog.Info("starting background jobs", "time", daemonStart)

	if shouldRun(runner.configService, expireInvitationsKey, runner.expireInterval, daemonStart) {
		if err := runner.ExpireInvitations(); err != nil {
			slog.Error("could not expire invitations", "err", err)
		} else if err := markRun(runner.configService, expireInvitationsKey, daemonStart); err != nil {
			slog.Error("could not mark invitations as expired", "err", err)
		}
	}

	if shouldRun(runner.configService, purgePilesKey, runner.purgeInterval, daemonStart) {
		if err := runner.PurgeDeletedPiles(); err != nil {
			slog.Error("could not purge deleted piles", "err", err)
		} else if err := markRun(runner.configService, purgePilesKey, daemonStart); err != nil {
			slog.Error("could not mark deleted piles as purged", "err", err)
		}
	}

	slog.Info("background jobs finished", "duration", time.Since(daemonStart))
}

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
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/shared"
)

const (
	leaderElectionKey = "leaderElection"
	// a leader which did not ping for this long is considered dead
	leaderTimeout = 360 * time.Second
)

type leaderElectionConfig struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

// databaseLeaderElector makes sure only one replica runs the background daemons.
type databaseLeaderElector struct {
	leaderElectorID string
	configService   shared.ConfigService
	// updated by the election goroutine
	isLeader atomic.Bool
	now      func() time.Time
}

var _ shared.LeaderElector = &databaseLeaderElector{}

func NewDatabaseLeaderElector(configService shared.ConfigService) *databaseLeaderElector {
	return &databaseLeaderElector{
		configService:   configService,
		leaderElectorID: uuid.New().String(),
		now:             time.Now,
	}
}

// Run checks the leadership until the context is cancelled. The leader refreshes its ping
// on every round, well within the timeout.
func (e *databaseLeaderElector) Run(ctx context.Context) {
	for {
		isLeader, err := e.checkIfLeader()
		if err != nil {
			slog.Error("could not check if leader", "err", err)
		}
		if isLeader != e.isLeader.Load() {
			slog.Info("leadership changed", "isLeader", isLeader, "leaderElectorID", e.leaderElectorID)
		}
		e.isLeader.Store(isLeader)

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(60+rand.IntN(240)) * time.Second): // #nosec
		}
	}
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) ping() error {
	return e.configService.SetJSONConfig(leaderElectionKey, leaderElectionConfig{
		LeaderID: e.leaderElectorID,
		LastPing: e.now().Unix(),
	})
}

func (e *databaseLeaderElector) checkIfLeader() (bool, error) {
	var config leaderElectionConfig

	if err := e.configService.GetJSONConfig(leaderElectionKey, &config); err != nil {
		slog.Info("could not get leader election config, taking over", "err", err)
		return true, e.ping()
	}

	if config.LeaderID == e.leaderElectorID {
		return true, e.ping()
	}

	if e.now().Unix()-config.LastPing > int64(leaderTimeout.Seconds()) {
		slog.Info("leader did not ping in time, taking over", "previousLeader", config.LeaderID)
		return true, e.ping()
	}

	return false, nil
}

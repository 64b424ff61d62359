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
	"go.uber.org/fx"
)

// DaemonRunner encapsulates daemon dependencies and lifecycle
type DaemonRunner struct {
	configService     shared.ConfigService
	invitationService shared.InvitationService
	pileRepository    shared.PileRepository
	leaderElector     shared.LeaderElector

	expireInterval time.Duration
	purgeInterval  time.Duration
	now            func() time.Time
}

// NewDaemonRunner creates a new daemon runner with injected dependencies
func NewDaemonRunner(
	configService shared.ConfigService,
	invitationService shared.InvitationService,
	pileRepository shared.PileRepository,
	leaderElector shared.LeaderElector,
) *DaemonRunner {
	return &DaemonRunner{
		configService:     configService,
		invitationService: invitationService,
		pileRepository:    pileRepository,
		leaderElector:     leaderElector,
		expireInterval:    shared.GetEnvDuration("DAEMON_EXPIRE_INVITATIONS_INTERVAL", time.Hour),
		purgeInterval:     shared.GetEnvDuration("DAEMON_PURGE_PILES_INTERVAL", 24*time.Hour),
		now:               time.Now,
	}
}

// Start initiates all background daemons
func (runner *DaemonRunner) Start() {
	go func() {
		runner.tick()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			runner.tick()
		}
	}()
}

func (runner *DaemonRunner) tick() {
	if runner.leaderElector.IsLeader() {
		slog.Info("this instance is the leader - running background jobs")
		runner.runDaemons()
	} else {
		slog.Debug("not the leader - skipping background jobs")
	}
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)

var Module = fx.Module("daemons",
	fx.Provide(fx.Annotate(NewDaemonRunner, fx.As(new(shared.DaemonRunner)))),
)

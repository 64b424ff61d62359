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
	"errors"
	"testing"
	"time"

	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type testRunner struct {
	*DaemonRunner
	configService     *mocks.ConfigService
	invitationService *mocks.InvitationService
	pileRepository    *mocks.PileRepository
	leaderElector     *mocks.LeaderElector
}

func newTestRunner(t *testing.T) testRunner {
	configService := mocks.NewConfigService(t)
	invitationService := mocks.NewInvitationService(t)
	pileRepository := mocks.NewPileRepository(t)
	leaderElector := mocks.NewLeaderElector(t)

	runner := NewDaemonRunner(configService, invitationService, pileRepository, leaderElector)
	runner.now = func() time.Time { return now }
	return testRunner{
		DaemonRunner:      runner,
		configService:     configService,
		invitationService: invitationService,
		pileRepository:    pileRepository,
		leaderElector:     leaderElector,
	}
}

func lastRun(t time.Time) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		v := args.Get(1).(*struct {
			Time time.Time `json:"time"`
		})
		v.Time = t
	}
}

func TestRunDaemons(t *testing.T) {
	t.Run("should run every daemon which never ran before", func(t *testing.T) {
		r := newTestRunner(t)

		r.configService.On("GetJSONConfig", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)
		r.invitationService.On("ExpireOutdated", now).Return(int64(2), nil)
		r.pileRepository.On("PurgeDeletedBefore", mock.Anything, now.Add(-deletedPileRetention)).Return(int64(1), nil)
		r.configService.On("SetJSONConfig", expireInvitationsKey, mock.Anything).Return(nil).Once()
		r.configService.On("SetJSONConfig", purgePilesKey, mock.Anything).Return(nil).Once()

		r.runDaemons()
	})

	t.Run("should skip daemons which ran recently", func(t *testing.T) {
		r := newTestRunner(t)

		r.configService.On("GetJSONConfig", expireInvitationsKey, mock.Anything).Run(lastRun(now.Add(-2 * time.Hour))).Return(nil)
		r.configService.On("GetJSONConfig", purgePilesKey, mock.Anything).Run(lastRun(now.Add(-time.Hour))).Return(nil)
		r.invitationService.On("ExpireOutdated", now).Return(int64(0), nil)
		r.configService.On("SetJSONConfig", expireInvitationsKey, mock.Anything).Return(nil).Once()

		r.runDaemons()
	})

	t.Run("should not mark a failed daemon", func(t *testing.T) {
		r := newTestRunner(t)

		r.configService.On("GetJSONConfig", expireInvitationsKey, mock.Anything).Return(gorm.ErrRecordNotFound)
		r.configService.On("GetJSONConfig", purgePilesKey, mock.Anything).Return(errors.New("connection refused"))
		r.invitationService.On("ExpireOutdated", now).Return(int64(0), errors.New("deadlock detected"))

		r.runDaemons()
	})
}

func TestTick(t *testing.T) {
	t.Run("should do nothing if this instance is not the leader", func(t *testing.T) {
		r := newTestRunner(t)
		r.leaderElector.On("IsLeader").Return(false)

		r.tick()
	})
}

func TestShouldRun(t *testing.T) {
	configService := mocks.NewConfigService(t)
	configService.On("GetJSONConfig", "key", mock.Anything).Run(lastRun(now.Add(-10 * time.Minute))).Return(nil)

	assert.False(t, shouldRun(configService, "key", time.Hour, now))
	assert.True(t, shouldRun(configService, "key", 5*time.Minute, now))
}

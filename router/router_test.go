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

package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/l3montree-dev/piletracker/cmd/piletracker/api"
	"github.com/l3montree-dev/piletracker/controllers"
	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	// gorm pings once on open
	mock.ExpectPing()
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestHealth(t *testing.T) {
	t.Run("should answer 200 if the database answers the ping", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/health/", nil), rec)

		require.NoError(t, health(db)(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should answer 503 if the ping fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/health/", nil), rec)

		require.NoError(t, health(db)(ctx))
		assert.Equal(t, 503, rec.Code)
		assert.Contains(t, rec.Body.String(), "database ping failed")
	})
}

func TestRoutes(t *testing.T) {
	t.Run("should register the public, session, admin and project routes", func(t *testing.T) {
		db, _ := newMockDB(t)
		srv := api.Server{Echo: echo.New()}

		broker := mocks.NewPubSubBroker(t)
		adminClient := mocks.NewAdminClient(t)
		superAdminRepository := mocks.NewSuperAdminRepository(t)
		projectRepository := mocks.NewProjectRepository(t)
		userProjectRepository := mocks.NewUserProjectRepository(t)
		pileRepository := mocks.NewPileRepository(t)
		accessControl := mocks.NewAccessControl(t)

		apiV1 := NewAPIV1Router(srv, db, nil, broker)
		session := NewSessionRouter(apiV1, adminClient, nil, superAdminRepository,
			controllers.NewSessionController(superAdminRepository),
			controllers.NewProjectController(mocks.NewProjectService(t), mocks.NewMemberService(t), accessControl),
			controllers.NewInvitationController(mocks.NewInvitationService(t)),
		)
		NewAdminRouter(srv, adminClient, nil, superAdminRepository, controllers.NewAdminController(
			mocks.NewUserService(t), mocks.NewMemberService(t), mocks.NewProjectService(t), projectRepository,
			mocks.NewInvitationService(t), mocks.NewStatisticsService(t), accessControl,
		))
		NewProjectRouter(session,
			controllers.NewProjectController(mocks.NewProjectService(t), mocks.NewMemberService(t), accessControl),
			controllers.NewInvitationController(mocks.NewInvitationService(t)),
			controllers.NewPileController(pileRepository, mocks.NewPileEventRepository(t), mocks.NewPileService(t), mocks.NewImportService(t)),
			controllers.NewStatisticsController(mocks.NewStatisticsService(t)),
			controllers.NewWeatherController(mocks.NewWeatherService(t)),
			controllers.NewLiveController(broker),
			projectRepository, userProjectRepository, superAdminRepository, pileRepository, accessControl,
		)

		registered := map[string]bool{}
		for _, route := range srv.Echo.Routes() {
			registered[route.Method+" "+route.Path] = true
		}

		for _, expected := range []string{
			"GET /api/v1/health/",
			"GET /api/v1/info/",
			"GET /api/v1/metrics/",
			"GET /api/v1/whoami/",
			"GET /api/v1/projects/",
			"POST /api/v1/invitations/accept/",
			"POST /api/admin/create-user/",
			"GET /api/admin/users/",
			"POST /api/admin/create-project/",
			"POST /api/admin/assign-user-to-project/",
			"POST /api/admin/update-user-role/",
			"POST /api/admin/remove-user-from-project/",
			"GET /api/admin/get-project-data/",
			"POST /api/admin/transfer-ownership/",
			"DELETE /api/admin/delete-project/",
			"GET /api/admin/super-admins/",
			"POST /api/admin/super-admins/",
			"DELETE /api/admin/super-admins/:userID/",
			"GET /api/v1/projects/:projectID/",
			"PATCH /api/v1/projects/:projectID/",
			"GET /api/v1/projects/:projectID/members/",
			"GET /api/v1/projects/:projectID/invitations/",
			"POST /api/v1/projects/:projectID/invitations/",
			"DELETE /api/v1/projects/:projectID/invitations/:invitationID/",
			"GET /api/v1/projects/:projectID/piles/",
			"POST /api/v1/projects/:projectID/piles/",
			"POST /api/v1/projects/:projectID/piles/import/",
			"POST /api/v1/projects/:projectID/piles/bulk/",
			"GET /api/v1/projects/:projectID/piles/export.csv/",
			"GET /api/v1/projects/:projectID/piles/:pileID/",
			"PATCH /api/v1/projects/:projectID/piles/:pileID/",
			"DELETE /api/v1/projects/:projectID/piles/:pileID/",
			"GET /api/v1/projects/:projectID/piles/:pileID/events/",
			"GET /api/v1/projects/:projectID/stats/summary/",
			"GET /api/v1/projects/:projectID/stats/blocks/",
			"GET /api/v1/projects/:projectID/stats/timeline/",
			"GET /api/v1/projects/:projectID/stats/heatmap/",
			"GET /api/v1/projects/:projectID/stats/dashboard/",
			"GET /api/v1/projects/:projectID/weather/",
			"GET /api/v1/projects/:projectID/live/",
		} {
			assert.True(t, registered[expected], "missing route %s", expected)
		}
	})
}

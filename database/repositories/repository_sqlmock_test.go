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

package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func TestProjectRepositoryDeleteCascade(t *testing.T) {
	t.Run("should delete every dependent table before the project", func(t *testing.T) {
		db, mock := newMockDB(t)
		projectID := uuid.New()

		mock.ExpectExec(q(`DELETE FROM "pile_events" WHERE project_id = $1`)).WithArgs(projectID).WillReturnResult(sqlmock.NewResult(0, 12))
		mock.ExpectExec(q(`DELETE FROM "piles" WHERE project_id = $1`)).WithArgs(projectID).WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(q(`DELETE FROM "project_invitations" WHERE project_id = $1`)).WithArgs(projectID).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(q(`DELETE FROM "user_projects" WHERE project_id = $1`)).WithArgs(projectID).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(q(`DELETE FROM "projects" WHERE id = $1`)).WithArgs(projectID).WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewProjectRepository(db).DeleteCascade(nil, projectID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should stop at the first failing step", func(t *testing.T) {
		db, mock := newMockDB(t)
		projectID := uuid.New()

		mock.ExpectExec(q(`DELETE FROM "pile_events"`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(q(`DELETE FROM "piles"`)).WillReturnError(assert.AnError)

		err := NewProjectRepository(db).DeleteCascade(nil, projectID)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return not found if the project does not exist", func(t *testing.T) {
		db, mock := newMockDB(t)

		for range 4 {
			mock.ExpectExec("DELETE FROM").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectExec(q(`DELETE FROM "projects"`)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewProjectRepository(db).DeleteCascade(nil, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestProjectRepositorySlugExists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(q(`SELECT count(*) FROM "projects" WHERE slug = $1`)).
		WithArgs("solar-farm").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := NewProjectRepository(db).SlugExists(nil, "solar-farm")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestPileRepositoryListPaged(t *testing.T) {
	t.Run("should map json fields to columns and ignore unknown fields", func(t *testing.T) {
		db, mock := newMockDB(t)
		projectID := uuid.New()
		pileID := uuid.New()

		mock.ExpectQuery(q(`"embedment" > $2`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(q(`ORDER BY "start_date" desc NULLS LAST`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "pile_number", "status"}).
				AddRow(pileID.String(), projectID.String(), "A-1", "accepted"))

		paged, err := NewPileRepository(db).ListPaged(
			projectID,
			shared.PageInfo{Page: 1, PageSize: 10},
			"",
			[]shared.FilterQuery{
				shared.NewFilterQuery("embedment", "is greater than", "5"),
				shared.NewFilterQuery("password; DROP TABLE piles", "is", "x"),
			},
			[]shared.SortQuery{{Field: "startDate", Operator: "desc"}},
		)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), paged.Total)
		require.Len(t, paged.Data, 1)
		assert.Equal(t, "A-1", paged.Data[0].PileNumber)
		assert.Equal(t, models.PileStatusAccepted, paged.Data[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should order by pile number without sort", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(q(`SELECT count(*) FROM "piles"`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(q(`ORDER BY pile_number ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		paged, err := NewPileRepository(db).ListPaged(uuid.New(), shared.PageInfo{Page: 1, PageSize: 10}, "", nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, paged.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPileRepositoryPurgeDeletedBefore(t *testing.T) {
	db, mock := newMockDB(t)
	before := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec(q(`DELETE FROM "piles" WHERE deleted_at IS NOT NULL AND deleted_at < $1`)).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 7))

	purged, err := NewPileRepository(db).PurgeDeletedBefore(nil, before)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), purged)
}

func TestSuperAdminRepository(t *testing.T) {
	t.Run("revoking a user which is no super admin returns not found", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(q(`DELETE FROM "super_admins" WHERE user_id = $1`)).
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewSuperAdminRepository(db).Revoke(nil, "user-1")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("an empty user id is never a super admin", func(t *testing.T) {
		db, mock := newMockDB(t)

		isSuperAdmin, err := NewSuperAdminRepository(db).IsSuperAdmin("")
		assert.NoError(t, err)
		assert.False(t, isSuperAdmin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvitationRepositoryExpireBefore(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(q(`UPDATE "project_invitations" SET "status"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	expired, err := NewInvitationRepository(db).ExpireBefore(nil, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), expired)
}

func TestStatisticsRepositoryCountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	projectID := uuid.New()

	mock.ExpectQuery(q(`SELECT status, COUNT(*) AS count FROM "piles" WHERE project_id = $1`)).
		WithArgs(projectID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("accepted", 10).
			AddRow("refusal", 2))

	counts, err := NewStatisticsRepository(db).CountByStatus(projectID)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), counts[models.PileStatusAccepted])
	assert.Equal(t, int64(2), counts[models.PileStatusRefusal])
	assert.Equal(t, int64(0), counts[models.PileStatusPending])
}

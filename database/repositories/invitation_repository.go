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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invitationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ProjectInvitation]
}

func NewInvitationRepository(db *gorm.DB) *invitationRepository {
	return &invitationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ProjectInvitation](db),
	}
}

// FindPendingByTokenHash locks the row, two concurrent accepts of the same token cannot both succeed.
func (r *invitationRepository) FindPendingByTokenHash(tx *gorm.DB, tokenHash string) (models.ProjectInvitation, error) {
	var invitation models.ProjectInvitation
	err := r.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token_hash = ? AND status = ?", tokenHash, models.InvitationStatusPending).
		First(&invitation).Error
	return invitation, err
}

func (r *invitationRepository) ListPendingByProject(projectID uuid.UUID) ([]models.ProjectInvitation, error) {
	var invitations []models.ProjectInvitation
	err := r.db.Where("project_id = ? AND status = ?", projectID, models.InvitationStatusPending).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

// ExpireBefore marks every pending invitation expiring before now as expired.
func (r *invitationRepository) ExpireBefore(tx *gorm.DB, now time.Time) (int64, error) {
	res := r.GetDB(tx).Model(&models.ProjectInvitation{}).
		Where("status = ? AND expires_at < ?", models.InvitationStatusPending, now).
		Update("status", models.InvitationStatusExpired)
	return res.RowsAffected, res.Error
}

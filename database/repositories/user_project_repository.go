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
	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"gorm.io/gorm"
)

type userProjectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.UserProject]
}

func NewUserProjectRepository(db *gorm.DB) *userProjectRepository {
	return &userProjectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.UserProject](db),
	}
}

func (r *userProjectRepository) Find(tx *gorm.DB, userID string, projectID uuid.UUID) (models.UserProject, error) {
	var membership models.UserProject
	err := r.GetDB(tx).Where("user_id = ? AND project_id = ?", userID, projectID).First(&membership).Error
	return membership, err
}

func (r *userProjectRepository) FindOwner(tx *gorm.DB, projectID uuid.UUID) (models.UserProject, error) {
	var membership models.UserProject
	err := r.GetDB(tx).Where("project_id = ? AND role = ?", projectID, "owner").First(&membership).Error
	return membership, err
}

// ListByProject orders the members by role, owner first
func (r *userProjectRepository) ListByProject(projectID uuid.UUID) ([]models.UserProject, error) {
	var memberships []models.UserProject
	err := r.db.Where("project_id = ?", projectID).
		Order("CASE role WHEN 'owner' THEN 0 WHEN 'admin' THEN 1 WHEN 'editor' THEN 2 ELSE 3 END, created_at ASC").
		Find(&memberships).Error
	return memberships, err
}

// ListProjectIDsByUser skips soft deleted projects
func (r *userProjectRepository) ListProjectIDsByUser(userID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.UserProject{}).
		Joins("JOIN projects ON projects.id = user_projects.project_id AND projects.deleted_at IS NULL").
		Where("user_projects.user_id = ?", userID).
		Pluck("user_projects.project_id", &ids).Error
	return ids, err
}

func (r *userProjectRepository) Remove(tx *gorm.DB, userID string, projectID uuid.UUID) error {
	res := r.GetDB(tx).Where("user_id = ? AND project_id = ?", userID, projectID).Delete(&models.UserProject{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

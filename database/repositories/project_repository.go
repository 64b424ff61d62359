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
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/shared"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

// ReadBySlugOrID accepts both the uuid and the slug of a project.
func (g *projectRepository) ReadBySlugOrID(slugOrID string) (models.Project, error) {
	var project models.Project
	if id, err := uuid.Parse(slugOrID); err == nil {
		err = g.db.First(&project, "id = ?", id).Error
		return project, err
	}
	err := g.db.First(&project, "slug = ?", slugOrID).Error
	return project, err
}

// SlugExists includes soft deleted projects since they still hold the unique index.
func (g *projectRepository) SlugExists(tx *gorm.DB, slug string) (bool, error) {
	var count int64
	err := g.GetDB(tx).Unscoped().Model(&models.Project{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (g *projectRepository) listPaged(query *gorm.DB, pageInfo shared.PageInfo, search string) (shared.Paged[models.Project], error) {
	if search != "" {
		query = query.Where("name ILIKE ? OR slug ILIKE ? OR location ILIKE ?", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.Project]{}, fmt.Errorf("could not count projects: %w", err)
	}

	var projects []models.Project
	if err := pageInfo.ApplyOnDB(query).Order("name ASC").Find(&projects).Error; err != nil {
		return shared.Paged[models.Project]{}, fmt.Errorf("could not list projects: %w", err)
	}

	return shared.NewPaged(pageInfo, total, projects), nil
}

func (g *projectRepository) ListPaged(projectIDs []uuid.UUID, pageInfo shared.PageInfo, search string) (shared.Paged[models.Project], error) {
	if len(projectIDs) == 0 {
		return shared.NewPaged(pageInfo, 0, []models.Project{}), nil
	}
	return g.listPaged(g.db.Model(&models.Project{}).Where("id IN ?", projectIDs), pageInfo, search)
}

func (g *projectRepository) ListAllPaged(pageInfo shared.PageInfo, search string) (shared.Paged[models.Project], error) {
	return g.listPaged(g.db.Model(&models.Project{}), pageInfo, search)
}

// DeleteCascade hard deletes the project with its piles, events, invitations and memberships.
// It is meant to run inside a transaction so a partial failure leaves nothing behind.
func (g *projectRepository) DeleteCascade(tx *gorm.DB, projectID uuid.UUID) error {
	db := g.GetDB(tx).Unscoped()

	steps := []struct {
		name  string
		model any
	}{
		{"pile events", &models.PileEvent{}},
		{"piles", &models.Pile{}},
		{"invitations", &models.ProjectInvitation{}},
		{"memberships", &models.UserProject{}},
	}

	for _, step := range steps {
		if err := db.Where("project_id = ?", projectID).Delete(step.model).Error; err != nil {
			return fmt.Errorf("could not delete %s: %w", step.name, err)
		}
	}

	res := db.Where("id = ?", projectID).Delete(&models.Project{})
	if res.Error != nil {
		return fmt.Errorf("could not delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/shared"
	"gorm.io/gorm"
)

// pileColumns maps the json field names clients filter and sort by to the columns.
// Anything not listed here is ignored.
var pileColumns = map[string]string{
	"pileNumber":       "pile_number",
	"pileId":           "pile_id",
	"block":            "block",
	"zone":             "zone",
	"pileType":         "pile_type",
	"pileSize":         "pile_size",
	"pileColor":        "pile_color",
	"machine":          "machine",
	"designEmbedment":  "design_embedment",
	"embedment":        "embedment",
	"startZ":           "start_z",
	"endZ":             "end_z",
	"gainPer30Seconds": "gain_per_30_seconds",
	"startDate":        "start_date",
	"durationSeconds":  "duration_seconds",
	"status":           "status",
	"inspectorId":      "inspector_id",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

type pileRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Pile]
}

func NewPileRepository(db *gorm.DB) *pileRepository {
	return &pileRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Pile](db),
	}
}

func (r *pileRepository) ReadInProject(projectID, pileID uuid.UUID) (models.Pile, error) {
	var pile models.Pile
	err := r.db.Where("project_id = ? AND id = ?", projectID, pileID).First(&pile).Error
	return pile, err
}

func (r *pileRepository) ListPaged(projectID uuid.UUID, pageInfo shared.PageInfo, search string, filter []shared.FilterQuery, sort []shared.SortQuery) (shared.Paged[models.Pile], error) {
	query := r.db.Model(&models.Pile{}).Where("project_id = ?", projectID)

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("pile_number ILIKE ? OR pile_id ILIKE ? OR block ILIKE ? OR notes ILIKE ?", like, like, like, like)
	}

	for _, f := range filter {
		column, ok := pileColumns[f.Field()]
		if !ok {
			continue
		}
		mapped := f.WithField(column)
		query = query.Where(mapped.SQL(), mapped.Value())
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.Pile]{}, fmt.Errorf("could not count piles: %w", err)
	}

	sorted := false
	for _, s := range sort {
		column, ok := pileColumns[s.Field]
		if !ok {
			continue
		}
		query = query.Order(shared.SortQuery{Field: column, Operator: s.Operator}.SQL())
		sorted = true
	}
	if !sorted {
		query = query.Order("pile_number ASC")
	}

	var piles []models.Pile
	if err := pageInfo.ApplyOnDB(query).Find(&piles).Error; err != nil {
		return shared.Paged[models.Pile]{}, fmt.Errorf("could not list piles: %w", err)
	}

	return shared.NewPaged(pageInfo, total, piles), nil
}

func (r *pileRepository) ListByProject(tx *gorm.DB, projectID uuid.UUID) ([]models.Pile, error) {
	var piles []models.Pile
	err := r.GetDB(tx).Where("project_id = ?", projectID).Order("pile_number ASC").Find(&piles).Error
	return piles, err
}

func (r *pileRepository) ListByPileNumbers(tx *gorm.DB, projectID uuid.UUID, pileNumbers []string) ([]models.Pile, error) {
	if len(pileNumbers) == 0 {
		return []models.Pile{}, nil
	}
	var piles []models.Pile
	err := r.GetDB(tx).Where("project_id = ? AND pile_number IN ?", projectID, pileNumbers).Find(&piles).Error
	return piles, err
}

// PurgeDeletedBefore permanently removes piles which were soft deleted before the given time.
func (r *pileRepository) PurgeDeletedBefore(tx *gorm.DB, before time.Time) (int64, error) {
	res := r.GetDB(tx).Unscoped().Where("deleted_at IS NOT NULL AND deleted_at < ?", before).Delete(&models.Pile{})
	return res.RowsAffected, res.Error
}

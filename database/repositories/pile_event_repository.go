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
	"github.com/l3montree-dev/piletracker/shared"
	"gorm.io/gorm"
)

type pileEventRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.PileEvent]
}

func NewPileEventRepository(db *gorm.DB) *pileEventRepository {
	return &pileEventRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.PileEvent](db),
	}
}

// ListByPile returns the newest events first
func (r *pileEventRepository) ListByPile(pileID uuid.UUID, pageInfo shared.PageInfo) (shared.Paged[models.PileEvent], error) {
	query := r.db.Model(&models.PileEvent{}).Where("pile_id = ?", pileID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.PileEvent]{}, err
	}

	var events []models.PileEvent
	if err := pageInfo.ApplyOnDB(query).Order("created_at DESC").Find(&events).Error; err != nil {
		return shared.Paged[models.PileEvent]{}, err
	}
	return shared.NewPaged(pageInfo, total, events), nil
}

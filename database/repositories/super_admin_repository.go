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
	"github.com/l3montree-dev/piletracker/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type superAdminRepository struct {
	db *gorm.DB
}

func NewSuperAdminRepository(db *gorm.DB) *superAdminRepository {
	return &superAdminRepository{db: db}
}

func (r *superAdminRepository) IsSuperAdmin(userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	var count int64
	err := r.db.Model(&models.SuperAdmin{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// Grant is idempotent
func (r *superAdminRepository) Grant(tx *gorm.DB, userID, grantedBy string) error {
	return r.getDB(tx).Clauses(clause.OnConflict{DoNothing: true}).Create(&models.SuperAdmin{
		UserID:    userID,
		GrantedBy: grantedBy,
	}).Error
}

func (r *superAdminRepository) Revoke(tx *gorm.DB, userID string) error {
	res := r.getDB(tx).Where("user_id = ?", userID).Delete(&models.SuperAdmin{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *superAdminRepository) List() ([]models.SuperAdmin, error) {
	var admins []models.SuperAdmin
	err := r.db.Order("created_at ASC").Find(&admins).Error
	return admins, err
}

func (r *superAdminRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

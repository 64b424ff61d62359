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
)

// statisticsRepository runs the aggregations over the piles of a project.
// Soft deleted piles are excluded by the gorm scope.
type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) piles(projectID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.Pile{}).Where("project_id = ?", projectID)
}

func (r *statisticsRepository) CountByStatus(projectID uuid.UUID) (map[models.PileStatus]int64, error) {
	var rows []struct {
		Status models.PileStatus
		Count  int64
	}
	err := r.piles(projectID).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.PileStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *statisticsRepository) Averages(projectID uuid.UUID) (models.PileAverages, error) {
	var averages models.PileAverages
	err := r.piles(projectID).
		Select("AVG(embedment) AS average_embedment, AVG(duration_seconds) AS average_duration_seconds").
		Scan(&averages).Error
	return averages, err
}

// BlockStatusCounts returns an empty block for piles without one.
func (r *statisticsRepository) BlockStatusCounts(projectID uuid.UUID) ([]models.BlockStatusCount, error) {
	var rows []models.BlockStatusCount
	err := r.piles(projectID).
		Select("COALESCE(block, '') AS block, status, COUNT(*) AS count").
		Group("COALESCE(block, ''), status").
		Order("block ASC").
		Scan(&rows).Error
	return rows, err
}

// DailyStatusCounts skips piles without a start date. from and to are inclusive.
func (r *statisticsRepository) DailyStatusCounts(projectID uuid.UUID, from, to *time.Time) ([]models.DailyStatusCount, error) {
	query := r.piles(projectID).Where("start_date IS NOT NULL")
	if from != nil {
		query = query.Where("start_date >= ?", from.Format(time.DateOnly))
	}
	if to != nil {
		query = query.Where("start_date <= ?", to.Format(time.DateOnly))
	}

	var rows []models.DailyStatusCount
	err := query.
		Select("start_date AS day, status, COUNT(*) AS count").
		Group("start_date, status").
		Order("start_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *statisticsRepository) PilePoints(projectID uuid.UUID) ([]models.PilePoint, error) {
	var points []models.PilePoint
	err := r.piles(projectID).
		Select("latitude, longitude, status").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Scan(&points).Error
	return points, err
}

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

package models

import (
	"gorm.io/datatypes"
)

const DefaultEmbedmentTolerance = 1.0

type Project struct {
	SoftDeleteModel
	Name        string `json:"name" gorm:"type:text;not null"`
	Slug        string `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	Location    string `json:"location" gorm:"type:text"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// planned number of piles, drives the completion percentage
	TotalProjectPiles int `json:"totalProjectPiles" gorm:"not null;default:0"`
	// in feet
	EmbedmentTolerance float64 `json:"embedmentTolerance" gorm:"not null;default:1"`

	TrackerSystem  string `json:"trackerSystem" gorm:"type:text"`
	GeotechCompany string `json:"geotechCompany" gorm:"type:text"`

	OwnerID  string            `json:"ownerId" gorm:"type:text;not null"`
	Settings datatypes.JSONMap `json:"settings" gorm:"type:jsonb"`
}

func (Project) TableName() string {
	return "projects"
}

func (p Project) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Tolerance never returns a negative value.
func (p Project) Tolerance() float64 {
	if p.EmbedmentTolerance < 0 {
		return 0
	}
	return p.EmbedmentTolerance
}

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
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PileEventType string

const (
	PileEventTypeCreated  PileEventType = "created"
	PileEventTypeUpdated  PileEventType = "updated"
	PileEventTypeDeleted  PileEventType = "deleted"
	PileEventTypeImported PileEventType = "imported"
	// a tolerance change on the project re-derived the status
	PileEventTypeRederived PileEventType = "rederived"
)

type PileEvent struct {
	Model
	PileID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"pileId"`
	ProjectID uuid.UUID         `gorm:"type:uuid;not null;index" json:"projectId"`
	UserID    string            `gorm:"type:text" json:"userId"`
	Type      PileEventType     `gorm:"type:text;not null" json:"type"`
	Changes   datatypes.JSONMap `gorm:"type:jsonb" json:"changes"`
}

func (PileEvent) TableName() string {
	return "pile_events"
}

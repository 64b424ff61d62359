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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ProjectCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`

	TotalProjectPiles  int      `json:"totalProjectPiles" validate:"gte=0"`
	EmbedmentTolerance *float64 `json:"embedmentTolerance" validate:"omitempty,gte=0"`

	TrackerSystem  string `json:"trackerSystem"`
	GeotechCompany string `json:"geotechCompany"`

	// if empty, the creating user becomes the owner
	OwnerID string `json:"ownerId"`
}

type ProjectPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Location    *string `json:"location"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`

	TotalProjectPiles  *int     `json:"totalProjectPiles" validate:"omitempty,gte=0"`
	EmbedmentTolerance *float64 `json:"embedmentTolerance" validate:"omitempty,gte=0"`

	TrackerSystem  *string         `json:"trackerSystem"`
	GeotechCompany *string         `json:"geotechCompany"`
	Settings       *map[string]any `json:"settings"`
}

type ProjectDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Location    string    `json:"location"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	TotalProjectPiles  int     `json:"totalProjectPiles"`
	EmbedmentTolerance float64 `json:"embedmentTolerance"`

	TrackerSystem  string         `json:"trackerSystem"`
	GeotechCompany string         `json:"geotechCompany"`
	OwnerID        string         `json:"ownerId"`
	Settings       map[string]any `json:"settings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectDetailsDTO is returned to members of the project.
type ProjectDetailsDTO struct {
	ProjectDTO
	Role        string          `json:"role,omitempty"`
	Permissions []PermissionDTO `json:"permissions"`
}

type PermissionDTO struct {
	Object string `json:"object"`
	Action string `json:"action"`
}

// ProjectDataDTO is the administrative view on a project.
type ProjectDataDTO struct {
	Project     ProjectDTO        `json:"project"`
	Members     []MemberDTO       `json:"members"`
	Invitations []InvitationDTO   `json:"invitations"`
	Statistics  StatisticsSummary `json:"statistics"`
}

type TransferOwnershipRequest struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
}

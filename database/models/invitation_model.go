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
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
	InvitationStatusRevoked  InvitationStatus = "revoked"
)

type ProjectInvitation struct {
	Model
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"projectId"`
	Project   Project   `json:"-"`
	// Email is the email address of the user the invitation is for
	Email     string           `gorm:"type:text;not null" json:"email"`
	Role      string           `gorm:"type:text;not null" json:"role"`
	TokenHash string           `gorm:"type:text;not null;uniqueIndex" json:"-"`
	InvitedBy string           `gorm:"type:text;not null" json:"invitedBy"`
	Status    InvitationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	ExpiresAt time.Time        `json:"expiresAt"`

	AcceptedBy *string    `gorm:"type:text" json:"acceptedBy,omitempty"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
}

func (ProjectInvitation) TableName() string {
	return "project_invitations"
}

func (i ProjectInvitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

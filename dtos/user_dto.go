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

import "github.com/google/uuid"

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=8"`

	// optionally assign the new user to a project right away
	ProjectID *uuid.UUID `json:"projectId"`
	Role      string     `json:"role" validate:"omitempty,oneof=admin editor viewer"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type MemberDTO struct {
	UserDTO
	Role string `json:"role"`
}

type AssignUserRequest struct {
	UserID    string    `json:"userId" validate:"required"`
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	Role      string    `json:"role" validate:"required,oneof=admin editor viewer"`
}

type UpdateUserRoleRequest struct {
	UserID    string    `json:"userId" validate:"required"`
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	Role      string    `json:"role" validate:"required,oneof=admin editor viewer"`
}

type RemoveUserRequest struct {
	UserID    string    `json:"userId" validate:"required"`
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
}

type SuperAdminRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type WhoAmIResponse struct {
	UserID       string `json:"userID"`
	Email        string `json:"email,omitempty"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

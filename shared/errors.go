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

package shared

import "errors"

var (
	ErrAlreadyMember       = errors.New("user is already a member of the project")
	ErrNotMember           = errors.New("user is not a member of the project")
	ErrOwnerRoleImmutable  = errors.New("the owner role can only be changed by transferring the ownership")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrInvitationExpired   = errors.New("invitation expired")
	ErrCannotRevokeSelf    = errors.New("you cannot revoke your own super admin role")
	ErrProjectNoCoordinate = errors.New("project has no coordinates")
	ErrUserAlreadyExists   = errors.New("user already exists")
)

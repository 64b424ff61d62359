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

package controllers

import (
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
)

type SessionController struct {
	superAdminRepository shared.SuperAdminRepository
}

func NewSessionController(superAdminRepository shared.SuperAdminRepository) *SessionController {
	return &SessionController{
		superAdminRepository: superAdminRepository,
	}
}

func (c *SessionController) WhoAmI(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	isSuperAdmin, err := c.superAdminRepository.IsSuperAdmin(session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not check super admin status").WithInternal(err)
	}

	return ctx.JSON(200, dtos.WhoAmIResponse{
		UserID:       session.GetUserID(),
		Email:        session.GetEmail(),
		IsSuperAdmin: isSuperAdmin,
	})
}

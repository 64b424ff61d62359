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
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}

func projectIDQueryParam(ctx shared.Context) (uuid.UUID, error) {
	projectID, err := uuid.Parse(ctx.QueryParam("projectId"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid projectId").WithInternal(err)
	}
	return projectID, nil
}

func parseDateQueryParam(ctx shared.Context, name string) (*time.Time, error) {
	v := ctx.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, echo.NewHTTPError(400, fmt.Sprintf("invalid %s, expected YYYY-MM-DD", name)).WithInternal(err)
	}
	return &t, nil
}

// projectAuthorizer is used by the admin endpoints which take the project id from the body.
// Super admins pass, project members need the permission for their role.
type projectAuthorizer struct {
	memberService shared.MemberService
	rbac          shared.AccessControl
}

func (a projectAuthorizer) authorize(ctx shared.Context, projectID uuid.UUID, obj shared.Object, act shared.Action) (shared.Role, error) {
	userID := shared.GetSession(ctx).GetUserID()
	role, err := a.memberService.GetRole(userID, projectID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
	}

	if shared.IsSuperAdmin(ctx) {
		return role, nil
	}
	if err != nil {
		slog.Warn("access denied, not a member", "user", userID, "projectID", projectID, "object", obj, "action", act)
		return "", echo.NewHTTPError(404, "could not find project")
	}

	allowed, err := a.rbac.IsAllowed(role, obj, act)
	if err != nil {
		return "", echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
	}
	if !allowed {
		slog.Warn("access denied", "user", userID, "role", role, "projectID", projectID, "object", obj, "action", act)
		return "", echo.NewHTTPError(403, "forbidden")
	}
	return role, nil
}

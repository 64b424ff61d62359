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

package middlewares

import (
	"log/slog"

	"github.com/l3montree-dev/piletracker/auth"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func RequireSession() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			session, _ := ctx.Get("session").(shared.AuthSession)
			if auth.IsNoSession(session) {
				return echo.NewHTTPError(401, "unauthorized")
			}
			return next(ctx)
		}
	}
}

// SuperAdminMiddleware rejects every user without a row in the super admin table.
func SuperAdminMiddleware(superAdminRepository shared.SuperAdminRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			userID := shared.GetSession(ctx).GetUserID()

			isSuperAdmin, err := superAdminRepository.IsSuperAdmin(userID)
			if err != nil {
				return echo.NewHTTPError(500, "could not check super admin status").WithInternal(err)
			}
			if !isSuperAdmin {
				slog.Warn("access denied in SuperAdminMiddleware", "user", userID, "path", ctx.Path())
				return echo.NewHTTPError(403, "forbidden")
			}

			shared.SetIsSuperAdmin(ctx, true)
			return next(ctx)
		}
	}
}

// SuperAdminFlagMiddleware only records the super admin status of the user. Handlers
// which are open to project admins as well use it to decide on their own.
func SuperAdminFlagMiddleware(superAdminRepository shared.SuperAdminRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			isSuperAdmin, err := superAdminRepository.IsSuperAdmin(shared.GetSession(ctx).GetUserID())
			if err != nil {
				return echo.NewHTTPError(500, "could not check super admin status").WithInternal(err)
			}
			shared.SetIsSuperAdmin(ctx, isSuperAdmin)
			return next(ctx)
		}
	}
}

// ProjectAccessControlFactory resolves the project from the path and checks the role of
// the user. Unknown projects and denied access both answer 404.
func ProjectAccessControlFactory(projectRepository shared.ProjectRepository, userProjectRepository shared.UserProjectRepository, superAdminRepository shared.SuperAdminRepository, rbac shared.AccessControl) shared.RBACMiddleware {
	return func(obj shared.Object, act shared.Action) shared.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				user := shared.GetSession(ctx).GetUserID()

				projectParam, err := shared.GetProjectParam(ctx)
				if err != nil {
					return echo.NewHTTPError(400, "invalid project id")
				}

				var project models.Project
				// check if project is already set in the context
				if p, ok := ctx.Get("project").(models.Project); ok {
					project = p
				} else {
					project, err = projectRepository.ReadBySlugOrID(projectParam)
					if err != nil {
						return echo.NewHTTPError(404, "could not find project").WithInternal(err)
					}
				}

				isSuperAdmin, err := superAdminRepository.IsSuperAdmin(user)
				if err != nil {
					return echo.NewHTTPError(500, "could not check super admin status").WithInternal(err)
				}
				shared.SetIsSuperAdmin(ctx, isSuperAdmin)

				membership, err := userProjectRepository.Find(nil, user, project.ID)
				switch {
				case err == nil:
					shared.SetProjectRole(ctx, shared.Role(membership.Role))
				case !errors.Is(err, gorm.ErrRecordNotFound):
					return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
				case !isSuperAdmin:
					slog.Warn("access denied in ProjectAccess, not a member", "user", user, "object", obj, "action", act, "project", projectParam)
					return echo.NewHTTPError(404, "could not find project")
				}

				if !isSuperAdmin {
					allowed, err := rbac.IsAllowed(shared.Role(membership.Role), obj, act)
					if err != nil {
						return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
					}
					if !allowed {
						slog.Warn("access denied in ProjectAccess", "user", user, "role", membership.Role, "object", obj, "action", act, "project", projectParam)
						return echo.NewHTTPError(404, "could not find project")
					}
				}

				shared.SetProject(ctx, project)
				return next(ctx)
			}
		}
	}
}

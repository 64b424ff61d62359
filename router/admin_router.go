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

package router

import (
	"github.com/l3montree-dev/piletracker/cmd/piletracker/api"
	"github.com/l3montree-dev/piletracker/controllers"
	"github.com/l3montree-dev/piletracker/middlewares"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
)

type AdminRouter struct {
	*echo.Group
}

// NewAdminRouter registers /api/admin. The membership routes are open to project admins as well,
// the controller checks the permission in the project of the request body.
func NewAdminRouter(
	srv api.Server,
	adminClient shared.AdminClient,
	verifier shared.TokenVerifier,
	superAdminRepository shared.SuperAdminRepository,
	adminController *controllers.AdminController,
) AdminRouter {
	adminRouter := srv.Echo.Group("/api/admin",
		middlewares.SessionMiddleware(adminClient, verifier),
		middlewares.RequireSession(),
		middlewares.SuperAdminFlagMiddleware(superAdminRepository),
	)

	adminRouter.POST("/assign-user-to-project/", adminController.AssignUserToProject)
	adminRouter.POST("/update-user-role/", adminController.UpdateUserRole)
	adminRouter.POST("/remove-user-from-project/", adminController.RemoveUserFromProject)
	adminRouter.GET("/get-project-data/", adminController.GetProjectData)
	adminRouter.POST("/transfer-ownership/", adminController.TransferOwnership)
	adminRouter.DELETE("/delete-project/", adminController.DeleteProject)

	superAdminRouter := adminRouter.Group("", middlewares.SuperAdminMiddleware(superAdminRepository))
	superAdminRouter.POST("/create-user/", adminController.CreateUser)
	superAdminRouter.GET("/users/", adminController.ListUsers)
	superAdminRouter.POST("/create-project/", adminController.CreateProject)
	superAdminRouter.GET("/super-admins/", adminController.ListSuperAdmins)
	superAdminRouter.POST("/super-admins/", adminController.GrantSuperAdmin)
	superAdminRouter.DELETE("/super-admins/:userID/", adminController.RevokeSuperAdmin)

	return AdminRouter{Group: adminRouter}
}

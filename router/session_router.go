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
	"github.com/l3montree-dev/piletracker/controllers"
	"github.com/l3montree-dev/piletracker/middlewares"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
)

// SessionRouter holds every route which needs a signed in user
type SessionRouter struct {
	*echo.Group
}

func NewSessionRouter(
	apiV1Router APIV1Router,
	adminClient shared.AdminClient,
	verifier shared.TokenVerifier,
	superAdminRepository shared.SuperAdminRepository,
	sessionController *controllers.SessionController,
	projectController *controllers.ProjectController,
	invitationController *controllers.InvitationController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(adminClient, verifier),
		middlewares.RequireSession(),
		middlewares.SuperAdminFlagMiddleware(superAdminRepository),
	)

	sessionRouter.GET("/whoami/", sessionController.WhoAmI)
	sessionRouter.GET("/projects/", projectController.List)
	sessionRouter.POST("/invitations/accept/", invitationController.Accept)

	return SessionRouter{Group: sessionRouter}
}

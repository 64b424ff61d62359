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

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	sessionRouter SessionRouter,
	projectController *controllers.ProjectController,
	invitationController *controllers.InvitationController,
	pileController *controllers.PileController,
	statisticsController *controllers.StatisticsController,
	weatherController *controllers.WeatherController,
	liveController *controllers.LiveController,
	projectRepository shared.ProjectRepository,
	userProjectRepository shared.UserProjectRepository,
	superAdminRepository shared.SuperAdminRepository,
	pileRepository shared.PileRepository,
	rbac shared.AccessControl,
) ProjectRouter {
	/**
	Project scoped router
	All routes below this line are scoped to a specific project.
	*/
	projectScopedRBAC := middlewares.ProjectAccessControlFactory(projectRepository, userProjectRepository, superAdminRepository, rbac)

	projectRouter := sessionRouter.Group.Group("/projects/:projectID", projectScopedRBAC(shared.ObjectProject, shared.ActionRead))
	projectRouter.GET("/", projectController.Read)
	projectRouter.PATCH("/", projectController.Update, projectScopedRBAC(shared.ObjectProject, shared.ActionUpdate))
	projectRouter.GET("/members/", projectController.Members, projectScopedRBAC(shared.ObjectMember, shared.ActionRead))

	projectRouter.GET("/invitations/", invitationController.List, projectScopedRBAC(shared.ObjectInvitation, shared.ActionRead))
	projectRouter.POST("/invitations/", invitationController.Create, projectScopedRBAC(shared.ObjectInvitation, shared.ActionCreate))
	projectRouter.DELETE("/invitations/:invitationID/", invitationController.Delete, projectScopedRBAC(shared.ObjectInvitation, shared.ActionDelete))

	projectRouter.GET("/piles/", pileController.List, projectScopedRBAC(shared.ObjectPile, shared.ActionRead))
	projectRouter.POST("/piles/", pileController.Create, projectScopedRBAC(shared.ObjectPile, shared.ActionCreate))
	projectRouter.POST("/piles/import/", pileController.Import, projectScopedRBAC(shared.ObjectPile, shared.ActionCreate))
	projectRouter.POST("/piles/bulk/", pileController.Bulk, projectScopedRBAC(shared.ObjectPile, shared.ActionCreate))
	projectRouter.GET("/piles/export.csv/", pileController.Export, projectScopedRBAC(shared.ObjectPile, shared.ActionRead))

	pileRouter := projectRouter.Group("/piles/:pileID", projectScopedRBAC(shared.ObjectPile, shared.ActionRead), middlewares.PileMiddleware(pileRepository))
	pileRouter.GET("/", pileController.Read)
	pileRouter.PATCH("/", pileController.Update, projectScopedRBAC(shared.ObjectPile, shared.ActionUpdate))
	pileRouter.DELETE("/", pileController.Delete, projectScopedRBAC(shared.ObjectPile, shared.ActionDelete))
	pileRouter.GET("/events/", pileController.Events)

	statsRouter := projectRouter.Group("/stats", projectScopedRBAC(shared.ObjectStatistics, shared.ActionRead))
	statsRouter.GET("/summary/", statisticsController.GetSummary)
	statsRouter.GET("/blocks/", statisticsController.GetBlockDistribution)
	statsRouter.GET("/timeline/", statisticsController.GetTimeline)
	statsRouter.GET("/heatmap/", statisticsController.GetHeatmap)
	statsRouter.GET("/dashboard/", statisticsController.GetDashboard)

	projectRouter.GET("/weather/", weatherController.GetCurrent)
	projectRouter.GET("/live/", liveController.Connect)

	return ProjectRouter{Group: projectRouter}
}

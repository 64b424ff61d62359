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
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectService shared.ProjectService
	memberService  shared.MemberService
	rbac           shared.AccessControl
}

func NewProjectController(projectService shared.ProjectService, memberService shared.MemberService, rbac shared.AccessControl) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		memberService:  memberService,
		rbac:           rbac,
	}
}

func (c *ProjectController) List(ctx shared.Context) error {
	paged, err := c.projectService.ListForUser(
		shared.GetSession(ctx).GetUserID(),
		shared.IsSuperAdmin(ctx),
		shared.GetPageInfo(ctx),
		ctx.QueryParam("search"),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(200, paged.Map(func(p models.Project) any {
		return transformer.ProjectModelToDTO(p)
	}))
}

func (c *ProjectController) Read(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	role := shared.GetProjectRole(ctx)

	// super admins without a membership get everything the owner may do
	permissionRole := role
	if permissionRole == "" && shared.IsSuperAdmin(ctx) {
		permissionRole = shared.RoleOwner
	}

	permissions, err := c.rbac.GetPermissions(permissionRole)
	if err != nil {
		return echo.NewHTTPError(500, "could not get permissions").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ProjectModelToDetailsDTO(project, role, permissions))
}

func (c *ProjectController) Update(ctx shared.Context) error {
	var req dtos.ProjectPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project := shared.GetProject(ctx)
	if err := c.projectService.Update(ctx.Request().Context(), shared.GetSession(ctx).GetUserID(), &project, req); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ProjectModelToDTO(project))
}

func (c *ProjectController) Members(ctx shared.Context) error {
	members, err := c.memberService.ListMembers(ctx.Request().Context(), shared.GetProject(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(200, members)
}

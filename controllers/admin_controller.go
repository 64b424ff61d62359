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
	"log/slog"
	"strconv"

	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/l3montree-dev/piletracker/utils"
	"github.com/labstack/echo/v4"
)

// AdminController serves the /api/admin catalogue. Most handlers are limited to super
// admins by the router, the membership handlers are open to project admins as well.
type AdminController struct {
	projectAuthorizer
	userService       shared.UserService
	projectService    shared.ProjectService
	projectRepository shared.ProjectRepository
	invitationService shared.InvitationService
	statisticsService shared.StatisticsService
}

func NewAdminController(
	userService shared.UserService,
	memberService shared.MemberService,
	projectService shared.ProjectService,
	projectRepository shared.ProjectRepository,
	invitationService shared.InvitationService,
	statisticsService shared.StatisticsService,
	rbac shared.AccessControl,
) *AdminController {
	return &AdminController{
		projectAuthorizer: projectAuthorizer{memberService: memberService, rbac: rbac},
		userService:       userService,
		projectService:    projectService,
		projectRepository: projectRepository,
		invitationService: invitationService,
		statisticsService: statisticsService,
	}
}

func (c *AdminController) CreateUser(ctx shared.Context) error {
	var req dtos.CreateUserRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	user, err := c.userService.CreateUser(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	if req.ProjectID != nil {
		role := shared.RoleViewer
		if req.Role != "" {
			role = shared.Role(req.Role)
		}
		if _, err := c.memberService.Assign(ctx.Request().Context(), *req.ProjectID, user.ID, role); err != nil {
			slog.Error("user created but could not be assigned to the project", "userID", user.ID, "projectID", req.ProjectID, "err", err)
			return err
		}
	}

	return ctx.JSON(201, user)
}

func (c *AdminController) ListUsers(ctx shared.Context) error {
	pageSize, _ := strconv.ParseInt(ctx.QueryParam("pageSize"), 10, 64)
	if pageSize <= 0 || pageSize > 250 {
		pageSize = 250
	}

	users, err := c.userService.ListUsers(ctx.Request().Context(), pageSize, ctx.QueryParam("pageToken"))
	if err != nil {
		return err
	}
	return ctx.JSON(200, users)
}

func (c *AdminController) CreateProject(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	ownerID := req.OwnerID
	if ownerID == "" {
		ownerID = shared.GetSession(ctx).GetUserID()
	}

	project := transformer.ProjectCreateRequestToModel(req)
	if err := c.projectService.Create(ctx.Request().Context(), &project, ownerID); err != nil {
		return err
	}

	return ctx.JSON(201, transformer.ProjectModelToDTO(project))
}

func (c *AdminController) AssignUserToProject(ctx shared.Context) error {
	var req dtos.AssignUserRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if _, err := c.authorize(ctx, req.ProjectID, shared.ObjectMember, shared.ActionCreate); err != nil {
		return err
	}

	membership, err := c.memberService.Assign(ctx.Request().Context(), req.ProjectID, req.UserID, shared.Role(req.Role))
	if err != nil {
		return err
	}
	return ctx.JSON(201, membership)
}

func (c *AdminController) UpdateUserRole(ctx shared.Context) error {
	var req dtos.UpdateUserRoleRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if _, err := c.authorize(ctx, req.ProjectID, shared.ObjectMember, shared.ActionUpdate); err != nil {
		return err
	}

	if err := c.memberService.UpdateRole(ctx.Request().Context(), req.ProjectID, req.UserID, shared.Role(req.Role)); err != nil {
		return err
	}
	return ctx.NoContent(200)
}

func (c *AdminController) RemoveUserFromProject(ctx shared.Context) error {
	var req dtos.RemoveUserRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if _, err := c.authorize(ctx, req.ProjectID, shared.ObjectMember, shared.ActionDelete); err != nil {
		return err
	}

	if err := c.memberService.Remove(ctx.Request().Context(), req.ProjectID, req.UserID); err != nil {
		return err
	}
	return ctx.NoContent(200)
}

func (c *AdminController) GetProjectData(ctx shared.Context) error {
	projectID, err := projectIDQueryParam(ctx)
	if err != nil {
		return err
	}

	// admins are the lowest role which may see the invitations
	if _, err := c.authorize(ctx, projectID, shared.ObjectInvitation, shared.ActionRead); err != nil {
		return err
	}

	project, err := c.projectRepository.Read(projectID)
	if err != nil {
		return echo.NewHTTPError(404, "could not find project").WithInternal(err)
	}

	members, err := c.memberService.ListMembers(ctx.Request().Context(), project.ID)
	if err != nil {
		return err
	}

	invitations, err := c.invitationService.ListPending(project.ID)
	if err != nil {
		return err
	}

	summary, err := c.statisticsService.GetSummary(project)
	if err != nil {
		return err
	}

	return ctx.JSON(200, dtos.ProjectDataDTO{
		Project:     transformer.ProjectModelToDTO(project),
		Members:     members,
		Invitations: utils.Map(invitations, transformer.InvitationModelToDTO),
		Statistics:  summary,
	})
}

func (c *AdminController) TransferOwnership(ctx shared.Context) error {
	var req dtos.TransferOwnershipRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	// only the owner holds the delete permission on the project
	if _, err := c.authorize(ctx, req.ProjectID, shared.ObjectProject, shared.ActionDelete); err != nil {
		return err
	}

	if err := c.projectService.TransferOwnership(ctx.Request().Context(), req.ProjectID, req.UserID); err != nil {
		return err
	}
	return ctx.NoContent(200)
}

func (c *AdminController) DeleteProject(ctx shared.Context) error {
	projectID, err := projectIDQueryParam(ctx)
	if err != nil {
		return err
	}

	if _, err := c.authorize(ctx, projectID, shared.ObjectProject, shared.ActionDelete); err != nil {
		return err
	}

	if err := c.projectService.Delete(ctx.Request().Context(), projectID); err != nil {
		return err
	}
	return ctx.NoContent(200)
}

func (c *AdminController) ListSuperAdmins(ctx shared.Context) error {
	superAdmins, err := c.userService.ListSuperAdmins()
	if err != nil {
		return err
	}
	return ctx.JSON(200, superAdmins)
}

func (c *AdminController) GrantSuperAdmin(ctx shared.Context) error {
	var req dtos.SuperAdminRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.userService.GrantSuperAdmin(ctx.Request().Context(), req.UserID, shared.GetSession(ctx).GetUserID()); err != nil {
		return err
	}
	return ctx.NoContent(201)
}

func (c *AdminController) RevokeSuperAdmin(ctx shared.Context) error {
	userID := shared.SanitizeParam(ctx.Param("userID"))
	if userID == "" {
		return echo.NewHTTPError(400, "userID is required")
	}

	if err := c.userService.RevokeSuperAdmin(ctx.Request().Context(), userID, shared.GetSession(ctx).GetUserID()); err != nil {
		return err
	}
	return ctx.NoContent(200)
}

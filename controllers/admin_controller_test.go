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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type adminMocks struct {
	userService       *mocks.UserService
	memberService     *mocks.MemberService
	projectService    *mocks.ProjectService
	projectRepository *mocks.ProjectRepository
	invitationService *mocks.InvitationService
	statisticsService *mocks.StatisticsService
	rbac              *mocks.AccessControl
}

func newTestAdminController(t *testing.T) (*AdminController, adminMocks) {
	m := adminMocks{
		userService:       mocks.NewUserService(t),
		memberService:     mocks.NewMemberService(t),
		projectService:    mocks.NewProjectService(t),
		projectRepository: mocks.NewProjectRepository(t),
		invitationService: mocks.NewInvitationService(t),
		statisticsService: mocks.NewStatisticsService(t),
		rbac:              mocks.NewAccessControl(t),
	}
	return NewAdminController(m.userService, m.memberService, m.projectService, m.projectRepository, m.invitationService, m.statisticsService, m.rbac), m
}

func TestAdminCreateUser(t *testing.T) {
	t.Run("should reject an invalid email", func(t *testing.T) {
		controller, _ := newTestAdminController(t)
		ctx, _ := newTestContext(t, http.MethodPost, "/api/admin/create-user/", map[string]any{
			"email": "not-an-email",
			"name":  "Jane",
		})

		err := controller.CreateUser(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should assign the new user to the given project", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		projectID := uuid.New()
		ctx, rec := newTestContext(t, http.MethodPost, "/api/admin/create-user/", map[string]any{
			"email":     "jane@example.com",
			"name":      "Jane",
			"projectId": projectID,
			"role":      "editor",
		})

		m.userService.On("CreateUser", mock.Anything, mock.MatchedBy(func(req dtos.CreateUserRequest) bool {
			return req.Email == "jane@example.com"
		})).Return(dtos.UserDTO{ID: "jane", Email: "jane@example.com", Name: "Jane"}, nil)
		m.memberService.On("Assign", mock.Anything, projectID, "jane", shared.RoleEditor).Return(models.UserProject{}, nil)

		err := controller.CreateUser(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 201, rec.Code)

		var user dtos.UserDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "jane", user.ID)
	})

	t.Run("should default to the viewer role", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		projectID := uuid.New()
		ctx, _ := newTestContext(t, http.MethodPost, "/api/admin/create-user/", map[string]any{
			"email":     "jane@example.com",
			"name":      "Jane",
			"projectId": projectID,
		})

		m.userService.On("CreateUser", mock.Anything, mock.Anything).Return(dtos.UserDTO{ID: "jane"}, nil)
		m.memberService.On("Assign", mock.Anything, projectID, "jane", shared.RoleViewer).Return(models.UserProject{}, nil)

		assert.NoError(t, controller.CreateUser(ctx))
	})
}

func TestAdminAssignUserToProject(t *testing.T) {
	projectID := uuid.New()
	body := map[string]any{"userId": "user2", "projectId": projectID, "role": "viewer"}

	t.Run("should let project admins assign members", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		ctx, rec := newTestContext(t, http.MethodPost, "/api/admin/assign-user-to-project/", body)

		m.memberService.On("GetRole", "user1", projectID).Return(shared.RoleAdmin, nil)
		m.rbac.On("IsAllowed", shared.RoleAdmin, shared.ObjectMember, shared.ActionCreate).Return(true, nil)
		m.memberService.On("Assign", mock.Anything, projectID, "user2", shared.RoleViewer).Return(models.UserProject{UserID: "user2", ProjectID: projectID, Role: "viewer"}, nil)

		assert.NoError(t, controller.AssignUserToProject(ctx))
		assert.Equal(t, 201, rec.Code)
	})

	t.Run("should forbid editors", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		ctx, _ := newTestContext(t, http.MethodPost, "/api/admin/assign-user-to-project/", body)

		m.memberService.On("GetRole", "user1", projectID).Return(shared.RoleEditor, nil)
		m.rbac.On("IsAllowed", shared.RoleEditor, shared.ObjectMember, shared.ActionCreate).Return(false, nil)

		err := controller.AssignUserToProject(ctx)
		assert.Equal(t, 403, httpStatus(t, err))
	})

	t.Run("should hide the project from non members", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		ctx, _ := newTestContext(t, http.MethodPost, "/api/admin/assign-user-to-project/", body)

		m.memberService.On("GetRole", "user1", projectID).Return(shared.Role(""), gorm.ErrRecordNotFound)

		err := controller.AssignUserToProject(ctx)
		assert.Equal(t, 404, httpStatus(t, err))
	})

	t.Run("should let super admins assign without membership", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		ctx, _ := newTestContext(t, http.MethodPost, "/api/admin/assign-user-to-project/", body)
		shared.SetIsSuperAdmin(ctx, true)

		m.memberService.On("GetRole", "user1", projectID).Return(shared.Role(""), gorm.ErrRecordNotFound)
		m.memberService.On("Assign", mock.Anything, projectID, "user2", shared.RoleViewer).Return(models.UserProject{}, nil)

		assert.NoError(t, controller.AssignUserToProject(ctx))
	})

	t.Run("should pass the conflict of an existing membership", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		ctx, _ := newTestContext(t, http.MethodPost, "/api/admin/assign-user-to-project/", body)
		shared.SetIsSuperAdmin(ctx, true)

		m.memberService.On("GetRole", "user1", projectID).Return(shared.RoleOwner, nil)
		m.memberService.On("Assign", mock.Anything, projectID, "user2", shared.RoleViewer).Return(models.UserProject{}, echo.NewHTTPError(409, "user is already a member").WithInternal(shared.ErrAlreadyMember))

		err := controller.AssignUserToProject(ctx)
		assert.Equal(t, 409, httpStatus(t, err))
	})
}

func TestAdminGetProjectData(t *testing.T) {
	t.Run("should aggregate project, members, invitations and statistics", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		project := testProject()
		ctx, rec := newTestContext(t, http.MethodGet, "/api/admin/get-project-data/?projectId="+project.ID.String(), nil)

		m.memberService.On("GetRole", "user1", project.ID).Return(shared.RoleOwner, nil)
		m.rbac.On("IsAllowed", shared.RoleOwner, shared.ObjectInvitation, shared.ActionRead).Return(true, nil)
		m.projectRepository.On("Read", project.ID).Return(project, nil)
		m.memberService.On("ListMembers", mock.Anything, project.ID).Return([]dtos.MemberDTO{{UserDTO: dtos.UserDTO{ID: "user1"}, Role: "owner"}}, nil)
		m.invitationService.On("ListPending", project.ID).Return([]models.ProjectInvitation{{Email: "new@example.com", Role: "viewer"}}, nil)
		m.statisticsService.On("GetSummary", project).Return(dtos.StatisticsSummary{Total: 3}, nil)

		assert.NoError(t, controller.GetProjectData(ctx))
		assert.Equal(t, 200, rec.Code)

		var data dtos.ProjectDataDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		assert.Equal(t, "solar-farm", data.Project.Slug)
		assert.Len(t, data.Members, 1)
		assert.Len(t, data.Invitations, 1)
		assert.Equal(t, int64(3), data.Statistics.Total)
	})

	t.Run("should reject a missing project id", func(t *testing.T) {
		controller, _ := newTestAdminController(t)
		ctx, _ := newTestContext(t, http.MethodGet, "/api/admin/get-project-data/", nil)

		err := controller.GetProjectData(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})
}

func TestAdminDeleteProject(t *testing.T) {
	t.Run("should only allow the owner", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		projectID := uuid.New()
		ctx, _ := newTestContext(t, http.MethodDelete, "/api/admin/delete-project/?projectId="+projectID.String(), nil)

		m.memberService.On("GetRole", "user1", projectID).Return(shared.RoleAdmin, nil)
		m.rbac.On("IsAllowed", shared.RoleAdmin, shared.ObjectProject, shared.ActionDelete).Return(false, nil)

		err := controller.DeleteProject(ctx)
		assert.Equal(t, 403, httpStatus(t, err))
	})

	t.Run("should delete the project as super admin", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		projectID := uuid.New()
		ctx, rec := newTestContext(t, http.MethodDelete, "/api/admin/delete-project/?projectId="+projectID.String(), nil)
		shared.SetIsSuperAdmin(ctx, true)

		m.memberService.On("GetRole", "user1", projectID).Return(shared.Role(""), gorm.ErrRecordNotFound)
		m.projectService.On("Delete", mock.Anything, projectID).Return(nil)

		assert.NoError(t, controller.DeleteProject(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

func TestAdminRevokeSuperAdmin(t *testing.T) {
	t.Run("should pass the revoking user", func(t *testing.T) {
		controller, m := newTestAdminController(t)
		ctx, rec := newTestContext(t, http.MethodDelete, "/", nil)
		ctx.SetParamNames("userID")
		ctx.SetParamValues("user2")

		m.userService.On("RevokeSuperAdmin", mock.Anything, "user2", "user1").Return(nil)

		assert.NoError(t, controller.RevokeSuperAdmin(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

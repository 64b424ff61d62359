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

	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProjectControllerRead(t *testing.T) {
	t.Run("should return the role and permissions of the member", func(t *testing.T) {
		rbac := mocks.NewAccessControl(t)
		controller := NewProjectController(mocks.NewProjectService(t), mocks.NewMemberService(t), rbac)
		ctx, rec := newTestContext(t, http.MethodGet, "/", nil)
		shared.SetProject(ctx, testProject())
		shared.SetProjectRole(ctx, shared.RoleViewer)

		rbac.On("GetPermissions", shared.RoleViewer).Return([]shared.Permission{{Object: shared.ObjectPile, Action: shared.ActionRead}}, nil)

		assert.NoError(t, controller.Read(ctx))

		var details dtos.ProjectDetailsDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
		assert.Equal(t, "viewer", details.Role)
		assert.Equal(t, []dtos.PermissionDTO{{Object: "pile", Action: "read"}}, details.Permissions)
	})

	t.Run("should give super admins the owner permissions", func(t *testing.T) {
		rbac := mocks.NewAccessControl(t)
		controller := NewProjectController(mocks.NewProjectService(t), mocks.NewMemberService(t), rbac)
		ctx, rec := newTestContext(t, http.MethodGet, "/", nil)
		shared.SetProject(ctx, testProject())
		shared.SetIsSuperAdmin(ctx, true)

		rbac.On("GetPermissions", shared.RoleOwner).Return([]shared.Permission{}, nil)

		assert.NoError(t, controller.Read(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

func TestProjectControllerList(t *testing.T) {
	t.Run("should list the projects of the user", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)
		controller := NewProjectController(projectService, mocks.NewMemberService(t), mocks.NewAccessControl(t))
		ctx, rec := newTestContext(t, http.MethodGet, "/?search=solar", nil)

		pageInfo := shared.PageInfo{Page: 1, PageSize: 10}
		projectService.On("ListForUser", "user1", false, pageInfo, "solar").Return(shared.NewPaged(pageInfo, 1, []models.Project{testProject()}), nil)

		assert.NoError(t, controller.List(ctx))

		var paged struct {
			Total int64             `json:"total"`
			Data  []dtos.ProjectDTO `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &paged))
		assert.Equal(t, int64(1), paged.Total)
		assert.Equal(t, "solar-farm", paged.Data[0].Slug)
	})
}

func TestProjectControllerUpdate(t *testing.T) {
	t.Run("should reject a negative tolerance", func(t *testing.T) {
		controller := NewProjectController(mocks.NewProjectService(t), mocks.NewMemberService(t), mocks.NewAccessControl(t))
		ctx, _ := newTestContext(t, http.MethodPatch, "/", map[string]any{"embedmentTolerance": -1})
		shared.SetProject(ctx, testProject())

		err := controller.Update(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should update the project of the path", func(t *testing.T) {
		projectService := mocks.NewProjectService(t)
		controller := NewProjectController(projectService, mocks.NewMemberService(t), mocks.NewAccessControl(t))
		ctx, rec := newTestContext(t, http.MethodPatch, "/", map[string]any{"embedmentTolerance": 0.5})
		shared.SetProject(ctx, testProject())

		projectService.On("Update", mock.Anything, "user1", mock.AnythingOfType("*models.Project"), mock.Anything).Return(nil)

		assert.NoError(t, controller.Update(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

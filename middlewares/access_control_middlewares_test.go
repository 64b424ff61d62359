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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/auth"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func newContext(userID string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())
	shared.SetSession(ctx, auth.NewSession(userID, "", nil))
	return ctx
}

func next(called *bool) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		*called = true
		return nil
	}
}

func TestRequireSession(t *testing.T) {
	t.Run("should reject requests without a session", func(t *testing.T) {
		ctx := newContext("")
		shared.SetSession(ctx, auth.NoSession)

		var called bool
		err := RequireSession()(next(&called))(ctx)
		assert.Equal(t, 401, httpStatus(t, err))
		assert.False(t, called)
	})

	t.Run("should pass authenticated requests", func(t *testing.T) {
		var called bool
		err := RequireSession()(next(&called))(newContext("user1"))
		assert.NoError(t, err)
		assert.True(t, called)
	})
}

func TestSuperAdminMiddleware(t *testing.T) {
	t.Run("should answer 403 for regular users", func(t *testing.T) {
		repo := mocks.NewSuperAdminRepository(t)
		repo.On("IsSuperAdmin", "user1").Return(false, nil)

		var called bool
		err := SuperAdminMiddleware(repo)(next(&called))(newContext("user1"))
		assert.Equal(t, 403, httpStatus(t, err))
		assert.False(t, called)
	})

	t.Run("should mark super admins on the context", func(t *testing.T) {
		repo := mocks.NewSuperAdminRepository(t)
		repo.On("IsSuperAdmin", "admin").Return(true, nil)

		ctx := newContext("admin")
		var called bool
		err := SuperAdminMiddleware(repo)(next(&called))(ctx)
		assert.NoError(t, err)
		assert.True(t, called)
		assert.True(t, shared.IsSuperAdmin(ctx))
	})
}

func TestProjectAccessControl(t *testing.T) {
	project := models.Project{Slug: "solar-farm"}
	project.ID = uuid.New()

	setup := func(t *testing.T) (*mocks.ProjectRepository, *mocks.UserProjectRepository, *mocks.SuperAdminRepository, *mocks.AccessControl, echo.Context) {
		projectRepository := mocks.NewProjectRepository(t)
		userProjectRepository := mocks.NewUserProjectRepository(t)
		superAdminRepository := mocks.NewSuperAdminRepository(t)
		rbac := mocks.NewAccessControl(t)

		ctx := newContext("user1")
		ctx.SetParamNames("projectID")
		ctx.SetParamValues("solar-farm")
		projectRepository.On("ReadBySlugOrID", "solar-farm").Return(project, nil)
		return projectRepository, userProjectRepository, superAdminRepository, rbac, ctx
	}

	t.Run("should answer 404 for unknown projects", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("ReadBySlugOrID", "unknown").Return(models.Project{}, gorm.ErrRecordNotFound)

		ctx := newContext("user1")
		ctx.SetParamNames("projectID")
		ctx.SetParamValues("unknown")

		var called bool
		mw := ProjectAccessControlFactory(projectRepository, nil, nil, nil)(shared.ObjectProject, shared.ActionRead)
		err := mw(next(&called))(ctx)
		assert.Equal(t, 404, httpStatus(t, err))
	})

	t.Run("should hide the project from non members", func(t *testing.T) {
		projectRepository, userProjectRepository, superAdminRepository, rbac, ctx := setup(t)
		superAdminRepository.On("IsSuperAdmin", "user1").Return(false, nil)
		userProjectRepository.On("Find", mock.Anything, "user1", project.ID).Return(models.UserProject{}, gorm.ErrRecordNotFound)

		var called bool
		mw := ProjectAccessControlFactory(projectRepository, userProjectRepository, superAdminRepository, rbac)(shared.ObjectProject, shared.ActionRead)
		err := mw(next(&called))(ctx)
		assert.Equal(t, 404, httpStatus(t, err))
		assert.False(t, called)
	})

	t.Run("should answer 404 if the role lacks the permission", func(t *testing.T) {
		projectRepository, userProjectRepository, superAdminRepository, rbac, ctx := setup(t)
		superAdminRepository.On("IsSuperAdmin", "user1").Return(false, nil)
		userProjectRepository.On("Find", mock.Anything, "user1", project.ID).Return(models.UserProject{Role: "viewer"}, nil)
		rbac.On("IsAllowed", shared.RoleViewer, shared.ObjectPile, shared.ActionDelete).Return(false, nil)

		var called bool
		mw := ProjectAccessControlFactory(projectRepository, userProjectRepository, superAdminRepository, rbac)(shared.ObjectPile, shared.ActionDelete)
		err := mw(next(&called))(ctx)
		assert.Equal(t, 404, httpStatus(t, err))
		assert.False(t, called)
	})

	t.Run("should set project and role for allowed members", func(t *testing.T) {
		projectRepository, userProjectRepository, superAdminRepository, rbac, ctx := setup(t)
		superAdminRepository.On("IsSuperAdmin", "user1").Return(false, nil)
		userProjectRepository.On("Find", mock.Anything, "user1", project.ID).Return(models.UserProject{Role: "editor"}, nil)
		rbac.On("IsAllowed", shared.RoleEditor, shared.ObjectPile, shared.ActionCreate).Return(true, nil)

		var called bool
		mw := ProjectAccessControlFactory(projectRepository, userProjectRepository, superAdminRepository, rbac)(shared.ObjectPile, shared.ActionCreate)
		err := mw(next(&called))(ctx)
		assert.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, project.ID, shared.GetProject(ctx).ID)
		assert.Equal(t, shared.RoleEditor, shared.GetProjectRole(ctx))
	})

	t.Run("should let super admins bypass the membership check", func(t *testing.T) {
		projectRepository, userProjectRepository, superAdminRepository, rbac, ctx := setup(t)
		superAdminRepository.On("IsSuperAdmin", "user1").Return(true, nil)
		userProjectRepository.On("Find", mock.Anything, "user1", project.ID).Return(models.UserProject{}, gorm.ErrRecordNotFound)

		var called bool
		mw := ProjectAccessControlFactory(projectRepository, userProjectRepository, superAdminRepository, rbac)(shared.ObjectProject, shared.ActionDelete)
		err := mw(next(&called))(ctx)
		assert.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, shared.Role(""), shared.GetProjectRole(ctx))
	})
}

func TestHTTPErrorHandler(t *testing.T) {
	t.Run("should not leak internal errors", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		httpErrorHandler(errors.New("pq: password authentication failed"), ctx)
		assert.Equal(t, 500, rec.Code)
		assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
	})

	t.Run("should wrap http error messages", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		httpErrorHandler(echo.NewHTTPError(409, "pile number already exists").WithInternal(gorm.ErrDuplicatedKey), ctx)
		assert.Equal(t, 409, rec.Code)
		assert.JSONEq(t, `{"message":"pile number already exists"}`, rec.Body.String())
	})
}

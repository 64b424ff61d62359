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

package shared

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/ory/client-go"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// AllRoles is ordered from the most to the least powerful role.
var AllRoles = []Role{RoleOwner, RoleAdmin, RoleEditor, RoleViewer}

func (r Role) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Rank returns a higher number for more powerful roles. Unknown roles rank 0.
func (r Role) Rank() int {
	for i, role := range AllRoles {
		if r == role {
			return len(AllRoles) - i
		}
	}
	return 0
}

type Object string

const (
	ObjectProject    Object = "project"
	ObjectPile       Object = "pile"
	ObjectMember     Object = "member"
	ObjectInvitation Object = "invitation"
	ObjectStatistics Object = "statistics"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Permission struct {
	Object Object `json:"object"`
	Action Action `json:"action"`
}

type AccessControl interface {
	IsAllowed(role Role, object Object, action Action) (bool, error)
	GetPermissions(role Role) ([]Permission, error)
}

type RBACMiddleware = func(obj Object, act Action) MiddlewareFunc

type AuthSession interface {
	GetUserID() string
	GetEmail() string
	GetScopes() []string
}

// TokenVerifier validates bearer tokens which were issued outside of kratos.
type TokenVerifier interface {
	VerifyToken(token string) (AuthSession, error)
}

type AdminClient interface {
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
	GetIdentityFromSessionToken(ctx context.Context, token string) (client.Identity, error)
	GetIdentity(ctx context.Context, userID string) (client.Identity, error)
	ListUser(ctx context.Context, request ListUserRequest) ([]client.Identity, error)
	CreateIdentity(ctx context.Context, email, name, password string) (client.Identity, error)
	DeleteIdentity(ctx context.Context, userID string) error
}

type ListUserRequest struct {
	IDs       []string
	Email     string
	PageSize  int64
	PageToken string
}

type Repository[ID any, T any, Tx any] interface {
	Create(tx Tx, t *T) error
	Read(id ID) (T, error)
	List(ids []ID) ([]T, error)
	Save(tx Tx, t *T) error
	Delete(tx Tx, id ID) error
	Transaction(func(tx Tx) error) error
	GetDB(tx Tx) Tx
}

type ProjectRepository interface {
	Repository[uuid.UUID, models.Project, DB]
	ReadBySlugOrID(slugOrID string) (models.Project, error)
	SlugExists(tx DB, slug string) (bool, error)
	ListPaged(projectIDs []uuid.UUID, pageInfo PageInfo, search string) (Paged[models.Project], error)
	ListAllPaged(pageInfo PageInfo, search string) (Paged[models.Project], error)
	// DeleteCascade removes the project and every row referencing it.
	DeleteCascade(tx DB, projectID uuid.UUID) error
}

type PileRepository interface {
	Repository[uuid.UUID, models.Pile, DB]
	ReadInProject(projectID, pileID uuid.UUID) (models.Pile, error)
	ListPaged(projectID uuid.UUID, pageInfo PageInfo, search string, filter []FilterQuery, sort []SortQuery) (Paged[models.Pile], error)
	ListByProject(tx DB, projectID uuid.UUID) ([]models.Pile, error)
	ListByPileNumbers(tx DB, projectID uuid.UUID, pileNumbers []string) ([]models.Pile, error)
	SaveBatch(tx DB, piles []models.Pile) error
	PurgeDeletedBefore(tx DB, before time.Time) (int64, error)
}

type PileEventRepository interface {
	Create(tx DB, event *models.PileEvent) error
	CreateBatch(tx DB, events []models.PileEvent) error
	ListByPile(pileID uuid.UUID, pageInfo PageInfo) (Paged[models.PileEvent], error)
}

type UserProjectRepository interface {
	Create(tx DB, membership *models.UserProject) error
	Save(tx DB, membership *models.UserProject) error
	Find(tx DB, userID string, projectID uuid.UUID) (models.UserProject, error)
	FindOwner(tx DB, projectID uuid.UUID) (models.UserProject, error)
	ListByProject(projectID uuid.UUID) ([]models.UserProject, error)
	ListProjectIDsByUser(userID string) ([]uuid.UUID, error)
	Remove(tx DB, userID string, projectID uuid.UUID) error
	Transaction(func(tx DB) error) error
}

type SuperAdminRepository interface {
	IsSuperAdmin(userID string) (bool, error)
	Grant(tx DB, userID, grantedBy string) error
	Revoke(tx DB, userID string) error
	List() ([]models.SuperAdmin, error)
}

type InvitationRepository interface {
	Create(tx DB, invitation *models.ProjectInvitation) error
	Save(tx DB, invitation *models.ProjectInvitation) error
	Read(id uuid.UUID) (models.ProjectInvitation, error)
	FindPendingByTokenHash(tx DB, tokenHash string) (models.ProjectInvitation, error)
	ListPendingByProject(projectID uuid.UUID) ([]models.ProjectInvitation, error)
	ExpireBefore(tx DB, now time.Time) (int64, error)
	Transaction(func(tx DB) error) error
}

type ConfigRepository interface {
	Save(tx DB, config *models.Config) error
	GetDB(tx DB) DB
}

type StatisticsRepository interface {
	CountByStatus(projectID uuid.UUID) (map[models.PileStatus]int64, error)
	Averages(projectID uuid.UUID) (models.PileAverages, error)
	BlockStatusCounts(projectID uuid.UUID) ([]models.BlockStatusCount, error)
	DailyStatusCounts(projectID uuid.UUID, from, to *time.Time) ([]models.DailyStatusCount, error)
	PilePoints(projectID uuid.UUID) ([]models.PilePoint, error)
}

type ProjectService interface {
	Create(ctx context.Context, project *models.Project, ownerID string) error
	Update(ctx context.Context, userID string, project *models.Project, req dtos.ProjectPatchRequest) error
	Delete(ctx context.Context, projectID uuid.UUID) error
	ListForUser(userID string, isSuperAdmin bool, pageInfo PageInfo, search string) (Paged[models.Project], error)
	TransferOwnership(ctx context.Context, projectID uuid.UUID, newOwnerID string) error
}

type MemberService interface {
	Assign(ctx context.Context, projectID uuid.UUID, userID string, role Role) (models.UserProject, error)
	UpdateRole(ctx context.Context, projectID uuid.UUID, userID string, role Role) error
	Remove(ctx context.Context, projectID uuid.UUID, userID string) error
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]dtos.MemberDTO, error)
	GetRole(userID string, projectID uuid.UUID) (Role, error)
}

type PileService interface {
	Create(ctx context.Context, project models.Project, userID string, pile *models.Pile) error
	Update(ctx context.Context, project models.Project, userID string, pile *models.Pile, changes map[string]any) error
	Delete(ctx context.Context, project models.Project, userID string, pile models.Pile) error
	Import(ctx context.Context, project models.Project, userID string, piles []models.Pile) (dtos.ImportResult, error)
	RederiveStatuses(tx DB, project models.Project, userID string) (int, error)
}

type StatisticsService interface {
	GetSummary(project models.Project) (dtos.StatisticsSummary, error)
	GetBlockDistribution(projectID uuid.UUID) ([]dtos.BlockDistribution, error)
	GetTimeline(projectID uuid.UUID, interval dtos.TimelineInterval, from, to *time.Time) ([]dtos.TimelineBucket, error)
	GetHeatmap(projectID uuid.UUID, precision int) ([]dtos.HeatmapCell, error)
	GetDashboard(ctx context.Context, project models.Project, interval dtos.TimelineInterval) (dtos.Dashboard, error)
}

type InvitationService interface {
	Invite(ctx context.Context, project models.Project, invitedBy string, email string, role Role) (dtos.InvitationCreatedResponse, error)
	Accept(ctx context.Context, token string, userID string) (models.UserProject, error)
	Revoke(ctx context.Context, projectID uuid.UUID, invitationID uuid.UUID) error
	ListPending(projectID uuid.UUID) ([]models.ProjectInvitation, error)
	ExpireOutdated(now time.Time) (int64, error)
}

type UserService interface {
	CreateUser(ctx context.Context, req dtos.CreateUserRequest) (dtos.UserDTO, error)
	ListUsers(ctx context.Context, pageSize int64, pageToken string) ([]dtos.UserDTO, error)
	GetUsers(ctx context.Context, ids []string) (map[string]dtos.UserDTO, error)
	IsSuperAdmin(userID string) (bool, error)
	GrantSuperAdmin(ctx context.Context, userID string, grantedBy string) error
	RevokeSuperAdmin(ctx context.Context, userID string, revokedBy string) error
	ListSuperAdmins() ([]models.SuperAdmin, error)
}

type WeatherService interface {
	GetCurrent(ctx context.Context, latitude, longitude float64) (dtos.Weather, error)
}

type ImportService interface {
	ParseCSV(r io.Reader) ([]dtos.PileRequest, []dtos.ImportRowError, error)
	ParseJSON(raw []byte) ([]dtos.PileRequest, error)
	WriteCSV(w io.Writer, piles []models.Pile) error
}

type ConfigService interface {
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
	RemoveConfig(key string) error
}

type LeaderElector interface {
	// Run blocks until the context is done
	Run(ctx context.Context)
	IsLeader() bool
}

type DaemonRunner interface {
	Start()
}

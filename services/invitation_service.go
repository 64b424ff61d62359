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

package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const defaultInvitationTTL = 7 * 24 * time.Hour

type invitationService struct {
	invitationRepository  shared.InvitationRepository
	userProjectRepository shared.UserProjectRepository
	ttl                   time.Duration
	now                   func() time.Time
}

var _ shared.InvitationService = &invitationService{}

func NewInvitationService(invitationRepository shared.InvitationRepository, userProjectRepository shared.UserProjectRepository) *invitationService {
	return &invitationService{
		invitationRepository:  invitationRepository,
		userProjectRepository: userProjectRepository,
		ttl:                   shared.GetEnvDuration("INVITATION_TTL", defaultInvitationTTL),
		now:                   time.Now,
	}
}

func generateInvitationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// only the hash is stored. a database dump does not contain usable tokens.
func hashInvitationToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *invitationService) Invite(ctx context.Context, project models.Project, invitedBy string, email string, role shared.Role) (dtos.InvitationCreatedResponse, error) {
	if err := assignableRole(role); err != nil {
		return dtos.InvitationCreatedResponse{}, err
	}

	token, err := generateInvitationToken()
	if err != nil {
		return dtos.InvitationCreatedResponse{}, echo.NewHTTPError(500, "could not generate invitation token").WithInternal(err)
	}

	invitation := models.ProjectInvitation{
		ProjectID: project.ID,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      string(role),
		TokenHash: hashInvitationToken(token),
		InvitedBy: invitedBy,
		Status:    models.InvitationStatusPending,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.invitationRepository.Create(nil, &invitation); err != nil {
		return dtos.InvitationCreatedResponse{}, echo.NewHTTPError(500, "could not create invitation").WithInternal(err)
	}

	slog.Info("invitation created", "projectID", project.ID, "invitationID", invitation.ID, "role", role)
	return dtos.InvitationCreatedResponse{
		InvitationDTO: transformer.InvitationModelToDTO(invitation),
		Token:         token,
	}, nil
}

// Accept creates the membership with the invited role. The pending invitation row is locked,
// the same token cannot be used twice. An existing membership is kept as it is.
func (s *invitationService) Accept(ctx context.Context, token string, userID string) (models.UserProject, error) {
	var membership models.UserProject

	err := s.invitationRepository.Transaction(func(tx shared.DB) error {
		invitation, err := s.invitationRepository.FindPendingByTokenHash(tx, hashInvitationToken(token))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return echo.NewHTTPError(404, "invitation not found").WithInternal(shared.ErrInvitationNotFound)
			}
			return err
		}

		now := s.now()
		if invitation.IsExpired(now) {
			return echo.NewHTTPError(410, "invitation expired").WithInternal(shared.ErrInvitationExpired)
		}

		membership, err = s.userProjectRepository.Find(tx, userID, invitation.ProjectID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			membership = models.UserProject{
				UserID:    userID,
				ProjectID: invitation.ProjectID,
				Role:      invitation.Role,
			}
			if err := s.userProjectRepository.Create(tx, &membership); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			slog.Info("invitation accepted by an existing member", "userID", userID, "projectID", invitation.ProjectID)
		}

		invitation.Status = models.InvitationStatusAccepted
		invitation.AcceptedBy = &userID
		invitation.AcceptedAt = &now
		return s.invitationRepository.Save(tx, &invitation)
	})
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return models.UserProject{}, httpErr
		}
		if database.IsDuplicateKeyError(err) {
			return models.UserProject{}, echo.NewHTTPError(409, "user is already a member of the project").WithInternal(errors.Join(shared.ErrAlreadyMember, err))
		}
		return models.UserProject{}, echo.NewHTTPError(500, "could not accept invitation").WithInternal(err)
	}

	slog.Info("invitation accepted", "userID", userID, "projectID", membership.ProjectID)
	return membership, nil
}

func (s *invitationService) Revoke(ctx context.Context, projectID uuid.UUID, invitationID uuid.UUID) error {
	invitation, err := s.invitationRepository.Read(invitationID)
	// invitations of other projects are not visible
	if err != nil || invitation.ProjectID != projectID {
		return echo.NewHTTPError(404, "invitation not found").WithInternal(errors.Join(shared.ErrInvitationNotFound, err))
	}
	if invitation.Status != models.InvitationStatusPending {
		return echo.NewHTTPError(409, "only pending invitations can be revoked")
	}

	invitation.Status = models.InvitationStatusRevoked
	if err := s.invitationRepository.Save(nil, &invitation); err != nil {
		return echo.NewHTTPError(500, "could not revoke invitation").WithInternal(err)
	}
	return nil
}

func (s *invitationService) ListPending(projectID uuid.UUID) ([]models.ProjectInvitation, error) {
	invitations, err := s.invitationRepository.ListPendingByProject(projectID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list invitations").WithInternal(err)
	}
	return invitations, nil
}

// ExpireOutdated marks every pending invitation past its expiry. Used by the daemon.
func (s *invitationService) ExpireOutdated(now time.Time) (int64, error) {
	return s.invitationRepository.ExpireBefore(nil, now)
}

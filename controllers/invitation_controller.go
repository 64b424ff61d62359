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
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/l3montree-dev/piletracker/utils"
	"github.com/labstack/echo/v4"
)

type InvitationController struct {
	invitationService shared.InvitationService
}

func NewInvitationController(invitationService shared.InvitationService) *InvitationController {
	return &InvitationController{
		invitationService: invitationService,
	}
}

func (c *InvitationController) List(ctx shared.Context) error {
	invitations, err := c.invitationService.ListPending(shared.GetProject(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(200, utils.Map(invitations, transformer.InvitationModelToDTO))
}

// Create returns the token once. Only its hash is stored.
func (c *InvitationController) Create(ctx shared.Context) error {
	var req dtos.InvitationCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	created, err := c.invitationService.Invite(ctx.Request().Context(), shared.GetProject(ctx), shared.GetSession(ctx).GetUserID(), req.Email, shared.Role(req.Role))
	if err != nil {
		return err
	}
	return ctx.JSON(201, created)
}

func (c *InvitationController) Delete(ctx shared.Context) error {
	invitationID, err := shared.GetUUIDParam(ctx, "invitationID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid invitation id").WithInternal(err)
	}

	if err := c.invitationService.Revoke(ctx.Request().Context(), shared.GetProject(ctx).ID, invitationID); err != nil {
		return err
	}
	return ctx.NoContent(200)
}

func (c *InvitationController) Accept(ctx shared.Context) error {
	var req dtos.AcceptInvitationRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	membership, err := c.invitationService.Accept(ctx.Request().Context(), req.Token, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return err
	}
	return ctx.JSON(200, membership)
}

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
	"fmt"
	"io"

	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/labstack/echo/v4"
)

// bulk bodies are limited to roughly the size of MaxImportRows piles
const maxBulkBodyBytes = 10 << 20

type PileController struct {
	pileRepository      shared.PileRepository
	pileEventRepository shared.PileEventRepository
	pileService         shared.PileService
	importService       shared.ImportService
}

func NewPileController(pileRepository shared.PileRepository, pileEventRepository shared.PileEventRepository, pileService shared.PileService, importService shared.ImportService) *PileController {
	return &PileController{
		pileRepository:      pileRepository,
		pileEventRepository: pileEventRepository,
		pileService:         pileService,
		importService:       importService,
	}
}

func (c *PileController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	filter := shared.GetFilterQuery(ctx)
	// shortcuts used by the dashboard links
	if status := ctx.QueryParam("status"); status != "" {
		filter = append(filter, shared.NewFilterQuery("status", "is", status))
	}
	if block := ctx.QueryParam("block"); block != "" {
		filter = append(filter, shared.NewFilterQuery("block", "is", block))
	}

	paged, err := c.pileRepository.ListPaged(project.ID, shared.GetPageInfo(ctx), ctx.QueryParam("search"), filter, shared.GetSortQuery(ctx))
	if err != nil {
		return echo.NewHTTPError(500, "could not list piles").WithInternal(err)
	}
	return ctx.JSON(200, paged)
}

func (c *PileController) Create(ctx shared.Context) error {
	var req dtos.PileRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project := shared.GetProject(ctx)
	pile, err := transformer.PileRequestToModel(req, project.ID)
	if err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	if err := c.pileService.Create(ctx.Request().Context(), project, shared.GetSession(ctx).GetUserID(), &pile); err != nil {
		return err
	}
	return ctx.JSON(201, pile)
}

func (c *PileController) Read(ctx shared.Context) error {
	return ctx.JSON(200, shared.GetPile(ctx))
}

func (c *PileController) Update(ctx shared.Context) error {
	var req dtos.PilePatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	pile := shared.GetPile(ctx)
	changes, err := transformer.ApplyPilePatchRequestToModel(req, &pile)
	if err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	if err := c.pileService.Update(ctx.Request().Context(), shared.GetProject(ctx), shared.GetSession(ctx).GetUserID(), &pile, changes); err != nil {
		return err
	}
	return ctx.JSON(200, pile)
}

func (c *PileController) Delete(ctx shared.Context) error {
	if err := c.pileService.Delete(ctx.Request().Context(), shared.GetProject(ctx), shared.GetSession(ctx).GetUserID(), shared.GetPile(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(200)
}

func (c *PileController) importRequests(ctx shared.Context, requests []dtos.PileRequest, rowErrors []dtos.ImportRowError) error {
	project := shared.GetProject(ctx)

	piles := make([]models.Pile, 0, len(requests))
	for _, req := range requests {
		pile, err := transformer.PileRequestToModel(req, project.ID)
		if err != nil {
			return echo.NewHTTPError(400, fmt.Sprintf("pile %s: %s", req.PileNumber, err.Error())).WithInternal(err)
		}
		piles = append(piles, pile)
	}

	result, err := c.pileService.Import(ctx.Request().Context(), project, shared.GetSession(ctx).GetUserID(), piles)
	if err != nil {
		return err
	}
	result.Errors = append(result.Errors, rowErrors...)
	return ctx.JSON(200, result)
}

// Import reads the csv from the multipart field "file". Invalid rows are reported, the valid ones are imported.
func (c *PileController) Import(ctx shared.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(400, "missing file").WithInternal(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(400, "could not open file").WithInternal(err)
	}
	defer file.Close()

	requests, rowErrors, err := c.importService.ParseCSV(file)
	if err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	return c.importRequests(ctx, requests, rowErrors)
}

// Bulk imports a json array of piles. The whole body is rejected if it does not match the schema.
func (c *PileController) Bulk(ctx shared.Context) error {
	raw, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxBulkBodyBytes+1))
	if err != nil {
		return echo.NewHTTPError(400, "could not read body").WithInternal(err)
	}
	if len(raw) > maxBulkBodyBytes {
		return echo.NewHTTPError(413, "request body too large")
	}

	requests, err := c.importService.ParseJSON(raw)
	if err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	return c.importRequests(ctx, requests, nil)
}

func (c *PileController) Export(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	piles, err := c.pileRepository.ListByProject(nil, project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list piles").WithInternal(err)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", project.Slug+"-piles.csv"))
	ctx.Response().WriteHeader(200)

	return c.importService.WriteCSV(ctx.Response(), piles)
}

func (c *PileController) Events(ctx shared.Context) error {
	paged, err := c.pileEventRepository.ListByPile(shared.GetPile(ctx).ID, shared.GetPageInfo(ctx))
	if err != nil {
		return echo.NewHTTPError(500, "could not list pile events").WithInternal(err)
	}
	return ctx.JSON(200, paged)
}

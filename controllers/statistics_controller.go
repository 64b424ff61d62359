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
	"strconv"

	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/services"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
)

type StatisticsController struct {
	statisticsService shared.StatisticsService
}

func NewStatisticsController(statisticsService shared.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

func timelineInterval(ctx shared.Context) (dtos.TimelineInterval, error) {
	interval := dtos.TimelineInterval(ctx.QueryParam("interval"))
	if interval == "" {
		return dtos.TimelineIntervalDay, nil
	}
	if !interval.IsValid() {
		return "", echo.NewHTTPError(400, "interval must be one of day, week, month")
	}
	return interval, nil
}

func (c *StatisticsController) GetSummary(ctx shared.Context) error {
	summary, err := c.statisticsService.GetSummary(shared.GetProject(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(200, summary)
}

func (c *StatisticsController) GetBlockDistribution(ctx shared.Context) error {
	blocks, err := c.statisticsService.GetBlockDistribution(shared.GetProject(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(200, blocks)
}

func (c *StatisticsController) GetTimeline(ctx shared.Context) error {
	interval, err := timelineInterval(ctx)
	if err != nil {
		return err
	}
	from, err := parseDateQueryParam(ctx, "from")
	if err != nil {
		return err
	}
	to, err := parseDateQueryParam(ctx, "to")
	if err != nil {
		return err
	}

	timeline, err := c.statisticsService.GetTimeline(shared.GetProject(ctx).ID, interval, from, to)
	if err != nil {
		return err
	}
	return ctx.JSON(200, timeline)
}

func (c *StatisticsController) GetHeatmap(ctx shared.Context) error {
	precision := services.DefaultHeatmapPrecision
	if p := ctx.QueryParam("precision"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return echo.NewHTTPError(400, "precision must be a number").WithInternal(err)
		}
		precision = parsed
	}

	cells, err := c.statisticsService.GetHeatmap(shared.GetProject(ctx).ID, precision)
	if err != nil {
		return err
	}
	return ctx.JSON(200, cells)
}

func (c *StatisticsController) GetDashboard(ctx shared.Context) error {
	interval, err := timelineInterval(ctx)
	if err != nil {
		return err
	}

	dashboard, err := c.statisticsService.GetDashboard(ctx.Request().Context(), shared.GetProject(ctx), interval)
	if err != nil {
		return err
	}
	return ctx.JSON(200, dashboard)
}

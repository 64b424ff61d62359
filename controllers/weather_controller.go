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
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	weatherService shared.WeatherService
}

func NewWeatherController(weatherService shared.WeatherService) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

func (c *WeatherController) GetCurrent(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	if project.Latitude == nil || project.Longitude == nil {
		return echo.NewHTTPError(400, "project has no coordinates").WithInternal(shared.ErrProjectNoCoordinate)
	}

	weather, err := c.weatherService.GetCurrent(ctx.Request().Context(), *project.Latitude, *project.Longitude)
	if err != nil {
		return err
	}
	return ctx.JSON(200, weather)
}

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
	"net/http"
	"testing"
	"time"

	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/l3montree-dev/piletracker/services"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatisticsControllerTimeline(t *testing.T) {
	t.Run("should reject an unknown interval", func(t *testing.T) {
		controller := NewStatisticsController(mocks.NewStatisticsService(t))
		ctx, _ := newTestContext(t, http.MethodGet, "/?interval=year", nil)
		shared.SetProject(ctx, testProject())

		err := controller.GetTimeline(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		controller := NewStatisticsController(mocks.NewStatisticsService(t))
		ctx, _ := newTestContext(t, http.MethodGet, "/?interval=week&from=yesterday", nil)
		shared.SetProject(ctx, testProject())

		err := controller.GetTimeline(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should pass interval and range", func(t *testing.T) {
		statisticsService := mocks.NewStatisticsService(t)
		controller := NewStatisticsController(statisticsService)
		project := testProject()
		ctx, rec := newTestContext(t, http.MethodGet, "/?interval=week&from=2025-03-01&to=2025-03-31", nil)
		shared.SetProject(ctx, project)

		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		statisticsService.On("GetTimeline", project.ID, dtos.TimelineIntervalWeek, &from, &to).Return([]dtos.TimelineBucket{}, nil)

		assert.NoError(t, controller.GetTimeline(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

func TestStatisticsControllerHeatmap(t *testing.T) {
	t.Run("should use the default precision", func(t *testing.T) {
		statisticsService := mocks.NewStatisticsService(t)
		controller := NewStatisticsController(statisticsService)
		project := testProject()
		ctx, _ := newTestContext(t, http.MethodGet, "/", nil)
		shared.SetProject(ctx, project)

		statisticsService.On("GetHeatmap", project.ID, services.DefaultHeatmapPrecision).Return([]dtos.HeatmapCell{}, nil)

		assert.NoError(t, controller.GetHeatmap(ctx))
	})

	t.Run("should reject a precision which is not a number", func(t *testing.T) {
		controller := NewStatisticsController(mocks.NewStatisticsService(t))
		ctx, _ := newTestContext(t, http.MethodGet, "/?precision=high", nil)
		shared.SetProject(ctx, testProject())

		err := controller.GetHeatmap(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})
}

func TestStatisticsControllerDashboard(t *testing.T) {
	statisticsService := mocks.NewStatisticsService(t)
	controller := NewStatisticsController(statisticsService)
	project := testProject()
	ctx, rec := newTestContext(t, http.MethodGet, "/?interval=month", nil)
	shared.SetProject(ctx, project)

	statisticsService.On("GetDashboard", mock.Anything, project, dtos.TimelineIntervalMonth).Return(dtos.Dashboard{}, nil)

	assert.NoError(t, controller.GetDashboard(ctx))
	assert.Equal(t, 200, rec.Code)
}

func TestWeatherController(t *testing.T) {
	t.Run("should answer 400 without coordinates", func(t *testing.T) {
		controller := NewWeatherController(mocks.NewWeatherService(t))
		ctx, _ := newTestContext(t, http.MethodGet, "/", nil)
		shared.SetProject(ctx, testProject())

		err := controller.GetCurrent(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should look up the project coordinates", func(t *testing.T) {
		weatherService := mocks.NewWeatherService(t)
		controller := NewWeatherController(weatherService)
		project := testProject()
		project.Latitude = f(35.2)
		project.Longitude = f(-101.8)
		ctx, rec := newTestContext(t, http.MethodGet, "/", nil)
		shared.SetProject(ctx, project)

		weatherService.On("GetCurrent", mock.Anything, 35.2, -101.8).Return(dtos.Weather{Description: "Clear sky"}, nil)

		assert.NoError(t, controller.GetCurrent(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

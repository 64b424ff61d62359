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
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
)

// PileMiddleware loads the pile from the path. It has to run after the project access control.
func PileMiddleware(repository shared.PileRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			project := shared.GetProject(ctx)

			pileID, err := shared.GetUUIDParam(ctx, "pileID")
			if err != nil {
				return echo.NewHTTPError(400, "invalid pile id").WithInternal(err)
			}

			pile, err := repository.ReadInProject(project.ID, pileID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find pile").WithInternal(err)
			}

			shared.SetPile(ctx, pile)
			return next(ctx)
		}
	}
}

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
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

// AllowedOrigins reads the comma separated FRONTEND_URL.
func AllowedOrigins() []string {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		return []string{"http://localhost:3000"}
	}
	origins := []string{}
	for _, origin := range strings.Split(frontendURL, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// errorMessage never exposes the internal error of a 5xx response.
func errorMessage(err error) (int, echo.Map) {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return http.StatusInternalServerError, echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
	}

	switch m := he.Message.(type) {
	case string:
		return he.Code, echo.Map{"message": m}
	case error:
		return he.Code, echo.Map{"message": m.Error()}
	case echo.Map:
		return he.Code, m
	default:
		return he.Code, echo.Map{"message": http.StatusText(he.Code)}
	}
}

func httpErrorHandler(err error, ctx echo.Context) {
	// do the logging straight inside the error handler
	// this keeps controller methods clean
	if he, ok := err.(*echo.HTTPError); ok && he.Code < 500 {
		slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
	} else {
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
	}

	if ctx.Response().Committed {
		return
	}

	code, message := errorMessage(err)
	if ctx.Request().Method == http.MethodHead {
		if err := ctx.NoContent(code); err != nil {
			slog.Error("could not send error response", "error", err)
		}
		return
	}
	if err := ctx.JSON(code, message); err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     AllowedOrigins(),
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Session-Token"},
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		e.Use(otelecho.Middleware("piletracker"))
	}

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = httpErrorHandler
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}

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

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/piletracker/accesscontrol"
	"github.com/l3montree-dev/piletracker/cmd/piletracker/api"
	"github.com/l3montree-dev/piletracker/config"
	"github.com/l3montree-dev/piletracker/controllers"
	"github.com/l3montree-dev/piletracker/daemons"
	"github.com/l3montree-dev/piletracker/database"
	"github.com/l3montree-dev/piletracker/database/repositories"
	"github.com/l3montree-dev/piletracker/monitoring"
	"github.com/l3montree-dev/piletracker/router"
	"github.com/l3montree-dev/piletracker/services"
	"github.com/l3montree-dev/piletracker/shared"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background())
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		panic(errors.New("Failed to initialize tracing"))
	}
	defer shutdownTracing(context.Background()) // nolint: errcheck

	fx.New(
		api.Module,
		repositories.Module,
		services.Module,
		accesscontrol.Module,
		controllers.Module,
		router.Module,
		daemons.Module,

		// migrations need to run before the first request reaches the database
		fx.Invoke(migrate),
		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.APIV1Router) {}),
		fx.Invoke(func(router.SessionRouter) {}),
		fx.Invoke(func(router.AdminRouter) {}),
		fx.Invoke(func(router.ProjectRouter) {}),
	).Run()
}

func migrate(db shared.DB) error {
	if os.Getenv("DISABLE_AUTOMIGRATE") == "true" {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
		return nil
	}

	slog.Info("running database migrations...")
	if err := database.RunMigrationsWithDB(db); err != nil {
		slog.Error("failed to run database migrations", "error", err)
		return errors.New("Failed to run database migrations")
	}
	return nil
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}

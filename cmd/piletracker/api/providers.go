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

package api

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/piletracker/auth"
	"github.com/l3montree-dev/piletracker/database"
	"github.com/l3montree-dev/piletracker/shared"
	"go.uber.org/fx"
)

// AuthModule provides the kratos client and the optional jwt verifier
var AuthModule = fx.Options(
	fx.Provide(func() shared.AdminClient {
		return auth.NewAdminClient(
			auth.GetOryAPIClient(os.Getenv("ORY_KRATOS_PUBLIC")),
			auth.GetOryAPIClient(os.Getenv("ORY_KRATOS_ADMIN")),
		)
	}),
	fx.Provide(func() shared.TokenVerifier {
		verifier := auth.NewJWTVerifier(os.Getenv("AUTH_JWT_SECRET"), os.Getenv("AUTH_JWT_ISSUER"))
		if verifier == nil {
			// a typed nil would pass the nil check of the session middleware
			return nil
		}
		return verifier
	}),
)

// DatabaseModule provides the pool, gorm on top of the pool and the postgres broker
var DatabaseModule = fx.Options(
	fx.Provide(func(lc fx.Lifecycle) *pgxpool.Pool {
		pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
		lc.Append(fx.StopHook(pool.Close))
		return pool
	}),
	fx.Provide(func(pool *pgxpool.Pool) shared.DB {
		return database.NewGormDB(pool)
	}),
	fx.Provide(fx.Annotate(database.BrokerFactory, fx.As(new(shared.PubSubBroker)))),
)

// startBackgroundJobs starts the leader election and the daemons with the app
func startBackgroundJobs(lc fx.Lifecycle, leaderElector shared.LeaderElector, daemonRunner shared.DaemonRunner) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go leaderElector.Run(ctx)
			daemonRunner.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

// Module combines all API-level FX modules
var Module = fx.Options(
	AuthModule,
	DatabaseModule,
	fx.Provide(NewServer),
	fx.Invoke(startBackgroundJobs),
)

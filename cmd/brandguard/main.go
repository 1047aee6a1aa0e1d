// Copyright (C) 2026 l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/brandguard/accesscontrol"
	"github.com/l3montree-dev/brandguard/cmd/brandguard/api"
	"github.com/l3montree-dev/brandguard/controllers"
	"github.com/l3montree-dev/brandguard/database"
	"github.com/l3montree-dev/brandguard/database/repositories"
	"github.com/l3montree-dev/brandguard/integrations"
	"github.com/l3montree-dev/brandguard/router"
	"github.com/l3montree-dev/brandguard/services"
	"github.com/l3montree-dev/brandguard/shared"
	"github.com/l3montree-dev/brandguard/storage"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Provide(func() shared.DB { return db }),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(api.NewServer),
		fx.Provide(fx.Annotate(func() (*storage.DiskFileStore, error) {
			dir := os.Getenv("FILE_STORE_DIR")
			if dir == "" {
				dir = "files"
			}
			return storage.NewDiskFileStore(dir)
		}, fx.As(new(shared.FileStore)))),
		fx.Provide(fx.Annotate(func() *integrations.SlackNotifier {
			return integrations.NewSlackNotifier(os.Getenv("SLACK_WEBHOOK_URL"))
		}, fx.As(new(shared.Notifier)))),
		repositories.Module,
		services.Module,
		controllers.Module,
		router.Module,
		accesscontrol.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(sessionRouter router.SessionRouter) {}),
		fx.Invoke(func(orgRouter router.OrgRouter) {}),
		fx.Invoke(func(projectRouter router.ProjectRouter) {}),
		fx.Invoke(func(assetRouter router.AssetRouter) {}),
		fx.Invoke(func(assetVersionRouter router.AssetVersionRouter) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,
		Debug:       environment == "dev",
	})
	if err != nil {
		slog.Error("could not initialize sentry", "err", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentsoft/property-api/internal/api"
	"github.com/rentsoft/property-api/internal/api/handler"
	"github.com/rentsoft/property-api/internal/core/service"
	"github.com/rentsoft/property-api/internal/infrastructure/db/redis"
	"github.com/rentsoft/property-api/internal/infrastructure/db/sqldb"
	"github.com/rentsoft/property-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, log, db, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sqldb.Close(db) }()

			if migrate {
				if err := sqldb.Migrate(db); err != nil {
					return err
				}
			}

			rdb, err := redis.Connect(ctx, redis.Config{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				return err
			}
			defer func() { _ = rdb.Close() }()
			sessions := redis.NewSessionStore(rdb)

			// --- Repositories ---
			users := sqldb.NewUserRepository(db)
			properties := sqldb.NewPropertyRepository(db)
			units := sqldb.NewUnitRepository(db)
			leases := sqldb.NewLeaseRepository(db)

			// --- Services ---
			policy := service.AccessPolicy{StrictManagerScope: cfg.StrictManagerScope}
			authService := service.NewAuthService(users, sessions, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))

			e := api.NewRouter(api.Dependencies{
				Logger:       logger.Component("http"),
				Auth:         authService,
				Users:        service.NewUserService(authService, users),
				Properties:   service.NewPropertyService(properties, users, policy, logger.Component("property")),
				Units:        service.NewUnitService(units, properties, policy, logger.Component("unit")),
				Leases:       service.NewLeaseService(leases, units, users, policy, logger.Component("lease")),
				Applications: service.NewApplicationService(sqldb.NewApplicationRepository(db), units, policy, logger.Component("application")),
				Maintenance:  service.NewMaintenanceService(sqldb.NewMaintenanceRepository(db), units, policy, logger.Component("maintenance")),
				Payments:     service.NewPaymentService(sqldb.NewPaymentRepository(db), leases, policy, logger.Component("payment")),
				Dashboard:    service.NewDashboardService(sqldb.NewDashboardRepository(db), policy),
				ReadinessChecks: []handler.DependencyCheck{
					{Name: "database", Check: func(ctx context.Context) error { return sqldb.Ping(ctx, db) }},
					{Name: "redis", Check: sessions.Ping},
				},
				LoginRatePerMinute: cfg.LoginRatePerMinute,
			})

			errCh := make(chan error, 1)
			go func() {
				log.Info().
					Str("port", cfg.Port).
					Str("env", cfg.Env).
					Bool("strict_manager_scope", cfg.StrictManagerScope).
					Msg("http server starting")
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply the schema before serving")
	return cmd
}

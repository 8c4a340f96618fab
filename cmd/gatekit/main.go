package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	accountmod "github.com/gatekit/gatekit/modules/account"
	billingmod "github.com/gatekit/gatekit/modules/billing"
	profilemod "github.com/gatekit/gatekit/modules/profile"
	accountsvc "github.com/gatekit/gatekit/pkg/account"
	billingsvc "github.com/gatekit/gatekit/pkg/billing"
	"github.com/gatekit/gatekit/pkg/config"
	"github.com/gatekit/gatekit/pkg/entitlement"
	"github.com/gatekit/gatekit/pkg/httpserver"
	"github.com/gatekit/gatekit/pkg/identity"
	"github.com/gatekit/gatekit/pkg/logger"
	"github.com/gatekit/gatekit/pkg/pg"
	"github.com/gatekit/gatekit/pkg/redis"
)

const planCacheTTL = time.Minute

func main() {
	log := logger.New(logger.WithProduction("gatekit"))
	logger.SetAsDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		identityCfg identity.Config
		billingCfg  billingsvc.Config
		paddleCfg   billingsvc.PaddleConfig
		pgCfg       pg.Config
		redisCfg    redis.Config
		httpCfg     httpserver.Config
	)
	config.MustLoad(&identityCfg)
	config.MustLoad(&billingCfg)
	config.MustLoad(&paddleCfg)
	config.MustLoad(&pgCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&httpCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	provider, err := identity.NewClient(identityCfg)
	if err != nil {
		return err
	}
	admin, err := identity.NewAdminClient(identityCfg)
	if err != nil {
		return err
	}

	transport := identity.NewCookieTransport(identityCfg.CookieName, identityCfg.SecureCookies)
	sessions := identity.NewService(provider, transport, log)
	defer sessions.Close()

	profiles := entitlement.NewPostgresStore(pool)
	planCache := entitlement.NewRedisCache(rdb, planCacheTTL)
	entitlements := entitlement.NewResolver(profiles, planCache, log)

	paddle, err := billingsvc.NewPaddleProvider(paddleCfg)
	if err != nil {
		return err
	}
	checkout := billingsvc.NewService(sessions, paddle, billingCfg, log)

	eraser := accountsvc.NewEraser(sessions, admin, profiles, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(rdb),
	))

	r.Mount("/account", accountmod.Router(sessions, eraser))
	r.Mount("/billing", billingmod.Router(checkout))
	r.Mount("/profile", profilemod.Router(sessions, entitlements))

	return httpserver.New(httpCfg, log).Run(ctx, r)
}

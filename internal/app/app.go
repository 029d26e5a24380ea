package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Luffyt01/HemoLink-sub000/internal/config"
	"github.com/Luffyt01/HemoLink-sub000/internal/http/handlers"
	"github.com/Luffyt01/HemoLink-sub000/internal/http/middleware"
	"github.com/Luffyt01/HemoLink-sub000/internal/infrastructure/auth"
	"github.com/Luffyt01/HemoLink-sub000/internal/infrastructure/backend"
	"github.com/Luffyt01/HemoLink-sub000/internal/infrastructure/storage"
	"github.com/Luffyt01/HemoLink-sub000/internal/services"
	"github.com/Luffyt01/HemoLink-sub000/internal/stores"

	httpx "github.com/Luffyt01/HemoLink-sub000/internal/http"
)

// Run wires the application and serves HTTP until the listener fails.
func Run(cfg *config.Config) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := storage.NewRedisStorage(rdb, cfg.SessionTTL)
	if err := store.Ping(context.Background()); err != nil {
		return err
	}

	enforcer, err := casbin.NewEnforcer(cfg.CasbinModelPath, cfg.CasbinPolicyPath)
	if err != nil {
		return err
	}

	manager := stores.NewManager(store, log, cfg.HydrationFallback)
	tokenSvc := auth.NewJWTService(cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionTTL)
	exchanger := auth.NewGoogleExchanger(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.BackendTimeout)
	gateway := backend.NewClient(cfg.AuthBaseURL, cfg.RequestsBaseURL, cfg.BackendTimeout, log)

	sessionSvc := services.NewSessionService(gateway, tokenSvc, exchanger, manager, log)

	secure := cfg.GinMode == gin.ReleaseMode
	authMW := middleware.NewAuthMW(tokenSvc, cfg.CookieName)
	casbinMW := middleware.NewCasbinMW(enforcer)

	r := httpx.BuildRouter(httpx.RouterDeps{
		Auth:     handlers.NewAuthHandlers(sessionSvc, cfg.CookieName, secure),
		Profile:  handlers.NewProfileHandlers(sessionSvc, cfg.CookieName, secure),
		Donor:    handlers.NewDonorHandlers(sessionSvc),
		Hospital: handlers.NewHospitalHandlers(sessionSvc),
		Requests: handlers.NewRequestHandlers(sessionSvc),

		Session:   authMW.WithSession(),
		Authorize: casbinMW.Enforce(),
		Hydration: middleware.WithHydration(manager),
		Logger:    middleware.Logger(log),
	})

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

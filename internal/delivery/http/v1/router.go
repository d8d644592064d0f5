package v1

import (
	"go-profile-backend/config"
	"go-profile-backend/docs"
	"go-profile-backend/internal/delivery/http/middleware"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/internal/usecase"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ProfilUC domain.ProfilUsecase
	SkillUC  domain.SkillUsecase
	HealthUC usecase.HealthUsecase
	Redis    *goredis.Client // optional, rate limiting falls back to memory
	Config   *config.Config
	Log      *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	alerts := response.Alerts{AppName: cfg.AppName}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins, cfg.AppName)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log.Named("http")))
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	if cfg.RateLimitThreshold > 0 {
		rl := middleware.DefaultRateLimitConfig()
		rl.Limit = cfg.RateLimitThreshold
		if cfg.RateLimitWindowSeconds > 0 {
			rl.Window = time.Duration(cfg.RateLimitWindowSeconds) * time.Second
		}
		rl.FailClosed = cfg.RateLimitFailClosed
		rl.Redis = deps.Redis
		rl.Log = log.Named("ratelimit")
		r.Use(middleware.RateLimitMiddleware(rl))
	}
	r.Use(middleware.ErrorHandler(alerts, log.Named("http")))

	api := r.Group("/api")

	// Health Check
	NewHealthHandler(api, deps.HealthUC)

	// Swagger
	docs.SwaggerInfo.BasePath = "/api"
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Resource routes, protected when a JWT secret is configured
	resources := api.Group("")
	if cfg.JWTSecret != "" {
		resources.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	} else {
		log.Warn("JWT_SECRET not set, resource routes are unauthenticated")
	}
	{
		NewProfilHandler(resources, deps.ProfilUC, alerts)
		NewSkillHandler(resources, deps.SkillUC, alerts)
	}

	return r
}

package middlewares

import (
	"pulseflow-service/internal/app/config"
	"pulseflow-service/internal/app/services/core/sessions"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService sessions.SessionService
	InternalConfig *config.InternalConfig
	// LoginLimiter throttles session provisioning harder than the
	// router-wide per-IP limit.
	LoginLimiter *RateLimiter
}

func NewMiddlewares(log *zap.Logger, sessionService sessions.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		LoginLimiter:   NewRateLimiter(log, 5, time.Minute, 15*time.Minute),
	}
}

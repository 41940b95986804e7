package http

import (
	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/ratelimit"
	"github.com/MKhiriev/go-secure-store/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.App

	encryptionLimiter *ratelimit.Limiter
	debugLimiter      *ratelimit.Limiter
	generalLimiter    *ratelimit.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		cfg:               cfg,
		encryptionLimiter: ratelimit.NewLimiter(ratelimit.ProfileEncryption, ratelimit.NewMemoryStore(), logger),
		debugLimiter:      ratelimit.NewLimiter(ratelimit.ProfileDebug, ratelimit.NewMemoryStore(), logger),
		generalLimiter:    ratelimit.NewLimiter(ratelimit.ProfileGeneral, ratelimit.NewMemoryStore(), logger),
		logger:            logger,
	}
}

package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/konekta/backend/internal/ai"
	"example.com/konekta/backend/internal/auth"
	"example.com/konekta/backend/internal/config"
	"example.com/konekta/backend/internal/handlers"
	"example.com/konekta/backend/internal/mail"
	"example.com/konekta/backend/internal/notifications"
	"example.com/konekta/backend/internal/places"
	"example.com/konekta/backend/internal/repository"
)

// Server — HTTP-слой приложения поверх echo.
type Server struct {
	echo *echo.Echo
	cfg  config.Config
}

// New собирает все зависимости и регистрирует маршруты.
func New(cfg config.Config, pool *pgxpool.Pool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewCustomValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.CORS())

	if !config.FeatureEnabled(cfg.AI.APIKey) {
		slog.Warn("OPENAI_API_KEY is not set, itinerary generation is disabled")
	}
	if !config.FeatureEnabled(cfg.Places.GoogleAPIKey) {
		slog.Warn("GOOGLE_PLACES_API_KEY is not set, places proxy is disabled")
	}
	if !config.FeatureEnabled(cfg.Places.GeoapifyAPIKey) {
		slog.Warn("GEOAPIFY_API_KEY is not set, route search is disabled")
	}
	if !config.FeatureEnabled(cfg.Mail.ResendAPIKey) {
		slog.Warn("RESEND_API_KEY is not set, itinerary email is disabled")
	}

	hub := notifications.NewHub()
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	generator := ai.NewService(ai.NewOpenAIClient(
		cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.MaxOutputTokens, cfg.AI.Timeout))
	cacheRepo := repository.NewItineraryCacheRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	placesClient := places.NewClient(cfg.Places.GoogleAPIKey, cfg.Places.Timeout)
	geoClient := places.NewGeoClient(cfg.Places.GeoapifyAPIKey, cfg.Places.Timeout)
	mailClient := mail.NewClient(cfg.Mail.ResendAPIKey, cfg.Mail.FromAddress, cfg.Mail.Timeout)

	deps := routeDeps{
		verifier:      verifier,
		itinerary:     handlers.NewItineraryHandler(generator, cacheRepo, hub),
		mailer:        handlers.NewMailHandler(mailClient, hub, cfg.Mail.PublicBaseURL),
		placesHandler: handlers.NewPlacesHandler(placesClient),
		questionnaire: handlers.NewQuestionnaireHandler(),
		routes:        handlers.NewRoutesHandler(geoClient),
		messages:      handlers.NewMessageHandler(messageRepo),
		notifications: handlers.NewNotificationsHandler(hub),
		aiLimiter:     perMinuteLimiter(cfg.AI.RateLimitPerMinute, cfg.AI.RateLimitBurst),
		mailLimiter:   perMinuteLimiter(cfg.Mail.RateLimitPerMinute, cfg.Mail.RateLimitBurst),
	}
	registerRoutes(e, deps)

	return &Server{echo: e, cfg: cfg}
}

// perMinuteLimiter ограничивает дорогие маршруты по адресу клиента.
func perMinuteLimiter(perMinute, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60.0),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		},
	))
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

// Start блокирует до остановки сервера.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout
	s.echo.Server.IdleTimeout = s.cfg.Server.IdleTimeout
	slog.Info("http server listening", "addr", addr, "env", s.cfg.Env)
	return s.echo.Start(addr)
}

// Shutdown мягко гасит сервер, дожидаясь открытых запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

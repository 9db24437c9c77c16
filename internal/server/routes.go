package server

import (
	"github.com/labstack/echo/v4"

	"example.com/konekta/backend/internal/auth"
	"example.com/konekta/backend/internal/handlers"
)

type routeDeps struct {
	verifier      *auth.Verifier
	itinerary     *handlers.ItineraryHandler
	mailer        *handlers.MailHandler
	placesHandler *handlers.PlacesHandler
	questionnaire *handlers.QuestionnaireHandler
	routes        *handlers.RoutesHandler
	messages      *handlers.MessageHandler
	notifications *handlers.NotificationsHandler
	aiLimiter     echo.MiddlewareFunc
	mailLimiter   echo.MiddlewareFunc
}

func registerRoutes(e *echo.Echo, d routeDeps) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api")
	optionalSession := auth.OptionalSessionMiddleware(d.verifier)
	session := auth.SessionMiddleware(d.verifier)

	// Генерация доступна без входа; токен, если он есть, нужен только
	// для персональных уведомлений.
	api.POST("/itinerary", d.itinerary.Generate, optionalSession, d.aiLimiter)
	api.DELETE("/itinerary/cache", d.itinerary.DeleteCache)

	api.POST("/send-itinerary", d.mailer.SendItinerary, optionalSession, d.mailLimiter)

	api.GET("/places", d.placesHandler.Search)
	api.GET("/places/details", d.placesHandler.Details)

	api.GET("/questionnaire", d.questionnaire.Definitions)
	api.POST("/questionnaire/preferences", d.questionnaire.BuildPreferences)

	api.GET("/routes", d.routes.List)
	api.GET("/routes/search", d.routes.Search)

	api.POST("/messages", d.messages.Create, session)
	api.GET("/messages", d.messages.List, session)
	api.DELETE("/messages", d.messages.Delete, session)

	api.GET("/notifications/stream", d.notifications.Stream, session)
}

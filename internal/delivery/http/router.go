package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventrsvp/internal/delivery/http/controllers"
	"eventrsvp/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// Guest endpoints reachable without an admin pass through limiter.
func NewRouter(rsvpController *controllers.RSVPController, healthController *controllers.HealthController, limiter *middleware.IPRateLimiter) *http.ServeMux {
	mux := http.NewServeMux()
	limit := middleware.RateLimit(limiter)

	// Guest
	mux.HandleFunc("POST /rsvp", limit(rsvpController.Create))
	mux.HandleFunc("GET /rsvp/event-info", rsvpController.EventInfo)
	mux.HandleFunc("GET /rsvp/token/{token}", limit(rsvpController.GetByToken))
	mux.HandleFunc("PUT /rsvp/token/{token}", limit(rsvpController.UpdateByToken))

	// Admin
	mux.HandleFunc("GET /rsvp", rsvpController.List)
	mux.HandleFunc("GET /rsvp/summary", rsvpController.Summary)
	mux.HandleFunc("GET /rsvp/attending/yes", rsvpController.ListAttending)
	mux.HandleFunc("GET /rsvp/attending/no", rsvpController.ListNotAttending)
	mux.HandleFunc("GET /rsvp/{id}", rsvpController.GetByID)
	mux.HandleFunc("PUT /rsvp/{id}", rsvpController.UpdateByID)
	mux.HandleFunc("DELETE /rsvp/{id}", rsvpController.Delete)

	// Ops
	mux.HandleFunc("GET /healthz", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

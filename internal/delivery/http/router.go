package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"eventdesk/internal/delivery/http/controllers"
	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/domain"
)

// Controllers bundles the controllers the router wires up.
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Event       *controllers.EventController
	Speaker     *controllers.SpeakerController
	Session     *controllers.SessionController
	Participant *controllers.ParticipantController
	Budget      *controllers.BudgetController
}

// BannerResponse is the response body for GET /.
type BannerResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// NewRouter initializes the HTTP router with all application routes.
// loginRate limits login attempts per client IP.
func NewRouter(c Controllers, verifier domain.TokenVerifier, loginRate rate.Limit, loginBurst int) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)
	limitLogin := middleware.RateLimit(loginRate, loginBurst)

	// Auth
	mux.HandleFunc("POST /auth/register", c.Auth.Register)
	mux.HandleFunc("POST /auth/login", limitLogin(c.Auth.Login))
	mux.HandleFunc("POST /auth/refresh", c.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", c.Auth.Logout)

	// Users
	mux.HandleFunc("GET /users/me", auth(c.User.Me))
	mux.HandleFunc("PUT /users/me", auth(c.User.UpdateMe))

	// Events
	mux.HandleFunc("POST /events", auth(c.Event.CreateEvent))
	mux.HandleFunc("GET /events", c.Event.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", c.Event.GetEvent)
	mux.HandleFunc("PUT /events/{eventID}", auth(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth(c.Event.DeleteEvent))

	// Speakers
	mux.HandleFunc("POST /speakers", auth(c.Speaker.CreateSpeaker))
	mux.HandleFunc("GET /speakers", c.Speaker.ListSpeakers)
	mux.HandleFunc("GET /speakers/{speakerID}", c.Speaker.GetSpeaker)

	// Sessions
	mux.HandleFunc("POST /sessions", auth(c.Session.CreateSession))
	mux.HandleFunc("GET /events/{eventID}/sessions", c.Session.ListEventSessions)

	// Participants
	mux.HandleFunc("POST /participants", auth(c.Participant.Register))
	mux.HandleFunc("GET /events/{eventID}/participants", auth(c.Participant.ListEventParticipants))

	// Budgets
	mux.HandleFunc("POST /budgets", auth(c.Budget.CreateBudgetItem))
	mux.HandleFunc("GET /events/{eventID}/budgets", auth(c.Budget.ListEventBudget))

	// Service banner
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, BannerResponse{Service: "eventdesk", Status: "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

package http

import (
	"net/http"

	"hotel-listing/internal/delivery/http/handler"
	"hotel-listing/internal/delivery/http/middleware"
	"hotel-listing/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const idPattern = "{id:-?[0-9]+}"

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Hotel     *handler.HotelHandler
	Country   *handler.CountryHandler
	CountryV2 *handler.CountryV2Handler
	Auth      *handler.AuthHandler
	AuditLog  *handler.AuditLogHandler
	Health    *handler.HealthHandler

	// Metrics is mounted at /metrics when set
	Metrics http.Handler
}

type Router struct {
	router              *mux.Router
	handlers            Handlers
	authMiddleware      *middleware.AuthMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	log                 *logrus.Logger
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	log *logrus.Logger,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		handlers:            handlers,
		authMiddleware:      authMiddleware,
		metricsMiddleware:   metricsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		log:                 log,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.RequestID, middleware.AccessLog(r.log))
	if r.metricsMiddleware != nil {
		r.router.Use(r.metricsMiddleware.Handle)
	}
	if r.rateLimitMiddleware != nil {
		r.router.Use(r.rateLimitMiddleware.Handle)
	}
	r.router.Use(middleware.ReportAPIVersions)

	// Unmatched requests, including unknown API versions, skip the middleware chain
	r.router.NotFoundHandler = middleware.ReportAPIVersions(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	}))

	r.router.HandleFunc("/health", r.handlers.Health.Check).Methods(http.MethodGet)
	if r.handlers.Metrics != nil {
		r.router.Handle("/metrics", r.handlers.Metrics).Methods(http.MethodGet)
	}

	api := r.router.PathPrefix("/api").Subrouter()

	// Hotel routes (reads are public, mutations are admin only)
	api.HandleFunc("/hotel", r.handlers.Hotel.GetHotels).Methods(http.MethodGet)
	api.HandleFunc("/hotel/"+idPattern, r.handlers.Hotel.GetHotel).Methods(http.MethodGet)

	hotelAdmin := api.PathPrefix("/hotel").Subrouter()
	hotelAdmin.Use(r.authMiddleware.Authenticate)
	hotelAdmin.Use(middleware.RequireAdministrator)
	hotelAdmin.HandleFunc("", r.handlers.Hotel.CreateHotel).Methods(http.MethodPost)
	hotelAdmin.HandleFunc("/"+idPattern, r.handlers.Hotel.UpdateHotel).Methods(http.MethodPut)
	hotelAdmin.HandleFunc("/"+idPattern, r.handlers.Hotel.DeleteHotel).Methods(http.MethodDelete)

	// Country routes, selected by the requested API version
	api.HandleFunc("/country", r.handlers.CountryV2.GetCountries).
		Methods(http.MethodGet).
		MatcherFunc(middleware.MatchAPIVersion("2.0"))
	api.HandleFunc("/country", r.handlers.Country.GetCountries).
		Methods(http.MethodGet).
		MatcherFunc(middleware.MatchAPIVersion(middleware.DefaultAPIVersion))
	api.HandleFunc("/country/"+idPattern, r.handlers.Country.GetCountry).
		Methods(http.MethodGet).
		MatcherFunc(middleware.MatchAPIVersion(middleware.DefaultAPIVersion))

	// Account routes (public)
	account := api.PathPrefix("/account").Subrouter()
	account.HandleFunc("/register", r.handlers.Auth.Register).Methods(http.MethodPost)
	account.HandleFunc("/login", r.handlers.Auth.Login).Methods(http.MethodPost)
	account.HandleFunc("/refresh-token", r.handlers.Auth.RefreshToken).Methods(http.MethodPost)

	// Account routes (protected)
	accountProtected := api.PathPrefix("/account").Subrouter()
	accountProtected.Use(r.authMiddleware.Authenticate)
	accountProtected.HandleFunc("/logout", r.handlers.Auth.Logout).Methods(http.MethodPost)
	accountProtected.HandleFunc("/me", r.handlers.Auth.GetCurrentUser).Methods(http.MethodGet)

	// Audit log routes (admin only)
	audit := api.PathPrefix("/audit-logs").Subrouter()
	audit.Use(r.authMiddleware.Authenticate)
	audit.Use(middleware.RequireAdministrator)
	audit.HandleFunc("", r.handlers.AuditLog.GetAllAuditLogs).Methods(http.MethodGet)
	audit.HandleFunc("/"+idPattern, r.handlers.AuditLog.GetAuditLog).Methods(http.MethodGet)

	return r.router
}

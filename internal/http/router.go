package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"capitaluy-backend/internal/handlers"
	"capitaluy-backend/internal/middleware"
)

func NewRouter(
	siteConfigHandler *handlers.SiteConfigHandler,
	aboutHandler *handlers.AboutHandler,
	courseHandler *handlers.CourseHandler,
	priceHandler *handlers.PriceHandler,
	contactMessageHandler *handlers.ContactMessageHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	adminSession *middleware.AdminSession,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.PanicRecovery)
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.AccessLog)

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Session
	api.HandleFunc("/auth", authHandler.Status).Methods("GET")
	api.HandleFunc("/auth", authHandler.Action).Methods("POST")

	// Public reads
	api.HandleFunc("/config", siteConfigHandler.Get).Methods("GET")
	api.HandleFunc("/about", aboutHandler.Get).Methods("GET")
	api.HandleFunc("/courses", courseHandler.List).Methods("GET")
	api.HandleFunc("/prices", priceHandler.List).Methods("GET")
	api.HandleFunc("/prices/export", priceHandler.Export).Methods("GET")
	api.HandleFunc("/contact-message", contactMessageHandler.Get).Methods("GET")

	// Admin writes
	admin := adminSession.RequireAdminFunc
	api.HandleFunc("/config", admin(siteConfigHandler.Update)).Methods("POST")
	api.HandleFunc("/about", admin(aboutHandler.Update)).Methods("POST")
	api.HandleFunc("/courses", admin(courseHandler.Apply)).Methods("POST")
	api.HandleFunc("/prices", admin(priceHandler.Apply)).Methods("POST")
	api.HandleFunc("/contact-message", admin(contactMessageHandler.Update)).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	})

	return r
}

package http

import (
	"net/http"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/http/handler"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/delivery/http/middleware"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/pkg/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	vetProfileHandler  *handler.VetProfileHandler
	userProfileHandler *handler.UserProfileHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
	metrics            *metrics.Metrics
}

func NewRouter(
	vetProfileHandler *handler.VetProfileHandler,
	userProfileHandler *handler.UserProfileHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	metrics *metrics.Metrics,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		vetProfileHandler:  vetProfileHandler,
		userProfileHandler: userProfileHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metricsMiddleware:  metricsMiddleware,
		metrics:            metrics,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Vet and clinic profiles
	vets := api.PathPrefix("/vets").Subrouter()
	vets.HandleFunc("", r.vetProfileHandler.CreateProfile).Methods(http.MethodPost)
	vets.HandleFunc("", r.vetProfileHandler.GetAllProfiles).Methods(http.MethodGet)
	vets.HandleFunc("/check", r.vetProfileHandler.CheckDuplicate).Methods(http.MethodPost)
	vets.HandleFunc("/duplicates", r.vetProfileHandler.GetDuplicateGroups).Methods(http.MethodGet)
	vets.HandleFunc("/duplicates", r.vetProfileHandler.DeleteDuplicates).Methods(http.MethodDelete)
	vets.HandleFunc("/{id}", r.vetProfileHandler.GetProfile).Methods(http.MethodGet)
	vets.HandleFunc("/{id}", r.vetProfileHandler.UpdateProfile).Methods(http.MethodPut)
	vets.HandleFunc("/{id}", r.vetProfileHandler.DeleteProfile).Methods(http.MethodDelete)

	// Clinic views
	api.HandleFunc("/clinics", r.vetProfileHandler.GetClinics).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id}", r.vetProfileHandler.GetClinic).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id}/vets", r.vetProfileHandler.GetClinicVets).Methods(http.MethodGet)

	// Owner profile
	api.HandleFunc("/user-profile", r.userProfileHandler.GetUserProfile).Methods(http.MethodGet)
	api.HandleFunc("/user-profile", r.userProfileHandler.UpdateUserProfile).Methods(http.MethodPut)

	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

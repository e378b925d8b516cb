package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/medlink-app/medlink-api/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/register-doctor", h.registerDoctor)
		r.Get("/api/emergencyprofile/{publicId}", h.publicProfile)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Post("/api/emergencyprofile", h.createProfile)
		r.Get("/api/emergencyprofile/my-profiles", h.myProfiles)
	})

	// medical staff routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleDoctor, models.RoleAdmin))

		r.Get("/api/emergencyprofile", h.listProfiles)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleAdmin))

		r.Get("/api/auth/pending-doctors", h.pendingDoctors)
		r.Post("/api/auth/approve-doctor", h.approveDoctor)
		r.Get("/api/emergencyprofile/admin/database-info", h.databaseInfo)
	})

	return router
}

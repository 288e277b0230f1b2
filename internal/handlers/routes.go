package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lankanwheels/dealership/internal/middleware"
	"github.com/lankanwheels/dealership/internal/models"
	log "github.com/sirupsen/logrus"
)

// NewRouter constructs the HTTP handler for the dealership API.
//
// Routes:
//
//	POST  /api/auth/login               → login (rate limited)
//	POST  /api/auth/logout              → logout audit event
//	GET   /api/vehicles                 → catalog listing with filters
//	POST  /api/vehicles                 → add vehicle
//	GET   /api/repairs                  → repair records
//	GET   /api/repairs/shops            → partner workshop catalog
//	POST  /api/repairs                  → admit vehicle for repair
//	PATCH /api/repairs/{id}/status      → move repair between statuses
//	POST  /api/requests                 → submit modification request (employee)
//	GET   /api/requests                 → list requests (admin)
//	POST  /api/requests/{id}/decision   → approve/reject (admin)
//	GET   /api/dashboard                → analytics (admin)
//	GET   /api/employees                → roster with activity (admin)
func NewRouter(
	authHandler *AuthHandler,
	vehicleHandler *VehicleHandler,
	repairHandler *RepairHandler,
	requestHandler *RequestHandler,
	dashboardHandler *DashboardHandler,
	employeeHandler *EmployeeHandler,
	authMW *middleware.AuthMiddleware,
	logger *log.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	rateLimiter := middleware.NewRateLimitMiddleware()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rateLimiter.RateLimit(10, 60))
			r.Post("/auth/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)

			r.Get("/vehicles", vehicleHandler.List)
			r.Post("/vehicles", vehicleHandler.Create)

			r.Get("/repairs", repairHandler.List)
			r.Get("/repairs/shops", repairHandler.Shops)
			r.Post("/repairs", repairHandler.Admit)
			r.Patch("/repairs/{id}/status", repairHandler.UpdateStatus)

			r.Group(func(r chi.Router) {
				r.Use(authMW.RequireRole(models.RoleEmployee))
				r.Post("/requests", requestHandler.Submit)
			})

			r.Group(func(r chi.Router) {
				r.Use(authMW.RequireRole(models.RoleAdmin))
				r.Get("/requests", requestHandler.List)
				r.Post("/requests/{id}/decision", requestHandler.Decide)
				r.Get("/dashboard", dashboardHandler.Stats)
				r.Get("/employees", employeeHandler.List)
			})
		})
	})

	return r
}

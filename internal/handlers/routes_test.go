package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lankanwheels/dealership/internal/auth"
	"github.com/lankanwheels/dealership/internal/middleware"
	"github.com/lankanwheels/dealership/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testRouter(t *testing.T) (http.Handler, *auth.Service) {
	t.Helper()

	authService := auth.NewService("test-secret", time.Hour)
	logger := log.New()
	logger.SetOutput(io.Discard)

	users := new(MockUserCollection)
	vehicles := new(MockVehicleCollection)
	repairs := new(MockRepairCollection)
	requests := new(MockRequestCollection)
	activities := new(MockActivityCollection)

	vehicles.On("FindVehicles", mock.Anything, mock.Anything).Return(&vehicleCursor{}, nil)
	requests.On("FindRequests", mock.Anything, mock.Anything).Return(&requestCursor{}, nil)
	repairs.On("FindRepairs", mock.Anything, mock.Anything).Return(&repairCursor{}, nil)
	activities.On("FindActivities", mock.Anything, mock.Anything).Return(&activityCursor{}, nil)
	users.On("FindUsers", mock.Anything, mock.Anything).Return([]models.User{}, nil)

	recorder := testRecorder(activities)
	router := NewRouter(
		NewAuthHandler(authService, users, recorder),
		NewVehicleHandler(vehicles, recorder),
		NewRepairHandler(repairs, vehicles, recorder),
		NewRequestHandler(requests, vehicles, recorder),
		NewDashboardHandler(vehicles, repairs, requests, activities),
		NewEmployeeHandler(users, activities),
		middleware.NewAuthMiddleware(authService),
		logger,
	)
	return router, authService
}

func tokenFor(t *testing.T, service *auth.Service, role models.Role) string {
	t.Helper()
	token, err := service.GenerateToken(&models.User{ID: "9", Name: "Test", Email: "test@lankanwheels.lk", Role: role})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func TestRouter_AuthGates(t *testing.T) {
	router, service := testRouter(t)

	t.Run("health is public", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("vehicles require a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/vehicles", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("employee token reaches the catalog", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/vehicles", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, service, models.RoleEmployee))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee cannot reach admin surfaces", func(t *testing.T) {
		token := tokenFor(t, service, models.RoleEmployee)
		for _, target := range []string{"/api/dashboard", "/api/requests", "/api/employees"} {
			req := httptest.NewRequest("GET", target, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusForbidden, w.Code, target)
		}
	})

	t.Run("admin reaches dashboard and requests", func(t *testing.T) {
		token := tokenFor(t, service, models.RoleAdmin)
		for _, target := range []string{"/api/dashboard", "/api/requests", "/api/employees"} {
			req := httptest.NewRequest("GET", target, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, target)
		}
	})

	t.Run("login does not require a token", func(t *testing.T) {
		router, _ := testRouter(t)
		body := bytes.NewBufferString(`{"email":"x","password":""}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/auth/login", body))
		// Reaches the handler (validation failure), not the auth middleware.
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

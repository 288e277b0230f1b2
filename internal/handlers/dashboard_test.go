package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lankanwheels/dealership/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDashboardHandler_Stats(t *testing.T) {
	vehicles := new(MockVehicleCollection)
	repairs := new(MockRepairCollection)
	requests := new(MockRequestCollection)
	activities := new(MockActivityCollection)
	handler := NewDashboardHandler(vehicles, repairs, requests, activities)

	vehicles.On("FindVehicles", mock.Anything, mock.Anything).Return(&vehicleCursor{items: []models.Vehicle{
		{ID: "1", Status: models.VehicleSold, Price: 100000},
		{ID: "2", Status: models.VehicleAvailable, Price: 50000},
		{ID: "3", Status: models.VehicleSold, Price: 200000},
		{ID: "4", Status: models.VehicleRepair, Price: 75000},
	}}, nil)
	requests.On("FindRequests", mock.Anything, bson.M{"status": models.RequestPending}).
		Return(&requestCursor{items: []models.ModificationRequest{
			{ID: "r1", Status: models.RequestPending},
			{ID: "r2", Status: models.RequestPending},
		}}, nil)
	repairs.On("FindRepairs", mock.Anything, mock.Anything).Return(&repairCursor{items: []models.RepairRecord{
		{ID: "p1", Status: models.RepairInProgress},
		{ID: "p2", Status: models.RepairCompleted},
	}}, nil)
	activities.On("FindActivities", mock.Anything, mock.Anything).Return(&activityCursor{}, nil)

	req := withClaims(httptest.NewRequest("GET", "/api/dashboard", nil), models.RoleAdmin)
	w := httptest.NewRecorder()
	handler.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DashboardResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.TotalVehicles)
	assert.Equal(t, 1, resp.Available)
	assert.Equal(t, 2, resp.Sold)
	assert.Equal(t, 1, resp.InRepair)
	// Revenue counts only sold vehicles.
	assert.Equal(t, float64(300000), resp.Revenue)
	assert.Equal(t, 2, resp.PendingRequests)
	assert.Equal(t, 1, resp.RepairInProgress)
	assert.Equal(t, 1, resp.RepairCompleted)
	assert.Equal(t, 0, resp.RepairDelayed)
}

func TestDashboardHandler_RecentActivity(t *testing.T) {
	vehicles := new(MockVehicleCollection)
	repairs := new(MockRepairCollection)
	requests := new(MockRequestCollection)
	activities := new(MockActivityCollection)
	handler := NewDashboardHandler(vehicles, repairs, requests, activities)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	var entries []models.ActivityEntry
	for i := 0; i < 15; i++ {
		entries = append(entries, models.ActivityEntry{
			UserID:    "2",
			Action:    models.ActivityAddVehicle,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}

	vehicles.On("FindVehicles", mock.Anything, mock.Anything).Return(&vehicleCursor{}, nil)
	requests.On("FindRequests", mock.Anything, mock.Anything).Return(&requestCursor{}, nil)
	repairs.On("FindRepairs", mock.Anything, mock.Anything).Return(&repairCursor{}, nil)
	activities.On("FindActivities", mock.Anything, mock.Anything).Return(&activityCursor{items: entries}, nil)

	req := withClaims(httptest.NewRequest("GET", "/api/dashboard", nil), models.RoleAdmin)
	w := httptest.NewRecorder()
	handler.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DashboardResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.RecentActivity, 10)
	// Newest first.
	assert.Equal(t, base.Add(14*time.Minute), resp.RecentActivity[0].Timestamp.UTC())
	assert.Equal(t, base.Add(5*time.Minute), resp.RecentActivity[9].Timestamp.UTC())
}

func TestEmployeeHandler_List(t *testing.T) {
	users := new(MockUserCollection)
	activities := new(MockActivityCollection)
	handler := NewEmployeeHandler(users, activities)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	kasunEntries := make([]models.ActivityEntry, 0, 8)
	for i := 0; i < 8; i++ {
		kasunEntries = append(kasunEntries, models.ActivityEntry{
			UserID:    "2",
			Action:    models.ActivityLogin,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
	}

	users.On("FindUsers", mock.Anything, bson.M{"role": models.RoleEmployee}).Return([]models.User{
		{ID: "2", Name: "Kasun Silva", Role: models.RoleEmployee, IsActive: true},
		{ID: "3", Name: "Priya Fernando", Role: models.RoleEmployee, IsActive: true},
	}, nil)
	activities.On("FindActivities", mock.Anything, bson.M{"user_id": "2"}).
		Return(&activityCursor{items: kasunEntries}, nil)
	activities.On("FindActivities", mock.Anything, bson.M{"user_id": "3"}).
		Return(&activityCursor{}, nil)

	req := withClaims(httptest.NewRequest("GET", "/api/employees", nil), models.RoleAdmin)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result []EmployeeSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result, 2)
	// Each employee sees at most five of their own newest entries.
	assert.Len(t, result[0].RecentActivity, 5)
	assert.Equal(t, base.Add(7*time.Hour), result[0].RecentActivity[0].Timestamp.UTC())
	assert.Empty(t, result[1].RecentActivity)
}

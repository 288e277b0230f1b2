package handlers

import (
	"net/http"

	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const employeeActivityLimit = 5

// EmployeeHandler serves the employee roster with per-employee activity.
type EmployeeHandler struct {
	users      db.UserCollection
	activities db.ActivityCollection
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(users db.UserCollection, activities db.ActivityCollection) *EmployeeHandler {
	return &EmployeeHandler{
		users:      users,
		activities: activities,
	}
}

// EmployeeSummary is one roster entry with the employee's recent actions.
type EmployeeSummary struct {
	models.User
	RecentActivity []models.ActivityEntry `json:"recentActivity"`
}

// List returns all employee accounts with their five most recent activities.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.users.FindUsers(r.Context(), bson.M{"role": models.RoleEmployee})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load employees")
		return
	}

	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		recent, err := recentActivities(r.Context(), h.activities, emp.ID, employeeActivityLimit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load activities")
			return
		}
		summaries = append(summaries, EmployeeSummary{User: emp, RecentActivity: recent})
	}

	writeJSON(w, http.StatusOK, summaries)
}

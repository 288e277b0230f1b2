package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const recentActivityLimit = 10

// DashboardHandler computes the admin analytics view. Everything is
// recomputed per request by scanning the collections; at dealership scale a
// whole-collection scan is cheaper than keeping counters consistent.
type DashboardHandler struct {
	vehicles   db.VehicleCollection
	repairs    db.RepairCollection
	requests   db.RequestCollection
	activities db.ActivityCollection
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(vehicles db.VehicleCollection, repairs db.RepairCollection, requests db.RequestCollection, activities db.ActivityCollection) *DashboardHandler {
	return &DashboardHandler{
		vehicles:   vehicles,
		repairs:    repairs,
		requests:   requests,
		activities: activities,
	}
}

// DashboardResponse aggregates inventory, workflow, and audit numbers.
type DashboardResponse struct {
	TotalVehicles    int                    `json:"totalVehicles"`
	Available        int                    `json:"available"`
	Sold             int                    `json:"sold"`
	InRepair         int                    `json:"inRepair"`
	Revenue          float64                `json:"revenue"`
	PendingRequests  int                    `json:"pendingRequests"`
	RepairInProgress int                    `json:"repairInProgress"`
	RepairCompleted  int                    `json:"repairCompleted"`
	RepairDelayed    int                    `json:"repairDelayed"`
	RecentActivity   []models.ActivityEntry `json:"recentActivity"`
}

// Stats serves the dashboard aggregation.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := DashboardResponse{RecentActivity: []models.ActivityEntry{}}

	cursor, err := h.vehicles.FindVehicles(ctx, bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load vehicles")
		return
	}
	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load vehicles")
		return
	}
	cursor.Close(ctx)

	resp.TotalVehicles = len(vehicles)
	for _, v := range vehicles {
		switch v.Status {
		case models.VehicleAvailable:
			resp.Available++
		case models.VehicleSold:
			resp.Sold++
			resp.Revenue += v.Price
		case models.VehicleRepair:
			resp.InRepair++
		}
	}

	cursor, err = h.requests.FindRequests(ctx, bson.M{"status": models.RequestPending})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load requests")
		return
	}
	var pending []models.ModificationRequest
	if err := cursor.All(ctx, &pending); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load requests")
		return
	}
	cursor.Close(ctx)
	resp.PendingRequests = len(pending)

	cursor, err = h.repairs.FindRepairs(ctx, bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load repairs")
		return
	}
	var repairs []models.RepairRecord
	if err := cursor.All(ctx, &repairs); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load repairs")
		return
	}
	cursor.Close(ctx)

	for _, rec := range repairs {
		switch rec.Status {
		case models.RepairInProgress:
			resp.RepairInProgress++
		case models.RepairCompleted:
			resp.RepairCompleted++
		case models.RepairDelayed:
			resp.RepairDelayed++
		}
	}

	recent, err := recentActivities(ctx, h.activities, "", recentActivityLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load activities")
		return
	}
	resp.RecentActivity = recent

	writeJSON(w, http.StatusOK, resp)
}

// recentActivities returns the newest entries, optionally for one user.
// The sort is not stable for equal timestamps.
func recentActivities(ctx context.Context, activities db.ActivityCollection, userID string, limit int) ([]models.ActivityEntry, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	cursor, err := activities.FindActivities(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []models.ActivityEntry{}
	}
	return entries, nil
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lankanwheels/dealership/internal/activity"
	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/middleware"
	"github.com/lankanwheels/dealership/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// RepairHandler handles repair admissions and tracking
type RepairHandler struct {
	repairs  db.RepairCollection
	vehicles db.VehicleCollection
	recorder *activity.Recorder
}

// NewRepairHandler creates a new repair handler
func NewRepairHandler(repairs db.RepairCollection, vehicles db.VehicleCollection, recorder *activity.Recorder) *RepairHandler {
	return &RepairHandler{
		repairs:  repairs,
		vehicles: vehicles,
		recorder: recorder,
	}
}

// AdmitRepairRequest is the body for admitting a vehicle for repair.
type AdmitRepairRequest struct {
	VehicleID          string    `json:"vehicleId"`
	RepairShop         string    `json:"repairShop"`
	Location           string    `json:"location"`
	DateAdmitted       time.Time `json:"dateAdmitted"`
	ExpectedCompletion time.Time `json:"expectedCompletion"`
	Cost               float64   `json:"cost"`
	Description        string    `json:"description"`
}

// Admit creates a repair record and flips the vehicle's status to "repair".
// The vehicle's plate number is denormalized into the record at admission
// time and never reconciled afterwards.
func (h *RepairHandler) Admit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	var req AdmitRepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VehicleID == "" || req.RepairShop == "" || req.DateAdmitted.IsZero() {
		writeError(w, http.StatusBadRequest, "vehicleId, repairShop and dateAdmitted are required")
		return
	}

	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), req.VehicleID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	repair := models.RepairRecord{
		ID:                 newID(),
		VehicleID:          vehicle.ID,
		VehicleNumber:      vehicle.VehicleNumber,
		RepairShop:         req.RepairShop,
		Location:           req.Location,
		DateAdmitted:       req.DateAdmitted,
		ExpectedCompletion: req.ExpectedCompletion,
		Status:             models.RepairInProgress,
		Cost:               req.Cost,
		Description:        req.Description,
		AddedBy:            claims.Name,
	}

	if err := h.repairs.InsertRepair(r.Context(), repair); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add repair record")
		return
	}

	if err := h.vehicles.UpdateVehicleStatus(r.Context(), vehicle.ID, models.VehicleRepair); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update vehicle status")
		return
	}

	h.recorder.Record(r.Context(), claims.UserID, models.ActivityAddRepair,
		fmt.Sprintf("Added repair record for vehicle %s at %s", vehicle.VehicleNumber, req.RepairShop))

	writeJSON(w, http.StatusCreated, repair)
}

// List returns all repair records in insertion order.
func (h *RepairHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.repairs.FindRepairs(r.Context(), bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load repairs")
		return
	}
	defer cursor.Close(r.Context())

	var repairs []models.RepairRecord
	if err := cursor.All(r.Context(), &repairs); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load repairs")
		return
	}
	if repairs == nil {
		repairs = []models.RepairRecord{}
	}
	writeJSON(w, http.StatusOK, repairs)
}

// Shops returns the fixed partner workshop catalog.
func (h *RepairHandler) Shops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.RepairShops)
}

// UpdateStatusRequest is the body for changing a repair record's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves a repair record between in-progress, completed, and
// delayed. The referenced vehicle keeps its "repair" status; releasing it
// back to the sales floor is a separate catalog action.
func (h *RepairHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.IsValidRepairStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "Invalid repair status")
		return
	}

	repair, err := h.repairs.FindRepairByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Repair record not found")
		return
	}

	if err := h.repairs.UpdateRepairStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update repair status")
		return
	}

	h.recorder.Record(r.Context(), claims.UserID, models.ActivityUpdateRepair,
		fmt.Sprintf("Repair for vehicle %s marked %s", repair.VehicleNumber, req.Status))

	repair.Status = req.Status
	writeJSON(w, http.StatusOK, repair)
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lankanwheels/dealership/internal/activity"
	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/middleware"
	"github.com/lankanwheels/dealership/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// RequestHandler handles the modification request workflow
type RequestHandler struct {
	requests db.RequestCollection
	vehicles db.VehicleCollection
	recorder *activity.Recorder
}

// NewRequestHandler creates a new modification request handler
func NewRequestHandler(requests db.RequestCollection, vehicles db.VehicleCollection, recorder *activity.Recorder) *RequestHandler {
	return &RequestHandler{
		requests: requests,
		vehicles: vehicles,
		recorder: recorder,
	}
}

// SubmitRequest is the body for submitting a modification request.
type SubmitRequest struct {
	VehicleID string `json:"vehicleId"`
	Action    string `json:"action"`
	Reason    string `json:"reason"`
}

// Submit creates a pending modification request carrying a full snapshot of
// the vehicle as it stands right now. The snapshot is what the admin sees at
// decision time; it is not refreshed if the vehicle changes in between.
// Several pending requests may exist for the same vehicle.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VehicleID == "" {
		writeError(w, http.StatusBadRequest, "vehicleId is required")
		return
	}
	if !models.IsValidRequestAction(req.Action) {
		writeError(w, http.StatusBadRequest, "action must be update or delete")
		return
	}

	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), req.VehicleID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = fmt.Sprintf("Request to %s vehicle %s", req.Action, vehicle.VehicleNumber)
	}

	request := models.ModificationRequest{
		ID:             newID(),
		VehicleID:      vehicle.ID,
		VehicleDetails: *vehicle,
		RequestedBy:    claims.Name,
		RequestedByID:  claims.UserID,
		Action:         req.Action,
		Status:         models.RequestPending,
		RequestDate:    time.Now(),
		Reason:         reason,
	}

	if err := h.requests.InsertRequest(r.Context(), request); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit request")
		return
	}

	h.recorder.Record(r.Context(), claims.UserID, "REQUEST_"+strings.ToUpper(req.Action),
		fmt.Sprintf("Requested to %s vehicle %s", req.Action, vehicle.VehicleNumber))

	writeJSON(w, http.StatusCreated, request)
}

// List returns modification requests, optionally filtered by status.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := h.requests.FindRequests(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load requests")
		return
	}
	defer cursor.Close(r.Context())

	var requests []models.ModificationRequest
	if err := cursor.All(r.Context(), &requests); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load requests")
		return
	}
	if requests == nil {
		requests = []models.ModificationRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

// DecisionRequest is the body for deciding a modification request.
type DecisionRequest struct {
	Outcome string `json:"outcome"`
}

// Decide flips a request's status to approved or rejected. It records the
// decision only: the vehicle collection is never touched here, and the edit
// or delete the decision authorizes is applied out of band. Deciding an
// already-decided request reassigns the same terminal kind of status and has
// no further effect.
func (h *RequestHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var status string
	switch req.Outcome {
	case "approve":
		status = models.RequestApproved
	case "reject":
		status = models.RequestRejected
	default:
		writeError(w, http.StatusBadRequest, "outcome must be approve or reject")
		return
	}

	request, err := h.requests.FindRequestByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Request not found")
		return
	}

	if err := h.requests.UpdateRequestStatus(r.Context(), id, status); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update request")
		return
	}

	request.Status = status
	writeJSON(w, http.StatusOK, request)
}

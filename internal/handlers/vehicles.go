package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lankanwheels/dealership/internal/activity"
	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/middleware"
	"github.com/lankanwheels/dealership/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// VehicleHandler handles the vehicle catalog
type VehicleHandler struct {
	vehicles db.VehicleCollection
	recorder *activity.Recorder
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicles db.VehicleCollection, recorder *activity.Recorder) *VehicleHandler {
	return &VehicleHandler{
		vehicles: vehicles,
		recorder: recorder,
	}
}

// CreateVehicleRequest is the body for adding a vehicle to the catalog.
type CreateVehicleRequest struct {
	VehicleNumber     string   `json:"vehicleNumber"`
	Type              string   `json:"type"`
	Brand             string   `json:"brand"`
	Model             string   `json:"model"`
	Color             string   `json:"color"`
	RegistrationYear  int      `json:"registrationYear"`
	ManufacturingYear int      `json:"manufacturingYear"`
	Price             float64  `json:"price"`
	Mileage           float64  `json:"mileage"`
	Description       string   `json:"description"`
	Photos            []string `json:"photos"`
}

// Create adds a vehicle to the catalog. A rejected submission leaves the
// catalog unchanged and records no activity.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	var req CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vehicle := models.Vehicle{
		ID:                newID(),
		VehicleNumber:     req.VehicleNumber,
		Type:              req.Type,
		Brand:             req.Brand,
		Model:             req.Model,
		Color:             req.Color,
		RegistrationYear:  req.RegistrationYear,
		ManufacturingYear: req.ManufacturingYear,
		Price:             req.Price,
		Mileage:           req.Mileage,
		Description:       req.Description,
		Photos:            req.Photos,
		AddedBy:           claims.Name,
		AddedDate:         time.Now(),
		Status:            models.VehicleAvailable,
	}

	if err := vehicle.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.vehicles.InsertVehicle(r.Context(), vehicle); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add vehicle")
		return
	}

	h.recorder.Record(r.Context(), claims.UserID, models.ActivityAddVehicle,
		fmt.Sprintf("Added vehicle %s - %s %s", vehicle.VehicleNumber, vehicle.Brand, vehicle.Model))

	writeJSON(w, http.StatusCreated, vehicle)
}

// List returns the catalog filtered by an optional case-insensitive search
// term (q, matched against vehicle number, brand, and model) and an optional
// exact type filter. Results keep the collection's insertion order.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.vehicles.FindVehicles(r.Context(), bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load vehicles")
		return
	}
	defer cursor.Close(r.Context())

	var vehicles []models.Vehicle
	if err := cursor.All(r.Context(), &vehicles); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load vehicles")
		return
	}

	filtered := filterVehicles(vehicles, r.URL.Query().Get("q"), r.URL.Query().Get("type"))
	if filtered == nil {
		filtered = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func filterVehicles(vehicles []models.Vehicle, searchTerm, typeFilter string) []models.Vehicle {
	searchTerm = strings.ToLower(searchTerm)
	var filtered []models.Vehicle
	for _, v := range vehicles {
		if searchTerm != "" &&
			!strings.Contains(strings.ToLower(v.VehicleNumber), searchTerm) &&
			!strings.Contains(strings.ToLower(v.Brand), searchTerm) &&
			!strings.Contains(strings.ToLower(v.Model), searchTerm) {
			continue
		}
		if typeFilter != "" && typeFilter != "all" && v.Type != typeFilter {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

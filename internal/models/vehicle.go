package models

import (
	"errors"
	"time"
)

// Vehicle statuses
const (
	VehicleAvailable = "available"
	VehicleSold      = "sold"
	VehicleRepair    = "repair"
)

// Vehicle types offered by the dealership
const (
	TypeMotorcycle   = "motorcycle"
	TypeScooter      = "scooter"
	TypeThreeWheeler = "three-wheeler"
	TypeCar          = "car"
)

// Vehicle represents a vehicle in the dealership inventory.
type Vehicle struct {
	ID                string    `bson:"_id" json:"id"`
	VehicleNumber     string    `bson:"vehicle_number" json:"vehicleNumber"`
	Type              string    `bson:"type" json:"type"`
	Brand             string    `bson:"brand" json:"brand"`
	Model             string    `bson:"model" json:"model"`
	Color             string    `bson:"color" json:"color"`
	RegistrationYear  int       `bson:"registration_year,omitempty" json:"registrationYear,omitempty"`
	ManufacturingYear int       `bson:"manufacturing_year,omitempty" json:"manufacturingYear,omitempty"`
	Price             float64   `bson:"price" json:"price"`   // in LKR
	Mileage           float64   `bson:"mileage" json:"mileage"` // in kilometers
	Description       string    `bson:"description" json:"description"`
	Photos            []string  `bson:"photos,omitempty" json:"photos,omitempty"`
	AddedBy           string    `bson:"added_by" json:"addedBy"`
	AddedDate         time.Time `bson:"added_date" json:"addedDate"`
	Status            string    `bson:"status" json:"status"`
}

var ErrVehicleFieldsMissing = errors.New("vehicle number, type and price are required")

// Validate checks the required fields for adding a vehicle to the catalog.
func (v *Vehicle) Validate() error {
	if v.VehicleNumber == "" || v.Type == "" || v.Price <= 0 {
		return ErrVehicleFieldsMissing
	}
	return nil
}

// IsValidVehicleStatus checks if a vehicle status is one of the known values.
func IsValidVehicleStatus(status string) bool {
	switch status {
	case VehicleAvailable, VehicleSold, VehicleRepair:
		return true
	default:
		return false
	}
}

package models

import (
	"time"
)

// Repair statuses
const (
	RepairInProgress = "in-progress"
	RepairCompleted  = "completed"
	RepairDelayed    = "delayed"
)

// RepairRecord represents a vehicle admitted to a repair shop.
// VehicleNumber is denormalized from the vehicle at admission time.
type RepairRecord struct {
	ID                 string    `bson:"_id" json:"id"`
	VehicleID          string    `bson:"vehicle_id" json:"vehicleId"`
	VehicleNumber      string    `bson:"vehicle_number" json:"vehicleNumber"`
	RepairShop         string    `bson:"repair_shop" json:"repairShop"`
	Location           string    `bson:"location" json:"location"`
	DateAdmitted       time.Time `bson:"date_admitted" json:"dateAdmitted"`
	ExpectedCompletion time.Time `bson:"expected_completion,omitempty" json:"expectedCompletion,omitempty"`
	Status             string    `bson:"status" json:"status"`
	Cost               float64   `bson:"cost" json:"cost"` // in LKR
	Description        string    `bson:"description" json:"description"`
	AddedBy            string    `bson:"added_by" json:"addedBy"`
}

// RepairShop is a partner workshop vehicles can be sent to.
type RepairShop struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// RepairShops is the fixed partner workshop catalog.
var RepairShops = []RepairShop{
	{Name: "AutoCare Colombo", Location: "Colombo 03"},
	{Name: "Quick Fix Kandy", Location: "Kandy"},
	{Name: "Moto Service Galle", Location: "Galle"},
	{Name: "Three Wheeler Experts", Location: "Negombo"},
	{Name: "Bike Doctor Matara", Location: "Matara"},
}

// IsValidRepairStatus checks if a repair status is one of the known values.
func IsValidRepairStatus(status string) bool {
	switch status {
	case RepairInProgress, RepairCompleted, RepairDelayed:
		return true
	default:
		return false
	}
}

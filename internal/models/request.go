package models

import (
	"time"
)

// Modification request actions
const (
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Modification request statuses
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// ModificationRequest is an employee-initiated request to edit or delete a
// vehicle, decided later by an admin. VehicleDetails is a snapshot of the
// vehicle taken at submission time; it is not re-validated when the request
// is decided.
type ModificationRequest struct {
	ID             string    `bson:"_id" json:"id"`
	VehicleID      string    `bson:"vehicle_id" json:"vehicleId"`
	VehicleDetails Vehicle   `bson:"vehicle_details" json:"vehicleDetails"`
	RequestedBy    string    `bson:"requested_by" json:"requestedBy"`
	RequestedByID  string    `bson:"requested_by_id" json:"requestedById"`
	Action         string    `bson:"action" json:"action"`
	Status         string    `bson:"status" json:"status"`
	RequestDate    time.Time `bson:"request_date" json:"requestDate"`
	Reason         string    `bson:"reason" json:"reason"`
}

// IsValidRequestAction checks if a modification action is one of the known values.
func IsValidRequestAction(action string) bool {
	return action == ActionUpdate || action == ActionDelete
}

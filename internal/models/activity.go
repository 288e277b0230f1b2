package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity actions recorded in the audit trail
const (
	ActivityLogin         = "LOGIN"
	ActivityLogout        = "LOGOUT"
	ActivityAddVehicle    = "ADD_VEHICLE"
	ActivityAddRepair     = "ADD_REPAIR"
	ActivityUpdateRepair  = "UPDATE_REPAIR"
	ActivityRequestUpdate = "REQUEST_UPDATE"
	ActivityRequestDelete = "REQUEST_DELETE"
)

// ActivityEntry is an append-only audit record of a user action.
type ActivityEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"user_id" json:"userId"`
	Action    string             `bson:"action" json:"action"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Details   string             `bson:"details" json:"details"`
}

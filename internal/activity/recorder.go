// Package activity maintains the append-only audit trail of user actions.
// Every mutating operation in the system records exactly one entry here;
// failed operations record nothing.
package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/models"
	log "github.com/sirupsen/logrus"
)

// Publisher sends activity events to an external feed.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Recorder appends activity entries to the activity collection, mirrors them
// to the structured log, and optionally publishes them to an event feed.
type Recorder struct {
	activities db.ActivityCollection
	logger     *log.Logger
	publisher  Publisher
	topicBase  string
}

// NewRecorder creates a recorder. publisher may be nil, in which case entries
// are only persisted and logged.
func NewRecorder(activities db.ActivityCollection, logger *log.Logger, publisher Publisher) *Recorder {
	return &Recorder{
		activities: activities,
		logger:     logger,
		publisher:  publisher,
		topicBase:  "lankanwheels/activity/",
	}
}

// Record appends one entry to the audit trail. Persistence or publish
// failures are logged and never propagate: audit is best effort and must not
// fail the operation being audited.
func (r *Recorder) Record(ctx context.Context, userID, action, details string) {
	entry := models.ActivityEntry{
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now(),
		Details:   details,
	}

	if err := r.activities.InsertActivity(ctx, entry); err != nil {
		r.logger.WithError(err).WithField("action", action).Error("failed to record activity")
		return
	}

	r.logger.WithFields(log.Fields{
		"user_id": userID,
		"action":  action,
		"details": details,
	}).Info("activity recorded")

	if r.publisher == nil {
		return
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		r.logger.WithError(err).Warn("failed to marshal activity event")
		return
	}
	if err := r.publisher.Publish(r.topicBase+action, payload); err != nil {
		r.logger.WithError(err).Warn("failed to publish activity event")
	}
}

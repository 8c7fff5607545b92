package delivery

import (
	"fmt"

	"posdelivery/internal/pkg/errs"
)

// EventType classifies entries in a delivery order's history log.
// The string values are stored as-is and returned to API clients.
type EventType string

const (
	// EventCreated records the creation of the order.
	EventCreated EventType = "created"
	// EventAssigned records the first assignment to a courier.
	EventAssigned EventType = "assigned"
	// EventStarted records the start of transit.
	EventStarted EventType = "started"
	// EventCompleted records a successful delivery.
	EventCompleted EventType = "completed"
	// EventFailed records a failed delivery.
	EventFailed EventType = "failed"
	// EventReassigned records a courier swap on an already assigned order.
	EventReassigned EventType = "reassigned"
	// EventPriorityChanged records a priority change.
	EventPriorityChanged EventType = "priority_changed"
	// EventZoneChanged records a delivery zone change.
	EventZoneChanged EventType = "zone_changed"
	// EventPhotoUploaded records a proof-of-delivery photo upload.
	EventPhotoUploaded EventType = "photo_uploaded"
	// EventLocationUpdated records a courier position snapshot.
	EventLocationUpdated EventType = "location_updated"
	// EventCommentAdded records a free-text comment from a courier or staff.
	EventCommentAdded EventType = "comment_added"
)

// getEventTypeLabels returns the map of event types to their human-readable
// labels used in receipts and history views.
func getEventTypeLabels() map[EventType]string {
	return map[EventType]string{
		EventCreated:         "Created",
		EventAssigned:        "Assigned to courier",
		EventStarted:         "In transit",
		EventCompleted:       "Delivered",
		EventFailed:          "Delivery failed",
		EventReassigned:      "Reassigned",
		EventPriorityChanged: "Priority changed",
		EventZoneChanged:     "Zone changed",
		EventPhotoUploaded:   "Photo uploaded",
		EventLocationUpdated: "Location updated",
		EventCommentAdded:    "Comment added",
	}
}

// Validate checks that the event type is one of the known values.
func (e EventType) Validate() error {
	if _, ok := getEventTypeLabels()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("eventType",
			fmt.Errorf("%q is not a valid event type", string(e)))
	}
	return nil
}

// Label returns the human-readable label for the event type, or the raw
// value when the type is unknown.
func (e EventType) Label() string {
	if label, ok := getEventTypeLabels()[e]; ok {
		return label
	}
	return string(e)
}

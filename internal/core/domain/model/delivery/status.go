package delivery

import (
	"fmt"

	"posdelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InTransit ──> Completed
//	   ^            │            │
//	   └────────────┴────────────┘ (reset)
//	any non-terminal ──> Failed
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when a delivery is first created.
	// Deliveries in this status are waiting to be assigned to a courier.
	StatusPending

	// StatusAssigned indicates the delivery has a courier.
	// Deliveries can be reassigned while in this status.
	StatusAssigned

	// StatusInTransit indicates the courier has picked up the delivery
	// and is on the way to the customer.
	StatusInTransit

	// StatusCompleted indicates the delivery reached the customer.
	// This is a final state with no further transitions allowed.
	StatusCompleted

	// StatusFailed indicates the delivery could not be carried out.
	// This is a final state with no further transitions allowed.
	StatusFailed
)

// getStatusStrings returns the map of Status values to their wire labels.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusInTransit: "in_transit",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
	}
}

// getValidStatusStrings returns the map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusInTransit: "in_transit",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
	}
}

// StatusFromString parses a wire label ("pending", "in_transit", ...) into a
// Status. Used when rehydrating from persistence and when filtering orders
// by a client-supplied status.
func StatusFromString(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire label of the status ("pending", "assigned",
// "in_transit", "completed", "failed"). It implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// ValidateCanHaveCourier validates the consistency between delivery status
// and courier assignment when rehydrating from persistence.
//
// Business rules:
//   - Pending deliveries must not have a courier assigned
//   - Assigned and InTransit deliveries must have a courier assigned
//   - Terminal deliveries may have either (failed orders keep or lose theirs)
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if s == StatusPending && courier {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()))
	}

	if !courier && (s == StatusAssigned || s == StatusInTransit) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()))
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (initial assignment)
//   - Assigned -> Assigned (reassignment to a different courier)
func (s Status) Assign() (Status, error) {
	if s != StatusPending && s != StatusAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign", s.String()))
	}

	return StatusAssigned, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Assigned -> InTransit (courier picked up the order)
func (s Status) StartTransit() (Status, error) {
	if s != StatusAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start transit", s.String()))
	}

	return StatusInTransit, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InTransit -> Completed (order delivered)
func (s Status) Complete() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}

	return StatusCompleted, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions: any non-terminal status -> Failed.
func (s Status) Fail() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to fail", s.String()))
	}

	return StatusFailed, nil
}

// Reset transitions the status back to Pending.
//
// Valid transitions: any non-terminal status -> Pending. Terminal orders
// stay terminal.
func (s Status) Reset() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to reset", s.String()))
	}

	return StatusPending, nil
}

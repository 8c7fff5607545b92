package delivery

import (
	"fmt"

	"posdelivery/internal/pkg/errs"
)

// Priority ranks deliveries for courier work queues. Higher values sort
// first. The numeric values are part of the wire and storage format.
type Priority int

const (
	// PriorityLow marks deliveries that can wait.
	PriorityLow Priority = 0
	// PriorityNormal is the default for new deliveries.
	PriorityNormal Priority = 1
	// PriorityHigh marks deliveries that should jump the queue.
	PriorityHigh Priority = 2
	// PriorityUrgent marks deliveries that must go out immediately.
	PriorityUrgent Priority = 3
)

// getPriorityStrings returns the map of Priority values to their labels.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:    "low",
		PriorityNormal: "normal",
		PriorityHigh:   "high",
		PriorityUrgent: "urgent",
	}
}

// Validate checks that the priority is within the known range.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(PriorityLow), int(PriorityUrgent))
	}
	return nil
}

// String returns the label of the priority ("low", "normal", "high",
// "urgent"). It implements fmt.Stringer and is safe to call on any value.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// PriorityFromString parses a priority label back into its Priority value.
func PriorityFromString(s string) (Priority, error) {
	for priority, label := range getPriorityStrings() {
		if label == s {
			return priority, nil
		}
	}
	return 0, errs.NewValueIsInvalidError("priority")
}

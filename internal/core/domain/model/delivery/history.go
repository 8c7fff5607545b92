package delivery

import (
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is an append-only child entity of DeliveryOrder recording a
// single event in the order's life: a transition, a tracked field change, or
// a comment. Entries are never updated or deleted once written.
type HistoryEntry struct {
	// id uniquely identifies the entry
	id kernel.UUID
	// eventType classifies the event
	eventType EventType
	// oldValue and newValue carry the before/after of a tracked change
	oldValue string
	newValue string
	// description is a free-text account of the event
	description string
	// location is an optional position snapshot taken with the event
	location *kernel.GeoLocation
	// actor names who triggered the event: a courier name or "staff"
	actor string
	// createdAt is when the event happened
	createdAt time.Time
	// guard ensures the entry was properly constructed
	guard guard.ConstructorGuard
}

// NewHistoryEntry records a new event happening at the given time.
func NewHistoryEntry(
	eventType EventType,
	oldValue string,
	newValue string,
	description string,
	actor string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		oldValue:    oldValue,
		newValue:    newValue,
		description: description,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(kernel.NewUUID()),
		entry.setEventType(eventType),
		entry.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreHistoryEntry reconstructs an entry from persistent storage.
func RestoreHistoryEntry(
	id kernel.UUID,
	eventType EventType,
	oldValue string,
	newValue string,
	description string,
	location *kernel.GeoLocation,
	actor string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		oldValue:    oldValue,
		newValue:    newValue,
		description: description,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setEventType(eventType),
		entry.setLocation(location),
		entry.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the entry was properly constructed.
func (h *HistoryEntry) Validate() error {
	if h == nil {
		return ErrHistoryEntryIsNotConstructed
	}
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// IsEqual compares two entries by identity.
func (h *HistoryEntry) IsEqual(other *HistoryEntry) bool {
	return other != nil && h.id.IsEqual(other.id)
}

// ID returns the unique identifier of the entry.
func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

// EventType returns the classification of the event.
func (h *HistoryEntry) EventType() EventType {
	return h.eventType
}

// OldValue returns the value before a tracked change, empty for events that
// are not changes.
func (h *HistoryEntry) OldValue() string {
	return h.oldValue
}

// NewValue returns the value after a tracked change.
func (h *HistoryEntry) NewValue() string {
	return h.newValue
}

// Description returns the free-text account of the event.
func (h *HistoryEntry) Description() string {
	return h.description
}

// Location returns the position snapshot taken with the event, nil when none
// was recorded.
func (h *HistoryEntry) Location() *kernel.GeoLocation {
	return h.location
}

// Actor returns who triggered the event.
func (h *HistoryEntry) Actor() string {
	return h.actor
}

// CreatedAt returns when the event happened.
func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

// WithLocation attaches a position snapshot to the entry. Used for events
// recorded together with a courier position.
func (h *HistoryEntry) WithLocation(location kernel.GeoLocation) error {
	return h.setLocation(&location)
}

func (h *HistoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	h.id = id
	return nil
}

func (h *HistoryEntry) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	h.eventType = eventType
	return nil
}

func (h *HistoryEntry) setLocation(location *kernel.GeoLocation) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	h.location = location
	return nil
}

func (h *HistoryEntry) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	h.createdAt = createdAt
	return nil
}

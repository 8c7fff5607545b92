package delivery

import (
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

var (
	// ErrStageTimeIsNotConstructed is returned when a StageTime was not
	// created through NewStageTime or RestoreStageTime.
	ErrStageTimeIsNotConstructed = errors.New("StageTime must be created via NewStageTime constructor")

	// ErrStageTimeAlreadyClosed is returned when closing an entry that
	// already has an end time. Closed entries are immutable.
	ErrStageTimeAlreadyClosed = errors.New("stage time entry is already closed")
)

// StageTime is a child entity of DeliveryOrder recording how long the order
// spent in one visit to a lifecycle stage. Exactly one entry per order is
// active at any moment; it is closed when the order leaves the stage and a
// new entry is opened for the next stage. An order that re-enters a stage
// gets a fresh entry, so total time per stage is an aggregation over entries.
type StageTime struct {
	// id uniquely identifies the entry
	id kernel.UUID
	// stage is the lifecycle stage this entry measures
	stage Status
	// startTime is when the order entered the stage
	startTime time.Time
	// endTime is when the order left the stage, nil while active
	endTime *time.Time
	// guard ensures the entry was properly constructed
	guard guard.ConstructorGuard
}

// NewStageTime opens a new active entry for the given stage starting at start.
func NewStageTime(stage Status, start time.Time) (*StageTime, error) {
	entry := &StageTime{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(entry.setID(kernel.NewUUID()), entry.setStage(stage), entry.setStartTime(start)); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreStageTime reconstructs an entry from persistent storage, including
// its closed state.
func RestoreStageTime(id kernel.UUID, stage Status, start time.Time, end *time.Time) (*StageTime, error) {
	entry := &StageTime{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setStage(stage),
		entry.setStartTime(start),
		entry.setEndTime(end),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the entry was properly constructed.
func (s *StageTime) Validate() error {
	if s == nil {
		return ErrStageTimeIsNotConstructed
	}
	return s.guard.Validate(ErrStageTimeIsNotConstructed)
}

// IsEqual compares two entries by identity.
func (s *StageTime) IsEqual(other *StageTime) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the unique identifier of the entry.
func (s *StageTime) ID() kernel.UUID {
	return s.id
}

// Stage returns the lifecycle stage this entry measures.
func (s *StageTime) Stage() Status {
	return s.stage
}

// StartTime returns when the order entered the stage.
func (s *StageTime) StartTime() time.Time {
	return s.startTime
}

// EndTime returns when the order left the stage, nil while the entry
// is active.
func (s *StageTime) EndTime() *time.Time {
	return s.endTime
}

// IsActive reports whether the entry is still open.
func (s *StageTime) IsActive() bool {
	return s.endTime == nil
}

// Close ends the entry at the given time. Closing an already closed entry
// returns ErrStageTimeAlreadyClosed; an end before the start is invalid.
func (s *StageTime) Close(end time.Time) error {
	if !s.IsActive() {
		return ErrStageTimeAlreadyClosed
	}

	return s.setEndTime(&end)
}

// Duration returns the time spent in this entry. For an active entry the
// duration keeps growing, measured against the supplied current time.
func (s *StageTime) Duration(now time.Time) time.Duration {
	if s.endTime != nil {
		return s.endTime.Sub(s.startTime)
	}
	return now.Sub(s.startTime)
}

func (s *StageTime) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *StageTime) setStage(stage Status) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	s.stage = stage
	return nil
}

func (s *StageTime) setStartTime(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("startTime")
	}

	s.startTime = start
	return nil
}

func (s *StageTime) setEndTime(end *time.Time) error {
	if end == nil {
		s.endTime = nil
		return nil
	}

	if end.Before(s.startTime) {
		return errs.NewValueIsInvalidError("endTime")
	}

	endCopy := *end
	s.endTime = &endCopy
	return nil
}

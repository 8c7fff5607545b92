package delivery

import (
	"errors"
	"fmt"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for delivery order operations.
var (
	// ErrDeliveryOrderIsNotConstructed is returned when using an improperly
	// initialized DeliveryOrder.
	ErrDeliveryOrderIsNotConstructed = errors.New("DeliveryOrder must be created via NewDeliveryOrder constructor")
	// ErrCustomerNameIsRequired is returned when creating an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrDeliveryAddressIsRequired is returned when creating an order without an address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
	// ErrOrderNotRateable is returned when rating an order that has not been completed.
	ErrOrderNotRateable = errors.New("only completed deliveries can be rated")
)

const (
	// RatingMin is the lowest accepted customer rating.
	RatingMin = 1
	// RatingMax is the highest accepted customer rating.
	RatingMax = 5

	// staffActor is recorded in history when an event was not triggered by
	// a courier.
	staffActor = "staff"
)

// DeliveryOrder is the aggregate root for a single delivery. It owns the
// order's lifecycle state machine, its stage time log, and its history log,
// and keeps the three consistent: every status transition closes the active
// stage entry, opens a new one, and appends a history entry, in that order.
//
// Key invariants:
//   - Status transitions follow the Status state machine; terminal orders never change again
//   - An assigned or in-transit order always has a courier, a pending order never does
//   - At any moment exactly one stage time entry is active
//   - History is append-only
type DeliveryOrder struct {
	// id uniquely identifies the order
	id kernel.UUID
	// number is the sequential human-facing name, e.g. "DEL-00042"
	number string
	// posOrderRef links back to the point-of-sale order, empty when standalone
	posOrderRef string

	customerName    string
	deliveryAddress string
	deliveryPhone   string
	// location is the geographic position of the delivery address, nil when not geocoded
	location *kernel.GeoLocation

	// courierID is the assigned courier, nil while pending
	courierID *kernel.UUID
	// zoneID is the delivery zone, nil when outside all zones
	zoneID *kernel.UUID
	// cost is the delivery fee charged to the customer
	cost          decimal.Decimal
	paymentMethod PaymentMethod

	status   Status
	priority Priority

	createdAt           time.Time
	assignedAt          *time.Time
	inTransitAt         *time.Time
	completedAt         *time.Time
	estimatedDeliveryAt *time.Time

	// photo and signature are base64-encoded proof-of-delivery artifacts
	photo     string
	signature string

	// rating is the customer's score after completion, nil when not rated
	rating        *int
	ratingComment string

	warehouseNotes string
	courierNotes   string
	customerNotes  string

	stageTimes []*StageTime
	history    []*HistoryEntry

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryOrder creates a new pending delivery order. The constructor
// opens the pending stage timer and records the creation history entry, so a
// freshly created order already satisfies the aggregate invariants.
func NewDeliveryOrder(
	id kernel.UUID,
	number string,
	customerName string,
	deliveryAddress string,
	deliveryPhone string,
	priority Priority,
	now time.Time,
) (*DeliveryOrder, error) {
	order := &DeliveryOrder{
		deliveryPhone: deliveryPhone,
		status:        StatusPending,
		paymentMethod: PaymentCash,
		cost:          decimal.Zero,
		createdAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomerName(customerName),
		order.setDeliveryAddress(deliveryAddress),
		order.setPriority(priority),
	); err != nil {
		return nil, err
	}

	if err := order.openStage(StatusPending, now); err != nil {
		return nil, err
	}

	if err := order.appendHistory(EventCreated, "", "",
		fmt.Sprintf("Delivery order %s created", order.number), staffActor, now); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreDeliveryOrder reconstructs a DeliveryOrder aggregate from persistent
// storage, including its stage time and history children. The restored order
// behaves identically to one built through normal domain operations.
func RestoreDeliveryOrder(
	id kernel.UUID,
	number string,
	posOrderRef string,
	customerName string,
	deliveryAddress string,
	deliveryPhone string,
	location *kernel.GeoLocation,
	courierID *kernel.UUID,
	zoneID *kernel.UUID,
	cost decimal.Decimal,
	paymentMethod PaymentMethod,
	status Status,
	priority Priority,
	createdAt time.Time,
	assignedAt *time.Time,
	inTransitAt *time.Time,
	completedAt *time.Time,
	estimatedDeliveryAt *time.Time,
	photo string,
	signature string,
	rating *int,
	ratingComment string,
	warehouseNotes string,
	courierNotes string,
	customerNotes string,
	stageTimes []*StageTime,
	history []*HistoryEntry,
) (*DeliveryOrder, error) {
	order := &DeliveryOrder{
		posOrderRef:         posOrderRef,
		deliveryPhone:       deliveryPhone,
		cost:                cost,
		createdAt:           createdAt,
		assignedAt:          assignedAt,
		inTransitAt:         inTransitAt,
		completedAt:         completedAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		photo:               photo,
		signature:           signature,
		ratingComment:       ratingComment,
		warehouseNotes:      warehouseNotes,
		courierNotes:        courierNotes,
		customerNotes:       customerNotes,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomerName(customerName),
		order.setDeliveryAddress(deliveryAddress),
		order.setLocation(location),
		order.setStatus(status, courierID),
		order.setPriority(priority),
		order.setPaymentMethod(paymentMethod),
		order.setZoneID(zoneID),
		order.setRating(rating),
		order.setStageTimes(stageTimes),
		order.setHistory(history),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks if the order was properly constructed.
func (d *DeliveryOrder) Validate() error {
	if d == nil {
		return ErrDeliveryOrderIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (d *DeliveryOrder) IsEqual(other *DeliveryOrder) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (d *DeliveryOrder) ID() kernel.UUID { return d.id }

// Number returns the sequential display name, e.g. "DEL-00042".
func (d *DeliveryOrder) Number() string { return d.number }

// PosOrderRef returns the linked point-of-sale order reference.
func (d *DeliveryOrder) PosOrderRef() string { return d.posOrderRef }

// CustomerName returns the customer's name.
func (d *DeliveryOrder) CustomerName() string { return d.customerName }

// DeliveryAddress returns the destination address text.
func (d *DeliveryOrder) DeliveryAddress() string { return d.deliveryAddress }

// DeliveryPhone returns the customer's phone number.
func (d *DeliveryOrder) DeliveryPhone() string { return d.deliveryPhone }

// Location returns the geocoded position of the delivery address, nil when unknown.
func (d *DeliveryOrder) Location() *kernel.GeoLocation { return d.location }

// CourierID returns the assigned courier's ID, nil while pending.
func (d *DeliveryOrder) CourierID() *kernel.UUID { return d.courierID }

// ZoneID returns the delivery zone's ID, nil when outside all zones.
func (d *DeliveryOrder) ZoneID() *kernel.UUID { return d.zoneID }

// Cost returns the delivery fee.
func (d *DeliveryOrder) Cost() decimal.Decimal { return d.cost }

// PaymentMethod returns how the customer pays.
func (d *DeliveryOrder) PaymentMethod() PaymentMethod { return d.paymentMethod }

// Status returns the current lifecycle status.
func (d *DeliveryOrder) Status() Status { return d.status }

// Priority returns the current priority.
func (d *DeliveryOrder) Priority() Priority { return d.priority }

// CreatedAt returns when the order was created.
func (d *DeliveryOrder) CreatedAt() time.Time { return d.createdAt }

// AssignedAt returns when the order was last assigned, nil when never assigned.
func (d *DeliveryOrder) AssignedAt() *time.Time { return d.assignedAt }

// InTransitAt returns when transit started, nil when it has not.
func (d *DeliveryOrder) InTransitAt() *time.Time { return d.inTransitAt }

// CompletedAt returns when the order reached a terminal state, nil before that.
func (d *DeliveryOrder) CompletedAt() *time.Time { return d.completedAt }

// EstimatedDeliveryAt returns the promised delivery time, nil when none.
func (d *DeliveryOrder) EstimatedDeliveryAt() *time.Time { return d.estimatedDeliveryAt }

// Photo returns the base64 proof-of-delivery photo.
func (d *DeliveryOrder) Photo() string { return d.photo }

// Signature returns the base64 customer signature.
func (d *DeliveryOrder) Signature() string { return d.signature }

// Rating returns the customer's score, nil when not rated.
func (d *DeliveryOrder) Rating() *int { return d.rating }

// RatingComment returns the customer's comment left with the rating.
func (d *DeliveryOrder) RatingComment() string { return d.ratingComment }

// WarehouseNotes returns the accumulated warehouse notes.
func (d *DeliveryOrder) WarehouseNotes() string { return d.warehouseNotes }

// CourierNotes returns the accumulated courier notes.
func (d *DeliveryOrder) CourierNotes() string { return d.courierNotes }

// CustomerNotes returns the customer's delivery instructions.
func (d *DeliveryOrder) CustomerNotes() string { return d.customerNotes }

// StageTimes returns a copy of the stage time log.
func (d *DeliveryOrder) StageTimes() []*StageTime {
	out := make([]*StageTime, len(d.stageTimes))
	copy(out, d.stageTimes)
	return out
}

// History returns a copy of the history log.
func (d *DeliveryOrder) History() []*HistoryEntry {
	out := make([]*HistoryEntry, len(d.history))
	copy(out, d.history)
	return out
}

// ActiveStage returns the currently open stage time entry, nil when the log
// is in an inconsistent state.
func (d *DeliveryOrder) ActiveStage() *StageTime {
	for _, entry := range d.stageTimes {
		if entry.IsActive() {
			return entry
		}
	}
	return nil
}

// TimeInStage sums the duration of every visit to the given stage. The open
// entry, if it matches, is measured against now.
func (d *DeliveryOrder) TimeInStage(stage Status, now time.Time) time.Duration {
	var total time.Duration
	for _, entry := range d.stageTimes {
		if entry.Stage() == stage {
			total += entry.Duration(now)
		}
	}
	return total
}

// TotalDeliveryTime returns the time from creation to the terminal timestamp,
// nil while the order is still in progress.
func (d *DeliveryOrder) TotalDeliveryTime() *time.Duration {
	if d.completedAt == nil {
		return nil
	}
	total := d.completedAt.Sub(d.createdAt)
	return &total
}

// Assign assigns the order to a courier. From pending this is the initial
// assignment; from assigned it is a reassignment that keeps the status and
// stage but records who took over.
func (d *DeliveryOrder) Assign(courierID kernel.UUID, actor string, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	if d.status == StatusAssigned {
		if d.courierID.IsEqual(courierID) {
			return nil
		}

		oldCourier := d.courierID.String()
		d.courierID = &courierID
		assignedAt := now
		d.assignedAt = &assignedAt
		return d.appendHistory(EventReassigned, oldCourier, courierID.String(),
			"Delivery reassigned to another courier", actor, now)
	}

	d.status = newStatus
	d.courierID = &courierID
	assignedAt := now
	d.assignedAt = &assignedAt

	if err = d.transitionStage(StatusAssigned, now); err != nil {
		return err
	}

	return d.appendHistory(EventAssigned, "", courierID.String(),
		"Delivery assigned to courier", actor, now)
}

// StartTransit marks the courier as on the way. Requires assigned status.
func (d *DeliveryOrder) StartTransit(actor string, now time.Time) error {
	newStatus, err := d.status.StartTransit()
	if err != nil {
		return err
	}

	d.status = newStatus
	inTransitAt := now
	d.inTransitAt = &inTransitAt

	if err = d.transitionStage(StatusInTransit, now); err != nil {
		return err
	}

	return d.appendHistory(EventStarted, "", "", "Courier started the delivery", actor, now)
}

// Complete marks the order as delivered. Requires in-transit status. When the
// store requires proof of delivery, the corresponding artifact must already
// be attached.
func (d *DeliveryOrder) Complete(photoRequired bool, signatureRequired bool, actor string, now time.Time) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	if photoRequired && d.photo == "" {
		return errs.NewValueIsRequiredError("photo")
	}
	if signatureRequired && d.signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}

	d.status = newStatus
	completedAt := now
	d.completedAt = &completedAt

	if err = d.transitionStage(StatusCompleted, now); err != nil {
		return err
	}

	return d.appendHistory(EventCompleted, "", "", "Delivery completed", actor, now)
}

// Fail marks the order as undeliverable with the given reason. Allowed from
// any non-terminal status.
func (d *DeliveryOrder) Fail(reason string, actor string, now time.Time) error {
	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = newStatus
	completedAt := now
	d.completedAt = &completedAt

	if err = d.transitionStage(StatusFailed, now); err != nil {
		return err
	}

	description := "Delivery failed"
	if reason != "" {
		description = fmt.Sprintf("Delivery failed: %s", reason)
	}
	return d.appendHistory(EventFailed, "", "", description, actor, now)
}

// ResetToPending sends a non-terminal order back to the start of the
// workflow, clearing the courier and every progress timestamp.
func (d *DeliveryOrder) ResetToPending(actor string, now time.Time) error {
	newStatus, err := d.status.Reset()
	if err != nil {
		return err
	}

	if d.status == StatusPending {
		return nil
	}

	oldCourier := ""
	if d.courierID != nil {
		oldCourier = d.courierID.String()
	}

	d.status = newStatus
	d.courierID = nil
	d.assignedAt = nil
	d.inTransitAt = nil
	d.completedAt = nil

	if err = d.transitionStage(StatusPending, now); err != nil {
		return err
	}

	return d.appendHistory(EventReassigned, oldCourier, "",
		"Delivery reset to pending", actor, now)
}

// ChangeCourier applies the implicit transitions of editing the courier
// field: setting a courier on a pending order assigns it, clearing the
// courier of an assigned order reverts it to pending, and swapping couriers
// on an assigned order is a reassignment. Any other combination is invalid.
func (d *DeliveryOrder) ChangeCourier(courierID *kernel.UUID, actor string, now time.Time) error {
	if courierID != nil {
		return d.Assign(*courierID, actor, now)
	}

	if d.status != StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to clear the courier", d.status.String()))
	}

	return d.ResetToPending(actor, now)
}

// SetPriority changes the priority, recording the change in history.
func (d *DeliveryOrder) SetPriority(priority Priority, actor string, now time.Time) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	if priority == d.priority {
		return nil
	}

	oldPriority := d.priority
	d.priority = priority

	return d.appendHistory(EventPriorityChanged, oldPriority.String(), priority.String(),
		fmt.Sprintf("Priority changed from %s to %s", oldPriority, priority), actor, now)
}

// SetZone changes the delivery zone, recording the change in history.
// zoneLabel names the new zone in the history description.
func (d *DeliveryOrder) SetZone(zoneID kernel.UUID, zoneLabel string, actor string, now time.Time) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	oldZone := ""
	if d.zoneID != nil {
		if d.zoneID.IsEqual(zoneID) {
			return nil
		}
		oldZone = d.zoneID.String()
	}

	d.zoneID = &zoneID

	return d.appendHistory(EventZoneChanged, oldZone, zoneID.String(),
		fmt.Sprintf("Delivery zone changed to %s", zoneLabel), actor, now)
}

// ApplyZoneDefaults links the order to a zone at creation time and fills the
// cost and estimated delivery time from the zone when the order does not
// carry its own values yet. No history is recorded; this is part of creation.
func (d *DeliveryOrder) ApplyZoneDefaults(zoneID kernel.UUID, zoneCost decimal.Decimal, estimatedMinutes int) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	d.zoneID = &zoneID
	if d.cost.IsZero() {
		d.cost = zoneCost
	}
	if d.estimatedDeliveryAt == nil && estimatedMinutes > 0 {
		estimated := d.createdAt.Add(time.Duration(estimatedMinutes) * time.Minute)
		d.estimatedDeliveryAt = &estimated
	}

	return nil
}

// AttachPhoto stores the proof-of-delivery photo and records the upload.
func (d *DeliveryOrder) AttachPhoto(photo string, actor string, now time.Time) error {
	if photo == "" {
		return errs.NewValueIsRequiredError("photo")
	}

	d.photo = photo
	return d.appendHistory(EventPhotoUploaded, "", "", "Delivery photo uploaded", actor, now)
}

// AttachSignature stores the customer signature collected on delivery.
func (d *DeliveryOrder) AttachSignature(signature string) error {
	if signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}

	d.signature = signature
	return nil
}

// UpdateLocation records a courier position snapshot in history. The
// delivery address position is not affected.
func (d *DeliveryOrder) UpdateLocation(location kernel.GeoLocation, actor string, now time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}

	entry, err := NewHistoryEntry(EventLocationUpdated, "", "", "Courier location updated", actor, now)
	if err != nil {
		return err
	}
	if err = entry.WithLocation(location); err != nil {
		return err
	}

	d.history = append(d.history, entry)
	return nil
}

// AddCourierNote appends a comment from the courier to the order.
func (d *DeliveryOrder) AddCourierNote(note string, actor string, now time.Time) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}

	d.courierNotes = appendNote(d.courierNotes, note)
	return d.appendHistory(EventCommentAdded, "", "", note, actor, now)
}

// AddWarehouseNote appends a comment from warehouse staff to the order.
func (d *DeliveryOrder) AddWarehouseNote(note string, actor string, now time.Time) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}

	d.warehouseNotes = appendNote(d.warehouseNotes, note)
	return d.appendHistory(EventCommentAdded, "", "", note, actor, now)
}

// Rate records the customer's score for a completed delivery.
func (d *DeliveryOrder) Rate(rating int, comment string) error {
	if d.status != StatusCompleted {
		return ErrOrderNotRateable
	}
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}

	d.rating = &rating
	d.ratingComment = comment
	return nil
}

// SetPosOrderRef links the order to a point-of-sale order reference.
func (d *DeliveryOrder) SetPosOrderRef(ref string) {
	d.posOrderRef = ref
}

// SetCustomerNotes stores the customer's delivery instructions.
func (d *DeliveryOrder) SetCustomerNotes(notes string) {
	d.customerNotes = notes
}

// SetCost overrides the delivery fee.
func (d *DeliveryOrder) SetCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}

	d.cost = cost
	return nil
}

// SetPaymentMethod records how the customer pays.
func (d *DeliveryOrder) SetPaymentMethod(method PaymentMethod) error {
	return d.setPaymentMethod(method)
}

// SetDeliveryLocation stores the geocoded position of the delivery address.
func (d *DeliveryOrder) SetDeliveryLocation(location kernel.GeoLocation) error {
	return d.setLocation(&location)
}

// SetEstimatedDeliveryAt sets the promised delivery time.
func (d *DeliveryOrder) SetEstimatedDeliveryAt(estimated time.Time) {
	d.estimatedDeliveryAt = &estimated
}

// transitionStage closes the active stage entry and opens a new one for the
// given stage. Runs inside every status transition, before the history entry
// is appended.
func (d *DeliveryOrder) transitionStage(to Status, now time.Time) error {
	if active := d.ActiveStage(); active != nil {
		if err := active.Close(now); err != nil {
			return err
		}
	}

	return d.openStage(to, now)
}

func (d *DeliveryOrder) openStage(stage Status, now time.Time) error {
	entry, err := NewStageTime(stage, now)
	if err != nil {
		return err
	}

	d.stageTimes = append(d.stageTimes, entry)
	return nil
}

func (d *DeliveryOrder) appendHistory(
	eventType EventType,
	oldValue string,
	newValue string,
	description string,
	actor string,
	now time.Time,
) error {
	if actor == "" {
		actor = staffActor
	}

	entry, err := NewHistoryEntry(eventType, oldValue, newValue, description, actor, now)
	if err != nil {
		return err
	}

	d.history = append(d.history, entry)
	return nil
}

func (d *DeliveryOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *DeliveryOrder) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}

	d.number = number
	return nil
}

func (d *DeliveryOrder) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	d.customerName = name
	return nil
}

func (d *DeliveryOrder) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	d.deliveryAddress = address
	return nil
}

func (d *DeliveryOrder) setLocation(location *kernel.GeoLocation) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	d.location = location
	return nil
}

// setStatus restores the status together with the courier reference,
// checking that the two are consistent.
func (d *DeliveryOrder) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}

	d.status = status
	d.courierID = courierID
	return nil
}

func (d *DeliveryOrder) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	d.priority = priority
	return nil
}

func (d *DeliveryOrder) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	d.paymentMethod = method
	return nil
}

func (d *DeliveryOrder) setZoneID(zoneID *kernel.UUID) error {
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return err
		}
	}

	d.zoneID = zoneID
	return nil
}

func (d *DeliveryOrder) setRating(rating *int) error {
	if rating != nil && (*rating < RatingMin || *rating > RatingMax) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, RatingMin, RatingMax)
	}

	d.rating = rating
	return nil
}

func (d *DeliveryOrder) setStageTimes(stageTimes []*StageTime) error {
	for _, entry := range stageTimes {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	d.stageTimes = make([]*StageTime, len(stageTimes))
	copy(d.stageTimes, stageTimes)
	return nil
}

func (d *DeliveryOrder) setHistory(history []*HistoryEntry) error {
	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	d.history = make([]*HistoryEntry, len(history))
	copy(d.history, history)
	return nil
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}

// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery order persistence. This package implements the repository
// pattern for the delivery order aggregate, handling the conversion between
// domain entities and database representations including the stage time and
// history child tables.
package deliveryrepo

import (
	"time"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting delivery order
// aggregates. Status and payment method are stored as their wire labels so
// reports and ad hoc queries stay readable.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number              string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	PosOrderRef         string     `gorm:"type:varchar(64)"`
	CustomerName        string     `gorm:"type:varchar(255);not null"`
	DeliveryAddress     string     `gorm:"type:text;not null"`
	DeliveryPhone       string     `gorm:"type:varchar(32)"`
	Latitude            *float64   `gorm:"type:double precision"`
	Longitude           *float64   `gorm:"type:double precision"`
	CourierID           *uuid.UUID `gorm:"type:uuid;index"`
	ZoneID              *uuid.UUID `gorm:"type:uuid;index"`
	Cost                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod       string     `gorm:"type:varchar(16);not null"`
	Status              string     `gorm:"type:varchar(16);not null;index"`
	Priority            int        `gorm:"type:smallint;not null"`
	CreatedAt           time.Time  `gorm:"not null"`
	AssignedAt          *time.Time
	InTransitAt         *time.Time
	CompletedAt         *time.Time
	EstimatedDeliveryAt *time.Time
	Photo               string `gorm:"type:text"`
	Signature           string `gorm:"type:text"`
	Rating              *int   `gorm:"type:smallint"`
	RatingComment       string `gorm:"type:text"`
	WarehouseNotes      string `gorm:"type:text"`
	CourierNotes        string `gorm:"type:text"`
	CustomerNotes       string `gorm:"type:text"`

	StageTimes []StageTimeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History    []HistoryDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery order entities.
func (OrderDTO) TableName() string {
	return "delivery_orders"
}

// StageTimeDTO represents one stage timing entry of an order. Seq is the
// position in the aggregate's log; timestamps alone cannot order entries
// because one transition writes several rows at the same instant.
type StageTimeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq       int       `gorm:"not null"`
	Stage     string    `gorm:"type:varchar(16);not null"`
	StartTime time.Time `gorm:"not null"`
	EndTime   *time.Time
}

// TableName specifies the database table name for stage timing entries.
func (StageTimeDTO) TableName() string {
	return "delivery_stage_times"
}

// HistoryDTO represents one append-only history entry of an order. Seq is
// the position in the aggregate's log; see StageTimeDTO.
type HistoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq         int       `gorm:"not null"`
	EventType   string    `gorm:"type:varchar(32);not null"`
	OldValue    string    `gorm:"type:text"`
	NewValue    string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
	Actor       string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for history entries.
func (HistoryDTO) TableName() string {
	return "delivery_history"
}

// fromDomain converts a delivery order aggregate to its database
// representation, including all stage time and history children.
func fromDomain(aggregate *delivery.DeliveryOrder) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var zoneID *uuid.UUID
	if id := aggregate.ZoneID(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	var latitude, longitude *float64
	if loc := aggregate.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		latitude, longitude = &lat, &lon
	}

	stageTimes := make([]StageTimeDTO, 0, len(aggregate.StageTimes()))
	for i, st := range aggregate.StageTimes() {
		stageTimes = append(stageTimes, StageTimeDTO{
			ID:        st.ID().Bytes(),
			OrderID:   orderID,
			Seq:       i,
			Stage:     st.Stage().String(),
			StartTime: st.StartTime(),
			EndTime:   st.EndTime(),
		})
	}

	history := make([]HistoryDTO, 0, len(aggregate.History()))
	for i, entry := range aggregate.History() {
		var entryLat, entryLon *float64
		if loc := entry.Location(); loc != nil {
			lat, lon := loc.Latitude(), loc.Longitude()
			entryLat, entryLon = &lat, &lon
		}

		history = append(history, HistoryDTO{
			ID:          entry.ID().Bytes(),
			OrderID:     orderID,
			Seq:         i,
			EventType:   string(entry.EventType()),
			OldValue:    entry.OldValue(),
			NewValue:    entry.NewValue(),
			Description: entry.Description(),
			Latitude:    entryLat,
			Longitude:   entryLon,
			Actor:       entry.Actor(),
			CreatedAt:   entry.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:                  orderID,
		Number:              aggregate.Number(),
		PosOrderRef:         aggregate.PosOrderRef(),
		CustomerName:        aggregate.CustomerName(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		DeliveryPhone:       aggregate.DeliveryPhone(),
		Latitude:            latitude,
		Longitude:           longitude,
		CourierID:           courierID,
		ZoneID:              zoneID,
		Cost:                aggregate.Cost(),
		PaymentMethod:       string(aggregate.PaymentMethod()),
		Status:              aggregate.Status().String(),
		Priority:            int(aggregate.Priority()),
		CreatedAt:           aggregate.CreatedAt(),
		AssignedAt:          aggregate.AssignedAt(),
		InTransitAt:         aggregate.InTransitAt(),
		CompletedAt:         aggregate.CompletedAt(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		Photo:               aggregate.Photo(),
		Signature:           aggregate.Signature(),
		Rating:              aggregate.Rating(),
		RatingComment:       aggregate.RatingComment(),
		WarehouseNotes:      aggregate.WarehouseNotes(),
		CourierNotes:        aggregate.CourierNotes(),
		CustomerNotes:       aggregate.CustomerNotes(),
		StageTimes:          stageTimes,
		History:             history,
	}
}

// toDomain converts a database DTO to a delivery order aggregate.
// Reconstructs the complete aggregate including children using
// RestoreDeliveryOrder.
func toDomain(dto OrderDTO) (*delivery.DeliveryOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}

	location, err := locationFromColumns(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	stageTimes := make([]*delivery.StageTime, 0, len(dto.StageTimes))
	for _, stDto := range dto.StageTimes {
		st, stErr := stageTimeToDomain(stDto)
		if stErr != nil {
			return nil, stErr
		}
		stageTimes = append(stageTimes, st)
	}

	history := make([]*delivery.HistoryEntry, 0, len(dto.History))
	for _, hDto := range dto.History {
		entry, hErr := historyToDomain(hDto)
		if hErr != nil {
			return nil, hErr
		}
		history = append(history, entry)
	}

	return delivery.RestoreDeliveryOrder(
		id,
		dto.Number,
		dto.PosOrderRef,
		dto.CustomerName,
		dto.DeliveryAddress,
		dto.DeliveryPhone,
		location,
		courierID,
		zoneID,
		dto.Cost,
		delivery.PaymentMethod(dto.PaymentMethod),
		status,
		delivery.Priority(dto.Priority),
		dto.CreatedAt,
		dto.AssignedAt,
		dto.InTransitAt,
		dto.CompletedAt,
		dto.EstimatedDeliveryAt,
		dto.Photo,
		dto.Signature,
		dto.Rating,
		dto.RatingComment,
		dto.WarehouseNotes,
		dto.CourierNotes,
		dto.CustomerNotes,
		stageTimes,
		history,
	)
}

// stageTimeToDomain converts a stage timing DTO to its domain entity.
func stageTimeToDomain(dto StageTimeDTO) (*delivery.StageTime, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stage, err := delivery.StatusFromString(dto.Stage)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreStageTime(id, stage, dto.StartTime, dto.EndTime)
}

// historyToDomain converts a history DTO to its domain entity.
func historyToDomain(dto HistoryDTO) (*delivery.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := locationFromColumns(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreHistoryEntry(
		id,
		delivery.EventType(dto.EventType),
		dto.OldValue,
		dto.NewValue,
		dto.Description,
		location,
		dto.Actor,
		dto.CreatedAt,
	)
}

// locationFromColumns rebuilds an optional position from its nullable column
// pair. Both columns are set together or not at all.
func locationFromColumns(latitude, longitude *float64) (*kernel.GeoLocation, error) {
	if latitude == nil || longitude == nil {
		return nil, nil //nolint:nilnil //absent location is not an error
	}

	location, err := kernel.NewGeoLocation(*latitude, *longitude)
	if err != nil {
		return nil, err
	}

	return &location, nil
}

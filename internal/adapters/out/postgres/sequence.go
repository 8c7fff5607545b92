package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// orderNumberKey names the counter row backing delivery order numbers.
const orderNumberKey = "delivery_order"

// CounterDTO represents a named counter row. A single upsert with RETURNING
// hands out numbers atomically under concurrent order creation.
type CounterDTO struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for counter rows.
func (CounterDTO) TableName() string {
	return "delivery_counters"
}

// GormSequenceGenerator implements SequenceGenerator on a counter table.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a sequence generator backed by the
// delivery_counters table.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// NextOrderNumber returns the next display number, e.g. "DEL-00042".
func (g *GormSequenceGenerator) NextOrderNumber(ctx context.Context) (string, error) {
	var value int64

	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO delivery_counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = delivery_counters.value + 1
		RETURNING value
	`, orderNumberKey).Scan(&value).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("DEL-%05d", value), nil
}

package commands_test

import (
	"testing"
	"time"

	"posdelivery/internal/core/domain/model/courier"
	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/domain/model/zone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestZone(t *testing.T) *zone.Zone {
	t.Helper()
	z, err := zone.NewZone(kernel.NewUUID(), "Downtown", "DT", decimal.NewFromInt(5), 30)
	require.NoError(t, err)
	return z
}

func newTestCourier(t *testing.T, password string) *courier.Courier {
	t.Helper()
	hash, err := courier.HashPassword(password)
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), "Bob", "bob@example.com", hash, "+1555987")
	require.NoError(t, err)
	return c
}

func newPendingOrder(t *testing.T) *delivery.DeliveryOrder {
	t.Helper()
	o, err := delivery.NewDeliveryOrder(
		kernel.NewUUID(), "DEL-00042", "Alice", "12 Main St", "+1555123",
		delivery.PriorityNormal, time.Now())
	require.NoError(t, err)
	return o
}

func newAssignedOrder(t *testing.T, courierID kernel.UUID) *delivery.DeliveryOrder {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.Assign(courierID, "staff", time.Now()))
	return o
}

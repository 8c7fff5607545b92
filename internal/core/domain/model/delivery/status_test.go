package delivery_test

import (
	"testing"

	"posdelivery/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   delivery.Status
		expected string
	}{
		{delivery.StatusUnknown, "unknown"},
		{delivery.StatusPending, "pending"},
		{delivery.StatusAssigned, "assigned"},
		{delivery.StatusInTransit, "in_transit"},
		{delivery.StatusCompleted, "completed"},
		{delivery.StatusFailed, "failed"},
		{delivery.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses valid labels", func(t *testing.T) {
		testCases := map[string]delivery.Status{
			"pending":    delivery.StatusPending,
			"assigned":   delivery.StatusAssigned,
			"in_transit": delivery.StatusInTransit,
			"completed":  delivery.StatusCompleted,
			"failed":     delivery.StatusFailed,
		}

		for label, expected := range testCases {
			status, err := delivery.StatusFromString(label)

			require.NoError(t, err, label)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("rejects unknown labels", func(t *testing.T) {
		for _, label := range []string{"", "unknown", "Pending", "shipped"} {
			_, err := delivery.StatusFromString(label)
			assert.Error(t, err, label)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusAssigned,
			delivery.StatusInTransit,
			delivery.StatusCompleted,
			delivery.StatusFailed,
		} {
			assert.NoError(t, status.Validate())
		}
	})

	t.Run("unknown and out of range fail", func(t *testing.T) {
		assert.Error(t, delivery.StatusUnknown.Validate())
		assert.Error(t, delivery.Status(42).Validate())
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("Assign", func(t *testing.T) {
		newStatus, err := delivery.StatusPending.Assign()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusAssigned, newStatus)

		newStatus, err = delivery.StatusAssigned.Assign()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusAssigned, newStatus)

		for _, status := range []delivery.Status{
			delivery.StatusInTransit,
			delivery.StatusCompleted,
			delivery.StatusFailed,
			delivery.StatusUnknown,
		} {
			_, err = status.Assign()
			assert.Error(t, err, status.String())
		}
	})

	t.Run("StartTransit", func(t *testing.T) {
		newStatus, err := delivery.StatusAssigned.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, newStatus)

		for _, status := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusInTransit,
			delivery.StatusCompleted,
			delivery.StatusFailed,
		} {
			_, err = status.StartTransit()
			assert.Error(t, err, status.String())
		}
	})

	t.Run("Complete", func(t *testing.T) {
		newStatus, err := delivery.StatusInTransit.Complete()
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCompleted, newStatus)

		for _, status := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusAssigned,
			delivery.StatusCompleted,
			delivery.StatusFailed,
		} {
			_, err = status.Complete()
			assert.Error(t, err, status.String())
		}
	})

	t.Run("Fail from any non-terminal status", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusAssigned,
			delivery.StatusInTransit,
		} {
			newStatus, err := status.Fail()
			require.NoError(t, err, status.String())
			assert.Equal(t, delivery.StatusFailed, newStatus)
		}

		for _, status := range []delivery.Status{delivery.StatusCompleted, delivery.StatusFailed} {
			_, err := status.Fail()
			assert.Error(t, err, status.String())
		}
	})

	t.Run("Reset from any non-terminal status", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusAssigned,
			delivery.StatusInTransit,
		} {
			newStatus, err := status.Reset()
			require.NoError(t, err, status.String())
			assert.Equal(t, delivery.StatusPending, newStatus)
		}

		for _, status := range []delivery.Status{delivery.StatusCompleted, delivery.StatusFailed} {
			_, err := status.Reset()
			assert.Error(t, err, status.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.StatusCompleted.IsTerminal())
	assert.True(t, delivery.StatusFailed.IsTerminal())
	assert.False(t, delivery.StatusPending.IsTerminal())
	assert.False(t, delivery.StatusAssigned.IsTerminal())
	assert.False(t, delivery.StatusInTransit.IsTerminal())
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	t.Run("pending must have no courier", func(t *testing.T) {
		assert.NoError(t, delivery.StatusPending.ValidateCanHaveCourier(false))
		assert.Error(t, delivery.StatusPending.ValidateCanHaveCourier(true))
	})

	t.Run("assigned and in transit require a courier", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.StatusAssigned, delivery.StatusInTransit} {
			assert.NoError(t, status.ValidateCanHaveCourier(true), status.String())
			assert.Error(t, status.ValidateCanHaveCourier(false), status.String())
		}
	})

	t.Run("terminal statuses accept either", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.StatusCompleted, delivery.StatusFailed} {
			assert.NoError(t, status.ValidateCanHaveCourier(true), status.String())
			assert.NoError(t, status.ValidateCanHaveCourier(false), status.String())
		}
	})
}

func TestPriority(t *testing.T) {
	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "low", delivery.PriorityLow.String())
		assert.Equal(t, "normal", delivery.PriorityNormal.String())
		assert.Equal(t, "high", delivery.PriorityHigh.String())
		assert.Equal(t, "urgent", delivery.PriorityUrgent.String())
	})

	t.Run("validation", func(t *testing.T) {
		assert.NoError(t, delivery.PriorityLow.Validate())
		assert.NoError(t, delivery.PriorityUrgent.Validate())
		assert.Error(t, delivery.Priority(-1).Validate())
		assert.Error(t, delivery.Priority(4).Validate())
	})
}

func TestEventType(t *testing.T) {
	t.Run("known types pass validation", func(t *testing.T) {
		for _, eventType := range []delivery.EventType{
			delivery.EventCreated,
			delivery.EventAssigned,
			delivery.EventStarted,
			delivery.EventCompleted,
			delivery.EventFailed,
			delivery.EventReassigned,
			delivery.EventPriorityChanged,
			delivery.EventZoneChanged,
			delivery.EventPhotoUploaded,
			delivery.EventLocationUpdated,
			delivery.EventCommentAdded,
		} {
			assert.NoError(t, eventType.Validate(), string(eventType))
		}
	})

	t.Run("unknown types fail validation", func(t *testing.T) {
		assert.Error(t, delivery.EventType("").Validate())
		assert.Error(t, delivery.EventType("cancelled").Validate())
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Delivered", delivery.EventCompleted.Label())
		assert.Equal(t, "whatever", delivery.EventType("whatever").Label())
	})
}

func TestPaymentMethod(t *testing.T) {
	assert.NoError(t, delivery.PaymentCash.Validate())
	assert.NoError(t, delivery.PaymentTransfer.Validate())
	assert.Error(t, delivery.PaymentMethod("crypto").Validate())
	assert.Equal(t, "Cash", delivery.PaymentCash.Label())
}

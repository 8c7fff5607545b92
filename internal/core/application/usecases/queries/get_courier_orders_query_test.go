package queries_test

import (
	"testing"

	"posdelivery/internal/core/application/usecases/queries"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCourierOrdersQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	q, err := queries.NewGetCourierOrdersQuery(id, "")
	require.NoError(t, err)
	assert.Equal(t, id, q.CourierID())
	assert.Empty(t, q.StatusFilter())
}

func TestNewGetCourierOrdersQuery_StatusFilter(t *testing.T) {
	q, err := queries.NewGetCourierOrdersQuery(kernel.NewUUID(), "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", q.StatusFilter())
}

func TestNewGetCourierOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewGetCourierOrdersQuery(kernel.NewUUID(), "teleported")
	require.Error(t, err)
}

func TestNewGetCourierOrdersQuery_InvalidCourierID(t *testing.T) {
	_, err := queries.NewGetCourierOrdersQuery(kernel.UUID{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetCourierOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var q queries.GetCourierOrdersQuery
	require.Error(t, q.Validate())
}

package queries_test

import (
	"testing"

	"posdelivery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetAllCouriersQuery(t *testing.T) {
	q := queries.NewGetAllCouriersQuery()
	require.NoError(t, q.Validate())
}

func TestGetAllCouriersQuery_Validate_NotConstructed(t *testing.T) {
	var q queries.GetAllCouriersQuery
	require.Error(t, q.Validate())
}

func TestNewGetActiveOrdersQuery(t *testing.T) {
	q := queries.NewGetActiveOrdersQuery()
	require.NoError(t, q.Validate())
}

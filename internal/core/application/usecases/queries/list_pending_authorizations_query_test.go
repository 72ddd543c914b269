package queries_test

import (
	"testing"
	"time"

	"aiddelivery/internal/core/application/usecases/queries"
	"aiddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListPendingAuthorizationsQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

		query, err := queries.NewListPendingAuthorizationsQuery(cutoff)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.CreatedBefore().Equal(cutoff))
	})

	t.Run("should fail with zero cutoff", func(t *testing.T) {
		_, err := queries.NewListPendingAuthorizationsQuery(time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.ListPendingAuthorizationsQuery

		require.ErrorIs(t, query.Validate(), queries.ErrListPendingAuthorizationsQueryIsNotConstructed)
	})
}

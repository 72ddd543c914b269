package delivery_test

import (
	"testing"

	"aiddelivery/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[delivery.Status]string{
		delivery.Unknown:              "Unknown",
		delivery.PendingAuthorization: "PendingAuthorization",
		delivery.Authorized:           "Authorized",
		delivery.ReceivedWarehouse:    "ReceivedWarehouse",
		delivery.InPreparation:        "InPreparation",
		delivery.Ready:                "Ready",
		delivery.Delivered:            "Delivered",
		delivery.Cancelled:            "Cancelled",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "Unknown", delivery.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("all workflow states are valid", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.PendingAuthorization,
			delivery.Authorized,
			delivery.ReceivedWarehouse,
			delivery.InPreparation,
			delivery.Ready,
			delivery.Delivered,
			delivery.Cancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range values are invalid", func(t *testing.T) {
		require.Error(t, delivery.Unknown.Validate())
		require.Error(t, delivery.Status(99).Validate())
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	t.Run("forward path follows the workflow", func(t *testing.T) {
		path := []delivery.Status{
			delivery.PendingAuthorization,
			delivery.Authorized,
			delivery.ReceivedWarehouse,
			delivery.InPreparation,
			delivery.Ready,
			delivery.Delivered,
		}

		for i := 0; i < len(path)-1; i++ {
			next, err := path[i].TransitionTo(path[i+1])
			require.NoError(t, err)
			assert.Equal(t, path[i+1], next)
		}
	})

	t.Run("cancellation is reachable from every non-terminal state", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.PendingAuthorization,
			delivery.Authorized,
			delivery.ReceivedWarehouse,
			delivery.InPreparation,
			delivery.Ready,
		} {
			assert.True(t, s.CanTransitionTo(delivery.Cancelled), s.String())
		}
	})

	t.Run("no transition leaves a terminal state", func(t *testing.T) {
		for _, terminal := range []delivery.Status{delivery.Delivered, delivery.Cancelled} {
			assert.True(t, terminal.IsTerminal())
			for _, target := range []delivery.Status{
				delivery.PendingAuthorization,
				delivery.Authorized,
				delivery.ReceivedWarehouse,
				delivery.InPreparation,
				delivery.Ready,
				delivery.Delivered,
				delivery.Cancelled,
			} {
				assert.False(t, terminal.CanTransitionTo(target))
			}
		}
	})

	t.Run("skipping a step is rejected with both statuses reported", func(t *testing.T) {
		_, err := delivery.PendingAuthorization.TransitionTo(delivery.Ready)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)

		var transitionErr *delivery.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, delivery.PendingAuthorization, transitionErr.From)
		assert.Equal(t, delivery.Ready, transitionErr.To)
		assert.Contains(t, err.Error(), "cannot move from PendingAuthorization to Ready")
	})

	t.Run("re-attempting a completed step is rejected", func(t *testing.T) {
		_, err := delivery.Authorized.TransitionTo(delivery.Authorized)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

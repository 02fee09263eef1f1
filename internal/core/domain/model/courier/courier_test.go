package courier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourier(t *testing.T) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), "Aziz", "+998900000001")
	require.NoError(t, err)
	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("starts_with_zero_balance_and_no_route", func(t *testing.T) {
		c := validCourier(t)

		assert.Equal(t, int64(0), c.Balance().Amount())
		assert.Nil(t, c.ActiveRouteID())
		assert.Equal(t, 0, c.CompletedDeliveries())
		require.NoError(t, c.Validate())
	})

	t.Run("requires_name_and_phone", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", "+998900000001")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = courier.NewCourier(kernel.NewUUID(), "Aziz", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var c courier.Courier
		require.Error(t, c.Validate())
	})
}

func TestCourier_CreditAndDebit(t *testing.T) {
	t.Run("credit_increases_balance", func(t *testing.T) {
		c := validCourier(t)

		require.NoError(t, c.Credit(kernel.NewMoney(3000)))
		require.NoError(t, c.Credit(kernel.NewMoney(500)))

		assert.Equal(t, int64(3500), c.Balance().Amount())
	})

	t.Run("debit_decreases_balance", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.Credit(kernel.NewMoney(3000)))

		require.NoError(t, c.Debit(kernel.NewMoney(1000)))

		assert.Equal(t, int64(2000), c.Balance().Amount())
	})

	t.Run("debit_below_zero_rejected_and_balance_unchanged", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.Credit(kernel.NewMoney(1000)))

		err := c.Debit(kernel.NewMoney(2500))

		require.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(1000), c.Balance().Amount())

		var insufficientErr *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, int64(1000), insufficientErr.Balance)
		assert.Equal(t, int64(2500), insufficientErr.Requested)
	})

	t.Run("debit_to_exactly_zero_allowed", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.Credit(kernel.NewMoney(1000)))

		require.NoError(t, c.Debit(kernel.NewMoney(1000)))
		assert.Equal(t, int64(0), c.Balance().Amount())
	})

	t.Run("non_positive_amounts_rejected", func(t *testing.T) {
		c := validCourier(t)

		require.Error(t, c.Credit(kernel.NewMoney(0)))
		require.Error(t, c.Debit(kernel.NewMoney(-5)))
	})
}

func TestCourier_ActiveRoute(t *testing.T) {
	t.Run("assign_and_clear", func(t *testing.T) {
		c := validCourier(t)
		routeID := kernel.NewUUID()

		require.NoError(t, c.AssignActiveRoute(routeID))
		require.NotNil(t, c.ActiveRouteID())
		assert.True(t, c.ActiveRouteID().IsEqual(routeID))

		c.ClearActiveRoute(routeID)
		assert.Nil(t, c.ActiveRouteID())
	})

	t.Run("second_route_rejected_while_one_active", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.AssignActiveRoute(kernel.NewUUID()))

		err := c.AssignActiveRoute(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("clearing_a_different_route_is_a_no_op", func(t *testing.T) {
		c := validCourier(t)
		routeID := kernel.NewUUID()
		require.NoError(t, c.AssignActiveRoute(routeID))

		c.ClearActiveRoute(kernel.NewUUID())

		require.NotNil(t, c.ActiveRouteID())
	})
}

func TestCourier_RecordDelivery(t *testing.T) {
	c := validCourier(t)

	c.RecordDelivery()
	c.RecordDelivery()

	assert.Equal(t, 2, c.CompletedDeliveries())
}

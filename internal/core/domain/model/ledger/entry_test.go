package ledger_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Validate(t *testing.T) {
	require.NoError(t, ledger.DeliveryPayout.Validate())
	require.NoError(t, ledger.CashCollection.Validate())
	require.NoError(t, ledger.AdminPayment.Validate())
	require.Error(t, ledger.Kind("refund").Validate())
}

func TestNewEntry(t *testing.T) {
	courierID := kernel.NewUUID()
	taskID := kernel.NewUUID()
	now := time.Now()

	t.Run("delivery_payout", func(t *testing.T) {
		e, err := ledger.NewEntry(
			kernel.NewUUID(), courierID, &taskID,
			ledger.DeliveryPayout, kernel.NewMoney(3000), "delivery fee", now)

		require.NoError(t, err)
		assert.Equal(t, ledger.DeliveryPayout, e.Kind())
		assert.Equal(t, int64(3000), e.Amount().Amount())
		require.NotNil(t, e.TaskID())
		assert.True(t, e.TaskID().IsEqual(taskID))
		require.NoError(t, e.Validate())
	})

	t.Run("credit_requires_task_reference", func(t *testing.T) {
		_, err := ledger.NewEntry(
			kernel.NewUUID(), courierID, nil,
			ledger.CashCollection, kernel.NewMoney(500), "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("credit_amount_must_be_positive", func(t *testing.T) {
		_, err := ledger.NewEntry(
			kernel.NewUUID(), courierID, &taskID,
			ledger.DeliveryPayout, kernel.NewMoney(-3000), "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("admin_payment_is_negative_without_task", func(t *testing.T) {
		e, err := ledger.NewEntry(
			kernel.NewUUID(), courierID, nil,
			ledger.AdminPayment, kernel.NewMoney(-2000), "weekly payout", now)

		require.NoError(t, err)
		assert.Nil(t, e.TaskID())
		assert.True(t, e.Amount().IsNegative())
	})

	t.Run("admin_payment_rejects_positive_amount", func(t *testing.T) {
		_, err := ledger.NewEntry(
			kernel.NewUUID(), courierID, nil,
			ledger.AdminPayment, kernel.NewMoney(2000), "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_timestamp", func(t *testing.T) {
		_, err := ledger.NewEntry(
			kernel.NewUUID(), courierID, &taskID,
			ledger.DeliveryPayout, kernel.NewMoney(3000), "", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

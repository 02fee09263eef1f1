package task_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTask(t *testing.T) *task.Task {
	t.Helper()

	location, err := kernel.NewLocation(41.3, 69.2)
	require.NoError(t, err)

	tsk, err := task.NewTask(
		kernel.NewUUID(),
		"12 Amir Temur Avenue",
		location,
		"+998901234567",
		kernel.NewMoney(3000),
		[]task.Item{{Name: "Plov", Quantity: 2}},
	)
	require.NoError(t, err)

	return tsk
}

func claimedTask(t *testing.T, courierID kernel.UUID) *task.Task {
	t.Helper()

	tsk := validTask(t)
	require.NoError(t, tsk.Accept(courierID, time.Now()))
	return tsk
}

func pickedUpTask(t *testing.T, courierID kernel.UUID) *task.Task {
	t.Helper()

	tsk := claimedTask(t, courierID)
	require.NoError(t, tsk.Pickup(courierID, task.GenerateDeliveryCode(), time.Now()))
	return tsk
}

func TestNewTask(t *testing.T) {
	t.Run("creates_available_unclaimed_task", func(t *testing.T) {
		tsk := validTask(t)

		assert.Equal(t, task.Available, tsk.Status())
		assert.Nil(t, tsk.Courier())
		assert.Nil(t, tsk.Code())
		assert.Nil(t, tsk.AcceptedAt())
		assert.False(t, tsk.InRoute())
		require.NoError(t, tsk.Validate())
	})

	t.Run("rejects_non_positive_fee", func(t *testing.T) {
		location, err := kernel.NewLocation(41.3, 69.2)
		require.NoError(t, err)

		_, err = task.NewTask(kernel.NewUUID(), "addr", location, "+998900000000", kernel.NewMoney(0), nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_address", func(t *testing.T) {
		location, err := kernel.NewLocation(41.3, 69.2)
		require.NoError(t, err)

		_, err = task.NewTask(kernel.NewUUID(), "", location, "+998900000000", kernel.NewMoney(100), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var tsk task.Task
		require.Error(t, tsk.Validate())
	})
}

func TestTask_Accept(t *testing.T) {
	t.Run("claims_and_stamps_time", func(t *testing.T) {
		tsk := validTask(t)
		courierID := kernel.NewUUID()
		now := time.Now()

		require.NoError(t, tsk.Accept(courierID, now))

		assert.Equal(t, task.Accepted, tsk.Status())
		require.NotNil(t, tsk.Courier())
		assert.True(t, tsk.Courier().IsEqual(courierID))
		require.NotNil(t, tsk.AcceptedAt())
		assert.Equal(t, now, *tsk.AcceptedAt())
	})

	t.Run("second_courier_gets_conflict", func(t *testing.T) {
		first := kernel.NewUUID()
		tsk := claimedTask(t, first)

		err := tsk.Accept(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, tsk.Courier().IsEqual(first))
	})

	t.Run("same_courier_re_claim_is_allowed", func(t *testing.T) {
		courierID := kernel.NewUUID()
		tsk := claimedTask(t, courierID)

		require.NoError(t, tsk.Accept(courierID, time.Now()))
	})
}

func TestTask_Pickup(t *testing.T) {
	t.Run("generates_code_and_stamps_time", func(t *testing.T) {
		courierID := kernel.NewUUID()
		tsk := claimedTask(t, courierID)
		code := task.GenerateDeliveryCode()

		require.NoError(t, tsk.Pickup(courierID, code, time.Now()))

		assert.Equal(t, task.PickedUp, tsk.Status())
		require.NotNil(t, tsk.Code())
		assert.True(t, tsk.Code().IsEqual(code))
		require.NotNil(t, tsk.PickedUpAt())
	})

	t.Run("wrong_courier_forbidden", func(t *testing.T) {
		tsk := claimedTask(t, kernel.NewUUID())

		err := tsk.Pickup(kernel.NewUUID(), task.GenerateDeliveryCode(), time.Now())

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unclaimed_task_forbidden", func(t *testing.T) {
		tsk := validTask(t)

		err := tsk.Pickup(kernel.NewUUID(), task.GenerateDeliveryCode(), time.Now())

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestTask_Cancel(t *testing.T) {
	t.Run("releases_assignment_and_clears_state", func(t *testing.T) {
		courierID := kernel.NewUUID()
		tsk := pickedUpTask(t, courierID)

		require.NoError(t, tsk.Cancel(courierID))

		assert.Equal(t, task.Available, tsk.Status())
		assert.Nil(t, tsk.Courier())
		assert.Nil(t, tsk.AcceptedAt())
		assert.Nil(t, tsk.PickedUpAt())
		assert.Nil(t, tsk.Code())
	})

	t.Run("routed_task_cannot_cancel", func(t *testing.T) {
		courierID := kernel.NewUUID()
		tsk := pickedUpTask(t, courierID)
		require.NoError(t, tsk.JoinRoute(kernel.NewUUID(), 0, courierID))

		err := tsk.Cancel(courierID)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("wrong_courier_forbidden", func(t *testing.T) {
		tsk := claimedTask(t, kernel.NewUUID())

		err := tsk.Cancel(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestTask_JoinRoute(t *testing.T) {
	t.Run("first_stop_is_delivering_rest_wait", func(t *testing.T) {
		courierID := kernel.NewUUID()
		routeID := kernel.NewUUID()

		first := pickedUpTask(t, courierID)
		second := pickedUpTask(t, courierID)

		require.NoError(t, first.JoinRoute(routeID, 0, courierID))
		require.NoError(t, second.JoinRoute(routeID, 1, courierID))

		assert.Equal(t, task.Delivering, first.Status())
		assert.Equal(t, task.InMultiRoute, second.Status())
		assert.True(t, first.InRoute())
		require.NotNil(t, second.RouteIndex())
		assert.Equal(t, 1, *second.RouteIndex())
	})

	t.Run("requires_picked_up_status", func(t *testing.T) {
		courierID := kernel.NewUUID()
		tsk := claimedTask(t, courierID)

		err := tsk.JoinRoute(kernel.NewUUID(), 0, courierID)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestTask_Deliver(t *testing.T) {
	t.Run("single_task_from_picked_up", func(t *testing.T) {
		courierID := kernel.NewUUID()
		tsk := pickedUpTask(t, courierID)

		require.NoError(t, tsk.Deliver(courierID))

		assert.Equal(t, task.Delivered, tsk.Status())
	})

	t.Run("waiting_route_stop_rejected", func(t *testing.T) {
		courierID := kernel.NewUUID()
		tsk := pickedUpTask(t, courierID)
		require.NoError(t, tsk.JoinRoute(kernel.NewUUID(), 1, courierID))

		err := tsk.Deliver(courierID)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("delivered_is_terminal", func(t *testing.T) {
		courierID := kernel.NewUUID()
		tsk := pickedUpTask(t, courierID)
		require.NoError(t, tsk.Deliver(courierID))

		require.ErrorIs(t, tsk.Deliver(courierID), errs.ErrInvalidState)
	})
}

func TestTask_BecomeCurrentStop(t *testing.T) {
	courierID := kernel.NewUUID()
	tsk := pickedUpTask(t, courierID)
	require.NoError(t, tsk.JoinRoute(kernel.NewUUID(), 1, courierID))

	require.NoError(t, tsk.BecomeCurrentStop())
	assert.Equal(t, task.Delivering, tsk.Status())
}

func TestTask_ConsumeCode(t *testing.T) {
	courierID := kernel.NewUUID()
	tsk := pickedUpTask(t, courierID)
	require.NotNil(t, tsk.Code())

	tsk.ConsumeCode()

	assert.Nil(t, tsk.Code())
}

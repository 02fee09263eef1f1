package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"

	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(55.75, 37.61)
	require.NoError(t, err)
	return location
}

func availableTask(t *testing.T) *task.Task {
	t.Helper()
	aggregate, err := task.NewTask(
		kernel.NewUUID(), "Main St 1", testLocation(t), "+10000000001",
		kernel.NewMoney(500), []task.Item{{Name: "flowers", Quantity: 1}},
	)
	require.NoError(t, err)
	return aggregate
}

func claimedTask(t *testing.T, courierID kernel.UUID) *task.Task {
	t.Helper()
	now := time.Now().UTC()
	aggregate, err := task.RestoreTask(
		kernel.NewUUID(), task.Accepted, &courierID, "Main St 1", testLocation(t),
		"+10000000001", kernel.NewMoney(500), nil, &now, nil, nil, nil, nil,
	)
	require.NoError(t, err)
	return aggregate
}

func pickedUpTask(t *testing.T, courierID kernel.UUID, codeValue string) *task.Task {
	t.Helper()
	now := time.Now().UTC()
	code, err := task.NewDeliveryCode(codeValue)
	require.NoError(t, err)
	aggregate, err := task.RestoreTask(
		kernel.NewUUID(), task.PickedUp, &courierID, "Main St 1", testLocation(t),
		"+10000000001", kernel.NewMoney(500), nil, &now, &now, &code, nil, nil,
	)
	require.NoError(t, err)
	return aggregate
}

func deliveredTask(t *testing.T, courierID kernel.UUID) *task.Task {
	t.Helper()
	now := time.Now().UTC()
	aggregate, err := task.RestoreTask(
		kernel.NewUUID(), task.Delivered, &courierID, "Main St 1", testLocation(t),
		"+10000000001", kernel.NewMoney(500), nil, &now, &now, nil, nil, nil,
	)
	require.NoError(t, err)
	return aggregate
}

func testCourier(t *testing.T, balance int64) *courier.Courier {
	t.Helper()
	aggregate, err := courier.RestoreCourier(
		kernel.NewUUID(), "Alex", "+10000000002", kernel.NewMoney(balance), nil, 0,
	)
	require.NoError(t, err)
	return aggregate
}

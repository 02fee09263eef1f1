package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := pickedUpTask(t, courierID, "4711")
	cmd, _ := commands.NewCancelTaskCommand(aggregate.ID(), courierID, "customer unreachable")

	taskRepo := new(MockTaskRepository)
	attemptRepo := new(MockAttemptRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		taskRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AttemptRepository").Return(attemptRepo).Once(),
		attemptRepo.On("DeleteByTask", mock.Anything, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskAttemptUoWFactory)
	factory.On("Create").Return(uow).Once()

	observer := new(RecordingObserver)
	h := commands.NewCancelTaskCommandHandler(factory, observer)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, task.Available, aggregate.Status())
	assert.Nil(t, aggregate.Courier())
	assert.Nil(t, aggregate.Code())
	assert.Nil(t, aggregate.AcceptedAt())
	assert.Nil(t, aggregate.PickedUpAt())

	events := observer.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "task.canceled", events[0].Name)
	assert.Equal(t, "customer unreachable", events[0].Detail)
}

func TestCancelTaskCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	aggregate := claimedTask(t, kernel.NewUUID())
	cmd, _ := commands.NewCancelTaskCommand(aggregate.ID(), kernel.NewUUID(), "")

	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskAttemptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelTaskCommandHandler(factory, new(RecordingObserver))

	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCancelTaskCommandHandler_Handle_DeliveredTaskStaysDelivered(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	// A deliver committed between the cancel request and its locked read:
	// the cancel must observe the terminal state and back off.
	aggregate := deliveredTask(t, courierID)
	cmd, _ := commands.NewCancelTaskCommand(aggregate.ID(), courierID, "changed my mind")

	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskAttemptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelTaskCommandHandler(factory, new(RecordingObserver))

	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, task.Delivered, aggregate.Status())
	assert.NotNil(t, aggregate.Courier())
	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelTaskCommandHandler_Handle_RoutedTask(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	routeID := kernel.NewUUID()
	index := 0
	now := time.Now().UTC()
	code, err := task.NewDeliveryCode("4711")
	require.NoError(t, err)
	aggregate, err := task.RestoreTask(
		kernel.NewUUID(), task.Delivering, &courierID, "Main St 1", testLocation(t),
		"+10000000001", kernel.NewMoney(500), nil, &now, &now, &code, &routeID, &index,
	)
	require.NoError(t, err)

	cmd, _ := commands.NewCancelTaskCommand(aggregate.ID(), courierID, "")

	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTaskAttemptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelTaskCommandHandler(factory, new(RecordingObserver))

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, task.Delivering, aggregate.Status())
}

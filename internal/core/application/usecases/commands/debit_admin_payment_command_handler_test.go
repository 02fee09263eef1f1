package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDebitAdminPaymentCommandHandler_Handle_Success(t *testing.T) {
	f := newLedgerFixture()
	claimant := testCourier(t, 1000)
	cmd, err := commands.NewDebitAdminPaymentCommand(
		kernel.RoleAdmin, claimant.ID(), kernel.NewMoney(400), "weekly payout",
	)
	require.NoError(t, err)

	f.courierRepo.On("GetForUpdate", mock.Anything, claimant.ID()).Return(claimant, nil)
	f.ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Entry")).Return(nil)
	f.courierRepo.On("Update", mock.Anything, claimant).Return(nil)

	h := commands.NewDebitAdminPaymentCommandHandler(f.factory, f.observer)
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, int64(600), claimant.Balance().Amount())

	var added *ledger.Entry
	for _, call := range f.ledgerRepo.Calls {
		if call.Method == "Add" {
			added = call.Arguments.Get(1).(*ledger.Entry)
		}
	}
	require.NotNil(t, added)
	assert.Equal(t, ledger.AdminPayment, added.Kind())
	assert.Equal(t, int64(-400), added.Amount().Amount())
	assert.Nil(t, added.TaskID())
	assert.Equal(t, "weekly payout", added.Reference())

	events := f.observer.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "ledger.admin_payment", events[0].Name)
	assert.Equal(t, int64(-400), events[0].Amount)
}

func TestDebitAdminPaymentCommandHandler_Handle_ForbiddenForCourierRole(t *testing.T) {
	f := newLedgerFixture()
	claimant := testCourier(t, 1000)
	cmd, err := commands.NewDebitAdminPaymentCommand(
		kernel.RoleCourier, claimant.ID(), kernel.NewMoney(400), "self service",
	)
	require.NoError(t, err)

	h := commands.NewDebitAdminPaymentCommandHandler(f.factory, f.observer)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestDebitAdminPaymentCommandHandler_Handle_InsufficientBalance(t *testing.T) {
	f := newLedgerFixture()
	claimant := testCourier(t, 300)
	cmd, err := commands.NewDebitAdminPaymentCommand(
		kernel.RoleManager, claimant.ID(), kernel.NewMoney(400), "weekly payout",
	)
	require.NoError(t, err)

	f.courierRepo.On("GetForUpdate", mock.Anything, claimant.ID()).Return(claimant, nil)

	h := commands.NewDebitAdminPaymentCommandHandler(f.factory, f.observer)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	assert.EqualError(t, err,
		"insufficient balance: courier "+claimant.ID().String()+" has 300, requested 400")

	// balance untouched on rejection
	assert.Equal(t, int64(300), claimant.Balance().Amount())
	f.ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDebitAdminPaymentCommandHandler_Handle_ExactBalance(t *testing.T) {
	f := newLedgerFixture()
	claimant := testCourier(t, 400)
	cmd, err := commands.NewDebitAdminPaymentCommand(
		kernel.RoleAdmin, claimant.ID(), kernel.NewMoney(400), "closing payout",
	)
	require.NoError(t, err)

	f.courierRepo.On("GetForUpdate", mock.Anything, claimant.ID()).Return(claimant, nil)
	f.ledgerRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
	f.courierRepo.On("Update", mock.Anything, claimant).Return(nil)

	h := commands.NewDebitAdminPaymentCommandHandler(f.factory, f.observer)
	require.NoError(t, h.Handle(t.Context(), cmd))
	assert.Equal(t, int64(0), claimant.Balance().Amount())
}

func TestNewDebitAdminPaymentCommand_InvalidRole(t *testing.T) {
	_, err := commands.NewDebitAdminPaymentCommand(
		kernel.Role("ghost"), kernel.NewUUID(), kernel.NewMoney(100), "",
	)
	require.Error(t, err)
}

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

func TestCreditCashCollectionCommandHandler_Handle_Success(t *testing.T) {
	f := newLedgerFixture()
	claimant := testCourier(t, 0)
	aggregate := deliveredTask(t, claimant.ID())
	cmd, err := commands.NewCreditCashCollectionCommand(
		claimant.ID(), aggregate.ID(), kernel.NewMoney(2500), "downtown office",
	)
	require.NoError(t, err)

	f.taskRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	f.courierRepo.On("GetForUpdate", mock.Anything, claimant.ID()).Return(claimant, nil)
	f.ledgerRepo.On("ExistsByTaskAndKind", mock.Anything, aggregate.ID(), ledger.CashCollection).
		Return(false, nil)
	f.ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("*ledger.Entry")).Return(nil)
	f.courierRepo.On("Update", mock.Anything, claimant).Return(nil)

	h := commands.NewCreditCashCollectionCommandHandler(f.factory, f.observer)
	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, int64(2500), claimant.Balance().Amount())

	var added *ledger.Entry
	for _, call := range f.ledgerRepo.Calls {
		if call.Method == "Add" {
			added = call.Arguments.Get(1).(*ledger.Entry)
		}
	}
	require.NotNil(t, added)
	assert.Equal(t, ledger.CashCollection, added.Kind())
	assert.Contains(t, added.Reference(), "downtown office")
}

func TestCreditCashCollectionCommandHandler_Handle_Replay_AlreadyProcessed(t *testing.T) {
	f := newLedgerFixture()
	claimant := testCourier(t, 0)
	aggregate := deliveredTask(t, claimant.ID())
	cmd, err := commands.NewCreditCashCollectionCommand(
		claimant.ID(), aggregate.ID(), kernel.NewMoney(2500), "downtown office",
	)
	require.NoError(t, err)

	f.taskRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	f.courierRepo.On("GetForUpdate", mock.Anything, claimant.ID()).Return(claimant, nil)
	f.ledgerRepo.On("ExistsByTaskAndKind", mock.Anything, aggregate.ID(), ledger.CashCollection).
		Return(true, nil)

	h := commands.NewCreditCashCollectionCommandHandler(f.factory, f.observer)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
	assert.Equal(t, int64(0), claimant.Balance().Amount())
}

func TestNewCreditCashCollectionCommand_MissingLabel(t *testing.T) {
	_, err := commands.NewCreditCashCollectionCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewMoney(100), "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrGetBalanceHistoryQueryIsNotConstructed is returned when a
// GetBalanceHistoryQuery was not created via its constructor.
var ErrGetBalanceHistoryQueryIsNotConstructed = errors.New(
	"GetBalanceHistoryQuery must be created via NewGetBalanceHistoryQuery constructor",
)

// GetBalanceHistoryQuery retrieves a courier's recent ledger entries.
// Couriers may read their own history; staff roles may read anyone's.
type GetBalanceHistoryQuery struct { //nolint:recvcheck //using for validation
	courierID     kernel.UUID
	requesterID   kernel.UUID
	requesterRole kernel.Role

	guard guard.ConstructorGuard
}

// NewGetBalanceHistoryQuery creates a query for a courier's ledger history.
func NewGetBalanceHistoryQuery(
	courierID, requesterID kernel.UUID,
	requesterRole kernel.Role,
) (GetBalanceHistoryQuery, error) {
	if err := errors.Join(
		courierID.Validate(),
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetBalanceHistoryQuery{}, err
	}

	return GetBalanceHistoryQuery{
		courierID:     courierID,
		requesterID:   requesterID,
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBalanceHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceHistoryQueryIsNotConstructed)
}

// CourierID returns the courier whose history is requested.
func (q GetBalanceHistoryQuery) CourierID() kernel.UUID {
	return q.courierID
}

// RequesterID returns the identity making the request.
func (q GetBalanceHistoryQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// RequesterRole returns the role of the requester.
func (q GetBalanceHistoryQuery) RequesterRole() kernel.Role {
	return q.requesterRole
}

// GetBalanceHistoryQueryResponse is one ledger entry of a courier's history.
type GetBalanceHistoryQueryResponse struct {
	ID        kernel.UUID
	TaskID    *kernel.UUID
	Kind      string
	Amount    int64
	Reference string
	CreatedAt time.Time
}

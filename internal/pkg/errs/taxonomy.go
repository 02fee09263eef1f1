package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fulfillment failure taxonomy. Every
// caller-visible failure of a courier operation unwraps to one of these,
// so transports can map them to status codes with errors.Is.
var (
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrInvalidState        = errors.New("invalid state")
	ErrTooManyAttempts     = errors.New("too many attempts")
	ErrAlreadyProcessed    = errors.New("already processed")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPartialAvailability = errors.New("partial availability")
)

// ForbiddenError reports that the acting party is not the assigned or
// owning actor for the resource, or lacks the required role.
type ForbiddenError struct {
	ActorID string
	Action  string
}

// NewForbiddenError creates a ForbiddenError for the given actor and action.
func NewForbiddenError(actorID, action string) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Action: action}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: actor %s may not %s", ErrForbidden, e.ActorID, e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError reports a lost race for exclusive ownership of a resource,
// such as two couriers claiming the same task.
type ConflictError struct {
	ParamName string
	ID        any
}

// NewConflictError creates a ConflictError for the given resource.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s is already taken", ErrConflict, e.ParamName, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidStateError reports an operation that is not valid for the
// resource's current status.
type InvalidStateError struct {
	ParamName string
	State     string
	Operation string
}

// NewInvalidStateError creates an InvalidStateError for the given resource state and operation.
func NewInvalidStateError(paramName, state, operation string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, State: state, Operation: operation}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s in status %s does not allow %s",
		ErrInvalidState, e.ParamName, e.State, e.Operation))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// TooManyAttemptsError reports that the delivery-code brute-force guard
// tripped for a (task, courier) pair.
type TooManyAttemptsError struct {
	TaskID   string
	Attempts int
}

// NewTooManyAttemptsError creates a TooManyAttemptsError with the attempt count reached.
func NewTooManyAttemptsError(taskID string, attempts int) *TooManyAttemptsError {
	return &TooManyAttemptsError{TaskID: taskID, Attempts: attempts}
}

func (e *TooManyAttemptsError) Error() string {
	return sanitize(fmt.Sprintf("%s: %d code attempts for task %s",
		ErrTooManyAttempts, e.Attempts, e.TaskID))
}

func (e *TooManyAttemptsError) Unwrap() error {
	return ErrTooManyAttempts
}

// AlreadyProcessedError reports a ledger idempotency violation: an entry of
// the given kind already exists for the task.
type AlreadyProcessedError struct {
	TaskID string
	Kind   string
}

// NewAlreadyProcessedError creates an AlreadyProcessedError for the given task and entry kind.
func NewAlreadyProcessedError(taskID, kind string) *AlreadyProcessedError {
	return &AlreadyProcessedError{TaskID: taskID, Kind: kind}
}

func (e *AlreadyProcessedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s entry already exists for task %s",
		ErrAlreadyProcessed, e.Kind, e.TaskID))
}

func (e *AlreadyProcessedError) Unwrap() error {
	return ErrAlreadyProcessed
}

// InsufficientBalanceError reports a debit that would leave a courier's
// balance negative. Amounts are minor currency units.
type InsufficientBalanceError struct {
	CourierID string
	Balance   int64
	Requested int64
}

// NewInsufficientBalanceError creates an InsufficientBalanceError with the current and requested amounts.
func NewInsufficientBalanceError(courierID string, balance, requested int64) *InsufficientBalanceError {
	return &InsufficientBalanceError{CourierID: courierID, Balance: balance, Requested: requested}
}

func (e *InsufficientBalanceError) Error() string {
	return sanitize(fmt.Sprintf("%s: courier %s has %d, requested %d",
		ErrInsufficientBalance, e.CourierID, e.Balance, e.Requested))
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// PartialAvailabilityError reports a batch operation where only a subset of
// the requested items was eligible. Carries both counts so the caller can act.
type PartialAvailabilityError struct {
	Requested int
	Eligible  int
}

// NewPartialAvailabilityError creates a PartialAvailabilityError with requested vs eligible counts.
func NewPartialAvailabilityError(requested, eligible int) *PartialAvailabilityError {
	return &PartialAvailabilityError{Requested: requested, Eligible: eligible}
}

func (e *PartialAvailabilityError) Error() string {
	return sanitize(fmt.Sprintf("%s: %d of %d requested tasks are eligible",
		ErrPartialAvailability, e.Eligible, e.Requested))
}

func (e *PartialAvailabilityError) Unwrap() error {
	return ErrPartialAvailability
}

// Package http exposes the fulfillment engine over a JSON REST API.
// Courier identity arrives in the X-Courier-Id header, the actor role in
// X-Actor-Role; production deployments put an authenticating proxy in
// front of this service.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerCourierID = "X-Courier-Id"
	headerActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	claimTaskHandler         commands.ClaimTaskCommandHandler
	pickupTaskHandler        commands.PickupTaskCommandHandler
	cancelTaskHandler        commands.CancelTaskCommandHandler
	deliverTaskHandler       commands.DeliverTaskCommandHandler
	startRouteHandler        commands.StartRouteCommandHandler
	creditCashHandler        commands.CreditCashCollectionCommandHandler
	debitAdminPaymentHandler commands.DebitAdminPaymentCommandHandler

	// Query handlers
	getAvailableTasksHandler queries.GetAvailableTasksQueryHandler
	getActiveRouteHandler    queries.GetActiveRouteQueryHandler
	getBalanceHistoryHandler queries.GetBalanceHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	claimTaskHandler commands.ClaimTaskCommandHandler,
	pickupTaskHandler commands.PickupTaskCommandHandler,
	cancelTaskHandler commands.CancelTaskCommandHandler,
	deliverTaskHandler commands.DeliverTaskCommandHandler,
	startRouteHandler commands.StartRouteCommandHandler,
	creditCashHandler commands.CreditCashCollectionCommandHandler,
	debitAdminPaymentHandler commands.DebitAdminPaymentCommandHandler,
	getAvailableTasksHandler queries.GetAvailableTasksQueryHandler,
	getActiveRouteHandler queries.GetActiveRouteQueryHandler,
	getBalanceHistoryHandler queries.GetBalanceHistoryQueryHandler,
) *Server {
	return &Server{
		claimTaskHandler:         claimTaskHandler,
		pickupTaskHandler:        pickupTaskHandler,
		cancelTaskHandler:        cancelTaskHandler,
		deliverTaskHandler:       deliverTaskHandler,
		startRouteHandler:        startRouteHandler,
		creditCashHandler:        creditCashHandler,
		debitAdminPaymentHandler: debitAdminPaymentHandler,
		getAvailableTasksHandler: getAvailableTasksHandler,
		getActiveRouteHandler:    getActiveRouteHandler,
		getBalanceHistoryHandler: getBalanceHistoryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/tasks", s.GetAvailableTasks)
	api.POST("/tasks/:id/claim", s.ClaimTask)
	api.POST("/tasks/:id/pickup", s.PickupTask)
	api.POST("/tasks/:id/cancel", s.CancelTask)
	api.POST("/tasks/:id/deliver", s.DeliverTask)
	api.POST("/tasks/:id/cash-collection", s.CreditCashCollection)

	api.POST("/routes", s.StartRoute)

	api.GET("/couriers/:id/route", s.GetActiveRoute)
	api.GET("/couriers/:id/ledger", s.GetBalanceHistory)
	api.POST("/couriers/:id/payments", s.DebitAdminPayment)

	e.GET("/health", s.Health)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TaskResponse is one claimable task.
type TaskResponse struct {
	ID        string  `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Fee       int64   `json:"fee"`
}

// DeliverRequest carries the confirmation code presented by the customer.
type DeliverRequest struct {
	Code string `json:"code"`
}

// DeliverResponse reports the verification outcome. AttemptsRemaining is
// meaningful only when Delivered is false.
type DeliverResponse struct {
	Delivered         bool `json:"delivered"`
	AttemptsRemaining int  `json:"attemptsRemaining"`
}

// CancelRequest carries the optional cancel reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// StartRouteRequest lists the picked-up tasks to bundle, in visiting order.
type StartRouteRequest struct {
	TaskIDs []string `json:"taskIds"`
}

// StartRouteResponse returns the created route.
type StartRouteResponse struct {
	RouteID string `json:"routeId"`
}

// RouteResponse is a courier's active route.
type RouteResponse struct {
	RouteID        string              `json:"routeId"`
	CompletedStops int                 `json:"completedStops"`
	TotalStops     int                 `json:"totalStops"`
	Stops          []RouteStopResponse `json:"stops"`
}

// RouteStopResponse is one stop of an active route.
type RouteStopResponse struct {
	TaskID  string `json:"taskId"`
	Index   int    `json:"index"`
	Address string `json:"address"`
	Status  string `json:"status"`
	Current bool   `json:"current"`
}

// LedgerEntryResponse is one entry of a courier's balance history.
type LedgerEntryResponse struct {
	ID        string  `json:"id"`
	TaskID    *string `json:"taskId"`
	Kind      string  `json:"kind"`
	Amount    int64   `json:"amount"`
	Reference string  `json:"reference"`
	CreatedAt string  `json:"createdAt"`
}

// PaymentRequest registers a payout against a courier's balance.
type PaymentRequest struct {
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

// GetAvailableTasks handles GET /api/v1/tasks - lists the claimable pool.
func (s *Server) GetAvailableTasks(ctx echo.Context) error {
	query := queries.NewGetAvailableTasksQuery()

	tasks, err := s.getAvailableTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = TaskResponse{
			ID:        t.ID.String(),
			Address:   t.Address,
			Latitude:  t.Location.Latitude(),
			Longitude: t.Location.Longitude(),
			Fee:       t.Fee,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimTask handles POST /api/v1/tasks/:id/claim - claims a task for the
// calling courier.
func (s *Server) ClaimTask(ctx echo.Context) error {
	taskID, courierID, err := s.taskAndCourier(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClaimTaskCommand(taskID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.claimTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickupTask handles POST /api/v1/tasks/:id/pickup - marks the order as
// picked up and triggers the code notification.
func (s *Server) PickupTask(ctx echo.Context) error {
	taskID, courierID, err := s.taskAndCourier(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPickupTaskCommand(taskID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.pickupTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelTask handles POST /api/v1/tasks/:id/cancel - returns the task to
// the pool.
func (s *Server) CancelTask(ctx echo.Context) error {
	taskID, courierID, err := s.taskAndCourier(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body CancelRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCancelTaskCommand(taskID, courierID, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverTask handles POST /api/v1/tasks/:id/deliver - verifies the code
// and confirms the handoff. A wrong code is a regular response, not an
// error.
func (s *Server) DeliverTask(ctx echo.Context) error {
	taskID, courierID, err := s.taskAndCourier(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body DeliverRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewDeliverTaskCommand(taskID, courierID, body.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.deliverTaskHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliverResponse{
		Delivered:         result.Delivered,
		AttemptsRemaining: result.AttemptsRemaining,
	})
}

// CashCollectionRequest registers cash the courier collected on delivery
// and handed over at a drop-off point.
type CashCollectionRequest struct {
	Amount           int64  `json:"amount"`
	DestinationLabel string `json:"destinationLabel"`
}

// CreditCashCollection handles POST /api/v1/tasks/:id/cash-collection -
// credits collected cash to the courier's balance.
func (s *Server) CreditCashCollection(ctx echo.Context) error {
	taskID, courierID, err := s.taskAndCourier(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body CashCollectionRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCreditCashCollectionCommand(
		courierID, taskID, kernel.NewMoney(body.Amount), body.DestinationLabel)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.creditCashHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartRoute handles POST /api/v1/routes - bundles picked-up tasks into a
// multi-stop route.
func (s *Server) StartRoute(ctx echo.Context) error {
	courierID, err := s.callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body StartRouteRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	taskIDs := make([]kernel.UUID, 0, len(body.TaskIDs))
	for _, raw := range body.TaskIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		taskIDs = append(taskIDs, id)
	}

	cmd, err := commands.NewStartRouteCommand(courierID, taskIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	routeID, err := s.startRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StartRouteResponse{RouteID: routeID.String()})
}

// GetActiveRoute handles GET /api/v1/couriers/:id/route - returns the
// courier's in-progress route or 404 when there is none.
func (s *Server) GetActiveRoute(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetActiveRouteQuery(courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getActiveRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if result == nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "no active route",
		})
	}

	response := RouteResponse{
		RouteID:        result.RouteID.String(),
		CompletedStops: result.CompletedStops,
		TotalStops:     result.TotalStops,
		Stops:          make([]RouteStopResponse, len(result.Stops)),
	}
	for i, stop := range result.Stops {
		response.Stops[i] = RouteStopResponse{
			TaskID:  stop.TaskID.String(),
			Index:   stop.Index,
			Address: stop.Address,
			Status:  stop.Status,
			Current: stop.Current,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBalanceHistory handles GET /api/v1/couriers/:id/ledger - returns the
// courier's recent ledger entries.
func (s *Server) GetBalanceHistory(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	requesterID, err := s.callerID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBalanceHistoryQuery(courierID, requesterID, s.callerRole(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getBalanceHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		item := LedgerEntryResponse{
			ID:        entry.ID.String(),
			Kind:      entry.Kind,
			Amount:    entry.Amount,
			Reference: entry.Reference,
			CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
		}
		if entry.TaskID != nil {
			taskID := entry.TaskID.String()
			item.TaskID = &taskID
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// DebitAdminPayment handles POST /api/v1/couriers/:id/payments - registers
// a payout against the courier's balance. Staff only.
func (s *Server) DebitAdminPayment(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body PaymentRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewDebitAdminPaymentCommand(
		s.callerRole(ctx), courierID, kernel.NewMoney(body.Amount), body.Reference)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.debitAdminPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// taskAndCourier extracts the task ID from the path and the courier ID
// from the identity header.
func (s *Server) taskAndCourier(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	courierID, err := s.callerID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return taskID, courierID, nil
}

// callerID reads the courier identity header.
func (s *Server) callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(headerCourierID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(headerCourierID)
	}
	return kernel.UUIDFromString(raw)
}

// callerRole reads the actor role header, defaulting to courier.
func (s *Server) callerRole(ctx echo.Context) kernel.Role {
	raw := ctx.Request().Header.Get(headerActorRole)
	if raw == "" {
		return kernel.RoleCourier
	}
	return kernel.Role(raw)
}

// writeError maps the failure taxonomy to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrTooManyAttempts):
		status = http.StatusTooManyRequests
	case errors.Is(err, errs.ErrInsufficientBalance):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrAlreadyProcessed),
		errors.Is(err, errs.ErrPartialAvailability):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

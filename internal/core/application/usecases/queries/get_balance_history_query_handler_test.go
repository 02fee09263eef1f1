package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetBalanceHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetBalanceHistoryQueryHandler
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&ledgerrepo.EntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetBalanceHistoryQueryHandler(db)
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ledger_entries").Error
	suite.Require().NoError(err)
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) TestHandle_EmptyHistory_ReturnsEmptySlice() {
	courierID := kernel.NewUUID()

	query, err := queries.NewGetBalanceHistoryQuery(courierID, courierID, kernel.RoleCourier)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) TestHandle_OwnHistory_NewestFirst() {
	courierID := kernel.NewUUID()
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)

	taskID := kernel.NewUUID()
	suite.saveEntry(courierID, &taskID, ledger.DeliveryPayout, 500, "delivery payout", base)
	suite.saveEntry(courierID, nil, ledger.AdminPayment, -300, "weekly payout", base.Add(2*time.Minute))
	cashTask := kernel.NewUUID()
	suite.saveEntry(courierID, &cashTask, ledger.CashCollection, 1200,
		"cash handed over to store 7", base.Add(time.Minute))

	// Another courier's entry must not leak in
	suite.saveEntry(kernel.NewUUID(), nil, ledger.AdminPayment, -100, "other courier", base)

	query, err := queries.NewGetBalanceHistoryQuery(courierID, courierID, kernel.RoleCourier)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("admin_payment", result[0].Kind)
	suite.Equal(int64(-300), result[0].Amount)
	suite.Nil(result[0].TaskID)

	suite.Equal("cash_collection", result[1].Kind)
	suite.Equal("cash handed over to store 7", result[1].Reference)
	suite.Require().NotNil(result[1].TaskID)
	suite.Equal(cashTask, *result[1].TaskID)

	suite.Equal("delivery_payout", result[2].Kind)
	suite.Equal(int64(500), result[2].Amount)
	suite.Require().NotNil(result[2].TaskID)
	suite.Equal(taskID, *result[2].TaskID)
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) TestHandle_StaffReadsAnyHistory() {
	courierID := kernel.NewUUID()
	taskID := kernel.NewUUID()
	suite.saveEntry(courierID, &taskID, ledger.DeliveryPayout, 500, "delivery payout", time.Now().UTC())

	query, err := queries.NewGetBalanceHistoryQuery(courierID, kernel.NewUUID(), kernel.RoleManager)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 1)
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) TestHandle_CourierReadingOthers_Forbidden() {
	query, err := queries.NewGetBalanceHistoryQuery(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleCourier)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrForbidden)
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) TestHandle_CapsAtNewestHundredEntries() {
	courierID := kernel.NewUUID()
	base := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Microsecond)

	for i := range 105 {
		suite.saveEntry(courierID, nil, ledger.AdminPayment, -1, "bulk", base.Add(time.Duration(i)*time.Second))
	}

	query, err := queries.NewGetBalanceHistoryQuery(courierID, courierID, kernel.RoleCourier)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 100)
	suite.True(result[0].CreatedAt.After(result[99].CreatedAt), "Newest entry should come first")
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetBalanceHistoryQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetBalanceHistoryQuery constructor")
}

func (suite *GetBalanceHistoryQueryHandlerTestSuite) saveEntry(
	courierID kernel.UUID,
	taskID *kernel.UUID,
	kind ledger.Kind,
	amount int64,
	reference string,
	createdAt time.Time,
) {
	entry, err := ledger.NewEntry(
		kernel.NewUUID(), courierID, taskID, kind, kernel.NewMoney(amount), reference, createdAt)
	suite.Require().NoError(err)

	repo := ledgerrepo.NewGormLedgerRepository(suite.db)
	err = repo.Add(context.Background(), entry)
	suite.Require().NoError(err)
}

func TestGetBalanceHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBalanceHistoryQueryHandlerTestSuite))
}

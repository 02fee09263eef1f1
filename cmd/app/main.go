package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/audit"
	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/observer"
	"fulfillment/internal/adapters/out/postgres/attemptrepo"
	"fulfillment/internal/adapters/out/postgres/courierrepo"
	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/postgres/routerepo"
	"fulfillment/internal/adapters/out/postgres/taskrepo"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	var notificationSink ports.NotificationSink
	if configs.NotifyWebhookURL != "" {
		notificationSink = notify.NewWebhookNotificationSink(configs.NotifyWebhookURL)
	}

	dispatcher := observer.NewDispatcher(
		configs.ObserverQueueSize,
		audit.NewGormAuditSink(gormDB),
		notificationSink,
		logger,
	)
	defer dispatcher.Stop()

	app := cmd.NewCompositionRoot(configs, gormDB, dispatcher)

	jobManager := jobs.NewJobManager(
		app.CreateCleanupAttemptsCommandHandler(),
		time.Duration(configs.AttemptTTLMinutes)*time.Minute,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		NotifyWebhookURL:  goDotEnvVariable("NOTIFY_WEBHOOK_URL"),
		ObserverQueueSize: goDotEnvIntVariable("OBSERVER_QUEUE_SIZE", 256),
		AttemptTTLMinutes: goDotEnvIntVariable("ATTEMPT_TTL_MINUTES", 24*60),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&taskrepo.TaskDTO{}, &taskrepo.TaskItemDTO{},
		&courierrepo.CourierDTO{},
		&routerepo.RouteDTO{}, &routerepo.RouteStopDTO{},
		&ledgerrepo.EntryDTO{},
		&attemptrepo.AttemptDTO{},
		&audit.EventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateClaimTaskCommandHandler(),
		app.CreatePickupTaskCommandHandler(),
		app.CreateCancelTaskCommandHandler(),
		app.CreateDeliverTaskCommandHandler(),
		app.CreateStartRouteCommandHandler(),
		app.CreateCreditCashCollectionCommandHandler(),
		app.CreateDebitAdminPaymentCommandHandler(),
		app.CreateGetAvailableTasksQueryHandler(),
		app.CreateGetActiveRouteQueryHandler(),
		app.CreateGetBalanceHistoryQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

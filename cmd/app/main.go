package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"cargospace/cmd"
	httpin "cargospace/internal/adapters/in/http"
	"cargospace/internal/adapters/out/postgres/shipmentrepo"
	"cargospace/internal/adapters/out/postgres/spacerepo"
	"cargospace/internal/adapters/out/postgres/trackingrepo"
	"cargospace/internal/adapters/out/postgres/transactionrepo"
	"cargospace/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close composition root", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		KafkaShipmentStatusTopic: goDotEnvVariable("KAFKA_SHIPMENT_STATUS_TOPIC"),
		SettlementMaxPendingAge:  goDotEnvVariable("SETTLEMENT_MAX_PENDING_AGE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&spacerepo.SpaceDTO{},
		&shipmentrepo.ShipmentDTO{},
		&trackingrepo.TrackingEventDTO{},
		&transactionrepo.TransactionDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateCreateSpaceCommandHandler(),
		app.CreateSetSpaceStatusCommandHandler(),
		app.CreateBookShipmentCommandHandler(),
		app.CreateAdvanceShipmentStatusCommandHandler(),
		app.CreateCreateTransactionCommandHandler(),
		app.CreateConfirmTransactionCommandHandler(),
		app.CreateAppendTrackingEventCommandHandler(),
		app.CreateSearchSpacesQueryHandler(),
		app.CreateGetSpaceByIDQueryHandler(),
		app.CreateGetSpacesByOwnerQueryHandler(),
		app.CreateGetShipmentsByUserQueryHandler(),
		app.CreateGetShipmentByIDQueryHandler(),
		app.CreateListTrackingEventsQueryHandler(),
		app.CreateGetTransactionByShipmentQueryHandler(),
		app.CreateGetTransactionByIDQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

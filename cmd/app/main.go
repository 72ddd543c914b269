package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"aiddelivery/cmd"
	_ "aiddelivery/docs"
	adapterhttp "aiddelivery/internal/adapters/in/http"
	"aiddelivery/internal/adapters/out/postgres/deliveryrepo"
	"aiddelivery/internal/adapters/out/postgres/kitrepo"
	"aiddelivery/internal/adapters/out/postgres/lotrepo"
	"aiddelivery/internal/adapters/out/postgres/movementrepo"
	"aiddelivery/internal/adapters/out/postgres/requestrepo"
	"aiddelivery/internal/generated/servers"
	"aiddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustGormOpen(configs)
	migrateDb(gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := startJobs(&app, configs, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                          goDotEnvVariable("HTTP_PORT"),
		DBHost:                            goDotEnvVariable("DB_HOST"),
		DBPort:                            goDotEnvVariable("DB_PORT"),
		DBUser:                            goDotEnvVariable("DB_USER"),
		DBPassword:                        goDotEnvVariable("DB_PASSWORD"),
		DBName:                            goDotEnvVariable("DB_NAME"),
		DBSslMode:                         goDotEnvVariable("DB_SSLMODE"),
		PendingAuthorizationReminderAfter: goDotEnvVariable("PENDING_AUTHORIZATION_REMINDER_AFTER"),
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

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it is missing. Uses database/sql with lib/pq
// directly since GORM refuses to connect to a database that does not exist.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return gormDB
}

func migrateDb(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.LineDTO{},
		&deliveryrepo.LotDrawDTO{},
		&deliveryrepo.HistoryDTO{},
		&lotrepo.LotDTO{},
		&movementrepo.MovementDTO{},
		&requestrepo.RequestDTO{},
		&requestrepo.RequestLineDTO{},
		&kitrepo.KitDTO{},
		&kitrepo.ComponentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	staleness := 24 * time.Hour
	if configs.PendingAuthorizationReminderAfter != "" {
		parsed, err := time.ParseDuration(configs.PendingAuthorizationReminderAfter)
		if err != nil {
			log.Fatalf("Invalid PENDING_AUTHORIZATION_REMINDER_AFTER: %v", err)
		}
		staleness = parsed
	}

	jobManager := jobs.NewJobManager(
		app.CreateListPendingAuthorizationsQueryHandler(),
		staleness,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := adapterhttp.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateAuthorizeDeliveryCommandHandler(),
		app.CreateReceiveWarehouseCommandHandler(),
		app.CreatePrepareDeliveryCommandHandler(),
		app.CreateMarkReadyCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateGetDeliveryQueryHandler(),
		app.CreateListStockMovementsQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

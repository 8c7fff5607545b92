package main

import (
	"fmt"
	"log/slog"
	"os"

	"posdelivery/cmd"
	httpin "posdelivery/internal/adapters/in/http"
	"posdelivery/internal/adapters/out/postgres"
	"posdelivery/internal/adapters/out/postgres/courierrepo"
	"posdelivery/internal/adapters/out/postgres/deliveryrepo"
	"posdelivery/internal/adapters/out/postgres/sessionrepo"
	"posdelivery/internal/adapters/out/postgres/settingsrepo"
	"posdelivery/internal/adapters/out/postgres/zonerepo"
	"posdelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateSchema(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCleanupSessionsCommandHandler(),
		configs.SessionCleanupSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		ServerURL:              goDotEnvVariable("SERVER_URL"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		SessionCleanupSchedule: goDotEnvVariable("SESSION_CLEANUP_SCHEDULE"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliveryrepo.OrderDTO{},
		&deliveryrepo.StageTimeDTO{},
		&deliveryrepo.HistoryDTO{},
		&courierrepo.CourierDTO{},
		&sessionrepo.SessionDTO{},
		&zonerepo.ZoneDTO{},
		&settingsrepo.SettingsDTO{},
		&postgres.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:    app.CreateCreateDeliveryOrderCommandHandler(),
		UpdateOrder:    app.CreateUpdateDeliveryOrderCommandHandler(),
		AssignCourier:  app.CreateAssignCourierCommandHandler(),
		StartTransit:   app.CreateStartTransitCommandHandler(),
		Complete:       app.CreateCompleteDeliveryCommandHandler(),
		Fail:           app.CreateFailDeliveryCommandHandler(),
		Reset:          app.CreateResetDeliveryCommandHandler(),
		AddComment:     app.CreateAddCommentCommandHandler(),
		Rate:           app.CreateRateDeliveryCommandHandler(),
		UpdateLocation: app.CreateUpdateLocationCommandHandler(),
		CreateCourier:  app.CreateCreateCourierCommandHandler(),
		Login:          app.CreateLoginCommandHandler(),
		Logout:         app.CreateLogoutCommandHandler(),
		ValidateToken:  app.CreateValidateTokenCommandHandler(),

		CourierOrders: app.CreateGetCourierOrdersQueryHandler(),
		OrderDetail:   app.CreateGetOrderDetailQueryHandler(),
		AllCouriers:   app.CreateGetAllCouriersQueryHandler(),
		ActiveOrders:  app.CreateGetActiveOrdersQueryHandler(),
		Settlement:    app.CreateSettlementReportQueryHandler(),
	}, configs.ServerURL)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

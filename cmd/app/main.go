package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"planner/cmd"
	httpadapter "planner/internal/adapters/in/http"
	"planner/internal/adapters/out/postgres/orderrepo"
	"planner/internal/adapters/out/postgres/planrepo"
	"planner/internal/adapters/out/postgres/riderrepo"
	"planner/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	root := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		root.CreateBuildPlanCommandHandler(),
		root.OrderUoWFactory(),
		configs.PlanRebuildCron,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		PlanRebuildCron: goDotEnvVariable("PLAN_REBUILD_CRON"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&riderrepo.RiderDTO{},
		&orderrepo.OrderDTO{},
		&planrepo.PlanDTO{},
		&planrepo.PlanRiderDTO{},
		&planrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(root cmd.CompositionRoot, port string) {
	getPlanHandler, err := root.CreateGetPlanQueryHandler()
	if err != nil {
		log.Fatalf("Failed to create plan query handler: %v", err)
	}

	getAllRidersHandler, err := root.CreateGetAllRidersQueryHandler()
	if err != nil {
		log.Fatalf("Failed to create riders query handler: %v", err)
	}

	server := httpadapter.NewServer(
		root.CreateCreateRiderCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateBuildPlanCommandHandler(),
		root.CreateRejectOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateCompleteOrderCommandHandler(),
		getPlanHandler,
		getAllRidersHandler,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

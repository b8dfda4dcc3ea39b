package main

import (
	"context"
	"flag"
	"log"

	"company-services-backend/internal/config"
	"company-services-backend/internal/database"
	"company-services-backend/internal/logger"
	"company-services-backend/internal/repository"
	"company-services-backend/internal/seed"
	"company-services-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Setup(cfg.LogLevel)

	path := flag.String("file", cfg.SeedFile, "path to the seed YAML file")
	flag.Parse()

	file, err := seed.Load(*path)
	if err != nil {
		logrus.Fatal("Failed to load seed file:", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	gateway := repository.NewGateway(db)
	validator := service.NewValidator()

	summary, err := seed.Apply(context.Background(), file, cfg.Company, seed.Services{
		Departments: service.NewDepartmentService(gateway, validator, cfg.Company),
		Employees:   service.NewEmployeeService(gateway, validator, cfg.Company),
		Timecards:   service.NewTimecardService(gateway, validator, cfg.Company),
	})
	if err != nil {
		logrus.WithError(err).Fatal("Seeding stopped")
	}

	logrus.Infof("Seeded %d departments, %d employees, %d timecards",
		summary.Departments, summary.Employees, summary.Timecards)
}

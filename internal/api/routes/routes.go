package routes

import (
	"company-services-backend/internal/api/handlers"
	"company-services-backend/internal/api/middleware"
	"company-services-backend/internal/config"
	"company-services-backend/internal/repository"
	"company-services-backend/internal/service"

	_ "company-services-backend/docs" // This is needed for swag

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())

	validator := service.NewValidator()

	// One gateway hands every operation its own pooled connection
	gateway := repository.NewGateway(db)

	departmentService := service.NewDepartmentService(gateway, validator, cfg.Company)
	employeeService := service.NewEmployeeService(gateway, validator, cfg.Company)
	timecardService := service.NewTimecardService(gateway, validator, cfg.Company)
	exportService := service.NewExportService(gateway, cfg.Company)

	healthHandler := handlers.NewHealthHandler(db, cfg.Company)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	timecardHandler := handlers.NewTimecardHandler(timecardService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(cfg.BasePath)
	{
		api.GET("/department", departmentHandler.GetDepartment)
		api.GET("/departments", departmentHandler.GetDepartments)
		api.POST("/department", departmentHandler.CreateDepartment)
		api.PUT("/department", departmentHandler.UpdateDepartment)
		api.DELETE("/department", departmentHandler.DeleteDepartment)

		api.GET("/employee", employeeHandler.GetEmployee)
		api.GET("/employees", employeeHandler.GetEmployees)
		api.GET("/employees/export", exportHandler.ExportEmployees)
		api.POST("/employee", employeeHandler.CreateEmployee)
		api.PUT("/employee", employeeHandler.UpdateEmployee)
		api.DELETE("/employee", employeeHandler.DeleteEmployee)

		api.GET("/timecard", timecardHandler.GetTimecard)
		api.GET("/timecards", timecardHandler.GetTimecards)
		api.POST("/timecard", timecardHandler.CreateTimecard)
		api.PUT("/timecard", timecardHandler.UpdateTimecard)
		api.DELETE("/timecard", timecardHandler.DeleteTimecard)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

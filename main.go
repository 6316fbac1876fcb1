package main

import (
	"log"
	"net/http"
	"os"

	"pentouz/config"

	"pentouz/jobs"
	"pentouz/models"
	"pentouz/routes"
	"pentouz/services"
	"pentouz/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{}, &models.AttendanceRecord{}, &models.Guest{},
		&models.CorporateCompany{}, &models.GSTSlab{}, &models.TaxInvoice{},
		&models.RoomType{}, &models.Room{}, &models.HousekeepingTask{},
		&models.InventoryItem{}, &models.InventoryTransaction{},
		&models.Allotment{}, &models.AllotmentChannel{},
		&models.Widget{}, &models.WidgetStat{},
		&models.Notification{}, &models.HotelSetting{}, &models.ActivityLog{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not loaded, falling back to the environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	maintenanceService := services.NewMaintenanceService(services.MaintenanceServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	maintenanceAdapter := services.NewMaintenanceAdapter(maintenanceService)
	jobs.SetNightlyRunner(maintenanceAdapter)

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

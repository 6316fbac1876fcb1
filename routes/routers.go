package routes

import (
	"context"
	"fmt"
	"net/http"

	"pentouz/config"
	"pentouz/controllers"
	_ "pentouz/docs"
	middlewares "pentouz/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	staffController := controllers.NewStaffController(db, redisCli)
	corporateController := controllers.NewCorporateController(m)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())
	v1.Use(middlewares.ActivityLogger())

	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.POST("/verifyCode", controllers.VerifyCode)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/staff", middlewares.AuthMiddleware(1, 2), staffController.GetStaff)
	v1.POST("/staff", middlewares.AuthMiddleware(1, 2), staffController.CreateStaff)
	v1.GET("/staff/:id", middlewares.AuthMiddleware(1, 2), staffController.GetStaffByID)
	v1.PUT("/staff", middlewares.AuthMiddleware(1, 2, 3), staffController.UpdateStaff)
	v1.PUT("/staffStatus", middlewares.AuthMiddleware(1, 2), staffController.ChangeStaffStatus)
	v1.PUT("/staffRole", middlewares.AuthMiddleware(1), staffController.ChangeStaffRole)
	v1.POST("/staff/checkin", middlewares.AuthMiddleware(1, 2, 3), staffController.CheckIn)
	v1.POST("/staff/checkout", middlewares.AuthMiddleware(1, 2, 3), staffController.CheckOut)
	v1.GET("/staff/load", middlewares.AuthMiddleware(1, 2), staffController.GetStaffLoad)

	v1.GET("/guests", middlewares.AuthMiddleware(1, 2, 3), controllers.GetGuests)
	v1.POST("/guests", middlewares.AuthMiddleware(1, 2, 3), controllers.CreateGuest)
	v1.GET("/guests/search", middlewares.AuthMiddleware(1, 2, 3), controllers.SearchGuests)
	v1.GET("/guests/:id", middlewares.AuthMiddleware(1, 2, 3), controllers.GetGuestByID)
	v1.PUT("/guests", middlewares.AuthMiddleware(1, 2, 3), controllers.UpdateGuest)
	v1.PUT("/guestStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeGuestStatus)

	v1.GET("/companies", middlewares.AuthMiddleware(1, 2), controllers.GetCompanies)
	v1.POST("/companies", middlewares.AuthMiddleware(1, 2), controllers.CreateCompany)
	v1.GET("/companies/:id", middlewares.AuthMiddleware(1, 2), controllers.GetCompanyDetail)
	v1.PUT("/companies", middlewares.AuthMiddleware(1, 2), controllers.UpdateCompany)

	v1.POST("/corporate/register", middlewares.AuthMiddleware(1, 2, 3), controllers.RegisterCorporateAccount)
	v1.GET("/corporate/pending", middlewares.AuthMiddleware(1, 2), controllers.GetPendingCorporateAccounts)
	v1.PUT("/corporate/decide", middlewares.AuthMiddleware(1, 2), controllers.DecideCorporateAccount)
	v1.POST("/corporate/gst/calculate", middlewares.AuthMiddleware(1, 2, 3), controllers.CalculateGST)
	v1.POST("/corporate/charge", middlewares.AuthMiddleware(1, 2), corporateController.ChargeCorporateStay)

	v1.GET("/invoices", middlewares.AuthMiddleware(1, 2), controllers.GetInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(1, 2), controllers.GetDetailInvoice)

	v1.GET("/housekeeping/tasks", middlewares.AuthMiddleware(1, 2, 3), controllers.GetTasks)
	v1.POST("/housekeeping/tasks", middlewares.AuthMiddleware(1, 2), controllers.CreateTask)
	v1.GET("/housekeeping/tasks/:id", middlewares.AuthMiddleware(1, 2, 3), controllers.GetTaskByID)
	v1.DELETE("/housekeeping/tasks/:id", middlewares.AuthMiddleware(1), controllers.DeleteTask)
	v1.PUT("/housekeeping/assign", middlewares.AuthMiddleware(1, 2), controllers.AssignTask)
	v1.PUT("/housekeeping/start", middlewares.AuthMiddleware(1, 2, 3), controllers.StartTask)
	v1.PUT("/housekeeping/complete", middlewares.AuthMiddleware(1, 2, 3), controllers.CompleteTask)
	v1.PUT("/housekeeping/cancel", middlewares.AuthMiddleware(1, 2), controllers.CancelTask)
	v1.PUT("/housekeeping/reopen", middlewares.AuthMiddleware(1, 2), controllers.ReopenTask)
	v1.GET("/housekeeping/summary", middlewares.AuthMiddleware(1, 2), controllers.GetHousekeepingSummary)

	v1.GET("/inventory", middlewares.AuthMiddleware(1, 2, 3), controllers.GetInventoryItems)
	v1.POST("/inventory", middlewares.AuthMiddleware(1, 2), controllers.CreateInventoryItem)
	v1.PUT("/inventory", middlewares.AuthMiddleware(1, 2), controllers.UpdateInventoryItem)
	v1.POST("/inventory/stock", middlewares.AuthMiddleware(1, 2, 3), controllers.MoveStock)
	v1.GET("/inventory/transactions", middlewares.AuthMiddleware(1, 2), controllers.GetStockTransactions)
	v1.GET("/inventory/low", middlewares.AuthMiddleware(1, 2, 3), controllers.GetLowStockItems)
	v1.GET("/inventory/consumption", middlewares.AuthMiddleware(1, 2), controllers.GetConsumptionSummary)

	v1.GET("/roomTypes", middlewares.AuthMiddleware(1, 2, 3), controllers.GetRoomTypes)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(1), controllers.CreateRoomType)
	v1.GET("/rooms", middlewares.AuthMiddleware(1, 2, 3), controllers.GetRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(1, 2), controllers.CreateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(1, 2, 3), controllers.ChangeRoomStatus)

	v1.GET("/allotments", middlewares.AuthMiddleware(1, 2), controllers.GetAllotments)
	v1.GET("/allotments/:roomTypeId", middlewares.AuthMiddleware(1, 2), controllers.GetAllotmentByRoomType)
	v1.PUT("/allotments", middlewares.AuthMiddleware(1), controllers.UpsertAllotment)
	v1.GET("/allotments/:roomTypeId/rates", middlewares.AuthMiddleware(1, 2), controllers.GetChannelRates)

	v1.GET("/widgets", middlewares.AuthMiddleware(1, 2), controllers.GetWidgets)
	v1.POST("/widgets", middlewares.AuthMiddleware(1), controllers.CreateWidget)
	v1.PUT("/widgets", middlewares.AuthMiddleware(1), controllers.UpdateWidget)
	v1.DELETE("/widgets/:id", middlewares.AuthMiddleware(1), controllers.DeleteWidget)
	v1.GET("/widgets/:id/stats", middlewares.AuthMiddleware(1, 2), controllers.GetWidgetStats)
	v1.GET("/widgets/:id/stats/range", middlewares.AuthMiddleware(1, 2), controllers.GetWidgetStatsRange)

	// Public: the embed snippet posts events without a token.
	v1.POST("/widgets/track", controllers.TrackWidgetEvent)

	v1.GET("/settings", middlewares.AuthMiddleware(1, 2, 3), controllers.GetHotelSettings)
	v1.PUT("/settings", middlewares.AuthMiddleware(1), controllers.UpdateHotelSettings)
	v1.GET("/notifications", middlewares.AuthMiddleware(1, 2, 3), controllers.GetNotifications)

	v1.GET("/health", controllers.GetHealth)

	v1.GET("/export/guests", middlewares.AuthMiddleware(1, 2), controllers.ExportGuests)
	v1.GET("/export/inventory", middlewares.AuthMiddleware(1, 2), controllers.ExportInventory)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Console feed test message")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}

package api

import (
	"github.com/maruf119459/smart-parking-backend/internal/api/handler"
	"github.com/maruf119459/smart-parking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	slotService *service.SlotService,
	parkingService *service.ParkingService,
	chargeService *service.ChargeService,
	adminService *service.AdminService,
	qrService *service.QRService,
	wsManager *handler.WebSocketManager,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// WebSocket endpoint cho tín hiệu "dữ liệu đã thay đổi"
	wsHandler := handler.NewWebSocketHandler(wsManager)
	r.GET("/ws", wsHandler.HandleWebSocket)

	slotH := handler.NewSlotHandler(slotService)
	r.POST("/slots", slotH.CreateSlot)
	r.GET("/slots", slotH.GetAllSlots)
	r.GET("/slots/available", slotH.GetAvailability)
	r.DELETE("/slots/:id", slotH.DeleteSlot)
	r.PATCH("/slots-status-update/:id", slotH.UpdateSlotStatus)
	r.PATCH("/slots-update-slotNumber-vehicleType/:id", slotH.UpdateSlotDetails)

	parkingH := handler.NewParkingHandler(parkingService)
	parkingRoutes := r.Group("/parking")
	{
		parkingRoutes.POST("/book", parkingH.BookParking)
		parkingRoutes.GET("", parkingH.GetAllParking)
		parkingRoutes.GET("/user-current-parking", parkingH.GetCurrentParking)
		parkingRoutes.GET("/user-history", parkingH.GetParkingHistory)
		parkingRoutes.GET("/times", parkingH.GetTimes)

		// Các bước chuyển trạng thái do cổng/kiosk gọi
		parkingRoutes.PATCH("/:id/enter", parkingH.Enter)
		parkingRoutes.PATCH("/:id/pay", parkingH.Pay)
		parkingRoutes.PATCH("/:id/repay", parkingH.Reopen)
		parkingRoutes.PATCH("/:id/entrance-error", parkingH.MarkEntranceError)
		parkingRoutes.PATCH("/:id/complete", parkingH.Complete)
	}

	adminH := handler.NewAdminHandler(adminService)
	adminRoutes := r.Group("/admin")
	{
		adminRoutes.POST("", adminH.CreateAdmin)
		adminRoutes.GET("", adminH.GetAllAdmins)
		adminRoutes.GET("/:id", adminH.GetAdminByID)
		adminRoutes.POST("/search", adminH.SearchByEmail)
		adminRoutes.PATCH("/link-identity", adminH.LinkIdentity)
		adminRoutes.DELETE("/:id", adminH.DeleteAdmin)
	}

	chargeH := handler.NewChargeHandler(chargeService)
	chargeRoutes := r.Group("/charge-control")
	{
		chargeRoutes.POST("", chargeH.CreateChargeRule)
		chargeRoutes.GET("", chargeH.GetAllChargeRules)
		chargeRoutes.GET("/rate", chargeH.GetRate)
		chargeRoutes.PATCH("/:id", chargeH.UpdateChargeRule)
		chargeRoutes.DELETE("/:id", chargeH.DeleteChargeRule)
	}
	r.GET("/vehicle-types", chargeH.GetVehicleTypes)

	qrH := handler.NewQRHandler(qrService)
	qrRoutes := r.Group("/qr")
	{
		qrRoutes.POST("/entrance", qrH.EncodeEntrance)
		qrRoutes.POST("/exit", qrH.EncodeExit)
		qrRoutes.POST("/decode", qrH.Decode)
	}

	return r
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maruf119459/smart-parking-backend/internal/api"
	"github.com/maruf119459/smart-parking-backend/internal/api/handler"
	"github.com/maruf119459/smart-parking-backend/internal/config"
	"github.com/maruf119459/smart-parking-backend/internal/identity"
	"github.com/maruf119459/smart-parking-backend/internal/repository/postgresql"
	"github.com/maruf119459/smart-parking-backend/internal/service"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	log.Println("Cấu hình đã được tải.")

	// 2. Setup Database Connection
	db, err := postgresql.NewDB(cfg)
	if err != nil {
		log.Fatalf("Không thể kết nối database: %v", err)
	}
	defer db.Close()
	log.Println("Đã kết nối database thành công!")

	// 3. Khởi tạo nhà cung cấp danh tính (Firebase Auth)
	var identityProvider identity.Provider
	if cfg.FirebaseCredentialsFile == "" {
		log.Println("CẢNH BÁO: FIREBASE_CREDENTIALS_FILE chưa được cấu hình. Không thể xóa tài khoản quản trị viên.")
	} else {
		identityProvider, err = identity.NewFirebaseProvider(context.Background(), cfg.FirebaseCredentialsFile)
		if err != nil {
			log.Fatalf("Không thể khởi tạo Firebase: %v", err)
		}
		log.Println("Đã khởi tạo Firebase Auth client.")
	}

	// 4. Initialize Repositories
	slotRepo := postgresql.NewPgSlotRepository(db)
	sessionRepo := postgresql.NewPgParkingSessionRepository(db)
	adminRepo := postgresql.NewPgAdminRepository(db)
	chargeRepo := postgresql.NewPgChargeRepository(db)

	// init websocket manager
	webSocketManager := handler.NewWebSocketManager()
	go webSocketManager.Start()
	log.Println("WebSocket Manager đã được khởi động.")

	// 5. Initialize Services
	slotService := service.NewSlotService(slotRepo, webSocketManager)
	parkingService := service.NewParkingService(sessionRepo, chargeRepo, webSocketManager)
	chargeService := service.NewChargeService(chargeRepo)
	adminService := service.NewAdminService(adminRepo, identityProvider)
	qrService := service.NewQRService()

	// 6. Setup HTTP Router
	router := api.SetupRouter(slotService, parkingService, chargeService, adminService, qrService, webSocketManager)

	// 7. Start HTTP Server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server đang chạy trên port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Lỗi ListenAndServe(): %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Đang tắt server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server buộc phải tắt: %v", err)
	}

	log.Println("Server đã tắt.")
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-mof-tracker/internal/handler"
	"go-mof-tracker/internal/middleware"
	"go-mof-tracker/internal/model"
	"go-mof-tracker/internal/repository"
	"go-mof-tracker/internal/service"
	"go-mof-tracker/internal/ws"
	"go-mof-tracker/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(&model.User{}, &model.Mof{}, &model.Item{}, &model.PickRecord{}, &model.VerificationRecord{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	store := repository.NewGormStore(db)
	userRepo := repository.NewUserRepo(db)
	locks := service.NewSerialLocks()

	authService := service.NewAuthService(store)
	userService := service.NewUserService(store)
	mofService := service.NewMofService(store, wsHub)
	itemService := service.NewItemService(store)
	scanService := service.NewScanService(store, locks, wsHub)
	verifyService := service.NewVerificationService(store, locks, wsHub)
	progressService := service.NewProgressService(store)
	reportService := service.NewReportService(progressService)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	mofHandler := handler.NewMofHandler(mofService, progressService, reportService)
	itemHandler := handler.NewItemHandler(itemService, scanService, verifyService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "MOF Tracker v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// User Routes (ADMIN only for creation)
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Get("/users/:id/mofs", mofHandler.GetUserMofs)
	protected.Post("/users", middleware.RequireRole(model.RoleAdmin), userHandler.CreateUser)

	// MOF Routes
	protected.Get("/mofs", mofHandler.GetMofs)
	protected.Get("/mofs/mine", mofHandler.GetMyMofs)
	protected.Get("/mofs/serial/:serial", mofHandler.GetMofBySerial)
	protected.Get("/mofs/:id/progress", mofHandler.GetProgress)
	protected.Get("/mofs/:id/progress/export", mofHandler.ExportProgress)
	protected.Post("/mofs", middleware.RequireRole(model.RoleRequester, model.RoleAdmin), mofHandler.CreateMof)
	protected.Put("/mofs/:id/status", middleware.RequireRole(model.RoleAdmin), mofHandler.UpdateStatus)

	// Item Routes
	protected.Get("/items", itemHandler.GetItems)
	protected.Post("/items", middleware.RequireRole(model.RoleAdmin, model.RolePicking), itemHandler.CreateItem)
	protected.Post("/items/scan", middleware.RequireRole(model.RolePicking, model.RoleAdmin), itemHandler.ScanItem)
	protected.Post("/items/verify", middleware.RequireRole(model.RoleRequester, model.RoleAdmin), itemHandler.VerifyItem)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		Email:    "admin@example.com",
		FullName: "Warehouse Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin / admin123")
	}
}

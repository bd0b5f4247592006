package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/auth"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/catalog"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/db"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/email"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/menu"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/middleware"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/order"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/restaurant"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/settings"
	"github.com/LennyCopeaux/yallo.fr-sub000/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("logger init failed:", err)
	}
	defer logger.Sync()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── EMAIL ─────────────────────────
	mailer := email.NewSender(email.LoadConfig(), logger)

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo, mailer)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/password-reset", authHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
	}

	// ───────────────────────── REPOS ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	settingsRepo := settings.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	restaurantService := restaurant.NewService(restaurantRepo, logger)
	catalogService := catalog.NewService(catalogRepo, restaurantRepo, r2Client)
	menuService := menu.NewService(menuRepo, catalogRepo, restaurantRepo)
	orderService := order.NewService(orderRepo, menuService, restaurantRepo, logger)
	settingsService := settings.NewService(settingsRepo, restaurantRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	restaurantHandler := restaurant.NewHandler(restaurantService)
	adminRestaurantHandler := restaurant.NewAdminHandler(restaurantService)
	catalogHandler := catalog.NewHandler(catalogService)
	menuHandler := menu.NewHandler(menuService)
	orderHandler := order.NewHandler(orderService)
	settingsHandler := settings.NewHandler(settingsService)
	adminSettingsHandler := settings.NewAdminHandler(settingsService)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/owners", authHandler.CreateOwner)

		admin.GET("/restaurants", adminRestaurantHandler.ListRestaurants)
		admin.PUT("/restaurants/:id/voice-config", adminRestaurantHandler.UpdateVoiceConfig)

		admin.GET("/restaurants/:id/pricing", adminSettingsHandler.GetPricing)
		admin.PUT("/restaurants/:id/pricing", adminSettingsHandler.UpdatePricing)
	}

	// ───────────────────────── OWNER ROUTES ─────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("OWNER"),
	)
	{
		restaurants.POST("", restaurantHandler.CreateRestaurant)
		restaurants.GET("/me", restaurantHandler.ListMyRestaurants)
		restaurants.GET("/:id", restaurantHandler.GetRestaurant)
		restaurants.PUT("/:id/business-hours", restaurantHandler.UpdateBusinessHours)
		restaurants.PUT("/:id/kitchen-status", restaurantHandler.SetKitchenStatus)

		// ingredient catalog
		restaurants.POST("/:id/ingredient-categories", catalogHandler.CreateCategory)
		restaurants.GET("/:id/ingredient-categories", catalogHandler.ListCategories)
		restaurants.DELETE("/:id/ingredient-categories/:categoryId", catalogHandler.DeleteCategory)
		restaurants.POST("/:id/ingredients", catalogHandler.CreateIngredient)
		restaurants.GET("/:id/ingredients", catalogHandler.ListIngredients)
		restaurants.PUT("/:id/ingredients/:ingredientId", catalogHandler.UpdateIngredient)
		restaurants.PUT("/:id/ingredients/:ingredientId/availability", catalogHandler.ToggleAvailability)
		restaurants.POST("/:id/ingredients/:ingredientId/image", catalogHandler.UploadIngredientImage)
		restaurants.DELETE("/:id/ingredients/:ingredientId", catalogHandler.DeleteIngredient)

		// product menu
		restaurants.POST("/:id/categories", menuHandler.CreateCategory)
		restaurants.GET("/:id/categories", menuHandler.ListCategories)
		restaurants.GET("/:id/categories/:categoryId/variations", menuHandler.ListVariations)
		restaurants.DELETE("/:id/categories/:categoryId", menuHandler.DeleteCategory)
		restaurants.POST("/:id/variations", menuHandler.CreateVariation)
		restaurants.GET("/:id/variations/:variationId", menuHandler.ResolveVariation)
		restaurants.PUT("/:id/variations/:variationId", menuHandler.UpdateVariation)
		restaurants.DELETE("/:id/variations/:variationId", menuHandler.DeleteVariation)
		restaurants.POST("/:id/modifier-groups", menuHandler.CreateGroup)
		restaurants.DELETE("/:id/modifier-groups/:groupId", menuHandler.DeleteGroup)
		restaurants.POST("/:id/modifiers", menuHandler.AddModifier)
		restaurants.DELETE("/:id/modifiers/:modifierId", menuHandler.DeleteModifier)

		// orders
		restaurants.POST("/:id/orders", orderHandler.CreateOrder)
		restaurants.GET("/:id/orders", orderHandler.ListOrders)
		restaurants.GET("/:id/orders/:orderId", orderHandler.GetOrder)
		restaurants.PUT("/:id/orders/:orderId/status", orderHandler.UpdateStatus)

		// kitchen delay settings
		restaurants.GET("/:id/kitchen-settings", settingsHandler.GetKitchenSettings)
		restaurants.PUT("/:id/kitchen-settings", settingsHandler.UpdateKitchenSettings)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}

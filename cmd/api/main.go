package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"taartu/internal/analytics"
	"taartu/internal/config"
	"taartu/internal/database"
	"taartu/internal/middleware"
	"taartu/internal/modules/auth"
	"taartu/internal/modules/booking"
	"taartu/internal/modules/business"
	"taartu/internal/modules/catalog"
	"taartu/internal/modules/earnings"
	jwtsvc "taartu/internal/pkg/jwt"
	"taartu/internal/pricing"
	"taartu/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	tracker := analytics.NewTracker(analyticsRepo, cfg.AnalyticsBuffer)
	defer tracker.Close()

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	businessService := business.NewService(businessRepo, tracker)
	businessHandler := business.NewHandler(businessService)

	catalogService := catalog.NewService(serviceRepo, businessRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(
		bookingRepo,
		serviceRepo,
		businessRepo,
		businessService,
		pricing.NoOffers{},
		pricing.ZeroTax{},
		tracker,
	)
	bookingHandler := booking.NewHandler(bookingService)

	earningsService := earnings.NewService(bookingRepo, businessRepo)
	earningsHandler := earnings.NewHandler(earningsService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		v1.GET("/health", healthCheck)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)

			biz := protected.Group("/business")
			businessHandler.RegisterRoutes(biz)
			earningsHandler.RegisterRoutes(biz)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"version":        "1.0.0",
		"business_model": "commission_only",
	})
}

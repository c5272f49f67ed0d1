package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/ads"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/credit"
	"hotelbooking/internal/modules/events"
	"hotelbooking/internal/modules/payment"
	"hotelbooking/internal/modules/review"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/notify"
	"hotelbooking/internal/repository"
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
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	notifier := notify.NewLogNotifier()
	hub := events.NewHub()
	defer hub.Close()

	watchdog := payment.NewWatchdog(paymentRepo, cfg.PaymentTimeout)

	authService := auth.NewService(userRepo, hotelRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(hotelRepo, roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(
		bookingRepo, roomRepo, userRepo, paymentRepo,
		notifier, auditRepo, watchdog, hub, cfg.NightlyCap,
	)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, userRepo, notifier, auditRepo)
	paymentHandler := payment.NewHandler(paymentService)

	creditService := credit.NewService(db)
	creditHandler := credit.NewHandler(creditService)

	reviewService := review.NewService(reviewRepo, hotelRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	adsService := ads.NewService(hotelRepo)
	adsHandler := ads.NewHandler(adsService)

	eventsHandler := events.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	eventsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		adsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			creditHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

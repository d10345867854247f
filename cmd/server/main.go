package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/saint-mantis/truster/internal/config"
	"github.com/saint-mantis/truster/internal/database"
	"github.com/saint-mantis/truster/internal/handler"
	"github.com/saint-mantis/truster/internal/middleware"
	"github.com/saint-mantis/truster/internal/notifier"
	"github.com/saint-mantis/truster/internal/queue"
	"github.com/saint-mantis/truster/internal/repository"
	"github.com/saint-mantis/truster/internal/router"
	"github.com/saint-mantis/truster/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: with no client the cache and limiter disable
	// themselves.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}
	cacheMW := middleware.ResponseCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)

	// Repositories.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	props := repository.NewPropertyRepo(db)
	types := repository.NewPropertyTypeRepo(db)
	locations := repository.NewLocationRepo(db)
	agents := repository.NewAgentRepo(db)
	features := repository.NewFeatureRepo(db)
	images := repository.NewImageRepo(db)
	inquiries := repository.NewInquiryRepo(db)
	contacts := repository.NewContactRepo(db)
	testimonials := repository.NewTestimonialRepo(db)
	favorites := repository.NewFavoriteRepo(db)

	// Services.
	notify := notifier.New()
	inquirySvc := service.NewInquiryService(inquiries, props, agents, notify, cfg.AdminEmail)
	contactSvc := service.NewContactService(contacts, notify, cfg.AdminEmail)
	favoriteSvc := service.NewFavoriteService(favorites, props)
	mediaSvc := service.NewMediaService(images, props)

	// Handlers.
	authH := handler.NewAuthHandler(cfg, users, tokens)
	publicH := &handler.PublicHandler{
		Properties:   props,
		Types:        types,
		Locations:    locations,
		Agents:       agents,
		Images:       images,
		Testimonials: testimonials,
	}
	inquiryH := handler.NewInquiryHandler(inquirySvc, contactSvc)
	favoriteH := handler.NewFavoriteHandler(favoriteSvc, favorites, images, props)
	adminH := &handler.AdminHandler{
		Properties:   props,
		Types:        types,
		Locations:    locations,
		Agents:       agents,
		Features:     features,
		Images:       images,
		Inquiries:    inquiries,
		Contacts:     contacts,
		Testimonials: testimonials,
		Users:        users,
		Media:        mediaSvc,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, cacheMW)
	router.RegisterSubmissions(e, inquiryH, limitMW)
	router.RegisterFavorites(e, favoriteH, cfg.JWTSecret, limitMW)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// Drains the notification queue into the outbound log.
	go func() {
		if err := queue.StartNotificationConsumer(); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

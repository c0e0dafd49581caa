package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/velora/content-studio/internal/config"
	"github.com/velora/content-studio/internal/handler"
	"github.com/velora/content-studio/internal/repository"
	"github.com/velora/content-studio/internal/router"
	"github.com/velora/content-studio/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.SecretIsFallback {
		log.Println("WARNING: JWT_SECRET_KEY is not set; using the insecure development fallback. Do not run this in production.")
	}

	users := repository.NewUserStore()
	history := repository.NewHistoryStore()

	cache := config.NewRedisClient()
	if cache == nil {
		log.Println("redis unavailable; generation cache disabled")
	}
	gen := service.NewGenerator(cfg, cache)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	router.Register(e, handler.NewAuthHandler(cfg, users), handler.NewContentHandler(gen, history), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

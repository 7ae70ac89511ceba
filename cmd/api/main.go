package main

import (
	"log"
	"log/slog"
	"moodmeter/internal/config"
	"moodmeter/internal/handler"
	"moodmeter/internal/logging"
	"moodmeter/internal/mood"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)
	slog.Info("configuration loaded", "config", cfg.Redacted())
	cfg.WarnMissing()

	service, err := mood.NewServiceFromConfig(cfg)
	if err != nil {
		log.Fatalf("error building mood service: %v", err)
	}

	newsHandler := handler.NewNewsHandler(service)
	moodHandler := handler.NewMoodHandler(service)
	healthHandler := handler.NewHealthHandler(cfg)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/api/news", newsHandler.PostNews)
	r.POST("/api/mood", moodHandler.PostMood)
	r.POST("/api/mood/analyze", moodHandler.PostAnalyze)
	r.GET("/countries", handler.GetCountries)
	r.GET("/health", healthHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

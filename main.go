// scheduleTracker/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/internal/handlers"
	"github.com/kaldybaev312/scheduleTracker/internal/routes"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	config.ConnectDB()
	config.ConnectRedis()
	config.InitGemini()

	// Живая лента изменений журнала.
	go handlers.GlobalHub.Run()

	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("EDU.LOG запущен", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Сервер остановлен с ошибкой", "error", err)
		os.Exit(1)
	}
}

// scheduleTracker/internal/routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaldybaev312/scheduleTracker/internal/middleware"
)

// SetupRoutes инициализирует все маршруты приложения. Аутентификации нет:
// журнал однопользовательский, все маршруты публичные.
func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.RequestLogger())
	RegisterAPIRoutes(r)
}

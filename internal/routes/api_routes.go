// scheduleTracker/internal/routes/api_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaldybaev312/scheduleTracker/internal/handlers"
)

// RegisterAPIRoutes регистрирует все API-маршруты журнала.
func RegisterAPIRoutes(r *gin.Engine) {
	apiGroup := r.Group("/api")
	{
		// --- ГРУППЫ ---
		groups := apiGroup.Group("/groups")
		{
			groups.GET("", handlers.ListGroupsHandler)
			groups.POST("", handlers.CreateGroupHandler)
			groups.DELETE("", handlers.DeleteGroupHandler)
		}

		// --- ПРЕДМЕТЫ ---
		subjects := apiGroup.Group("/subjects")
		{
			subjects.GET("", handlers.ListSubjectsHandler)
			subjects.POST("", handlers.CreateSubjectHandler)
			subjects.DELETE("", handlers.DeleteSubjectHandler)
		}

		// --- ЖУРНАЛ ЗАНЯТИЙ ---
		scheduleGroup := apiGroup.Group("/schedule")
		{
			scheduleGroup.GET("", handlers.ListScheduleHandler)
			scheduleGroup.POST("", handlers.CreateLessonHandler)
			scheduleGroup.PUT("/:id", handlers.UpdateLessonHandler)
			scheduleGroup.DELETE("/:id", handlers.DeleteLessonHandler)
			scheduleGroup.POST("/copy", handlers.CopyDayHandler)
		}

		// --- НЕДЕЛЬНЫЙ ШАБЛОН ---
		templates := apiGroup.Group("/templates")
		{
			templates.GET("", handlers.ListTemplatesHandler)
			templates.POST("", handlers.UpsertTemplateSlotHandler)
			templates.POST("/apply", handlers.ApplyTemplateHandler)
			templates.GET("/suggest", handlers.SuggestTemplateHandler)
		}

		// --- ОТЧЕТНОСТЬ ---
		apiGroup.GET("/stats", handlers.GetStatsHandler)
		apiGroup.GET("/export", handlers.ExportScheduleHandler)
	}

	// Живая лента изменений журнала.
	r.GET("/ws", handlers.ScheduleWSEndpoint)
}

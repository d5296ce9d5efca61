// scheduleTracker/internal/handlers/copy_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/internal/schedule"
	"github.com/kaldybaev312/scheduleTracker/models"
)

// copyDayRequest - запрос на копирование дня из одной группы в другую.
// strict=true включает проверку занятых пар у целевой группы; по умолчанию
// совпадения не проверяются и столкнувшиеся записи сохраняются обе.
type copyDayRequest struct {
	SourceGroup string `json:"sourceGroup"`
	TargetGroup string `json:"targetGroup"`
	Date        string `json:"date"`
	Strict      bool   `json:"strict"`
}

// CopyDayHandler переносит занятия одного дня между группами. Копии готовит
// чистая функция CopyDay, сохранение идет по одной записи без транзакции:
// в ответе счетчики created/failed. Пустой день-источник - не ошибка,
// а created=0.
func CopyDayHandler(c *gin.Context) {
	var req copyDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.SourceGroup == "" || req.TargetGroup == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указаны группы"})
		return
	}
	if req.SourceGroup == req.TargetGroup {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Группа-источник и целевая группа совпадают"})
		return
	}
	if _, err := time.Parse(schedule.DateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Дата должна быть в формате YYYY-MM-DD"})
		return
	}

	var source []models.LessonRecord
	if err := config.DB.
		Where("\"group\" = ? AND date = ?", req.SourceGroup, req.Date).
		Order("lesson_number ASC").
		Find(&source).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}

	mode := schedule.CopyPermissive
	var existingTarget []models.LessonRecord
	if req.Strict {
		mode = schedule.CopyStrict
		if err := config.DB.
			Where("\"group\" = ? AND date = ?", req.TargetGroup, req.Date).
			Find(&existingTarget).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
			return
		}
	}

	copies := schedule.CopyDay(source, req.SourceGroup, req.TargetGroup, req.Date, mode, existingTarget)
	if len(copies) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"created": 0,
			"failed":  0,
			"message": "В этом дне нет уроков для копирования",
		})
		return
	}

	created, failed := 0, 0
	var saved []models.LessonRecord
	for _, copyRecord := range copies {
		record := copyRecord
		if err := config.DB.Create(&record).Error; err != nil {
			failed++
			continue
		}
		created++
		saved = append(saved, record)
	}

	if created > 0 {
		invalidateStatsCache(req.TargetGroup)
		GlobalHub.BroadcastEvent(Event{Type: "dayCopied", Group: req.TargetGroup, Date: req.Date, Payload: saved})
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"failed":  failed,
		"records": saved,
	})
}

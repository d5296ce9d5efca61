// scheduleTracker/internal/handlers/template_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/internal/schedule"
	"github.com/kaldybaev312/scheduleTracker/models"
)

// ListTemplatesHandler возвращает все ячейки недельного шаблона группы.
func ListTemplatesHandler(c *gin.Context) {
	group := c.Query("group")
	if group == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: group"})
		return
	}

	var slots []models.TemplateSlot
	if err := config.DB.
		Where("\"group\" = ?", group).
		Order("day_of_week ASC, lesson_number ASC").
		Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch template"})
		return
	}

	if slots == nil {
		slots = make([]models.TemplateSlot, 0)
	}
	c.JSON(http.StatusOK, slots)
}

// UpsertTemplateSlotHandler сохраняет ячейку шаблона. Запись по ключу
// (группа, день недели, номер пары) либо создается, либо ее предмет
// заменяется; больше одного предмета на ключ быть не может. Пустой предмет
// допустим и означает "занятия нет".
func UpsertTemplateSlotHandler(c *gin.Context) {
	var slot models.TemplateSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if slot.Group == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указана группа"})
		return
	}
	if slot.DayOfWeek < 1 || slot.DayOfWeek > 7 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "День недели должен быть в диапазоне 1..7"})
		return
	}
	if slot.LessonNumber <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Номер пары должен быть положительным"})
		return
	}

	// Upsert по ключу шаблона (OnConflict), чтобы не плодить дубликаты ячеек.
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group"}, {Name: "day_of_week"}, {Name: "lesson_number"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"subject": slot.Subject, "deleted_at": nil}),
	}).Create(&slot).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save template slot"})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// applyTemplateRequest - запрос на применение шаблона к конкретной дате.
type applyTemplateRequest struct {
	Group string `json:"group"`
	Date  string `json:"date"`
}

// ApplyTemplateHandler разворачивает недельный шаблон группы в записи журнала
// на указанную дату. Кандидаты считает чистая функция Materialize, сохранение
// идет по одной записи без транзакции: неудача одной вставки не откатывает
// остальные, в ответе возвращаются счетчики created/failed/skipped.
// Пустой шаблон на этот день недели - не ошибка, а created=0.
func ApplyTemplateHandler(c *gin.Context) {
	var req applyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Group == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указана группа"})
		return
	}
	weekday, err := schedule.ISOWeekday(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Дата должна быть в формате YYYY-MM-DD"})
		return
	}

	var slots []models.TemplateSlot
	if err := config.DB.Where("\"group\" = ?", req.Group).Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch template"})
		return
	}
	var existing []models.LessonRecord
	if err := config.DB.Where("\"group\" = ? AND date = ?", req.Group, req.Date).Find(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}

	candidates, err := schedule.Materialize(req.Date, req.Group, slots, existing)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Дата должна быть в формате YYYY-MM-DD"})
		return
	}

	// Сколько ячеек на этот день недели было пропущено из-за уже занятых пар.
	planned := 0
	for _, s := range slots {
		if s.DayOfWeek == weekday && s.Subject != "" {
			planned++
		}
	}
	skipped := planned - len(candidates)

	created, failed := 0, 0
	var saved []models.LessonRecord
	for _, candidate := range candidates {
		record := candidate
		if err := config.DB.Create(&record).Error; err != nil {
			failed++
			continue
		}
		created++
		saved = append(saved, record)
	}

	if created > 0 {
		invalidateStatsCache(req.Group)
		GlobalHub.BroadcastEvent(Event{Type: "templateApplied", Group: req.Group, Date: req.Date, Payload: saved})
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"failed":  failed,
		"skipped": skipped,
		"records": saved,
	})
}

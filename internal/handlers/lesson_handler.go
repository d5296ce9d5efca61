// scheduleTracker/internal/handlers/lesson_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/internal/schedule"
	"github.com/kaldybaev312/scheduleTracker/models"
)

// lessonRequest - тело запроса на создание/изменение занятия. Часы и тип
// необязательны: тип по умолчанию "Лекция", часы подставляются по типу.
type lessonRequest struct {
	Group           string `json:"group"`
	Date            string `json:"date"`
	LessonNumber    int    `json:"lessonNumber"`
	Subject         string `json:"subject"`
	Type            string `json:"type"`
	Hours           int    `json:"hours"`
	StudentsPresent int    `json:"studentsPresent"`
	Topic           string `json:"topic"`
	Notes           string `json:"notes"`
}

func (r *lessonRequest) validate() string {
	if r.Group == "" {
		return "Не указана группа"
	}
	if r.Subject == "" {
		return "Не указан предмет"
	}
	if _, err := time.Parse(schedule.DateLayout, r.Date); err != nil {
		return "Дата должна быть в формате YYYY-MM-DD"
	}
	if r.LessonNumber <= 0 {
		return "Номер пары должен быть положительным"
	}
	if r.Hours < 0 || r.StudentsPresent < 0 {
		return "Часы и посещаемость не могут быть отрицательными"
	}
	return ""
}

// ListScheduleHandler возвращает записи журнала. Поддерживаются фильтры
// `?group=`, `?date=` и `?subject=` (поиск уроков по предмету); при наличии
// параметра `page` ответ пагинируется.
func ListScheduleHandler(c *gin.Context) {
	filter := func(db *gorm.DB) *gorm.DB {
		if group := c.Query("group"); group != "" {
			db = db.Where("\"group\" = ?", group)
		}
		if date := c.Query("date"); date != "" {
			db = db.Where("date = ?", date)
		}
		if subject := c.Query("subject"); subject != "" {
			db = db.Where("subject = ?", subject)
		}
		return db
	}
	query := filter(config.DB.Model(&models.LessonRecord{})).Order("date ASC, lesson_number ASC")

	var records []models.LessonRecord
	if c.Query("page") == "" {
		if err := query.Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
			return
		}
		if records == nil {
			records = make([]models.LessonRecord, 0)
		}
		c.JSON(http.StatusOK, records)
		return
	}

	var totalRows int64
	if err := filter(config.DB.Model(&models.LessonRecord{})).Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}
	if err := query.Scopes(Paginate(c)).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}
	if records == nil {
		records = make([]models.LessonRecord, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, records, totalRows))
}

// CreateLessonHandler создает одну запись журнала. Нулевые часы заполняются
// значением по умолчанию для типа занятия с учетом настройки poHours группы.
func CreateLessonHandler(c *gin.Context) {
	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if req.Type == "" {
		req.Type = models.LessonTypeLecture
	}

	record := models.LessonRecord{
		Group:           req.Group,
		Date:            req.Date,
		LessonNumber:    req.LessonNumber,
		Subject:         req.Subject,
		Type:            req.Type,
		Hours:           req.Hours,
		StudentsPresent: req.StudentsPresent,
		Topic:           req.Topic,
		Notes:           req.Notes,
	}
	if record.Hours == 0 {
		var group models.Group
		// Для неизвестной группы ResolveHours с нулевым poHours даст
		// стандартные значения типа.
		config.DB.Where("name = ?", req.Group).First(&group)
		record.Hours = schedule.ResolveHours(record, group)
	}

	if err := config.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create lesson record"})
		return
	}

	invalidateStatsCache(record.Group)
	GlobalHub.BroadcastEvent(Event{Type: "lessonCreated", Group: record.Group, Date: record.Date, Payload: record})
	c.JSON(http.StatusCreated, record)
}

// UpdateLessonHandler изменяет запись журнала по id за одну операцию,
// без удаления и повторного создания.
func UpdateLessonHandler(c *gin.Context) {
	var record models.LessonRecord
	if err := config.DB.First(&record, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Запись не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	oldGroup := record.Group
	record.Group = req.Group
	record.Date = req.Date
	record.LessonNumber = req.LessonNumber
	record.Subject = req.Subject
	if req.Type != "" {
		record.Type = req.Type
	}
	record.Hours = req.Hours
	record.StudentsPresent = req.StudentsPresent
	record.Topic = req.Topic
	record.Notes = req.Notes

	if err := config.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update lesson record"})
		return
	}

	invalidateStatsCache(oldGroup)
	if record.Group != oldGroup {
		invalidateStatsCache(record.Group)
	}
	GlobalHub.BroadcastEvent(Event{Type: "lessonUpdated", Group: record.Group, Date: record.Date, Payload: record})
	c.JSON(http.StatusOK, record)
}

// DeleteLessonHandler удаляет запись журнала по id.
func DeleteLessonHandler(c *gin.Context) {
	var record models.LessonRecord
	if err := config.DB.First(&record, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Запись не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := config.DB.Unscoped().Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete lesson record"})
		return
	}

	invalidateStatsCache(record.Group)
	GlobalHub.BroadcastEvent(Event{Type: "lessonDeleted", Group: record.Group, Date: record.Date, Payload: record})
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

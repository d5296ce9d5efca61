// scheduleTracker/internal/handlers/subject_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/models"
)

// ListSubjectsHandler возвращает библиотеку предметов. С параметром `?group=`
// список сужается до предметов, доступных этой группе: общих ("all") и
// привязанных именно к ней.
func ListSubjectsHandler(c *gin.Context) {
	query := config.DB.Order("name ASC")
	if group := c.Query("group"); group != "" {
		query = query.Where("target_group IN ?", []string{models.TargetGroupAll, group})
	}

	var subjects []models.Subject
	if err := query.Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch subjects"})
		return
	}

	if subjects == nil {
		subjects = make([]models.Subject, 0)
	}
	c.JSON(http.StatusOK, subjects)
}

// CreateSubjectHandler добавляет предмет в библиотеку. Дубликаты пар
// (название, группа) допустимы и не проверяются.
func CreateSubjectHandler(c *gin.Context) {
	var subject models.Subject
	if err := c.ShouldBindJSON(&subject); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if subject.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указано название предмета"})
		return
	}
	if subject.TargetGroup == "" {
		subject.TargetGroup = models.TargetGroupAll
	}

	if err := config.DB.Create(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create subject"})
		return
	}
	c.JSON(http.StatusCreated, subject)
}

// DeleteSubjectHandler удаляет предметы по названию (и, если передана,
// по привязанной группе). Из-за допустимых дубликатов удалиться может
// несколько записей сразу.
func DeleteSubjectHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: name"})
		return
	}

	query := config.DB.Where("name = ?", name)
	if tg := c.Query("targetGroup"); tg != "" {
		query = query.Where("target_group = ?", tg)
	}

	result := query.Unscoped().Delete(&models.Subject{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete subject"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Предмет не найден"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "removed": result.RowsAffected})
}

// scheduleTracker/internal/handlers/group_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/models"
)

// ListGroupsHandler возвращает список всех учебных групп.
func ListGroupsHandler(c *gin.Context) {
	var groups []models.Group
	if err := config.DB.Order("name ASC").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch groups"})
		return
	}

	if groups == nil {
		groups = make([]models.Group, 0)
	}
	c.JSON(http.StatusOK, groups)
}

// CreateGroupHandler создает новую группу. Имя должно быть уникальным,
// численность - положительной; poHours по умолчанию 6.
func CreateGroupHandler(c *gin.Context) {
	var group models.Group
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if group.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указано имя группы"})
		return
	}
	if group.TotalStudents <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Численность группы должна быть положительной"})
		return
	}
	if group.PoHours <= 0 {
		group.PoHours = models.DefaultPoHours
	}

	var existing models.Group
	err := config.DB.Where("name = ?", group.Name).First(&existing).Error
	switch {
	case err == nil:
		c.JSON(http.StatusConflict, gin.H{"error": "Группа с таким именем уже существует"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := config.DB.Create(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create group"})
			return
		}
		c.JSON(http.StatusCreated, group)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
	}
}

// DeleteGroupHandler удаляет группу по имени. Записи журнала группы при этом
// сознательно не трогаются: они остаются в хранилище и доступны по запросу,
// хотя в интерфейсе больше не отображаются.
func DeleteGroupHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: name"})
		return
	}

	var group models.Group
	if err := config.DB.Where("name = ?", name).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Группа не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// Удаляем насовсем: иначе висящая soft-delete строка с тем же именем
	// блокировала бы повторное создание группы под уникальным индексом.
	if err := config.DB.Unscoped().Delete(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete group"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

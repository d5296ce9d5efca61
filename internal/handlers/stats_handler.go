// scheduleTracker/internal/handlers/stats_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/internal/schedule"
	"github.com/kaldybaev312/scheduleTracker/models"
)

const statsCacheTTL = 5 * time.Minute

func statsCacheKey(group string) string {
	return "edulog:stats:" + group
}

// invalidateStatsCache сбрасывает кэшированную сводку группы. Вызывается из
// всех обработчиков, меняющих записи журнала.
func invalidateStatsCache(group string) {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, statsCacheKey(group)).Err(); err != nil {
		slog.Warn("Не удалось сбросить кэш сводки", "group", group, "error", err)
	}
}

// GetStatsHandler возвращает сводку по группе: часы всего, по типам и по
// предметам, процент посещаемости. Сводка кэшируется в Redis; без Redis
// каждый запрос пересчитывает ее из полного набора записей.
func GetStatsHandler(c *gin.Context) {
	groupName := c.Query("group")
	if groupName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: group"})
		return
	}

	if config.RDB != nil {
		if cached, err := config.RDB.Get(config.Ctx, statsCacheKey(groupName)).Result(); err == nil {
			var stats schedule.Stats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				c.JSON(http.StatusOK, stats)
				return
			}
		}
	}

	var group models.Group
	if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Группа не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var records []models.LessonRecord
	if err := config.DB.Where("\"group\" = ?", groupName).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}

	stats := schedule.Aggregate(records, group)

	if config.RDB != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := config.RDB.Set(config.Ctx, statsCacheKey(groupName), payload, statsCacheTTL).Err(); err != nil {
				slog.Warn("Не удалось записать сводку в кэш", "group", groupName, "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, stats)
}

// scheduleTracker/internal/handlers/export_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/internal/schedule"
	"github.com/kaldybaev312/scheduleTracker/models"
)

// sheetName приводит название предмета к допустимому имени листа Excel:
// не длиннее 31 символа и без запрещенных знаков.
func sheetName(subject string) string {
	replacer := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")
	name := replacer.Replace(subject)
	runes := []rune(name)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}

// formatDate переводит хранимую дату YYYY-MM-DD в отображаемую DD.MM.YYYY.
func formatDate(iso string) string {
	parts := strings.SplitN(iso, "-", 3)
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// ExportScheduleHandler выгружает журнал группы в книгу Excel: по листу на
// предмет (дата, пара, тип, часы, посещаемость, тема) и сводный лист с
// итогами по типам и процентом посещаемости. Итог часов дублируется
// прописью, как в бумажных формах.
func ExportScheduleHandler(c *gin.Context) {
	groupName := c.Query("group")
	if groupName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: group"})
		return
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
	if err := config.DB.
		Where("\"group\" = ?", groupName).
		Order("date ASC, lesson_number ASC").
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Нет данных для экспорта"})
		return
	}

	stats := schedule.Aggregate(records, group)

	bySubject := make(map[string][]models.LessonRecord)
	for _, r := range records {
		bySubject[r.Subject] = append(bySubject[r.Subject], r)
	}
	// Предметы в порядке убывания часов, как в сводке на экране.
	subjects := make([]string, 0, len(bySubject))
	for s := range bySubject {
		subjects = append(subjects, s)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if stats.HoursBySubject[subjects[i]] != stats.HoursBySubject[subjects[j]] {
			return stats.HoursBySubject[subjects[i]] > stats.HoursBySubject[subjects[j]]
		}
		return subjects[i] < subjects[j]
	})

	f := excelize.NewFile()
	summary := "Сводка"
	index, _ := f.NewSheet(summary)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(summary, "A1", fmt.Sprintf("Группа %s (%d студ.)", group.Name, group.TotalStudents))
	f.SetCellValue(summary, "A3", "Всего занятий")
	f.SetCellValue(summary, "B3", stats.TotalLessons)
	f.SetCellValue(summary, "A4", "Всего часов")
	f.SetCellValue(summary, "B4", stats.TotalHours)
	f.SetCellValue(summary, "C4", "("+num2words.Convert(stats.TotalHours)+")")
	f.SetCellValue(summary, "A5", "Часы (Лекция)")
	f.SetCellValue(summary, "B5", stats.HoursByType[models.LessonTypeLecture])
	f.SetCellValue(summary, "A6", "Часы (ПО)")
	f.SetCellValue(summary, "B6", stats.HoursByType[models.LessonTypePO])
	f.SetCellValue(summary, "A7", "Часы (ПП)")
	f.SetCellValue(summary, "B7", stats.HoursByType[models.LessonTypePP])
	f.SetCellValue(summary, "A8", "Посещаемость, %")
	f.SetCellValue(summary, "B8", stats.AttendancePercent)

	f.SetCellValue(summary, "A10", "Предмет")
	f.SetCellValue(summary, "B10", "Часы")
	for i, s := range subjects {
		row := 11 + i
		f.SetCellValue(summary, fmt.Sprintf("A%d", row), s)
		f.SetCellValue(summary, fmt.Sprintf("B%d", row), stats.HoursBySubject[s])
	}

	headers := []string{"Дата", "№ пары", "Тип", "Часы", "Присутствовало", "Тема", "Заметки"}
	for _, subject := range subjects {
		sheet := sheetName(subject)
		if _, err := f.NewSheet(sheet); err != nil {
			continue
		}
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, header)
		}
		for i, r := range bySubject[subject] {
			row := i + 2
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), formatDate(r.Date))
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.LessonNumber)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Type)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), schedule.ResolveHours(r, group))
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.StudentsPresent)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Topic)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Notes)
		}
	}

	fileName := fmt.Sprintf("Отчет_%s.xlsx", group.Name)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(fileName))
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сформировать файл"})
	}
}

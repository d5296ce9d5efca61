// scheduleTracker/internal/handlers/template_ai.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"

	"github.com/kaldybaev312/scheduleTracker/config"
	"github.com/kaldybaev312/scheduleTracker/models"
)

// dayNameIndex - соответствие русских названий дней ISO-номерам шаблона.
var dayNameIndex = map[string]int{
	"Понедельник": 1,
	"Вторник":     2,
	"Среда":       3,
	"Четверг":     4,
	"Пятница":     5,
	"Суббота":     6,
	"Воскресенье": 7,
}

// extractJSON находит первую валидную и полную JSON-структуру в ответе ИИ,
// вырезая markdown-блоки (```json ... ```) и прочий текстовый "мусор".
func extractJSON(raw string) string {
	if jsonBlockStart := strings.Index(raw, "```json"); jsonBlockStart != -1 {
		raw = raw[jsonBlockStart+7:]
		if jsonBlockEnd := strings.Index(raw, "```"); jsonBlockEnd != -1 {
			raw = raw[:jsonBlockEnd]
		}
	} else if blockStart := strings.Index(raw, "```"); blockStart != -1 {
		raw = raw[blockStart+3:]
		if blockEnd := strings.Index(raw, "```"); blockEnd != -1 {
			raw = raw[:blockEnd]
		}
	}

	start := strings.Index(raw, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(raw, "}")
	if end == -1 || end < start {
		return ""
	}

	potentialJSON := raw[start : end+1]
	if json.Valid([]byte(potentialJSON)) {
		return potentialJSON
	}

	slog.Warn("Ответ ИИ содержал неполный или невалидный JSON", "snippet", potentialJSON)
	return ""
}

// constructTemplatePrompt создает строгое задание для ИИ: недельный шаблон
// группы из предметов ее библиотеки.
func constructTemplatePrompt(groupName string, availableSubjects []models.Subject) string {
	var subjectNames []string
	for _, s := range availableSubjects {
		subjectNames = append(subjectNames, `"`+s.Name+`"`)
	}
	subjectsString := strings.Join(subjectNames, ", ")

	return fmt.Sprintf(`
	**Критически важная задача**: Сгенерируй недельный шаблон расписания для группы "%s" в формате JSON.

	**Строгие правила**:
	1.  **Только JSON**: Твой ответ должен быть ИСКЛЮЧИТЕЛЬНО валидным JSON объектом. Никакого текста до или после JSON, никаких markdown-блоков, никаких комментариев.
	2.  **Дни недели**: Используй только следующие ключи: "Понедельник", "Вторник", "Среда", "Четверг", "Пятница".
	3.  **Количество пар**: В каждом дне от 3 до 5 пар с номерами, начиная с 1.
	4.  **Список предметов**: В поле "subject" можно использовать **ТОЛЬКО** и **В ТОЧНОСТИ** строки из этого списка: [%s]. Запрещено сокращать названия, придумывать предметы или использовать синонимы.
	5.  **Сбалансированность**: Распредели предметы равномерно в течение недели, не ставь один предмет дважды в день.

	**Требуемая структура JSON**:
	{
	  "Понедельник": [
		{ "lesson_number": 1, "subject": "Точное название из списка" },
		{ "lesson_number": 2, "subject": "Точное название из списка" }
	  ],
	  "Вторник": [
	  ]
	}
	`, groupName, subjectsString)
}

// SuggestTemplateHandler просит Gemini предложить недельный шаблон для группы
// из предметов, доступных ей в библиотеке. Ответ - только предложение: ничего
// не сохраняется, преподаватель подтверждает ячейки обычными upsert-запросами.
func SuggestTemplateHandler(c *gin.Context) {
	if config.GeminiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Подсказка шаблона отключена: не задан GEMINI_API_KEY"})
		return
	}

	groupName := c.Query("group")
	if groupName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: group"})
		return
	}

	var subjects []models.Subject
	if err := config.DB.
		Where("target_group IN ?", []string{models.TargetGroupAll, groupName}).
		Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch subjects"})
		return
	}
	if len(subjects) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Для группы нет доступных предметов"})
		return
	}

	prompt := constructTemplatePrompt(groupName, subjects)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resp, err := config.GeminiClient.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.Error("Ошибка генерации шаблона через ИИ", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить ответ от ИИ"})
		return
	}

	var fullResponse strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				fullResponse.WriteString(string(txt))
			}
		}
	}

	cleanJSON := extractJSON(fullResponse.String())
	if cleanJSON == "" {
		slog.Error("ИИ вернул некорректные данные", "response", fullResponse.String())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ИИ вернул некорректные данные. Попробуйте снова."})
		return
	}

	var proposalByDay map[string][]struct {
		LessonNumber int    `json:"lesson_number"`
		Subject      string `json:"subject"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &proposalByDay); err != nil {
		slog.Error("Не удалось разобрать JSON от ИИ", "json", cleanJSON, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось разобрать ответ ИИ"})
		return
	}

	known := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		known[s.Name] = true
	}

	var proposal []models.TemplateSlot
	for dayName, lessons := range proposalByDay {
		day, ok := dayNameIndex[dayName]
		if !ok {
			slog.Warn("ИИ использовал неизвестный день недели", "day", dayName)
			continue
		}
		for _, l := range lessons {
			if !known[l.Subject] {
				slog.Warn("ИИ предложил предмет, которого нет в библиотеке", "subject", l.Subject)
				continue
			}
			if l.LessonNumber <= 0 {
				continue
			}
			proposal = append(proposal, models.TemplateSlot{
				Group:        groupName,
				DayOfWeek:    day,
				LessonNumber: l.LessonNumber,
				Subject:      l.Subject,
			})
		}
	}

	if len(proposal) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ИИ не смог составить шаблон из доступных предметов. Проверьте список."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"proposal": proposal})
}

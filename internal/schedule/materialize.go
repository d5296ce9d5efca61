package schedule

import (
	"sort"

	"github.com/kaldybaev312/scheduleTracker/models"
)

// Materialize разворачивает недельный шаблон группы в конкретные записи занятий
// на указанную дату. Берутся только ячейки шаблона на соответствующий день
// недели с непустым предметом; ячейки, для которых у группы в этот день уже
// есть запись с тем же номером пары (независимо от предмета), пропускаются.
// Созданные кандидаты получают тип "Лекция" и 2 часа - до правки
// преподавателем. Результат отсортирован по номеру пары. Пустой результат
// означает "применять нечего" и ошибкой не является.
//
// Функция чистая: сохранение кандидатов - забота вызывающего кода.
func Materialize(date, group string, slots []models.TemplateSlot, existing []models.LessonRecord) ([]models.LessonRecord, error) {
	weekday, err := ISOWeekday(date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[int]bool, len(existing))
	for _, r := range existing {
		if r.Group == group && r.Date == date {
			occupied[r.LessonNumber] = true
		}
	}

	var out []models.LessonRecord
	for _, s := range slots {
		if s.Group != group || s.DayOfWeek != weekday || s.Subject == "" {
			continue
		}
		if occupied[s.LessonNumber] {
			continue
		}
		out = append(out, models.LessonRecord{
			Group:        group,
			Date:         date,
			LessonNumber: s.LessonNumber,
			Subject:      s.Subject,
			Type:         models.LessonTypeLecture,
			Hours:        models.DefaultLectureHours,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].LessonNumber < out[j].LessonNumber })
	return out, nil
}

package schedule

import (
	"gorm.io/gorm"

	"github.com/kaldybaev312/scheduleTracker/models"
)

// CopyMode управляет проверкой дубликатов на стороне целевой группы при
// копировании дня.
type CopyMode int

const (
	// CopyPermissive повторяет исторически сложившееся поведение: совпадение
	// ключа (группа, дата, номер пары) у целевой группы не проверяется,
	// столкнувшиеся записи сохраняются обе.
	CopyPermissive CopyMode = iota
	// CopyStrict пропускает записи, для которых у целевой группы на эту дату
	// уже есть запись с тем же номером пары.
	CopyStrict
)

// CopyDay готовит копии занятий sourceGroup за date для targetGroup:
// предмет, номер пары, тип, часы, посещаемость и заметки сохраняются, дата не
// меняется, меняется только группа; идентификатор сбрасывается, новый выдаст
// хранилище. Пустой результат означает "копировать нечего" и ошибкой не
// является. existingTarget учитывается только в режиме CopyStrict.
func CopyDay(records []models.LessonRecord, sourceGroup, targetGroup, date string, mode CopyMode, existingTarget []models.LessonRecord) []models.LessonRecord {
	occupied := make(map[int]bool)
	if mode == CopyStrict {
		for _, r := range existingTarget {
			if r.Group == targetGroup && r.Date == date {
				occupied[r.LessonNumber] = true
			}
		}
	}

	var out []models.LessonRecord
	for _, r := range records {
		if r.Group != sourceGroup || r.Date != date {
			continue
		}
		if mode == CopyStrict && occupied[r.LessonNumber] {
			continue
		}
		copied := r
		copied.Model = gorm.Model{}
		copied.Group = targetGroup
		out = append(out, copied)
	}
	return out
}

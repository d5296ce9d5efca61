package schedule

import (
	"math"

	"github.com/kaldybaev312/scheduleTracker/models"
)

// Stats - агрегированная сводка по занятиям одной группы. Это снимок,
// пересчитываемый по полному набору записей; состояния между вызовами нет.
type Stats struct {
	TotalLessons      int            `json:"totalLessons"`
	TotalHours        int            `json:"totalHours"`
	HoursByType       map[string]int `json:"hoursByType"`
	HoursBySubject    map[string]int `json:"hoursBySubject"`
	AttendancePercent float64        `json:"attendancePercent"`
}

// ResolveHours возвращает зачитываемые часы записи: хранимое значение, если
// оно задано (> 0), иначе значение по умолчанию для типа занятия. Для "ПО"
// берется настройка группы poHours (или 6, если она не задана), для "ПП" - 8,
// для всего остального - 2. Старые записи без часов и типа за счет этого
// учитываются как двухчасовые лекции, а не ломают суммы.
func ResolveHours(r models.LessonRecord, group models.Group) int {
	if r.Hours > 0 {
		return r.Hours
	}
	switch r.Type {
	case models.LessonTypePO:
		if group.PoHours > 0 {
			return group.PoHours
		}
		return models.DefaultPoHours
	case models.LessonTypePP:
		return models.DefaultPpHours
	default:
		return models.DefaultLectureHours
	}
}

// normalizeType: нераспознанный или пустой тип учитывается в корзине "Лекция".
func normalizeType(t string) string {
	switch t {
	case models.LessonTypeLecture, models.LessonTypePO, models.LessonTypePP:
		return t
	default:
		return models.LessonTypeLecture
	}
}

// Aggregate считает итоговые часы (всего, по типам, по предметам) и процент
// посещаемости относительно численности группы. Процент округляется до одного
// знака; при нулевом знаменателе (нет записей или нулевая численность)
// возвращается 0, а не деление на ноль.
func Aggregate(records []models.LessonRecord, group models.Group) Stats {
	stats := Stats{
		HoursByType: map[string]int{
			models.LessonTypeLecture: 0,
			models.LessonTypePO:      0,
			models.LessonTypePP:      0,
		},
		HoursBySubject: make(map[string]int),
	}

	presentSum := 0
	for _, r := range records {
		h := ResolveHours(r, group)
		stats.TotalHours += h
		stats.HoursByType[normalizeType(r.Type)] += h
		stats.HoursBySubject[r.Subject] += h
		presentSum += r.StudentsPresent
	}
	stats.TotalLessons = len(records)

	if denom := len(records) * group.TotalStudents; denom > 0 {
		stats.AttendancePercent = math.Round(float64(presentSum)/float64(denom)*1000) / 10
	}
	return stats
}

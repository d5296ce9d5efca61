// scheduleTracker/models/lesson_record.go
package models

import "gorm.io/gorm"

// Типы занятий и их длительность по умолчанию (в часах).
const (
	LessonTypeLecture = "Лекция"
	LessonTypePO      = "ПО" // практическое занятие
	LessonTypePP      = "ПП" // производственная практика (выездная)

	DefaultLectureHours = 2
	DefaultPoHours      = 6
	DefaultPpHours      = 8
)

// LessonRecord - одно занятие в журнале: группа, дата, номер пары, предмет,
// тип, часы и посещаемость. Hours хранится как есть: клиент подставляет
// значение по конвенции типа, но хранилище его не проверяет. Ноль трактуется
// как "не заполнено", и при подсчетах берется значение по умолчанию для типа.
// Номер пары в пределах дня не обязан быть уникальным.
type LessonRecord struct {
	gorm.Model
	Group           string `json:"group" gorm:"index:idx_lesson_day;not null"`
	Date            string `json:"date" gorm:"index:idx_lesson_day;not null"` // YYYY-MM-DD
	LessonNumber    int    `json:"lessonNumber"`
	Subject         string `json:"subject" gorm:"not null"`
	Type            string `json:"type" gorm:"default:Лекция"`
	Hours           int    `json:"hours"`
	StudentsPresent int    `json:"studentsPresent"`
	Topic           string `json:"topic"`
	Notes           string `json:"notes"`
}

// scheduleTracker/models/template_slot.go
package models

import "gorm.io/gorm"

// TemplateSlot - ячейка недельного шаблона группы: связка
// (группа, день недели, номер пары) -> предмет. DayOfWeek нумеруется по ISO:
// 1=понедельник ... 7=воскресенье. Запись с пустым предметом означает
// "занятия нет" и при применении шаблона пропускается.
type TemplateSlot struct {
	gorm.Model
	Group        string `json:"group" gorm:"uniqueIndex:idx_template_key;not null"`
	DayOfWeek    int    `json:"dayOfWeek" gorm:"uniqueIndex:idx_template_key;not null"`
	LessonNumber int    `json:"lessonNumber" gorm:"uniqueIndex:idx_template_key;not null"`
	Subject      string `json:"subject"`
}

// scheduleTracker/models/subject.go
package models

import "gorm.io/gorm"

// TargetGroupAll - значение targetGroup, при котором предмет доступен всем группам.
const TargetGroupAll = "all"

// Subject представляет предмет из библиотеки предметов. Привязка к группе
// ограничивает, в расписании каких групп предмет можно выбрать. Уникальность
// пары (name, targetGroup) не требуется: дубликаты допустимы и не считаются
// ошибкой.
type Subject struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	TargetGroup string `json:"targetGroup" gorm:"default:all"`
}

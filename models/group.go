// scheduleTracker/models/group.go
package models

import "gorm.io/gorm"

// Group представляет учебную группу с собственным расписанием и шаблоном.
type Group struct {
	gorm.Model
	Name          string `json:"name" gorm:"uniqueIndex;not null"`
	TotalStudents int    `json:"totalStudents" gorm:"not null"`
	// PoHours - длительность занятия типа "ПО" по умолчанию для этой группы.
	PoHours int `json:"poHours" gorm:"default:6"`
}

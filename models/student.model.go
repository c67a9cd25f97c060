package models

import (
	"gorm.io/gorm"
)

// Student is the identity record for a submitter. Created by the
// registration flow; profile fields are editable, the record itself is
// never deleted.
type Student struct {
	gorm.Model
	StudentRegd string `json:"studentRegd" gorm:"unique;not null"`
	Name        string `json:"name" gorm:"default:''"`
	Email       string `json:"email" gorm:"unique;not null"`
	Phone       string `json:"phone" gorm:"default:''"`
	Branch      string `json:"branch" gorm:"default:''"`
	Year        string `json:"year" gorm:"default:''"`
	Section     string `json:"section" gorm:"default:''"`
}

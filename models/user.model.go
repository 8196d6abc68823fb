package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName  string    `json:"full_name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:'LEARNER'"` // LEARNER, ADMIN
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}

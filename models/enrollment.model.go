package models

import "gorm.io/gorm"

// Enrollment records that a course was assigned to a learner. Creating one
// also creates the matching Progress row. The composite unique index keeps
// one row per (user, course) even under concurrent assigns; cascade cleanup
// deletes these rows permanently so tombstones never collide with it.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	CourseID uint `json:"course_id" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
}

// Progress is the derived per-learner-per-course completion state. At most
// one row exists per (user, course) pair, enforced by the composite unique
// index; concurrent creates fall back to an upsert.
type Progress struct {
	gorm.Model
	UserID           uint    `json:"user_id" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	CourseID         uint    `json:"course_id" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	IsCompleted      bool    `json:"is_completed" gorm:"default:false"`
	PlaybackPosition float64 `json:"playback_position" gorm:"default:0"` // 0.0 - 1.0
	Notes            string  `json:"notes"`
}

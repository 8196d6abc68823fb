package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz holds an ordered set of multiple-choice questions for a course.
// Questions is a JSON array; element order is the canonical question order
// and must line up with the answer indices submitted by learners.
// The question set is fixed at creation and only ever replaced wholesale.
type Quiz struct {
	gorm.Model
	CourseID  uint           `json:"course_id" gorm:"index;not null"`
	Title     string         `json:"title"`
	Questions datatypes.JSON `json:"questions"`
}

// QuizSubmission is an immutable record of one scoring event. It is never
// updated after creation; repeated submissions create new rows.
type QuizSubmission struct {
	gorm.Model
	Reference   string         `json:"reference" gorm:"uniqueIndex;size:36"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	QuizID      uint           `json:"quiz_id" gorm:"index;not null"`
	Score       int            `json:"score"` // percentage 0-100
	Responses   datatypes.JSON `json:"responses"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

package models

import "gorm.io/gorm"

// Course represents a learning course with a single primary video
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Resource is a downloadable file attached to a course
type Resource struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	FileName string `json:"file_name"`
	FileSize string `json:"file_size"`
	FileURL  string `json:"file_url"`
}

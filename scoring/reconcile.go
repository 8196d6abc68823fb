package scoring

import (
	"learntrack/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReconcileProgress applies the completion side effect of a scored
// submission. A passing score marks the learner's course progress completed
// with playback at 1.0, creating the row if enrollment never did. Notes are
// left alone. A failing score changes nothing: completion never regresses.
//
// The write is a single upsert against the (user_id, course_id) unique
// index, so concurrent passing submissions cannot duplicate the row. Runs on
// the caller's transaction handle so the progress write commits or rolls
// back together with the submission insert.
func ReconcileProgress(tx *gorm.DB, userID, courseID uint, score, passThreshold int) error {
	if score < passThreshold {
		return nil
	}

	progress := models.Progress{
		UserID:           userID,
		CourseID:         courseID,
		IsCompleted:      true,
		PlaybackPosition: 1.0,
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_completed":      true,
			"playback_position": 1.0,
		}),
	}).Create(&progress).Error
}

package scoring

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"time"

	"learntrack/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// Store runs the submission workflow and owns all reads over submission
// rows. Writes go through a single transaction so the submission insert and
// the progress reconciliation commit or roll back as one unit.
type Store struct {
	db            *gorm.DB
	passThreshold int
}

func NewStore(db *gorm.DB, passThreshold int) *Store {
	return &Store{db: db, passThreshold: passThreshold}
}

// SubmitQuiz scores the ordered answer list against the quiz's question set
// and persists the submission together with any progress update. Every call
// creates a new immutable submission row.
func (s *Store) SubmitQuiz(userID, quizID uint, answers []int) (*models.QuizSubmission, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	var stored []StoredQuestion
	if len(quiz.Questions) > 0 {
		if err := json.Unmarshal(quiz.Questions, &stored); err != nil {
			// Unreadable question sets score as empty rather than failing
			log.Printf("Error decoding questions for quiz %d: %v", quiz.ID, err)
			stored = nil
		}
	}

	result := Score(NormalizeAll(stored), answers)

	responses, err := json.Marshal(result.Details)
	if err != nil {
		return nil, err
	}

	submission := models.QuizSubmission{
		Reference:   uuid.NewString(),
		UserID:      userID,
		QuizID:      quiz.ID,
		Score:       result.Score,
		Responses:   responses,
		SubmittedAt: time.Now().UTC(),
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Create(&submission).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := ReconcileProgress(tx, userID, quiz.CourseID, result.Score, s.passThreshold); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &submission, nil
}

// GetSubmission fetches one submission by its primary key.
func (s *Store) GetSubmission(id uint) (*models.QuizSubmission, error) {
	var submission models.QuizSubmission
	if err := s.db.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// HistoryItem is one row of a learner's submission history.
type HistoryItem struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	QuizTitle   string    `json:"quiz_title"`
	CourseTitle string    `json:"course_title"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"` // Passed, Failed
}

// ListHistory returns the learner's submissions newest first, with quiz and
// course titles joined in for display.
func (s *Store) ListHistory(userID uint) ([]HistoryItem, error) {
	var items []HistoryItem
	err := s.db.Model(&models.QuizSubmission{}).
		Select(`quiz_submissions.id, quiz_submissions.reference, quiz_submissions.score,
			quiz_submissions.submitted_at,
			COALESCE(quizzes.title, 'Unknown Quiz') AS quiz_title,
			COALESCE(courses.title, 'Unknown Course') AS course_title`).
		Joins("LEFT JOIN quizzes ON quizzes.id = quiz_submissions.quiz_id").
		Joins("LEFT JOIN courses ON courses.id = quizzes.course_id").
		Where("quiz_submissions.user_id = ?", userID).
		Order("quiz_submissions.submitted_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Score >= s.passThreshold {
			items[i].Status = "Passed"
		} else {
			items[i].Status = "Failed"
		}
	}
	return items, nil
}

// Stats aggregates a learner's submissions for reporting.
type Stats struct {
	AverageScore float64 `json:"average_score"`
	QuizzesTaken int64   `json:"quizzes_taken"`
}

// UserStats returns the learner's mean score (one decimal) and submission
// count. Pure query, no side effects.
func (s *Store) UserStats(userID uint) (Stats, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := s.db.Model(&models.QuizSubmission{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		AverageScore: math.Round(row.Avg*10) / 10,
		QuizzesTaken: row.Count,
	}, nil
}

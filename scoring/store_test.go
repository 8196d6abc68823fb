package scoring

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"learntrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedQuiz(t *testing.T, db *gorm.DB, questions []StoredQuestion) models.Quiz {
	t.Helper()

	course := models.Course{Title: "Go Fundamentals", VideoURL: "https://example.com/go.mp4"}
	require.NoError(t, db.Create(&course).Error)

	raw, err := json.Marshal(questions)
	require.NoError(t, err)

	quiz := models.Quiz{CourseID: course.ID, Title: "Go Fundamentals Quiz", Questions: raw}
	require.NoError(t, db.Create(&quiz).Error)
	return quiz
}

func TestSubmitQuizPersistsSubmissionAndProgress(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)
	quiz := seedQuiz(t, db, []StoredQuestion{
		{Question: "first", Options: fourOptions(), CorrectIndex: intPtr(0)},
		{Question: "second", Options: fourOptions(), Answer: "B"},
	})

	submission, err := store.SubmitQuiz(5, quiz.ID, []int{0, 1})
	require.NoError(t, err)

	assert.Equal(t, 100, submission.Score)
	assert.NotEmpty(t, submission.Reference)
	assert.WithinDuration(t, time.Now().UTC(), submission.SubmittedAt, time.Minute)

	var details []ResponseDetail
	require.NoError(t, json.Unmarshal(submission.Responses, &details))
	require.Len(t, details, 2)
	assert.True(t, details[0].IsCorrect)
	assert.True(t, details[1].IsCorrect)

	// Passing submission reconciled progress in the same transaction
	var progress models.Progress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 5, quiz.CourseID).First(&progress).Error)
	assert.True(t, progress.IsCompleted)
	assert.Equal(t, 1.0, progress.PlaybackPosition)
}

func TestSubmitQuizFailingScoreSkipsProgress(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)
	quiz := seedQuiz(t, db, []StoredQuestion{
		{Question: "first", Options: fourOptions(), CorrectIndex: intPtr(0)},
		{Question: "second", Options: fourOptions(), CorrectIndex: intPtr(1)},
	})

	submission, err := store.SubmitQuiz(5, quiz.ID, []int{3, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, submission.Score)

	var count int64
	require.NoError(t, db.Model(&models.Progress{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitQuizRollsBackOnProgressFailure(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)
	quiz := seedQuiz(t, db, []StoredQuestion{
		{Question: "first", Options: fourOptions(), CorrectIndex: intPtr(0)},
	})

	// Break the progress write mid-transaction; the submission insert that
	// already succeeded must roll back with it
	require.NoError(t, db.Migrator().DropTable(&models.Progress{}))

	_, err := store.SubmitQuiz(5, quiz.ID, []int{0})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.QuizSubmission{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)

	_, err := store.SubmitQuiz(5, 999, []int{0})
	assert.ErrorIs(t, err, ErrQuizNotFound)

	var count int64
	require.NoError(t, db.Model(&models.QuizSubmission{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitQuizEmptyQuestionSet(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)
	quiz := seedQuiz(t, db, nil)

	submission, err := store.SubmitQuiz(5, quiz.ID, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, submission.Score)
}

func TestSubmitQuizRepeatedSubmissionsAccumulate(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)
	quiz := seedQuiz(t, db, []StoredQuestion{
		{Question: "first", Options: fourOptions(), CorrectIndex: intPtr(0)},
	})

	first, err := store.SubmitQuiz(5, quiz.ID, []int{3})
	require.NoError(t, err)
	second, err := store.SubmitQuiz(5, quiz.ID, []int{0})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Reference, second.Reference)

	var count int64
	require.NoError(t, db.Model(&models.QuizSubmission{}).Where("user_id = ?", 5).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// The earlier failing row is untouched by the later pass
	stored, err := store.GetSubmission(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Score)
}

func TestGetSubmissionNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)

	_, err := store.GetSubmission(42)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestListHistoryOrderAndStatus(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)
	quiz := seedQuiz(t, db, []StoredQuestion{
		{Question: "first", Options: fourOptions(), CorrectIndex: intPtr(0)},
	})

	// Insert with explicit timestamps so ordering is deterministic
	older := models.QuizSubmission{
		Reference: "ref-older", UserID: 5, QuizID: quiz.ID, Score: 40,
		SubmittedAt: time.Now().UTC().Add(-time.Hour),
	}
	newer := models.QuizSubmission{
		Reference: "ref-newer", UserID: 5, QuizID: quiz.ID, Score: 90,
		SubmittedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	history, err := store.ListHistory(5)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "ref-newer", history[0].Reference)
	assert.Equal(t, "Passed", history[0].Status)
	assert.Equal(t, "Go Fundamentals Quiz", history[0].QuizTitle)
	assert.Equal(t, "Go Fundamentals", history[0].CourseTitle)

	assert.Equal(t, "ref-older", history[1].Reference)
	assert.Equal(t, "Failed", history[1].Status)
}

func TestUserStats(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)
	quiz := seedQuiz(t, db, []StoredQuestion{
		{Question: "first", Options: fourOptions(), CorrectIndex: intPtr(0)},
	})

	for _, score := range []int{50, 75, 100} {
		require.NoError(t, db.Create(&models.QuizSubmission{
			Reference: fmt.Sprintf("stats-%d", score),
			UserID:    5, QuizID: quiz.ID, Score: score, SubmittedAt: time.Now().UTC(),
		}).Error)
	}

	stats, err := store.UserStats(5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.QuizzesTaken)
	assert.Equal(t, 75.0, stats.AverageScore)
}

func TestUserStatsNoSubmissions(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, 70)

	stats, err := store.UserStats(5)
	require.NoError(t, err)
	assert.Zero(t, stats.QuizzesTaken)
	assert.Zero(t, stats.AverageScore)
}

package utils

import (
	"log"
	"time"

	"learntrack/config"
	"learntrack/database"
	"learntrack/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REPORT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendDailyDigest aggregates the last 24 hours of quiz and completion
// activity and mails it to the admin
func sendDailyDigest() {
	db := database.Database.Db
	since := time.Now().Add(-24 * time.Hour)

	var submissions int64
	if err := db.Model(&models.QuizSubmission{}).Where("submitted_at >= ?", since).Count(&submissions).Error; err != nil {
		logScheduler("Error counting submissions: " + err.Error())
		return
	}

	var passed int64
	if err := db.Model(&models.QuizSubmission{}).
		Where("submitted_at >= ? AND score >= ?", since, config.AppConfig.QuizPassPercent).
		Count(&passed).Error; err != nil {
		logScheduler("Error counting passing submissions: " + err.Error())
		return
	}

	var completions int64
	if err := db.Model(&models.Progress{}).
		Where("is_completed = ? AND updated_at >= ?", true, since).
		Count(&completions).Error; err != nil {
		logScheduler("Error counting completions: " + err.Error())
		return
	}

	if err := SendAdminDigestEmail(submissions, passed, completions); err != nil {
		logScheduler("Error sending digest email: " + err.Error())
		return
	}

	logScheduler("Daily digest sent")
}

// StartReportScheduler runs the daily admin digest at 08:00 server time
func StartReportScheduler() {
	c := cron.New()

	_, err := c.AddFunc("0 8 * * *", sendDailyDigest)
	if err != nil {
		logScheduler("Error registering digest job: " + err.Error())
		return
	}

	c.Start()
	logScheduler("Report scheduler started")
}

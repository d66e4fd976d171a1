package repository

import "healthlog/models"

// HealthRepository defines the relational-store operations. Users and daily
// records are append-only: there are no update or delete paths.
type HealthRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	InsertDailyRecord(rec *models.DailyRecord) error
	// GetHealthHistory returns all records for one user, newest first.
	GetHealthHistory(userID string) ([]models.DailyRecord, error)
}

package repository

import (
	"database/sql"

	"healthlog/models"
)

type PostgresHealthRepo struct {
	DB *sql.DB
}

func NewPostgresHealthRepo(db *sql.DB) *PostgresHealthRepo {
	return &PostgresHealthRepo{DB: db}
}

// CreateUser inserts one user row. A duplicate id surfaces as the driver's
// unique-violation error; callers treat it as a failed creation.
func (r *PostgresHealthRepo) CreateUser(user *models.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO usuarios (id, nombre, edad, correo, rol)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Age, user.Email, user.Role)
	return err
}

// GetUserByID fetches a user by id; (nil, nil) when absent.
func (r *PostgresHealthRepo) GetUserByID(id string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, nombre, edad, correo, rol
		FROM usuarios
		WHERE id=$1
	`, id).Scan(&user.ID, &user.Name, &user.Age, &user.Email, &user.Role)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *PostgresHealthRepo) InsertDailyRecord(rec *models.DailyRecord) error {
	_, err := r.DB.Exec(`
		INSERT INTO registros_diarios
		(id_usuario, fecha, horas_sueno, estado_animo, actividad_fisica, sintomas)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.UserID, rec.Date, rec.SleepHours, rec.MoodScore, rec.Activity, rec.Symptoms)
	return err
}

func (r *PostgresHealthRepo) GetHealthHistory(userID string) ([]models.DailyRecord, error) {
	rows, err := r.DB.Query(`
		SELECT id, id_usuario, fecha, horas_sueno, estado_animo, actividad_fisica, sintomas
		FROM registros_diarios
		WHERE id_usuario=$1
		ORDER BY fecha DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.DailyRecord
	for rows.Next() {
		var rec models.DailyRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.SleepHours,
			&rec.MoodScore, &rec.Activity, &rec.Symptoms); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

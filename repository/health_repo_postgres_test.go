package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthlog/models"
)

func TestPostgresHealthRepo_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO usuarios").
		WithArgs("2", "Gabriela", 21, "2@mail.com", "usuario").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresHealthRepo(db)
	err = repo.CreateUser(&models.User{
		ID: "2", Name: "Gabriela", Age: 21, Email: "2@mail.com", Role: "usuario",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresHealthRepo_CreateUser_DuplicateID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO usuarios").
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "usuarios_pkey"`))

	repo := NewPostgresHealthRepo(db)
	err = repo.CreateUser(&models.User{ID: "2"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresHealthRepo_GetUserByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "nombre", "edad", "correo", "rol"}).
		AddRow("2", "Gabriela", 21, "2@mail.com", "usuario")
	mock.ExpectQuery("SELECT id, nombre, edad, correo, rol").
		WithArgs("2").
		WillReturnRows(rows)

	repo := NewPostgresHealthRepo(db)
	user, err := repo.GetUserByID("2")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Gabriela", user.Name)
	assert.Equal(t, "usuario", user.Role)
}

func TestPostgresHealthRepo_GetUserByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, nombre, edad, correo, rol").
		WithArgs("99").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "edad", "correo", "rol"}))

	repo := NewPostgresHealthRepo(db)
	user, err := repo.GetUserByID("99")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestPostgresHealthRepo_InsertDailyRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO registros_diarios").
		WithArgs("2", "2025-10-01", 7.5, 8, "Caminata", "Ninguno").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewPostgresHealthRepo(db)
	err = repo.InsertDailyRecord(&models.DailyRecord{
		UserID: "2", Date: "2025-10-01", SleepHours: 7.5, MoodScore: 8,
		Activity: "Caminata", Symptoms: "Ninguno",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresHealthRepo_GetHealthHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "id_usuario", "fecha", "horas_sueno", "estado_animo", "actividad_fisica", "sintomas"}).
		AddRow(2, "2", "2025-10-02", 6.0, 6, "Yoga", "Dolor de cabeza leve").
		AddRow(1, "2", "2025-10-01", 7.5, 8, "Caminata", "Ninguno")
	mock.ExpectQuery("SELECT id, id_usuario, fecha").
		WithArgs("2").
		WillReturnRows(rows)

	repo := NewPostgresHealthRepo(db)
	records, err := repo.GetHealthHistory("2")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-10-02", records[0].Date)
	assert.Equal(t, 7.5, records[1].SleepHours)
}

func TestPostgresHealthRepo_GetHealthHistory_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, id_usuario, fecha").
		WithArgs("99").
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_usuario", "fecha", "horas_sueno", "estado_animo", "actividad_fisica", "sintomas"}))

	repo := NewPostgresHealthRepo(db)
	records, err := repo.GetHealthHistory("99")

	assert.NoError(t, err)
	assert.Empty(t, records)
}

// Package setup is the first-run provisioning orchestrator. It detects a
// fresh install by the absence of the credential file, provisions the
// relational schema, bulk-loads the seed datasets into both stores, and
// regenerates the credential file from the seed users.
package setup

import (
	"database/sql"
	"fmt"

	"healthlog/config"
	"healthlog/db/postgres"
	"healthlog/logger"
	"healthlog/models"
	"healthlog/repository"
	"healthlog/seed"
)

// Demo attachment inserted at the end of document-store seeding.
var demoAttachment = models.Attachment{
	UserID:      "123",
	FilePath:    "/uploads/demo.jpg",
	Type:        "imagen",
	Description: "Archivo Demo",
	Metadata:    map[string]string{"fuente": "setup", "tamano": "1MB"},
}

// Result reports which parts of provisioning succeeded. The relational and
// document phases fail independently.
type Result struct {
	SQLReady      bool
	CredsReady    bool
	NotesInserted int
	NotesTotal    int
	MongoOK       bool
}

type Orchestrator struct {
	Cfg   *config.Config
	Creds repository.CredentialStore
	Notes repository.NotesRepository

	// openDB is a seam for tests; defaults to lib/pq.
	openDB func(dsn string) (*sql.DB, error)
}

func NewOrchestrator(cfg *config.Config, creds repository.CredentialStore, notes repository.NotesRepository) *Orchestrator {
	return &Orchestrator{
		Cfg:   cfg,
		Creds: creds,
		Notes: notes,
		openDB: func(dsn string) (*sql.DB, error) {
			return sql.Open("postgres", dsn)
		},
	}
}

// Run executes the provisioning sequence. A principal or relational failure
// aborts with an error; document-store failures are logged and reflected in
// the Result only.
func (o *Orchestrator) Run() (*Result, error) {
	res := &Result{}

	// 1. Privilege check / elevation.
	if err := o.EnsurePrincipal(); err != nil {
		return res, fmt.Errorf("database principal: %w", err)
	}

	// 2. Seed datasets; missing files already degraded to empty lists.
	data, err := seed.Load(o.Cfg.SeedDir)
	if err != nil {
		return res, fmt.Errorf("loading seed data: %w", err)
	}

	// 3-5. Relational phase: database, schema reset, bulk load, credential
	// file regeneration. Any failure aborts with no partial commit.
	if err := o.provisionRelational(data); err != nil {
		return res, err
	}
	res.SQLReady = true
	res.CredsReady = true

	// 6. Document phase: never aborts the process.
	res.NotesTotal = len(data.Notes)
	res.NotesInserted, res.MongoOK = o.SeedDocuments(data.Notes)

	return res, nil
}

func (o *Orchestrator) provisionRelational(data *seed.Data) error {
	if err := o.EnsureDatabase(); err != nil {
		return fmt.Errorf("creating database: %w", err)
	}

	dsn := postgres.DSN(o.Cfg.PGHost, o.Cfg.PGPort, o.Cfg.PGUser, o.Cfg.PGPassword, o.Cfg.PGDatabase)
	conn, err := o.openDB(dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := ResetSchema(conn); err != nil {
		return fmt.Errorf("resetting schema: %w", err)
	}
	if err := BulkLoad(conn, data.Users, data.Records); err != nil {
		return fmt.Errorf("bulk load: %w", err)
	}

	// Credential file regeneration only runs after a successful load.
	creds := make([]models.Credential, 0, len(data.Users))
	for _, u := range data.Users {
		creds = append(creds, models.Credential{UserID: u.ID, Password: u.Password})
	}
	if err := o.Creds.Rewrite(creds); err != nil {
		return fmt.Errorf("regenerating credential file: %w", err)
	}

	logger.Log.Infow("relational store provisioned",
		"users", len(data.Users), "records", len(data.Records))
	return nil
}

// ResetSchema drops and recreates both tables. This is a deliberate
// destructive reset gated on the first-run marker, not a migration.
func ResetSchema(conn *sql.DB) error {
	logger.Log.Warnw("RESET: dropping and recreating usuarios and registros_diarios")

	// Drop order is the reverse of creation because of the foreign key.
	stmts := []string{
		`DROP TABLE IF EXISTS registros_diarios`,
		`DROP TABLE IF EXISTS usuarios`,
		`CREATE TABLE usuarios (
			id VARCHAR(20) PRIMARY KEY,
			nombre VARCHAR(100),
			edad INT,
			correo VARCHAR(100),
			rol VARCHAR(20)
		)`,
		`CREATE TABLE registros_diarios (
			id SERIAL PRIMARY KEY,
			id_usuario VARCHAR(20) REFERENCES usuarios(id),
			fecha DATE,
			horas_sueno FLOAT,
			estado_animo INT,
			actividad_fisica VARCHAR(200),
			sintomas VARCHAR(200)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// BulkLoad inserts every seed user and daily record inside one transaction.
// A single bad row rolls back the whole load.
func BulkLoad(conn *sql.DB, users []models.SeedUser, records []models.DailyRecord) error {
	tx, err := conn.Begin()
	if err != nil {
		return err
	}

	for _, u := range users {
		if _, err := tx.Exec(`
			INSERT INTO usuarios (id, nombre, edad, correo, rol)
			VALUES ($1, $2, $3, $4, $5)
		`, u.ID, u.Name, u.Age, u.Email, u.Role); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	for _, rec := range records {
		if _, err := tx.Exec(`
			INSERT INTO registros_diarios
			(id_usuario, fecha, horas_sueno, estado_animo, actividad_fisica, sintomas)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, rec.UserID, rec.Date, rec.SleepHours, rec.MoodScore, rec.Activity, rec.Symptoms); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed record for %s: %w", rec.UserID, err)
		}
	}

	return tx.Commit()
}

// SeedDocuments loads every seed note through the single-note path, counting
// successes, then inserts the demo attachment. Failures are logged only.
func (o *Orchestrator) SeedDocuments(notes []models.Note) (inserted int, ok bool) {
	ok = true
	for i := range notes {
		note := notes[i]
		if err := o.Notes.InsertNote(&note); err != nil {
			logger.Log.Errorw("seeding note failed", "user", note.UserID, "error", err)
			ok = false
			continue
		}
		inserted++
	}

	att := demoAttachment
	if err := o.Notes.InsertAttachment(&att); err != nil {
		logger.Log.Errorw("seeding demo attachment failed", "error", err)
		ok = false
	}

	return inserted, ok
}

package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"healthlog/models"
)

// Default bootstrap admin written when the file is created fresh.
const (
	DefaultAdminID       = "1"
	DefaultAdminPassword = "admin123"
)

var csvHeader = []string{"id_usuario", "password"}

type CSVCredentialStore struct {
	Path string
}

func NewCSVCredentialStore(path string) *CSVCredentialStore {
	return &CSVCredentialStore{Path: path}
}

func (s *CSVCredentialStore) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	return s.Rewrite([]models.Credential{
		{UserID: DefaultAdminID, Password: DefaultAdminPassword},
	})
}

func (s *CSVCredentialStore) Register(id, password string) error {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{id, password}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *CSVCredentialStore) Verify(id, password string) (bool, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if len(row) < 2 {
			continue
		}
		if row[0] == id && row[1] == password {
			return true, nil
		}
	}
}

func (s *CSVCredentialStore) Rewrite(creds []models.Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range creds {
		if err := w.Write([]string{c.UserID, c.Password}); err != nil {
			return fmt.Errorf("writing credential for %s: %w", c.UserID, err)
		}
	}
	w.Flush()
	return w.Error()
}

// Package seed reads the static seed datasets used by first-run
// provisioning. Each file loads independently; a missing file degrades to
// an empty list with a warning instead of failing the install.
package seed

import (
	"encoding/json"
	"os"
	"path/filepath"

	"healthlog/logger"
	"healthlog/models"
)

const (
	UsersFile   = "usuarios.json"
	RecordsFile = "registros_sql.json"
	NotesFile   = "notas_mongo.json"
)

type Data struct {
	Users   []models.SeedUser
	Records []models.DailyRecord
	Notes   []models.Note
}

// Load reads the three seed datasets from dir.
func Load(dir string) (*Data, error) {
	data := &Data{}

	if err := loadFile(filepath.Join(dir, UsersFile), &data.Users); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, RecordsFile), &data.Records); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, NotesFile), &data.Notes); err != nil {
		return nil, err
	}

	return data, nil
}

func loadFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Log.Warnw("seed file missing, using empty dataset", "path", path)
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, out)
}

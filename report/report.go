// Package report builds the per-user JSON health report: an all-time mean
// over sleep hours and mood score plus the full record detail.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"healthlog/models"
	"healthlog/repository"
)

// ErrNoData means the user has no daily records; no file is produced.
var ErrNoData = errors.New("no hay suficientes datos para generar reporte")

type Generator struct {
	Repo repository.HealthRepository
	Dir  string

	// now is a test seam for the generation timestamp.
	now func() time.Time
}

func NewGenerator(repo repository.HealthRepository, dir string) *Generator {
	return &Generator{Repo: repo, Dir: dir, now: time.Now}
}

// Generate writes a timestamped report file for one user and returns its
// path.
func (g *Generator) Generate(userID string) (string, error) {
	records, err := g.Repo.GetHealthHistory(userID)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", ErrNoData
	}

	rep := Build(userID, records, g.now())

	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("reporte_%s_%s.json", userID, g.now().Format("20060102_150405"))
	path := filepath.Join(g.Dir, name)

	raw, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Build computes the summary over the whole history. Averages are rounded to
// two decimals and are zero when there are no records.
func Build(userID string, records []models.DailyRecord, generatedAt time.Time) *models.Report {
	var totalSleep float64
	var totalMood int
	for _, rec := range records {
		totalSleep += rec.SleepHours
		totalMood += rec.MoodScore
	}

	var avgSleep, avgMood float64
	if n := len(records); n > 0 {
		avgSleep = round2(totalSleep / float64(n))
		avgMood = round2(float64(totalMood) / float64(n))
	}

	return &models.Report{
		UserID:      userID,
		GeneratedAt: generatedAt.Format("2006-01-02 15:04:05"),
		Summary: models.ReportSummary{
			TotalDays:    len(records),
			AvgSleep:     avgSleep,
			AvgMoodScore: avgMood,
		},
		History: records,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

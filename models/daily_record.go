package models

type DailyRecord struct {
	ID         int64   `json:"id" db:"id"`
	UserID     string  `json:"id_usuario" db:"id_usuario"`
	Date       string  `json:"fecha" db:"fecha"`
	SleepHours float64 `json:"horas_sueno" db:"horas_sueno"`
	MoodScore  int     `json:"estado_animo" db:"estado_animo"`
	Activity   string  `json:"actividad_fisica" db:"actividad_fisica"`
	Symptoms   string  `json:"sintomas" db:"sintomas"`
}

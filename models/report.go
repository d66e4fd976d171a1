package models

type ReportSummary struct {
	TotalDays    int     `json:"total_dias_registrados"`
	AvgSleep     float64 `json:"promedio_horas_sueno"`
	AvgMoodScore float64 `json:"promedio_estado_animo"`
}

type Report struct {
	UserID      string        `json:"usuario"`
	GeneratedAt string        `json:"fecha_generacion"`
	Summary     ReportSummary `json:"resumen_estadistico"`
	History     []DailyRecord `json:"historial_detalle"`
}

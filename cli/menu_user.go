package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"healthlog/models"
	"healthlog/report"
	"healthlog/utils"
)

// UserMenu is the standard-user loop: daily records in SQL, notes and
// attachment metadata in Mongo, plus the hybrid history view and the report.
func (s *Session) UserMenu(user *models.User) {
	for {
		ClearScreen()
		fmt.Printf("\n--- BIENVENIDO %s ---\n", user.Name)
		fmt.Println("1. Registrar día (Salud)")
		fmt.Println("2. Nueva Nota Personal / Foto (Mongo)")
		fmt.Println("3. Ver mi Historial")
		fmt.Println("4. Generar Reporte y Análisis")
		fmt.Println("5. Salir")

		op, err := Prompt(s.Reader, "Seleccione: ")
		if err != nil {
			return
		}

		switch op {
		case "1":
			s.recordDay(user.ID)
		case "2":
			s.newNote(user.ID)
		case "3":
			s.showHistory(user.ID)
		case "4":
			s.generateReport(user.ID)
		case "5":
			return
		}
	}
}

func (s *Session) recordDay(userID string) {
	date, _ := Prompt(s.Reader, "Fecha (YYYY-MM-DD): ")
	if !utils.ValidDate(date) {
		fmt.Println("Fecha inválida")
		time.Sleep(time.Second)
		return
	}

	sleepStr, _ := PromptDefault(s.Reader, "Horas sueño: ", "0")
	moodStr, _ := PromptDefault(s.Reader, "Ánimo (1-10): ", "5")
	activity, _ := Prompt(s.Reader, "Actividad física: ")
	symptoms, _ := Prompt(s.Reader, "Síntomas: ")

	if !utils.ValidNumber(sleepStr, 0, -1) || !utils.ValidNumber(moodStr, 1, 10) {
		fmt.Println("Valor numérico inválido")
		time.Sleep(time.Second)
		return
	}
	sleep, _ := strconv.ParseFloat(sleepStr, 64)
	mood, _ := strconv.Atoi(moodStr)

	rec := &models.DailyRecord{
		UserID:     userID,
		Date:       date,
		SleepHours: sleep,
		MoodScore:  mood,
		Activity:   activity,
		Symptoms:   symptoms,
	}
	if err := s.Health.InsertDailyRecord(rec); err != nil {
		fmt.Printf("Error SQL al insertar registro diario: %v\n", err)
		time.Sleep(2 * time.Second)
		return
	}
	fmt.Println("Registro guardado en SQL.")
	time.Sleep(1500 * time.Millisecond)
}

func (s *Session) newNote(userID string) {
	text, _ := Prompt(s.Reader, "Escribe tu nota del día: ")
	tagsLine, _ := Prompt(s.Reader, "Etiquetas (sep. por coma): ")

	tags := strings.Split(tagsLine, ",")
	for i := range tags {
		tags[i] = strings.TrimSpace(tags[i])
	}

	note := &models.Note{
		UserID:    userID,
		Text:      text,
		Tags:      tags,
		MoodScore: 5,
	}
	if err := s.Notes.InsertNote(note); err != nil {
		fmt.Printf("Error Mongo al insertar nota: %v\n", err)
	} else {
		fmt.Println("Nota guardada en MongoDB.")
	}

	attach, _ := Prompt(s.Reader, "¿Adjuntar foto? (s/n): ")
	if strings.EqualFold(attach, "s") {
		path, _ := Prompt(s.Reader, "Ruta del archivo (ej: foto.jpg): ")
		att := &models.Attachment{
			UserID:      userID,
			FilePath:    path,
			Type:        "imagen",
			Description: "Foto adjunta",
		}
		if err := s.Notes.InsertAttachment(att); err != nil {
			fmt.Printf("Error Mongo al insertar archivo: %v\n", err)
		} else {
			fmt.Println("Metadatos de archivo guardados.")
		}
	}
	time.Sleep(1500 * time.Millisecond)
}

func (s *Session) showHistory(userID string) {
	records, err := s.Health.GetHealthHistory(userID)
	if err != nil {
		fmt.Printf("Error SQL al obtener historial: %v\n", err)
	}
	notes, err := s.Notes.GetNotes(userID)
	if err != nil {
		fmt.Printf("Error leyendo notas: %v\n", err)
	}

	sep := strings.Repeat("-", 30)
	fmt.Println("\n" + sep)
	fmt.Println("   TUS REGISTROS SQL")
	fmt.Println(sep)
	for _, h := range records {
		fmt.Printf("Fecha: %s | Ánimo: %d | Síntomas: %s\n", h.Date, h.MoodScore, h.Symptoms)
	}

	fmt.Println("\n" + sep)
	fmt.Println("   TUS NOTAS MONGO")
	fmt.Println(sep)
	for _, n := range notes {
		fmt.Printf("%s: %s\n", n.Date, n.Text)
	}

	s.pause("\nPresione Enter para volver...")
}

func (s *Session) generateReport(userID string) {
	path, err := s.Reports.Generate(userID)
	switch {
	case errors.Is(err, report.ErrNoData):
		fmt.Println(err)
	case err != nil:
		fmt.Printf("Error generando reporte: %v\n", err)
	default:
		fmt.Printf("Reporte generado exitosamente: %s\n", path)
	}
	s.pause("Presione Enter para volver...")
}

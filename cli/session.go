// Package cli holds the interactive menus: login loop, admin menu and
// standard-user menu. It only glues prompts to the stores; all persistence
// lives behind the repository interfaces.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"healthlog/auth"
	"healthlog/models"
	"healthlog/report"
	"healthlog/repository"
)

type Session struct {
	Reader  *bufio.Reader
	Auth    *auth.Service
	Health  repository.HealthRepository
	Notes   repository.NotesRepository
	Creds   repository.CredentialStore
	Reports *report.Generator
}

func NewSession(authSvc *auth.Service, health repository.HealthRepository,
	notes repository.NotesRepository, creds repository.CredentialStore,
	reports *report.Generator) *Session {
	return &Session{
		Reader:  bufio.NewReader(os.Stdin),
		Auth:    authSvc,
		Health:  health,
		Notes:   notes,
		Creds:   creds,
		Reports: reports,
	}
}

// Run is the top-level login loop.
func (s *Session) Run() error {
	for {
		ClearScreen()
		fmt.Println("=== SISTEMA DE BITÁCORA DE SALUD - BIOINGENIERÍA ===")
		fmt.Println("1. Iniciar Sesión")
		fmt.Println("2. Salir")

		op, err := Prompt(s.Reader, "Opción: ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			s.login()
		case "2":
			fmt.Println("Saliendo...")
			return nil
		}
	}
}

func (s *Session) login() {
	id, err := Prompt(s.Reader, "Usuario (ID): ")
	if err != nil {
		return
	}
	pwd, err := PromptPassword("Contraseña: ")
	if err != nil {
		return
	}

	user, err := s.Auth.Login(id, pwd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		time.Sleep(2 * time.Second)
		return
	}

	if user.Role == models.RoleAdmin {
		s.AdminMenu()
	} else {
		s.UserMenu(user)
	}
}

func (s *Session) pause(msg string) {
	fmt.Print(msg)
	s.Reader.ReadString('\n')
}

package cli

import (
	"fmt"
	"strconv"
	"time"

	"healthlog/models"
	"healthlog/utils"
)

// AdminMenu manages relational users. New users get a generated mail address
// and their credential appended to the CSV.
func (s *Session) AdminMenu() {
	for {
		ClearScreen()
		fmt.Println("\n--- MENÚ ADMINISTRADOR ---")
		fmt.Println("1. Crear Nuevo Usuario")
		fmt.Println("2. Ver Usuarios (SQL)")
		fmt.Println("3. Salir")

		op, err := Prompt(s.Reader, "Seleccione: ")
		if err != nil {
			return
		}

		switch op {
		case "1":
			s.createUser()
		case "2":
			fmt.Println("Funcionalidad pendiente de visualización masiva.")
			s.pause("Enter para volver...")
		case "3":
			return
		}
	}
}

func (s *Session) createUser() {
	id, _ := Prompt(s.Reader, "ID: ")
	name, _ := Prompt(s.Reader, "Nombre: ")
	ageStr, _ := Prompt(s.Reader, "Edad: ")
	role, _ := Prompt(s.Reader, "Rol (admin/usuario): ")
	pwd, err := PromptPassword("Contraseña: ")
	if err != nil {
		return
	}

	if !utils.ValidNumber(ageStr, 0, -1) {
		fmt.Println("Edad inválida")
		time.Sleep(time.Second)
		return
	}
	age, _ := strconv.Atoi(ageStr)

	user := &models.User{
		ID:    id,
		Name:  name,
		Age:   age,
		Email: fmt.Sprintf("%s@mail.com", id),
		Role:  role,
	}
	if err := s.Health.CreateUser(user); err != nil {
		fmt.Printf("Error SQL al crear usuario: %v\n", err)
		time.Sleep(2 * time.Second)
		return
	}
	if err := s.Creds.Register(id, pwd); err != nil {
		fmt.Printf("Error al registrar credencial: %v\n", err)
		time.Sleep(2 * time.Second)
		return
	}

	fmt.Println("Usuario creado exitosamente.")
	time.Sleep(1500 * time.Millisecond)
}

package models

// Roles stored in the usuarios table.
const (
	RoleAdmin    = "admin"
	RoleStandard = "usuario"
)

type User struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"nombre" db:"nombre"`
	Age   int    `json:"edad" db:"edad"`
	Email string `json:"correo" db:"correo"`
	Role  string `json:"rol" db:"rol"`
}

// SeedUser is a user row as it appears in the seed file: the relational
// fields plus the plaintext password that goes to the credential file.
type SeedUser struct {
	User
	Password string `json:"password"`
}

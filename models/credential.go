package models

// Credential is one row of the passwords CSV. Passwords are kept in clear
// text; the file is a readable projection of the seed data, not a vault.
type Credential struct {
	UserID   string
	Password string
}

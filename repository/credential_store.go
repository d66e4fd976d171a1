package repository

import "healthlog/models"

// CredentialStore is the flat credential file. It is a denormalized
// projection of the seeded user set plus a fixed bootstrap admin row;
// nothing reconciles it against the relational store after provisioning.
type CredentialStore interface {
	// Initialize ensures the file exists with its header, seeding the
	// default admin credential when creating it fresh.
	Initialize() error
	// Register appends one row; duplicate ids are allowed, first match
	// wins on Verify.
	Register(id, password string) error
	// Verify scans every row for an exact (id, password) match.
	Verify(id, password string) (bool, error)
	// Rewrite replaces the whole file with the header plus one row per
	// credential. Used by provisioning to regenerate from seed users.
	Rewrite(creds []models.Credential) error
}

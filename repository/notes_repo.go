package repository

import "healthlog/models"

// NotesRepository defines the document-store operations. Documents are keyed
// by the same user ids as the relational store but are never validated
// against it; that inconsistency is a documented property of the system.
type NotesRepository interface {
	InsertNote(note *models.Note) error
	InsertAttachment(att *models.Attachment) error
	GetNotes(userID string) ([]models.Note, error)
}

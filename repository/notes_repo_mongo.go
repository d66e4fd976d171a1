package repository

import (
	"context"

	"healthlog/models"
	"healthlog/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	notesCollection       = "notas_personales"
	attachmentsCollection = "archivos_adjuntos"
)

type MongoNotesRepo struct {
	DB *mongo.Database
}

func NewMongoNotesRepo(db *mongo.Database) *MongoNotesRepo {
	return &MongoNotesRepo{DB: db}
}

// InsertNote stores one personal note, stamping today's date and the default
// location when the note does not carry its own.
func (r *MongoNotesRepo) InsertNote(note *models.Note) error {
	ctx := context.Background()
	if note.Date == "" {
		note.Date = utils.Today()
	}
	if note.Location == "" {
		note.Location = models.DefaultNoteLocation
	}

	_, err := r.DB.Collection(notesCollection).InsertOne(ctx, note)
	return err
}

func (r *MongoNotesRepo) InsertAttachment(att *models.Attachment) error {
	ctx := context.Background()
	if att.Date == "" {
		att.Date = utils.Today()
	}
	if att.Metadata == nil {
		att.Metadata = map[string]string{}
	}

	_, err := r.DB.Collection(attachmentsCollection).InsertOne(ctx, att)
	return err
}

func (r *MongoNotesRepo) GetNotes(userID string) ([]models.Note, error) {
	ctx := context.Background()

	cur, err := r.DB.Collection(notesCollection).Find(ctx, bson.M{"id_usuario": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var notes []models.Note
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

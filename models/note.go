package models

// DefaultNoteLocation is stamped on notes that do not carry their own location.
const DefaultNoteLocation = "Medellín"

type Note struct {
	UserID    string   `json:"id_usuario" bson:"id_usuario"`
	Date      string   `json:"fecha" bson:"fecha"`
	Text      string   `json:"texto" bson:"texto"`
	Tags      []string `json:"etiquetas" bson:"etiquetas"`
	MoodScore int      `json:"estado_animo" bson:"estado_animo"`
	Location  string   `json:"ubicacion" bson:"ubicacion"`
}

type Attachment struct {
	UserID      string            `json:"id_usuario" bson:"id_usuario"`
	Date        string            `json:"fecha" bson:"fecha"`
	FilePath    string            `json:"ruta_archivo" bson:"ruta_archivo"`
	Type        string            `json:"tipo" bson:"tipo"`
	Description string            `json:"descripcion" bson:"descripcion"`
	Metadata    map[string]string `json:"metadatos" bson:"metadatos"`
}

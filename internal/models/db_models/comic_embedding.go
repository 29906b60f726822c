package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// ComicEmbedding stores an embedding of a comic's descriptive text for
// similarity search over the catalog.
type ComicEmbedding struct {
	BaseModel
	ComicID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`

	Comic Comic `gorm:"foreignKey:ComicID"`
}

package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TipoCandidatura = "CANDIDATURA_RECEBIDA"
	TipoModeracao   = "ANUNCIO_MODERADO"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo      string    `gorm:"type:varchar(40);not null"`
	Titulo    string    `gorm:"type:varchar(200);not null"`
	Mensagem  string    `gorm:"type:text;not null"`
	Lida      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

package content

import (
	"time"

	"github.com/google/uuid"
)

type Advertisement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Titulo    string    `gorm:"type:varchar(200);not null"`
	ImagemUrl string    `gorm:"type:varchar(500);not null"`
	LinkUrl   string    `gorm:"type:varchar(500)"`
	Posicao   string    `gorm:"type:varchar(40)"`
	Ativo     bool      `gorm:"not null;default:true"`
	Ordem     int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewsArticle carries the single-headline invariant: at most one row with
// destaque_principal = true at any time.
type NewsArticle struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Titulo            string    `gorm:"type:varchar(200);not null"`
	Conteudo          string    `gorm:"type:text;not null"`
	ImagemUrl         string    `gorm:"type:varchar(500)"`
	DestaquePrincipal bool      `gorm:"not null;default:false"`
	Ativo             bool      `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type SiteSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Chave     string    `gorm:"type:varchar(100);uniqueIndex:uq_site_setting_chave;not null"`
	Valor     string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

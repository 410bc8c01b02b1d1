package rental

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabrieldacena/emprega-sapezal/internal/moderation"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

type Status string

const (
	StatusPendenteAprovacao Status = "PENDENTE_APROVACAO"
	StatusAtivo             Status = "ATIVO"
	StatusInativo           Status = "INATIVO"
	StatusReprovado         Status = "REPROVADO"
	StatusOculto            Status = "OCULTO"
)

var ModerationTable = moderation.Table{
	Pending:  string(StatusPendenteAprovacao),
	Active:   string(StatusAtivo),
	Inactive: string(StatusInativo),
	Rejected: string(StatusReprovado),
	Hidden:   string(StatusOculto),
}

const (
	TipoCasa          = "CASA"
	TipoApartamento   = "APARTAMENTO"
	TipoSalaComercial = "SALA_COMERCIAL"
	TipoKitnet        = "KITNET"
	TipoTerreno       = "TERRENO"
	TipoChacara       = "CHACARA"
	TipoOutro         = "OUTRO"
)

type Rental struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Titulo       string    `gorm:"type:varchar(200);not null"`
	TipoImovel   string    `gorm:"type:varchar(30);not null"`
	ValorAluguel float64   `gorm:"type:numeric(12,2);not null"`
	Cidade       string    `gorm:"type:varchar(100);not null"`
	Estado       string    `gorm:"type:varchar(2);not null"`
	Descricao    string    `gorm:"type:text;not null"`
	Status       Status    `gorm:"type:varchar(30);not null;default:PENDENTE_APROVACAO;index"`
	Destaque     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Company *user.CompanyProfile `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Imagens []RentalImage        `gorm:"foreignKey:RentalID;constraint:OnDelete:CASCADE"`
}

// RentalImage rows are exclusively owned by the rental and replaced as a set.
type RentalImage struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RentalID uuid.UUID `gorm:"type:uuid;not null;index"`
	Url      string    `gorm:"type:text;not null"`
	Ordem    int       `gorm:"not null;default:0"`
}

// ContactMessage is an anonymous inbound message, optionally tied to a rental.
type ContactMessage struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RentalID  *uuid.UUID `gorm:"type:uuid;index"`
	Nome      string     `gorm:"type:varchar(120);not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Telefone  string     `gorm:"type:varchar(30)"`
	Mensagem  string     `gorm:"type:text;not null"`
	CreatedAt time.Time

	Rental *Rental `gorm:"foreignKey:RentalID;constraint:OnDelete:SET NULL"`
}

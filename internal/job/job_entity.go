package job

import (
	"time"

	"github.com/gabrieldacena/emprega-sapezal/internal/moderation"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPendenteAprovacao Status = "PENDENTE_APROVACAO"
	StatusAtiva             Status = "ATIVA"
	StatusInativa           Status = "INATIVA"
	StatusReprovada         Status = "REPROVADA"
	StatusOculta            Status = "OCULTA"
)

// ModerationTable binds the shared moderation machine to the job status
// vocabulary.
var ModerationTable = moderation.Table{
	Pending:  string(StatusPendenteAprovacao),
	Active:   string(StatusAtiva),
	Inactive: string(StatusInativa),
	Rejected: string(StatusReprovada),
	Hidden:   string(StatusOculta),
}

type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Titulo         string    `gorm:"type:varchar(200);not null"`
	Descricao      string    `gorm:"type:text;not null"`
	Requisitos     string    `gorm:"type:text"`
	Beneficios     string    `gorm:"type:text"`
	TipoContrato   string    `gorm:"type:varchar(20);not null"`
	FaixaSalarial  string    `gorm:"type:varchar(100)"`
	ModeloTrabalho string    `gorm:"type:varchar(20);not null"`
	Cidade         string    `gorm:"type:varchar(100);not null"`
	Estado         string    `gorm:"type:varchar(2);not null"`
	Status         Status    `gorm:"type:varchar(30);not null;default:'PENDENTE_APROVACAO';index"`
	Destaque       bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Company *user.CompanyProfile `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

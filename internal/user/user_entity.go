package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCandidato Role = "CANDIDATO"
	RoleEmpresa   Role = "EMPRESA"
	RoleAdmin     Role = "ADMIN"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uq_user_email;not null"`
	SenhaHash string    `gorm:"type:varchar(255);not null"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'CANDIDATO'"`
	Ativo     bool      `gorm:"not null;default:true"`
	Cidade    string    `gorm:"type:varchar(100)"`
	Estado    string    `gorm:"type:varchar(2)"`
	Telefone  string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	CandidateProfile *CandidateProfile `gorm:"constraint:OnDelete:CASCADE"`
	CompanyProfile   *CompanyProfile   `gorm:"constraint:OnDelete:CASCADE"`
}

type CandidateProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ResumoProfissional string    `gorm:"type:text"`
	LinkCurriculo      string    `gorm:"type:varchar(500)"`
	LinkLinkedin       string    `gorm:"type:varchar(500)"`
	AreaInteresse      string    `gorm:"type:varchar(100)"`
	ExperienciaAnos    int
	CreatedAt          time.Time
	UpdatedAt          time.Time

	User *User `gorm:"foreignKey:UserID"`
}

type CompanyProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	NomeEmpresa string    `gorm:"type:varchar(200);not null"`
	Cnpj        string    `gorm:"type:varchar(20)"`
	AreaAtuacao string    `gorm:"type:varchar(100)"`
	Descricao   string    `gorm:"type:text"`
	Site        string    `gorm:"type:varchar(500)"`
	LogoUrl     string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

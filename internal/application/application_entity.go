package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabrieldacena/emprega-sapezal/internal/job"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

type Status string

const (
	StatusEnviado   Status = "ENVIADO"
	StatusEmAnalise Status = "EM_ANALISE"
	StatusAprovado  Status = "APROVADO"
	StatusReprovado Status = "REPROVADO"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusEnviado, StatusEmAnalise, StatusAprovado, StatusReprovado:
		return true
	}
	return false
}

// Application links a candidate to a job, at most once per pair.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_application_job_candidate"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_application_job_candidate"`
	Mensagem    string    `gorm:"type:text"`
	Status      Status    `gorm:"type:varchar(20);not null;default:ENVIADO"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Job       *job.Job               `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Candidate *user.CandidateProfile `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
}

func (Application) TableName() string {
	return "applications"
}

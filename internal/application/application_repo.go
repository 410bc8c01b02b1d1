package application

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabrieldacena/emprega-sapezal/internal/messaging/kafka"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, a *Application, event *kafka.OutboxEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*Application, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the application and, when given, its outbox event in one
// transaction. The unique index on (job_id, candidate_id) is the duplicate
// guard under concurrent applies.
func (r *repository) Create(ctx context.Context, a *Application, event *kafka.OutboxEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		if event == nil {
			return nil
		}
		event.AggregateID = a.ID.String()
		return kafka.InsertTx(tx, *event)
	})
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error) {
	var items []Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error) {
	var items []Application
	err := r.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Candidate.User").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return r.db.WithContext(ctx).Model(&Application{}).Where("id = ?", id).Update("status", status).Error
}

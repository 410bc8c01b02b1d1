package admin

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabrieldacena/emprega-sapezal/internal/application"
	"github.com/gabrieldacena/emprega-sapezal/internal/job"
	"github.com/gabrieldacena/emprega-sapezal/internal/messaging/kafka"
	"github.com/gabrieldacena/emprega-sapezal/internal/moderation"
	"github.com/gabrieldacena/emprega-sapezal/internal/rental"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock

type Repository interface {
	ListUsers(ctx context.Context, f UserFilters) ([]user.User, int64, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	SetUserAtivo(ctx context.Context, id uuid.UUID, ativo bool) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	ListJobs(ctx context.Context, f ListingFilters) ([]job.Job, int64, error)
	ListRentals(ctx context.Context, f ListingFilters) ([]rental.Rental, int64, error)
	ModerateJob(ctx context.Context, id uuid.UUID, change moderation.Change, event kafka.OutboxEvent) error
	ModerateRental(ctx context.Context, id uuid.UUID, change moderation.Change, event kafka.OutboxEvent) error

	ListApplications(ctx context.Context, f PageFilters) ([]application.Application, int64, error)

	ListMessages(ctx context.Context, f PageFilters) ([]rental.ContactMessage, int64, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListUsers(ctx context.Context, f UserFilters) ([]user.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&user.User{})
	if f.Tipo != "" {
		q = q.Where("role = ?", f.Tipo)
	}
	if f.Busca != "" {
		like := "%" + f.Busca + "%"
		q = q.Where("nome ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []user.User
	err := q.Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *repository) FindUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) SetUserAtivo(ctx context.Context, id uuid.UUID, ativo bool) error {
	return r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", id).
		Update("ativo", ativo).Error
}

func (r *repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&user.User{}, "id = ?", id).Error
}

func (r *repository) ListJobs(ctx context.Context, f ListingFilters) ([]job.Job, int64, error) {
	q := r.db.WithContext(ctx).Model(&job.Job{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Busca != "" {
		q = q.Where("titulo ILIKE ?", "%"+f.Busca+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []job.Job
	err := q.Preload("Company").
		Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *repository) ListRentals(ctx context.Context, f ListingFilters) ([]rental.Rental, int64, error) {
	q := r.db.WithContext(ctx).Model(&rental.Rental{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Busca != "" {
		q = q.Where("titulo ILIKE ?", "%"+f.Busca+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rentals []rental.Rental
	err := q.Preload("Company").
		Preload("Imagens", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordem ASC")
		}).
		Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&rentals).Error
	if err != nil {
		return nil, 0, err
	}
	return rentals, total, nil
}

// moderate applies a status or destaque write and enqueues the outbox event in
// the same transaction so notification delivery never races the update.
func (r *repository) moderate(ctx context.Context, model any, id uuid.UUID, change moderation.Change, event kafka.OutboxEvent) error {
	updates := map[string]any{}
	if change.Status != nil {
		updates["status"] = *change.Status
	}
	if change.Featured != nil {
		updates["destaque"] = *change.Featured
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(model).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return kafka.InsertTx(tx, event)
	})
}

func (r *repository) ModerateJob(ctx context.Context, id uuid.UUID, change moderation.Change, event kafka.OutboxEvent) error {
	return r.moderate(ctx, &job.Job{}, id, change, event)
}

func (r *repository) ModerateRental(ctx context.Context, id uuid.UUID, change moderation.Change, event kafka.OutboxEvent) error {
	return r.moderate(ctx, &rental.Rental{}, id, change, event)
}

func (r *repository) ListApplications(ctx context.Context, f PageFilters) ([]application.Application, int64, error) {
	q := r.db.WithContext(ctx).Model(&application.Application{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []application.Application
	err := q.Preload("Job").
		Preload("Candidate").
		Preload("Candidate.User").
		Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *repository) ListMessages(ctx context.Context, f PageFilters) ([]rental.ContactMessage, int64, error) {
	q := r.db.WithContext(ctx).Model(&rental.ContactMessage{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []rental.ContactMessage
	err := q.Preload("Rental").
		Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *repository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&rental.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

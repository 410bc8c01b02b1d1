package job

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*Job, error)
	ListPublic(ctx context.Context, f PublicFilters) ([]Job, int64, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Job, error)
	Update(ctx context.Context, j *Job) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetDestaque(ctx context.Context, id uuid.UUID, destaque bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	ApplicationCounts(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).Preload("Company").First(&j, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) ListPublic(ctx context.Context, f PublicFilters) ([]Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&Job{}).Where("status = ?", StatusAtiva)

	if f.Cidade != "" {
		query = query.Where("cidade ILIKE ?", "%"+f.Cidade+"%")
	}
	if f.Estado != "" {
		query = query.Where("estado = ?", f.Estado)
	}
	if f.ModeloTrabalho != "" {
		query = query.Where("modelo_trabalho = ?", f.ModeloTrabalho)
	}
	if f.TipoContrato != "" {
		query = query.Where("tipo_contrato = ?", f.TipoContrato)
	}
	if f.Busca != "" {
		term := "%" + f.Busca + "%"
		query = query.Where("titulo ILIKE ? OR descricao ILIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []Job
	err := query.
		Preload("Company").
		Order("destaque DESC, created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *repository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Omit("Company").Save(j).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return r.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repository) SetDestaque(ctx context.Context, id uuid.UUID, destaque bool) error {
	return r.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).Update("destaque", destaque).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Job{}, "id = ?", id).Error
}

func (r *repository) ApplicationCounts(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(jobIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}
	type row struct {
		JobID uuid.UUID
		Total int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("job_id, COUNT(*) AS total").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.JobID] = r.Total
	}
	return counts, nil
}

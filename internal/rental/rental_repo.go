package rental

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rental_repo.go -destination=mock/rental_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, r *Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*Rental, error)
	ListPublic(ctx context.Context, f PublicFilters) ([]Rental, int64, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Rental, error)
	Update(ctx context.Context, r *Rental) error
	ReplaceImages(ctx context.Context, rentalID uuid.UUID, urls []string) ([]RentalImage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetDestaque(ctx context.Context, id uuid.UUID, destaque bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreateContactMessage(ctx context.Context, m *ContactMessage) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rental *Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Rental, error) {
	var rental Rental
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Imagens", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordem ASC")
		}).
		First(&rental, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *repository) ListPublic(ctx context.Context, f PublicFilters) ([]Rental, int64, error) {
	query := r.db.WithContext(ctx).Model(&Rental{}).Where("status = ?", StatusAtivo)

	if f.Cidade != "" {
		query = query.Where("cidade ILIKE ?", "%"+f.Cidade+"%")
	}
	if f.Estado != "" {
		query = query.Where("estado = ?", f.Estado)
	}
	if f.TipoImovel != "" {
		query = query.Where("tipo_imovel = ?", f.TipoImovel)
	}
	if f.ValorMin != nil {
		query = query.Where("valor_aluguel >= ?", *f.ValorMin)
	}
	if f.ValorMax != nil {
		query = query.Where("valor_aluguel <= ?", *f.ValorMax)
	}
	if f.Busca != "" {
		term := "%" + f.Busca + "%"
		query = query.Where("titulo ILIKE ? OR descricao ILIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rentals []Rental
	err := query.
		Preload("Company").
		Preload("Imagens", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordem ASC")
		}).
		Order("destaque DESC, created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&rentals).Error
	if err != nil {
		return nil, 0, err
	}
	return rentals, total, nil
}

func (r *repository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Rental, error) {
	var rentals []Rental
	err := r.db.WithContext(ctx).
		Preload("Imagens", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordem ASC")
		}).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *repository) Update(ctx context.Context, rental *Rental) error {
	return r.db.WithContext(ctx).Omit("Company", "Imagens").Save(rental).Error
}

// ReplaceImages swaps the whole image set in one transaction: delete all rows,
// insert the new ordered list.
func (r *repository) ReplaceImages(ctx context.Context, rentalID uuid.UUID, urls []string) ([]RentalImage, error) {
	images := make([]RentalImage, len(urls))
	for i, url := range urls {
		images[i] = RentalImage{RentalID: rentalID, Url: url, Ordem: i}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rental_id = ?", rentalID).Delete(&RentalImage{}).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		return tx.Create(&images).Error
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return r.db.WithContext(ctx).Model(&Rental{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repository) SetDestaque(ctx context.Context, id uuid.UUID, destaque bool) error {
	return r.db.WithContext(ctx).Model(&Rental{}).Where("id = ?", id).Update("destaque", destaque).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Rental{}, "id = ?", id).Error
}

func (r *repository) CreateContactMessage(ctx context.Context, m *ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

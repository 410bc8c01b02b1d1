package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=content_repo.go -destination=mock/content_repo_mock.go -package=mock

type Repository interface {
	ListActiveAds(ctx context.Context) ([]Advertisement, error)
	ListAllAds(ctx context.Context) ([]Advertisement, error)
	FindAdByID(ctx context.Context, id uuid.UUID) (*Advertisement, error)
	CreateAd(ctx context.Context, a *Advertisement) error
	UpdateAd(ctx context.Context, a *Advertisement) error
	DeleteAd(ctx context.Context, id uuid.UUID) error

	ListActiveNews(ctx context.Context, limit int) ([]NewsArticle, error)
	ListAllNews(ctx context.Context) ([]NewsArticle, error)
	FindNewsByID(ctx context.Context, id uuid.UUID) (*NewsArticle, error)
	FindHeadline(ctx context.Context) (*NewsArticle, error)
	CreateNews(ctx context.Context, n *NewsArticle) error
	UpdateNews(ctx context.Context, n *NewsArticle) error
	DeleteNews(ctx context.Context, id uuid.UUID) error
	SetHeadline(ctx context.Context, id uuid.UUID) (*NewsArticle, error)

	ListSettings(ctx context.Context) ([]SiteSetting, error)
	FindSetting(ctx context.Context, chave string) (*SiteSetting, error)
	UpsertSetting(ctx context.Context, chave, valor string) (*SiteSetting, error)
	DeleteSetting(ctx context.Context, chave string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActiveAds(ctx context.Context) ([]Advertisement, error) {
	var ads []Advertisement
	err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("ordem ASC, created_at DESC").
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *repository) ListAllAds(ctx context.Context) ([]Advertisement, error) {
	var ads []Advertisement
	err := r.db.WithContext(ctx).Order("ordem ASC, created_at DESC").Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *repository) FindAdByID(ctx context.Context, id uuid.UUID) (*Advertisement, error) {
	var a Advertisement
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) CreateAd(ctx context.Context, a *Advertisement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) UpdateAd(ctx context.Context, a *Advertisement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) DeleteAd(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Advertisement{}, "id = ?", id).Error
}

func (r *repository) ListActiveNews(ctx context.Context, limit int) ([]NewsArticle, error) {
	var items []NewsArticle
	err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListAllNews(ctx context.Context) ([]NewsArticle, error) {
	var items []NewsArticle
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindNewsByID(ctx context.Context, id uuid.UUID) (*NewsArticle, error) {
	var n NewsArticle
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) FindHeadline(ctx context.Context) (*NewsArticle, error) {
	var n NewsArticle
	err := r.db.WithContext(ctx).
		Where("ativo = ? AND destaque_principal = ?", true, true).
		Order("updated_at DESC").
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) CreateNews(ctx context.Context, n *NewsArticle) error {
	if !n.DestaquePrincipal {
		return r.db.WithContext(ctx).Create(n).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearHeadline(tx); err != nil {
			return err
		}
		return tx.Create(n).Error
	})
}

func (r *repository) UpdateNews(ctx context.Context, n *NewsArticle) error {
	if !n.DestaquePrincipal {
		return r.db.WithContext(ctx).Save(n).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&NewsArticle{}).
			Where("destaque_principal = ? AND id <> ?", true, n.ID).
			Update("destaque_principal", false).Error; err != nil {
			return err
		}
		return tx.Save(n).Error
	})
}

func (r *repository) DeleteNews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&NewsArticle{}, "id = ?", id).Error
}

// SetHeadline clears the previous headline and promotes the article in one
// transaction, so the single-headline invariant holds at every commit point.
func (r *repository) SetHeadline(ctx context.Context, id uuid.UUID) (*NewsArticle, error) {
	var n NewsArticle
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&n, "id = ?", id).Error; err != nil {
			return err
		}
		if err := clearHeadline(tx); err != nil {
			return err
		}
		n.DestaquePrincipal = true
		return tx.Save(&n).Error
	})
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func clearHeadline(tx *gorm.DB) error {
	return tx.Model(&NewsArticle{}).
		Where("destaque_principal = ?", true).
		Update("destaque_principal", false).Error
}

func (r *repository) ListSettings(ctx context.Context) ([]SiteSetting, error) {
	var settings []SiteSetting
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *repository) FindSetting(ctx context.Context, chave string) (*SiteSetting, error) {
	var s SiteSetting
	if err := r.db.WithContext(ctx).First(&s, "chave = ?", chave).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) UpsertSetting(ctx context.Context, chave, valor string) (*SiteSetting, error) {
	var s SiteSetting
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&s, "chave = ?", chave).Error
		if err == nil {
			s.Valor = valor
			return tx.Save(&s).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		s = SiteSetting{Chave: chave, Valor: valor}
		return tx.Create(&s).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) DeleteSetting(ctx context.Context, chave string) error {
	return r.db.WithContext(ctx).Delete(&SiteSetting{}, "chave = ?", chave).Error
}

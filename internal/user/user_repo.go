package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Update(ctx context.Context, u *User) error
	UpdateCandidateProfile(ctx context.Context, p *CandidateProfile) error
	UpdateCompanyProfile(ctx context.Context, p *CompanyProfile) error
	FindCandidateProfileByUserID(ctx context.Context, userID uuid.UUID) (*CandidateProfile, error)
	FindCompanyProfileByUserID(ctx context.Context, userID uuid.UUID) (*CompanyProfile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists the user together with its nested profile, if any. GORM runs
// the association insert in the same transaction as the user row.
func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("CandidateProfile").
		Preload("CompanyProfile").
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("CandidateProfile").
		Preload("CompanyProfile").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).
		Omit("CandidateProfile", "CompanyProfile").
		Save(u).Error
}

func (r *repository) UpdateCandidateProfile(ctx context.Context, p *CandidateProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) UpdateCompanyProfile(ctx context.Context, p *CompanyProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) FindCandidateProfileByUserID(ctx context.Context, userID uuid.UUID) (*CandidateProfile, error) {
	var p CandidateProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindCompanyProfileByUserID(ctx context.Context, userID uuid.UUID) (*CompanyProfile, error) {
	var p CompanyProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

package user

import (
	"context"
	"errors"

	usererrors "github.com/gabrieldacena/emprega-sapezal/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateCandidateProfile(ctx context.Context, userID string, req UpdateCandidateProfileRequest) (UserResponse, error)
	UpdateCompanyProfile(ctx context.Context, userID string, req UpdateCompanyProfileRequest) (UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetProfile(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		s.logger.Error("get profile failed", zap.String("user_id", userID), zap.Error(err))
		return UserResponse{}, err
	}

	return MapToResponse(*u), nil
}

func (s *service) UpdateCandidateProfile(ctx context.Context, userID string, req UpdateCandidateProfileRequest) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	if u.CandidateProfile == nil {
		return UserResponse{}, usererrors.ErrCandidateProfileNotFound
	}

	applyString(&u.Nome, req.Nome)
	applyString(&u.Cidade, req.Cidade)
	applyString(&u.Estado, req.Estado)
	applyString(&u.Telefone, req.Telefone)

	p := u.CandidateProfile
	applyString(&p.ResumoProfissional, req.ResumoProfissional)
	applyString(&p.LinkCurriculo, req.LinkCurriculo)
	applyString(&p.LinkLinkedin, req.LinkLinkedin)
	applyString(&p.AreaInteresse, req.AreaInteresse)
	if req.ExperienciaAnos != nil {
		p.ExperienciaAnos = *req.ExperienciaAnos
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update candidate user failed", zap.String("user_id", userID), zap.Error(err))
		return UserResponse{}, err
	}
	if err := s.repo.UpdateCandidateProfile(ctx, p); err != nil {
		s.logger.Error("update candidate profile failed", zap.String("user_id", userID), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("candidate profile updated", zap.String("user_id", userID))
	return MapToResponse(*u), nil
}

func (s *service) UpdateCompanyProfile(ctx context.Context, userID string, req UpdateCompanyProfileRequest) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	if u.CompanyProfile == nil {
		return UserResponse{}, usererrors.ErrCompanyProfileNotFound
	}

	applyString(&u.Nome, req.Nome)
	applyString(&u.Cidade, req.Cidade)
	applyString(&u.Estado, req.Estado)
	applyString(&u.Telefone, req.Telefone)

	p := u.CompanyProfile
	applyString(&p.NomeEmpresa, req.NomeEmpresa)
	applyString(&p.Cnpj, req.Cnpj)
	applyString(&p.AreaAtuacao, req.AreaAtuacao)
	applyString(&p.Descricao, req.Descricao)
	applyString(&p.Site, req.Site)
	applyString(&p.LogoUrl, req.LogoUrl)

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update company user failed", zap.String("user_id", userID), zap.Error(err))
		return UserResponse{}, err
	}
	if err := s.repo.UpdateCompanyProfile(ctx, p); err != nil {
		s.logger.Error("update company profile failed", zap.String("user_id", userID), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("company profile updated", zap.String("user_id", userID))
	return MapToResponse(*u), nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	joberrors "github.com/gabrieldacena/emprega-sapezal/internal/job/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

type Service interface {
	ListPublic(ctx context.Context, f PublicFilters) ([]JobResponse, int64, error)
	GetByID(ctx context.Context, jobID, viewerID, viewerRole string) (*JobResponse, error)
	ListMine(ctx context.Context, userID string) ([]JobResponse, error)
	Create(ctx context.Context, userID string, req CreateJobRequest) (*JobResponse, error)
	Update(ctx context.Context, jobID, userID string, req UpdateJobRequest) (*JobResponse, error)
	UpdateStatus(ctx context.Context, jobID, userID, status string) (*JobResponse, error)
	Delete(ctx context.Context, jobID, userID string) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, userRepo: userRepo, logger: l}
}

func (s *service) ListPublic(ctx context.Context, f PublicFilters) ([]JobResponse, int64, error) {
	f.Normalize()
	jobs, total, err := s.repo.ListPublic(ctx, f)
	if err != nil {
		s.logger.Error("failed to list jobs", zap.Error(err))
		return nil, 0, err
	}
	return MapToListResponse(jobs), total, nil
}

func (s *service) GetByID(ctx context.Context, jobID, viewerID, viewerRole string) (*JobResponse, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, joberrors.ErrInvalidJobID
	}
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}
	if j.Status != StatusAtiva && !s.canManage(ctx, j, viewerID, viewerRole) {
		return nil, joberrors.ErrJobNotFound
	}
	resp := MapToResponse(*j)
	return &resp, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]JobResponse, error) {
	profile, err := s.companyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.repo.ListByCompany(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	counts, err := s.repo.ApplicationCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := MapToListResponse(jobs)
	for i := range res {
		n := counts[jobs[i].ID]
		res[i].Applications = &n
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateJobRequest) (*JobResponse, error) {
	profile, err := s.companyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	j := Job{
		CompanyID:      profile.ID,
		Titulo:         req.Titulo,
		Descricao:      req.Descricao,
		Requisitos:     req.Requisitos,
		Beneficios:     req.Beneficios,
		TipoContrato:   req.TipoContrato,
		FaixaSalarial:  req.FaixaSalarial,
		ModeloTrabalho: req.ModeloTrabalho,
		Cidade:         req.Cidade,
		Estado:         req.Estado,
		Status:         StatusPendenteAprovacao,
	}
	if err := s.repo.Create(ctx, &j); err != nil {
		s.logger.Error("failed to create job", zap.Error(err))
		return nil, err
	}
	s.logger.Info("job created", zap.String("job_id", j.ID.String()), zap.String("company_id", profile.ID.String()))
	resp := MapToResponse(j)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, jobID, userID string, req UpdateJobRequest) (*JobResponse, error) {
	j, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	applyString(&j.Titulo, req.Titulo)
	applyString(&j.Descricao, req.Descricao)
	applyString(&j.Requisitos, req.Requisitos)
	applyString(&j.Beneficios, req.Beneficios)
	applyString(&j.TipoContrato, req.TipoContrato)
	applyString(&j.FaixaSalarial, req.FaixaSalarial)
	applyString(&j.ModeloTrabalho, req.ModeloTrabalho)
	applyString(&j.Cidade, req.Cidade)
	applyString(&j.Estado, req.Estado)

	if err := s.repo.Update(ctx, j); err != nil {
		s.logger.Error("failed to update job", zap.Error(err))
		return nil, err
	}
	resp := MapToResponse(*j)
	return &resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, jobID, userID, status string) (*JobResponse, error) {
	if !ModerationTable.AllowsOwnerStatus(status) {
		return nil, joberrors.ErrInvalidStatus
	}
	j, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, j.ID, Status(status)); err != nil {
		return nil, err
	}
	j.Status = Status(status)
	resp := MapToResponse(*j)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, jobID, userID string) error {
	j, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, j.ID); err != nil {
		s.logger.Error("failed to delete job", zap.Error(err))
		return err
	}
	s.logger.Info("job deleted", zap.String("job_id", j.ID.String()))
	return nil
}

func (s *service) companyProfile(ctx context.Context, userID string) (*user.CompanyProfile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, joberrors.ErrCompanyProfileRequired
	}
	profile, err := s.userRepo.FindCompanyProfileByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrCompanyProfileRequired
		}
		return nil, err
	}
	return profile, nil
}

func (s *service) ownedJob(ctx context.Context, jobID, userID string) (*Job, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, joberrors.ErrInvalidJobID
	}
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}
	profile, err := s.companyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != profile.ID {
		return nil, joberrors.ErrNotJobOwner
	}
	return j, nil
}

func (s *service) canManage(ctx context.Context, j *Job, viewerID, viewerRole string) bool {
	if viewerRole == string(user.RoleAdmin) {
		return true
	}
	if viewerRole != string(user.RoleEmpresa) || viewerID == "" {
		return false
	}
	uid, err := uuid.Parse(viewerID)
	if err != nil {
		return false
	}
	profile, err := s.userRepo.FindCompanyProfileByUserID(ctx, uid)
	if err != nil {
		return false
	}
	return j.CompanyID == profile.ID
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

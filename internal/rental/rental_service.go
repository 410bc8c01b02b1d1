package rental

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	rentalerrors "github.com/gabrieldacena/emprega-sapezal/internal/rental/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

type Service interface {
	ListPublic(ctx context.Context, f PublicFilters) ([]RentalResponse, int64, error)
	GetByID(ctx context.Context, rentalID, viewerID, viewerRole string) (*RentalResponse, error)
	ListMine(ctx context.Context, userID string) ([]RentalResponse, error)
	Create(ctx context.Context, userID string, req CreateRentalRequest) (*RentalResponse, error)
	Update(ctx context.Context, rentalID, userID string, req UpdateRentalRequest) (*RentalResponse, error)
	UpdateStatus(ctx context.Context, rentalID, userID, status string) (*RentalResponse, error)
	Delete(ctx context.Context, rentalID, userID string) error
	SendContactMessage(ctx context.Context, rentalID string, req ContactMessageRequest) (*ContactMessageResponse, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("rental.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, userRepo: userRepo, logger: l}
}

func (s *service) ListPublic(ctx context.Context, f PublicFilters) ([]RentalResponse, int64, error) {
	f.Normalize()
	rentals, total, err := s.repo.ListPublic(ctx, f)
	if err != nil {
		s.logger.Error("failed to list rentals", zap.Error(err))
		return nil, 0, err
	}
	return MapToListResponse(rentals), total, nil
}

func (s *service) GetByID(ctx context.Context, rentalID, viewerID, viewerRole string) (*RentalResponse, error) {
	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, rentalerrors.ErrInvalidRentalID
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rentalerrors.ErrRentalNotFound
		}
		return nil, err
	}
	if r.Status != StatusAtivo && !s.canManage(ctx, r, viewerID, viewerRole) {
		return nil, rentalerrors.ErrRentalNotFound
	}
	resp := MapToResponse(*r)
	return &resp, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]RentalResponse, error) {
	profile, err := s.companyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	rentals, err := s.repo.ListByCompany(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return MapToListResponse(rentals), nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateRentalRequest) (*RentalResponse, error) {
	profile, err := s.companyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	r := Rental{
		CompanyID:    profile.ID,
		Titulo:       req.Titulo,
		TipoImovel:   req.TipoImovel,
		ValorAluguel: req.ValorAluguel,
		Cidade:       req.Cidade,
		Estado:       req.Estado,
		Descricao:    req.Descricao,
		Status:       StatusPendenteAprovacao,
	}
	for i, url := range req.Imagens {
		r.Imagens = append(r.Imagens, RentalImage{Url: url, Ordem: i})
	}
	if err := s.repo.Create(ctx, &r); err != nil {
		s.logger.Error("failed to create rental", zap.Error(err))
		return nil, err
	}
	s.logger.Info("rental created", zap.String("rental_id", r.ID.String()), zap.String("company_id", profile.ID.String()))
	resp := MapToResponse(r)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, rentalID, userID string, req UpdateRentalRequest) (*RentalResponse, error) {
	r, err := s.ownedRental(ctx, rentalID, userID)
	if err != nil {
		return nil, err
	}
	if req.Titulo != nil {
		r.Titulo = *req.Titulo
	}
	if req.TipoImovel != nil {
		r.TipoImovel = *req.TipoImovel
	}
	if req.ValorAluguel != nil {
		r.ValorAluguel = *req.ValorAluguel
	}
	if req.Cidade != nil {
		r.Cidade = *req.Cidade
	}
	if req.Estado != nil {
		r.Estado = *req.Estado
	}
	if req.Descricao != nil {
		r.Descricao = *req.Descricao
	}

	if err := s.repo.Update(ctx, r); err != nil {
		s.logger.Error("failed to update rental", zap.Error(err))
		return nil, err
	}

	if req.Imagens != nil {
		images, err := s.repo.ReplaceImages(ctx, r.ID, req.Imagens)
		if err != nil {
			s.logger.Error("failed to replace rental images", zap.Error(err))
			return nil, err
		}
		r.Imagens = images
	}

	resp := MapToResponse(*r)
	return &resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, rentalID, userID, status string) (*RentalResponse, error) {
	if !ModerationTable.AllowsOwnerStatus(status) {
		return nil, rentalerrors.ErrInvalidStatus
	}
	r, err := s.ownedRental(ctx, rentalID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, r.ID, Status(status)); err != nil {
		return nil, err
	}
	r.Status = Status(status)
	resp := MapToResponse(*r)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, rentalID, userID string) error {
	r, err := s.ownedRental(ctx, rentalID, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, r.ID); err != nil {
		s.logger.Error("failed to delete rental", zap.Error(err))
		return err
	}
	s.logger.Info("rental deleted", zap.String("rental_id", r.ID.String()))
	return nil
}

func (s *service) SendContactMessage(ctx context.Context, rentalID string, req ContactMessageRequest) (*ContactMessageResponse, error) {
	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, rentalerrors.ErrInvalidRentalID
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rentalerrors.ErrRentalNotFound
		}
		return nil, err
	}
	m := ContactMessage{
		RentalID: &id,
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Mensagem: req.Mensagem,
	}
	if err := s.repo.CreateContactMessage(ctx, &m); err != nil {
		s.logger.Error("failed to store contact message", zap.Error(err))
		return nil, err
	}
	resp := MapContactToResponse(m)
	return &resp, nil
}

func (s *service) companyProfile(ctx context.Context, userID string) (*user.CompanyProfile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, rentalerrors.ErrCompanyProfileRequired
	}
	profile, err := s.userRepo.FindCompanyProfileByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rentalerrors.ErrCompanyProfileRequired
		}
		return nil, err
	}
	return profile, nil
}

func (s *service) ownedRental(ctx context.Context, rentalID, userID string) (*Rental, error) {
	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, rentalerrors.ErrInvalidRentalID
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rentalerrors.ErrRentalNotFound
		}
		return nil, err
	}
	profile, err := s.companyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if r.CompanyID != profile.ID {
		return nil, rentalerrors.ErrNotRentalOwner
	}
	return r, nil
}

func (s *service) canManage(ctx context.Context, r *Rental, viewerID, viewerRole string) bool {
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
	return r.CompanyID == profile.ID
}

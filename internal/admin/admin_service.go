package admin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adminerrors "github.com/gabrieldacena/emprega-sapezal/internal/admin/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/application"
	"github.com/gabrieldacena/emprega-sapezal/internal/content"
	"github.com/gabrieldacena/emprega-sapezal/internal/events"
	"github.com/gabrieldacena/emprega-sapezal/internal/job"
	"github.com/gabrieldacena/emprega-sapezal/internal/messaging/kafka"
	"github.com/gabrieldacena/emprega-sapezal/internal/moderation"
	"github.com/gabrieldacena/emprega-sapezal/internal/rental"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/contextutil"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock

type Service interface {
	Summary(ctx context.Context) (*SummaryResponse, error)
	Dashboard(ctx context.Context) (*SummaryCounts, error)
	Activity(ctx context.Context) (*SummaryActivity, error)

	ListUsers(ctx context.Context, f UserFilters) ([]UserResponse, int64, error)
	ToggleUser(ctx context.Context, id string) (*UserResponse, error)
	DeleteUser(ctx context.Context, id string) error

	ListJobs(ctx context.Context, f ListingFilters) ([]job.JobResponse, int64, error)
	ModerateJob(ctx context.Context, id, action string) (*job.JobResponse, error)
	DeleteJob(ctx context.Context, id string) error

	ListRentals(ctx context.Context, f ListingFilters) ([]rental.RentalResponse, int64, error)
	ModerateRental(ctx context.Context, id, action string) (*rental.RentalResponse, error)
	DeleteRental(ctx context.Context, id string) error

	ListApplications(ctx context.Context, f PageFilters) ([]application.ApplicationResponse, int64, error)

	ListMessages(ctx context.Context, f PageFilters) ([]MessageResponse, int64, error)
	DeleteMessage(ctx context.Context, id string) error

	ListAds(ctx context.Context) ([]content.AdResponse, error)
	CreateAd(ctx context.Context, req content.CreateAdRequest) (*content.AdResponse, error)
	UpdateAd(ctx context.Context, id string, req content.UpdateAdRequest) (*content.AdResponse, error)
	DeleteAd(ctx context.Context, id string) error

	ListNews(ctx context.Context) ([]content.NewsResponse, error)
	CreateNews(ctx context.Context, req content.CreateNewsRequest) (*content.NewsResponse, error)
	UpdateNews(ctx context.Context, id string, req content.UpdateNewsRequest) (*content.NewsResponse, error)
	DeleteNews(ctx context.Context, id string) error
	SetHeadline(ctx context.Context, id string) (*content.NewsResponse, error)

	GetSettings(ctx context.Context) (map[string]string, error)
	UpdateSettings(ctx context.Context, req content.UpdateSettingsRequest) (map[string]string, error)
	DeleteSetting(ctx context.Context, chave string) error
}

type service struct {
	repo        Repository
	summaryRepo SummaryRepository
	jobRepo     job.Repository
	rentalRepo  rental.Repository
	contentRepo content.Repository
	contentSvc  content.Service
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	summaryRepo SummaryRepository,
	jobRepo job.Repository,
	rentalRepo rental.Repository,
	contentRepo content.Repository,
	contentSvc content.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:        repo,
		summaryRepo: summaryRepo,
		jobRepo:     jobRepo,
		rentalRepo:  rentalRepo,
		contentRepo: contentRepo,
		contentSvc:  contentSvc,
		logger:      l,
	}
}

func (s *service) Summary(ctx context.Context) (*SummaryResponse, error) {
	snapshot, err := s.summaryRepo.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to load dashboard snapshot", zap.Error(err))
		return nil, err
	}
	return snapshot, nil
}

func (s *service) Dashboard(ctx context.Context) (*SummaryCounts, error) {
	return s.summaryRepo.Counts(ctx)
}

func (s *service) Activity(ctx context.Context) (*SummaryActivity, error) {
	return s.summaryRepo.Activity(ctx)
}

func (s *service) ListUsers(ctx context.Context, f UserFilters) ([]UserResponse, int64, error) {
	f.Normalize()
	users, total, err := s.repo.ListUsers(ctx, f)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, 0, err
	}
	return MapUsersToResponse(users), total, nil
}

func (s *service) ToggleUser(ctx context.Context, id string) (*UserResponse, error) {
	u, err := s.managedUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetUserAtivo(ctx, u.ID, !u.Ativo); err != nil {
		return nil, err
	}
	u.Ativo = !u.Ativo
	resp := MapUserToResponse(*u)
	return &resp, nil
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	u, err := s.managedUser(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, u.ID)
}

// managedUser loads the target and refuses admin accounts. Admins are never
// deactivated or removed through the panel.
func (s *service) managedUser(ctx context.Context, id string) (*user.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, adminerrors.ErrInvalidID
	}
	u, err := s.repo.FindUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminerrors.ErrUserNotFound
		}
		return nil, err
	}
	if u.Role == user.RoleAdmin {
		return nil, adminerrors.ErrAdminProtected
	}
	return u, nil
}

func (s *service) ListJobs(ctx context.Context, f ListingFilters) ([]job.JobResponse, int64, error) {
	f.Normalize()
	jobs, total, err := s.repo.ListJobs(ctx, f)
	if err != nil {
		s.logger.Error("failed to list jobs", zap.Error(err))
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	counts, err := s.jobRepo.ApplicationCounts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	resp := job.MapToListResponse(jobs)
	for i, j := range jobs {
		n := counts[j.ID]
		resp[i].Applications = &n
	}
	return resp, total, nil
}

func (s *service) ModerateJob(ctx context.Context, id, action string) (*job.JobResponse, error) {
	jid, err := uuid.Parse(id)
	if err != nil {
		return nil, adminerrors.ErrInvalidID
	}
	act, err := moderation.ParseAction(action)
	if err != nil {
		return nil, adminerrors.ErrInvalidAction
	}
	change, err := job.ModerationTable.Apply(act)
	if err != nil {
		return nil, adminerrors.ErrInvalidAction
	}

	j, err := s.jobRepo.FindByID(ctx, jid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminerrors.ErrListingNotFound
		}
		return nil, err
	}

	var owner string
	if j.Company != nil {
		owner = j.Company.UserID.String()
	}
	event, err := buildModeratedEvent(ctx, events.ListingKindJob, jid.String(), j.Titulo, act, change, owner)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ModerateJob(ctx, jid, change, event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminerrors.ErrListingNotFound
		}
		return nil, err
	}

	if change.Status != nil {
		j.Status = job.Status(*change.Status)
	}
	if change.Featured != nil {
		j.Destaque = *change.Featured
	}
	resp := job.MapToResponse(*j)
	return &resp, nil
}

func (s *service) DeleteJob(ctx context.Context, id string) error {
	jid, err := uuid.Parse(id)
	if err != nil {
		return adminerrors.ErrInvalidID
	}
	if _, err := s.jobRepo.FindByID(ctx, jid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrListingNotFound
		}
		return err
	}
	return s.jobRepo.Delete(ctx, jid)
}

func (s *service) ListRentals(ctx context.Context, f ListingFilters) ([]rental.RentalResponse, int64, error) {
	f.Normalize()
	rentals, total, err := s.repo.ListRentals(ctx, f)
	if err != nil {
		s.logger.Error("failed to list rentals", zap.Error(err))
		return nil, 0, err
	}
	return rental.MapToListResponse(rentals), total, nil
}

func (s *service) ModerateRental(ctx context.Context, id, action string) (*rental.RentalResponse, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return nil, adminerrors.ErrInvalidID
	}
	act, err := moderation.ParseAction(action)
	if err != nil {
		return nil, adminerrors.ErrInvalidAction
	}
	change, err := rental.ModerationTable.Apply(act)
	if err != nil {
		return nil, adminerrors.ErrInvalidAction
	}

	r, err := s.rentalRepo.FindByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminerrors.ErrListingNotFound
		}
		return nil, err
	}

	var owner string
	if r.Company != nil {
		owner = r.Company.UserID.String()
	}
	event, err := buildModeratedEvent(ctx, events.ListingKindRental, rid.String(), r.Titulo, act, change, owner)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ModerateRental(ctx, rid, change, event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminerrors.ErrListingNotFound
		}
		return nil, err
	}

	if change.Status != nil {
		r.Status = rental.Status(*change.Status)
	}
	if change.Featured != nil {
		r.Destaque = *change.Featured
	}
	resp := rental.MapToResponse(*r)
	return &resp, nil
}

func (s *service) DeleteRental(ctx context.Context, id string) error {
	rid, err := uuid.Parse(id)
	if err != nil {
		return adminerrors.ErrInvalidID
	}
	if _, err := s.rentalRepo.FindByID(ctx, rid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrListingNotFound
		}
		return err
	}
	return s.rentalRepo.Delete(ctx, rid)
}

func buildModeratedEvent(ctx context.Context, kind events.ListingKind, id, titulo string, act moderation.Action, change moderation.Change, ownerUserID string) (kafka.OutboxEvent, error) {
	payload := events.ListingModeratedEvent{
		EventType:   "listing_moderated",
		RequestID:   contextutil.GetRequestID(ctx),
		ListingKind: kind,
		ListingID:   id,
		Titulo:      titulo,
		Action:      string(act),
		OwnerUserID: ownerUserID,
		OccurredAt:  time.Now().UTC(),
	}
	if change.Status != nil {
		payload.NewStatus = *change.Status
	}
	return kafka.NewOutboxEvent(
		payload.RequestID,
		string(kind),
		id,
		payload.EventType,
		events.ListingModeratedTopic,
		payload,
	)
}

func (s *service) ListApplications(ctx context.Context, f PageFilters) ([]application.ApplicationResponse, int64, error) {
	f.Normalize()
	apps, total, err := s.repo.ListApplications(ctx, f)
	if err != nil {
		s.logger.Error("failed to list applications", zap.Error(err))
		return nil, 0, err
	}
	return application.MapToListResponse(apps), total, nil
}

func (s *service) ListMessages(ctx context.Context, f PageFilters) ([]MessageResponse, int64, error) {
	f.Normalize()
	messages, total, err := s.repo.ListMessages(ctx, f)
	if err != nil {
		s.logger.Error("failed to list contact messages", zap.Error(err))
		return nil, 0, err
	}
	resp := make([]MessageResponse, len(messages))
	for i, m := range messages {
		resp[i] = MapMessageToResponse(m)
	}
	return resp, total, nil
}

func (s *service) DeleteMessage(ctx context.Context, id string) error {
	mid, err := uuid.Parse(id)
	if err != nil {
		return adminerrors.ErrInvalidID
	}
	if err := s.repo.DeleteMessage(ctx, mid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrMessageNotFound
		}
		return err
	}
	return nil
}

func (s *service) ListAds(ctx context.Context) ([]content.AdResponse, error) {
	ads, err := s.contentRepo.ListAllAds(ctx)
	if err != nil {
		return nil, err
	}
	return content.MapAdsToResponse(ads), nil
}

func (s *service) CreateAd(ctx context.Context, req content.CreateAdRequest) (*content.AdResponse, error) {
	ad := content.Advertisement{
		Titulo:    req.Titulo,
		ImagemUrl: req.ImagemUrl,
		LinkUrl:   req.LinkUrl,
		Posicao:   req.Posicao,
		Ativo:     true,
		Ordem:     req.Ordem,
	}
	if err := s.contentRepo.CreateAd(ctx, &ad); err != nil {
		return nil, err
	}
	s.contentSvc.InvalidateCache(ctx)
	resp := content.MapAdToResponse(ad)
	return &resp, nil
}

func (s *service) UpdateAd(ctx context.Context, id string, req content.UpdateAdRequest) (*content.AdResponse, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, adminerrors.ErrInvalidID
	}
	ad, err := s.contentRepo.FindAdByID(ctx, aid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminerrors.ErrAdNotFound
		}
		return nil, err
	}

	applyString(&ad.Titulo, req.Titulo)
	applyString(&ad.ImagemUrl, req.ImagemUrl)
	applyString(&ad.LinkUrl, req.LinkUrl)
	applyString(&ad.Posicao, req.Posicao)
	if req.Ativo != nil {
		ad.Ativo = *req.Ativo
	}
	if req.Ordem != nil {
		ad.Ordem = *req.Ordem
	}

	if err := s.contentRepo.UpdateAd(ctx, ad); err != nil {
		return nil, err
	}
	s.contentSvc.InvalidateCache(ctx)
	resp := content.MapAdToResponse(*ad)
	return &resp, nil
}

func (s *service) DeleteAd(ctx context.Context, id string) error {
	aid, err := uuid.Parse(id)
	if err != nil {
		return adminerrors.ErrInvalidID
	}
	if _, err := s.contentRepo.FindAdByID(ctx, aid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrAdNotFound
		}
		return err
	}
	if err := s.contentRepo.DeleteAd(ctx, aid); err != nil {
		return err
	}
	s.contentSvc.InvalidateCache(ctx)
	return nil
}

func (s *service) ListNews(ctx context.Context) ([]content.NewsResponse, error) {
	items, err := s.contentRepo.ListAllNews(ctx)
	if err != nil {
		return nil, err
	}
	return content.MapNewsListToResponse(items), nil
}

func (s *service) CreateNews(ctx context.Context, req content.CreateNewsRequest) (*content.NewsResponse, error) {
	n := content.NewsArticle{
		Titulo:            req.Titulo,
		Conteudo:          req.Conteudo,
		ImagemUrl:         req.ImagemUrl,
		DestaquePrincipal: req.DestaquePrincipal,
		Ativo:             true,
	}
	if err := s.contentRepo.CreateNews(ctx, &n); err != nil {
		return nil, err
	}
	s.contentSvc.InvalidateCache(ctx)
	resp := content.MapNewsToResponse(n)
	return &resp, nil
}

func (s *service) UpdateNews(ctx context.Context, id string, req content.UpdateNewsRequest) (*content.NewsResponse, error) {
	nid, err := uuid.Parse(id)
	if err != nil {
		return nil, adminerrors.ErrInvalidID
	}
	n, err := s.contentRepo.FindNewsByID(ctx, nid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminerrors.ErrNewsNotFound
		}
		return nil, err
	}

	applyString(&n.Titulo, req.Titulo)
	applyString(&n.Conteudo, req.Conteudo)
	applyString(&n.ImagemUrl, req.ImagemUrl)
	if req.DestaquePrincipal != nil {
		n.DestaquePrincipal = *req.DestaquePrincipal
	}
	if req.Ativo != nil {
		n.Ativo = *req.Ativo
	}

	if err := s.contentRepo.UpdateNews(ctx, n); err != nil {
		return nil, err
	}
	s.contentSvc.InvalidateCache(ctx)
	resp := content.MapNewsToResponse(*n)
	return &resp, nil
}

func (s *service) DeleteNews(ctx context.Context, id string) error {
	nid, err := uuid.Parse(id)
	if err != nil {
		return adminerrors.ErrInvalidID
	}
	if _, err := s.contentRepo.FindNewsByID(ctx, nid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrNewsNotFound
		}
		return err
	}
	if err := s.contentRepo.DeleteNews(ctx, nid); err != nil {
		return err
	}
	s.contentSvc.InvalidateCache(ctx)
	return nil
}

func (s *service) SetHeadline(ctx context.Context, id string) (*content.NewsResponse, error) {
	nid, err := uuid.Parse(id)
	if err != nil {
		return nil, adminerrors.ErrInvalidID
	}
	n, err := s.contentRepo.SetHeadline(ctx, nid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminerrors.ErrNewsNotFound
		}
		return nil, err
	}
	s.contentSvc.InvalidateCache(ctx)
	resp := content.MapNewsToResponse(*n)
	return &resp, nil
}

func (s *service) GetSettings(ctx context.Context) (map[string]string, error) {
	settings, err := s.contentRepo.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Chave] = setting.Valor
	}
	return result, nil
}

func (s *service) UpdateSettings(ctx context.Context, req content.UpdateSettingsRequest) (map[string]string, error) {
	for chave, valor := range req.Settings {
		if _, err := s.contentRepo.UpsertSetting(ctx, chave, valor); err != nil {
			return nil, err
		}
	}
	s.contentSvc.InvalidateCache(ctx)
	return s.GetSettings(ctx)
}

func (s *service) DeleteSetting(ctx context.Context, chave string) error {
	if _, err := s.contentRepo.FindSetting(ctx, chave); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrSettingNotFound
		}
		return err
	}
	if err := s.contentRepo.DeleteSetting(ctx, chave); err != nil {
		return err
	}
	s.contentSvc.InvalidateCache(ctx)
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	applicationerrors "github.com/gabrieldacena/emprega-sapezal/internal/application/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/events"
	"github.com/gabrieldacena/emprega-sapezal/internal/job"
	joberrors "github.com/gabrieldacena/emprega-sapezal/internal/job/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/messaging/kafka"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/contextutil"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

type Service interface {
	Apply(ctx context.Context, userID string, req ApplyRequest) (*ApplicationResponse, error)
	ListMine(ctx context.Context, userID string) ([]ApplicationResponse, error)
	ListByJob(ctx context.Context, jobID, userID string) ([]ApplicationResponse, error)
	UpdateStatus(ctx context.Context, applicationID, userID, status string) (*ApplicationResponse, error)
}

type service struct {
	repo     Repository
	jobRepo  job.Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, jobRepo job.Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, jobRepo: jobRepo, userRepo: userRepo, logger: l}
}

func (s *service) Apply(ctx context.Context, userID string, req ApplyRequest) (*ApplicationResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, applicationerrors.ErrCandidateProfileRequired
	}
	candidate, err := s.userRepo.FindCandidateProfileByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, applicationerrors.ErrCandidateProfileRequired
		}
		return nil, err
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, joberrors.ErrInvalidJobID
	}
	j, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}
	if j.Status != job.StatusAtiva {
		return nil, applicationerrors.ErrJobNotAcceptingApplies
	}

	if _, err := s.repo.FindByJobAndCandidate(ctx, jobID, candidate.ID); err == nil {
		return nil, applicationerrors.ErrDuplicateApplication
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a := Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidate.ID,
		Mensagem:    req.Mensagem,
		Status:      StatusEnviado,
	}

	event := s.buildSubmittedEvent(ctx, &a, j)
	if err := s.repo.Create(ctx, &a, event); err != nil {
		if isDuplicateApplication(err) {
			return nil, applicationerrors.ErrDuplicateApplication
		}
		s.logger.Error("failed to create application", zap.Error(err))
		return nil, err
	}

	s.logger.Info("application submitted",
		zap.String("application_id", a.ID.String()),
		zap.String("job_id", jobID.String()),
	)

	a.Job = j
	resp := MapToResponse(a)
	return &resp, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]ApplicationResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, applicationerrors.ErrCandidateProfileRequired
	}
	candidate, err := s.userRepo.FindCandidateProfileByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, applicationerrors.ErrCandidateProfileRequired
		}
		return nil, err
	}
	items, err := s.repo.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	return MapToListResponse(items), nil
}

func (s *service) ListByJob(ctx context.Context, jobID, userID string) ([]ApplicationResponse, error) {
	jid, err := uuid.Parse(jobID)
	if err != nil {
		return nil, joberrors.ErrInvalidJobID
	}
	j, err := s.jobRepo.FindByID(ctx, jid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}

	company, err := s.companyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != company.ID {
		return nil, joberrors.ErrNotJobOwner
	}

	items, err := s.repo.ListByJob(ctx, jid)
	if err != nil {
		return nil, err
	}
	return MapToListResponse(items), nil
}

func (s *service) UpdateStatus(ctx context.Context, applicationID, userID, status string) (*ApplicationResponse, error) {
	if !IsValidStatus(status) {
		return nil, applicationerrors.ErrInvalidStatus
	}
	id, err := uuid.Parse(applicationID)
	if err != nil {
		return nil, applicationerrors.ErrInvalidApplicationID
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, applicationerrors.ErrApplicationNotFound
		}
		return nil, err
	}

	company, err := s.companyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if a.Job == nil || a.Job.CompanyID != company.ID {
		return nil, applicationerrors.ErrNotApplicationOwner
	}

	if err := s.repo.UpdateStatus(ctx, id, Status(status)); err != nil {
		return nil, err
	}
	a.Status = Status(status)
	resp := MapToResponse(*a)
	return &resp, nil
}

func (s *service) companyProfile(ctx context.Context, userID string) (*user.CompanyProfile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, applicationerrors.ErrNotApplicationOwner
	}
	company, err := s.userRepo.FindCompanyProfileByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, applicationerrors.ErrNotApplicationOwner
		}
		return nil, err
	}
	return company, nil
}

// buildSubmittedEvent is best effort: a listing without its company preloaded
// still produces an event, just without the owner reference.
func (s *service) buildSubmittedEvent(ctx context.Context, a *Application, j *job.Job) *kafka.OutboxEvent {
	payload := events.ApplicationSubmittedEvent{
		EventType:     "application_submitted",
		RequestID:     contextutil.GetRequestID(ctx),
		ApplicationID: a.ID.String(),
		JobID:         j.ID.String(),
		JobTitle:      j.Titulo,
		CandidateID:   a.CandidateID.String(),
		OccurredAt:    time.Now().UTC(),
	}
	if j.Company != nil {
		payload.CompanyUserID = j.Company.UserID.String()
	}

	event, err := kafka.NewOutboxEvent(
		payload.RequestID,
		"application",
		a.ID.String(),
		payload.EventType,
		events.ApplicationSubmittedTopic,
		payload,
	)
	if err != nil {
		s.logger.Error("failed to build application event", zap.Error(err))
		return nil
	}
	return &event
}

func isDuplicateApplication(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_application_job_candidate"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_application_job_candidate")
}

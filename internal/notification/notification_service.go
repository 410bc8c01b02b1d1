package notification

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
)

var (
	errNotFound  = apperror.New(apperror.CodeNotFound, "Notificação não encontrada", http.StatusNotFound)
	errForbidden = apperror.New(apperror.CodeForbidden, "Esta notificação não pertence a você", http.StatusForbidden)
	errInvalidID = apperror.New(apperror.CodeBadRequest, "ID de notificação inválido", http.StatusBadRequest)
)

type Service interface {
	Notify(ctx context.Context, userID uuid.UUID, tipo, titulo, mensagem string) error
	ListMine(ctx context.Context, userID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, notificationID, userID string) (*NotificationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Notify(ctx context.Context, userID uuid.UUID, tipo, titulo, mensagem string) error {
	n := Notification{
		UserID:   userID,
		Tipo:     tipo,
		Titulo:   titulo,
		Mensagem: mensagem,
	}
	if err := s.repo.Create(ctx, &n); err != nil {
		s.logger.Error("failed to store notification", zap.Error(err), zap.String("user_id", userID.String()))
		return err
	}
	return nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]NotificationResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, errInvalidID
	}
	items, err := s.repo.ListByUser(ctx, uid, 50)
	if err != nil {
		return nil, err
	}
	return MapToListResponse(items), nil
}

func (s *service) MarkRead(ctx context.Context, notificationID, userID string) (*NotificationResponse, error) {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return nil, errInvalidID
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, errInvalidID
	}
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	if n.UserID != uid {
		return nil, errForbidden
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	n.Lida = true
	resp := MapToResponse(*n)
	return &resp, nil
}

package notification_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/gabrieldacena/emprega-sapezal/internal/notification"
	"github.com/gabrieldacena/emprega-sapezal/internal/notification/mock"
)

func TestNotificationService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := notification.NewService(repo)

	userID := uuid.New()
	repo.EXPECT().
		Create(gomock.Any(), gomock.AssignableToTypeOf(&notification.Notification{})).
		DoAndReturn(func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, notification.TipoModeracao, n.Tipo)
			assert.False(t, n.Lida)
			return nil
		})

	err := svc.Notify(context.Background(), userID, notification.TipoModeracao,
		"Anúncio aprovado", "Sua vaga foi aprovada e já está visível no portal.")

	assert.NoError(t, err)
}

func TestNotificationService_ListMine(t *testing.T) {
	t.Run("lista as notificações do usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		userID := uuid.New()
		repo.EXPECT().
			ListByUser(gomock.Any(), userID, 50).
			Return([]notification.Notification{
				{ID: uuid.New(), UserID: userID, Tipo: notification.TipoCandidatura, Titulo: "Nova candidatura recebida"},
			}, nil)

		resp, err := svc.ListMine(context.Background(), userID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Nova candidatura recebida", resp[0].Titulo)
	})

	t.Run("id inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notification.NewService(mock.NewMockRepository(ctrl))

		_, err := svc.ListMine(context.Background(), "abc")

		assert.Error(t, err)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	userID := uuid.New()

	t.Run("marca como lida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		n := &notification.Notification{ID: uuid.New(), UserID: userID, Titulo: "Anúncio aprovado"}
		repo.EXPECT().FindByID(gomock.Any(), n.ID).Return(n, nil)
		repo.EXPECT().MarkRead(gomock.Any(), n.ID).Return(nil)

		resp, err := svc.MarkRead(context.Background(), n.ID.String(), userID.String())

		assert.NoError(t, err)
		assert.True(t, resp.Lida)
	})

	t.Run("notificação de outro usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		n := &notification.Notification{ID: uuid.New(), UserID: uuid.New()}
		repo.EXPECT().FindByID(gomock.Any(), n.ID).Return(n, nil)

		_, err := svc.MarkRead(context.Background(), n.ID.String(), userID.String())

		assert.Error(t, err)
	})

	t.Run("notificação inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.MarkRead(context.Background(), id.String(), userID.String())

		assert.Error(t, err)
	})
}

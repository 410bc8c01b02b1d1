package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/gabrieldacena/emprega-sapezal/internal/events"
	"github.com/gabrieldacena/emprega-sapezal/internal/notification"
)

func moderationMessage(event events.ListingModeratedEvent) (titulo, mensagem string) {
	kind := "vaga"
	if event.ListingKind == events.ListingKindRental {
		kind = "anúncio"
	}

	switch event.Action {
	case "approve":
		return "Publicação aprovada", fmt.Sprintf("Seu %s %q foi aprovado e já está visível no portal.", kind, event.Titulo)
	case "reject":
		return "Publicação reprovada", fmt.Sprintf("Seu %s %q foi reprovado pela moderação.", kind, event.Titulo)
	case "hide":
		return "Publicação ocultada", fmt.Sprintf("Seu %s %q foi ocultado pela moderação.", kind, event.Titulo)
	case "feature":
		return "Publicação em destaque", fmt.Sprintf("Seu %s %q ganhou destaque no portal.", kind, event.Titulo)
	case "unfeature":
		return "Destaque removido", fmt.Sprintf("Seu %s %q não está mais em destaque.", kind, event.Titulo)
	default:
		return "Publicação moderada", fmt.Sprintf("Seu %s %q foi atualizado pela moderação.", kind, event.Titulo)
	}
}

// ConsumeListingModerated notifies listing owners about moderation outcomes.
func ConsumeListingModerated(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.listing_moderated")
	log.Info("listing moderated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("listing moderated consumer stopped")
				return
			}
			log.Error("fetch listing moderated message failed", zap.Error(err))
			continue
		}

		var event events.ListingModeratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode listing_moderated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		ownerID, err := uuid.Parse(event.OwnerUserID)
		if err != nil {
			log.Error("invalid owner user id in event",
				zap.String("listing_id", event.ListingID),
				zap.String("owner_user_id", event.OwnerUserID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		titulo, mensagem := moderationMessage(event)
		if err := notificationService.Notify(ctx, ownerID, notification.TipoModeracao, titulo, mensagem); err != nil {
			log.Error("create moderation notification failed",
				zap.String("listing_id", event.ListingID),
				zap.String("action", event.Action),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit listing moderated message failed", zap.Error(err))
			continue
		}

		log.Info("moderation notification created",
			zap.String("listing_id", event.ListingID),
			zap.String("action", event.Action),
		)
	}
}

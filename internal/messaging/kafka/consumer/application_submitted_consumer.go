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

// ConsumeApplicationSubmitted turns application events into notifications for
// the company that owns the job.
func ConsumeApplicationSubmitted(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.application_submitted")
	log.Info("application submitted consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("application submitted consumer stopped")
				return
			}
			log.Error("fetch application submitted message failed", zap.Error(err))
			continue
		}

		var event events.ApplicationSubmittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode application_submitted event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		ownerID, err := uuid.Parse(event.CompanyUserID)
		if err != nil {
			log.Error("invalid company user id in event",
				zap.String("application_id", event.ApplicationID),
				zap.String("company_user_id", event.CompanyUserID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		err = notificationService.Notify(ctx, ownerID,
			notification.TipoCandidatura,
			"Nova candidatura recebida",
			fmt.Sprintf("Um candidato se inscreveu na vaga %q.", event.JobTitle),
		)
		if err != nil {
			log.Error("create application notification failed",
				zap.String("application_id", event.ApplicationID),
				zap.String("job_id", event.JobID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit application submitted message failed", zap.Error(err))
			continue
		}

		log.Info("application notification created",
			zap.String("application_id", event.ApplicationID),
			zap.String("job_id", event.JobID),
		)
	}
}

package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

// fanoutBatchSize bounds the per-statement insert size during fan-out.
const fanoutBatchSize = 100

// FanoutEngine delivers an approved dispatch: it resolves the audience,
// inserts every in-app copy and the status flip in one transaction, then
// attempts push delivery. Push failures never roll back the fan-out.
type FanoutEngine struct {
	txManager  repository.TransactionManager
	dispatches repository.DispatchRepository
	audience   *AudienceResolver
	push       service.PushSender
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewFanoutEngine creates a fan-out engine.
func NewFanoutEngine(
	txManager repository.TransactionManager,
	dispatches repository.DispatchRepository,
	audience *AudienceResolver,
	push service.PushSender,
	publisher service.EventPublisher,
	logger *slog.Logger,
) *FanoutEngine {
	return &FanoutEngine{
		txManager:  txManager,
		dispatches: dispatches,
		audience:   audience,
		push:       push,
		publisher:  publisher,
		logger:     logger,
	}
}

// PushConfigured reports whether a real push provider is wired up.
func (e *FanoutEngine) PushConfigured() bool {
	return e.push.Configured()
}

// FanOut delivers the dispatch to its resolved audience. An empty audience
// still succeeds: the dispatch is marked sent with zero counts.
func (e *FanoutEngine) FanOut(ctx context.Context, dispatch *entity.Dispatch) (*usecase.DispatchResult, error) {
	recipients, err := e.audience.Resolve(ctx, dispatch)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dispatch.Status = entity.DispatchStatusSent
	dispatch.SentAt = &now
	if dispatch.Metadata == nil {
		dispatch.Metadata = make(map[string]string)
	}
	dispatch.Metadata["matched_count"] = strconv.Itoa(len(recipients))

	notifications := e.buildNotifications(dispatch, recipients, now)

	// The fan-out inserts and the status flip commit or roll back together.
	err = e.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if len(notifications) > 0 {
			if err := factory.Notifications().CreateInBatches(ctx, notifications, fanoutBatchSize); err != nil {
				return err
			}
		}

		return factory.Dispatches().Update(ctx, dispatch)
	})
	if err != nil {
		return nil, err
	}

	result := &usecase.DispatchResult{
		Dispatch: dispatch,
		Matched:  len(recipients),
	}

	if len(recipients) > 0 && dispatch.Channel.IncludesPush() {
		report := e.deliverPush(ctx, dispatch, recipients)
		result.PushSent = report.Sent
		result.PushFailed = report.Failed
	}

	e.publishEvent(ctx, dispatch, result)

	return result, nil
}

func (e *FanoutEngine) buildNotifications(dispatch *entity.Dispatch, recipients []uuid.UUID, now time.Time) []*entity.Notification {
	if len(recipients) == 0 {
		return nil
	}

	data := map[string]string{
		"dispatch_id": dispatch.ID.String(),
		"sender_id":   dispatch.SenderID.String(),
		"mode":        string(dispatch.Mode),
	}
	if name, ok := dispatch.Metadata["business_name"]; ok {
		data["business_name"] = name
	}

	notifications := make([]*entity.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		notifications = append(notifications, &entity.Notification{
			ID:          uuid.New(),
			DispatchID:  dispatch.ID,
			RecipientID: recipientID,
			Title:       dispatch.Title,
			Body:        dispatch.Body,
			URL:         dispatch.URL,
			Data:        data,
			CreatedAt:   now,
		})
	}

	return notifications
}

// deliverPush multicasts the dispatch and records the outcome in metadata.
// Everything here is best-effort: the in-app fan-out already committed.
func (e *FanoutEngine) deliverPush(ctx context.Context, dispatch *entity.Dispatch, recipients []uuid.UUID) service.PushReport {
	report, err := e.push.SendToUsers(ctx, recipients, service.PushMessage{
		Title: dispatch.Title,
		Body:  dispatch.Body,
		Data: map[string]string{
			"dispatch_id": dispatch.ID.String(),
			"sender_id":   dispatch.SenderID.String(),
		},
	})
	if err != nil {
		e.logger.LogAttrs(ctx, slog.LevelError, "push delivery failed",
			slog.String("dispatchId", dispatch.ID.String()),
			slog.String("error", err.Error()),
		)
		report.Failed = len(recipients)
	}

	dispatch.Metadata["push_sent"] = strconv.Itoa(report.Sent)
	dispatch.Metadata["push_failed"] = strconv.Itoa(report.Failed)
	if err := e.dispatches.Update(ctx, dispatch); err != nil {
		e.logger.LogAttrs(ctx, slog.LevelWarn, "failed to record push counters",
			slog.String("dispatchId", dispatch.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return report
}

func (e *FanoutEngine) publishEvent(ctx context.Context, dispatch *entity.Dispatch, result *usecase.DispatchResult) {
	event := service.DispatchEvent{
		Type:       service.EventDispatchSent,
		DispatchID: dispatch.ID,
		SenderID:   dispatch.SenderID,
		Recipients: result.Matched,
		PushSent:   result.PushSent,
		PushFailed: result.PushFailed,
		OccurredAt: time.Now(),
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish dispatch event",
			slog.String("dispatchId", dispatch.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

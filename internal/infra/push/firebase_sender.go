// Package push delivers notifications to user devices through Firebase
// Cloud Messaging.
package push

import (
	"context"
	"log/slog"

	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// multicastBatchSize is the FCM limit of tokens per multicast request.
const multicastBatchSize = 500

type firebaseSender struct {
	client  *messaging.Client
	devices repository.DeviceRepository
	logger  *slog.Logger
}

// NewFirebaseSender creates a push sender backed by Firebase Cloud Messaging.
func NewFirebaseSender(ctx context.Context, credentialsPath string, devices repository.DeviceRepository, logger *slog.Logger) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{
		client:  client,
		devices: devices,
		logger:  logger,
	}, nil
}

// Configured reports that a real push provider is wired up.
func (s *firebaseSender) Configured() bool {
	return true
}

// SendToUsers multicasts msg to every active device of the given users.
// Tokens FCM reports as invalid or unregistered are deactivated afterwards;
// that cleanup is best-effort and never fails the send.
func (s *firebaseSender) SendToUsers(ctx context.Context, userIDs []uuid.UUID, msg service.PushMessage) (service.PushReport, error) {
	var report service.PushReport

	if len(userIDs) == 0 {
		return report, nil
	}

	tokens, err := s.devices.ListActiveTokensByUsers(ctx, userIDs)
	if err != nil {
		return report, errors.Wrap(err, "failed to load device tokens")
	}
	if len(tokens) == 0 {
		return report, nil
	}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += multicastBatchSize {
		end := min(start+multicastBatchSize, len(tokens))
		batch := tokens[start:end]

		sent, failed, invalid, err := s.sendBatch(ctx, batch, msg)
		if err != nil {
			// Count the whole batch as failed and keep going with the rest.
			s.logger.LogAttrs(ctx, slog.LevelError, "FCM multicast batch failed",
				slog.Int("batchSize", len(batch)),
				slog.String("error", err.Error()),
			)
			report.Failed += len(batch)

			continue
		}

		report.Sent += sent
		report.Failed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		if err := s.devices.DeactivateByTokens(ctx, invalidTokens); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to deactivate invalid tokens",
				slog.Int("tokenCount", len(invalidTokens)),
				slog.String("error", err.Error()),
			)
		}
	}

	return report, nil
}

func (s *firebaseSender) sendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	// Collect invalid tokens for cleanup
	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil {
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, tokens[idx])
			}
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

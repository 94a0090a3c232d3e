package push

import (
	"context"
	"log/slog"

	"beacon/internal/domain/service"

	"github.com/google/uuid"
)

// noopSender stands in when no push credentials are configured. Sends are
// silent no-ops reporting zero counts, so dispatch flows behave identically
// in environments without FCM.
type noopSender struct {
	logger *slog.Logger
}

// NewNoopSender creates a push sender that drops every message.
func NewNoopSender(logger *slog.Logger) service.PushSender {
	return &noopSender{logger: logger}
}

func (s *noopSender) Configured() bool {
	return false
}

func (s *noopSender) SendToUsers(ctx context.Context, userIDs []uuid.UUID, _ service.PushMessage) (service.PushReport, error) {
	s.logger.LogAttrs(ctx, slog.LevelDebug, "push not configured, skipping delivery",
		slog.Int("userCount", len(userIDs)),
	)

	return service.PushReport{}, nil
}

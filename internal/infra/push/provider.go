package push

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"

	"go.uber.org/fx"
)

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Devices repository.DeviceRepository
}

// NewPushSender creates a PushSender based on configuration. Without
// Firebase credentials the sender is a silent no-op so every dispatch flow
// still works in development environments.
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Firebase

	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op push sender")

		return NewNoopSender(params.Logger), nil
	}

	params.Logger.Info("Using Firebase push sender",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseSender(params.Ctx, cfg.CredentialsPath, params.Devices, params.Logger)
}

// Module provides the push FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushSender),
)

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	accounts      repository.AccountRepository
	dispatches    repository.DispatchRepository
	notifications repository.NotificationRepository
	quota         *QuotaGuard
	address       *AddressResolver
	engine        *FanoutEngine
	qrGenerator   service.QRCodeGenerator
	cfg           *config.Config
	logger        *slog.Logger
}

// NewDispatchService creates the sender-facing dispatch use case.
func NewDispatchService(
	accounts repository.AccountRepository,
	dispatches repository.DispatchRepository,
	notifications repository.NotificationRepository,
	quota *QuotaGuard,
	address *AddressResolver,
	engine *FanoutEngine,
	qrGenerator service.QRCodeGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		accounts:      accounts,
		dispatches:    dispatches,
		notifications: notifications,
		quota:         quota,
		address:       address,
		engine:        engine,
		qrGenerator:   qrGenerator,
		cfg:           cfg,
		logger:        logger,
	}
}

// Submit validates and quota-checks a dispatch request, then either fans it
// out immediately or parks it for admin approval. Admin broadcasts skip the
// plan gate, every quota check and the approval workflow.
func (s *dispatchService) Submit(ctx context.Context, senderID uuid.UUID, isAdmin bool, req *usecase.DispatchRequest) (*usecase.DispatchResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Push-only dispatches have no fallback delivery, so an unconfigured
	// provider is a hard failure rather than a silent in-app send.
	if req.Channel == entity.ChannelPush && !s.engine.PushConfigured() {
		return nil, domainerrors.ErrPushNotConfigured
	}

	sender, err := s.accounts.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && sender.Kind == entity.AccountKindIndividual {
		return nil, domainerrors.ErrForbidden.WithMessage("individual accounts cannot send dispatches")
	}

	var limits config.PlanLimits
	if !isAdmin {
		limits, err = s.quota.LimitsFor(sender)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	dispatch := &entity.Dispatch{
		ID:          uuid.New(),
		SenderID:    senderID,
		Mode:        req.Mode,
		Title:       strings.TrimSpace(req.Title),
		Body:        strings.TrimSpace(req.Body),
		URL:         strings.TrimSpace(req.URL),
		Targets:     req.Targets,
		ReceiverIDs: req.ReceiverIDs,
		Channel:     req.Channel,
		Metadata:    map[string]string{"business_name": sender.Name},
		CreatedAt:   now,
	}
	if dispatch.Channel == "" {
		dispatch.Channel = entity.ChannelBoth
	}

	switch req.Mode {
	case entity.DispatchModeDirect:
		if !isAdmin {
			if err := s.quota.CheckDirect(ctx, senderID, limits, now); err != nil {
				return nil, err
			}
		}

	case entity.DispatchModeBlast:
		radius := s.resolveRadius(req)
		if !isAdmin {
			if err := s.quota.CheckBlast(ctx, senderID, limits, radius, now); err != nil {
				return nil, err
			}
		}
		dispatch.RadiusMiles = radius

		// An unlimited blast needs no center: the geo filter is skipped
		// entirely, so the sender's address is never resolved.
		switch {
		case req.Lat != nil && req.Lon != nil:
			dispatch.CenterLat = req.Lat
			dispatch.CenterLon = req.Lon
		case radius != nil:
			center, err := s.address.Resolve(ctx, sender)
			if err != nil {
				return nil, err
			}
			latitude, longitude := center.Lat(), center.Lon()
			dispatch.CenterLat = &latitude
			dispatch.CenterLon = &longitude
		}

		// A blast without explicit groups reaches every account kind.
		if len(dispatch.ReceiverIDs) == 0 && !dispatch.Targets.Any() {
			dispatch.Targets = entity.TargetGroups{Organizations: true, Businesses: true, Individuals: true}
		}
	}

	if !isAdmin && req.Mode == entity.DispatchModeBlast && limits.AreaBlastRequiresApproval {
		dispatch.Status = entity.DispatchStatusPending
		if err := s.dispatches.Create(ctx, dispatch); err != nil {
			return nil, err
		}

		s.logger.LogAttrs(ctx, slog.LevelInfo, "dispatch parked for approval",
			slog.String("dispatchId", dispatch.ID.String()),
			slog.String("senderId", senderID.String()),
		)

		return &usecase.DispatchResult{Dispatch: dispatch, RequiresApproval: true}, nil
	}

	dispatch.Status = entity.DispatchStatusApproved
	dispatch.ApprovedAt = &now
	if err := s.dispatches.Create(ctx, dispatch); err != nil {
		return nil, err
	}

	return s.engine.FanOut(ctx, dispatch)
}

// UpdatePending edits a dispatch that has not been reviewed yet. Admins may
// edit any pending dispatch before acting on it.
func (s *dispatchService) UpdatePending(ctx context.Context, actorID uuid.UUID, isAdmin bool, dispatchID uuid.UUID, req *usecase.UpdateDispatchRequest) (*entity.Dispatch, error) {
	dispatch, err := s.dispatches.GetByID(ctx, dispatchID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && dispatch.SenderID != actorID {
		return nil, domainerrors.ErrForbidden
	}
	if dispatch.Status != entity.DispatchStatusPending {
		return nil, domainerrors.ErrInvalidState.WithMessage("only pending dispatches can be edited")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" || len(title) > entity.MaxTitleLength {
			return nil, domainerrors.ErrValidation.WithMessage("invalid title")
		}
		dispatch.Title = title
	}
	if req.Body != nil {
		body := strings.TrimSpace(*req.Body)
		if body == "" || len(body) > entity.MaxBodyLength {
			return nil, domainerrors.ErrValidation.WithMessage("invalid body")
		}
		dispatch.Body = body
	}
	if req.RadiusMiles != nil {
		if *req.RadiusMiles <= 0 {
			return nil, domainerrors.ErrValidation.WithMessage("radius must be positive")
		}
		dispatch.RadiusMiles = req.RadiusMiles
	}

	if err := s.dispatches.Update(ctx, dispatch); err != nil {
		return nil, err
	}

	return dispatch, nil
}

// Delete hard-removes a dispatch from any state.
func (s *dispatchService) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, dispatchID uuid.UUID) error {
	dispatch, err := s.dispatches.GetByID(ctx, dispatchID)
	if err != nil {
		return err
	}
	if !isAdmin && dispatch.SenderID != actorID {
		return domainerrors.ErrForbidden
	}

	return s.dispatches.Delete(ctx, dispatchID)
}

// History returns the sender's delivered updates grouped by content and minute.
func (s *dispatchService) History(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.DispatchDigest, error) {
	if limit <= 0 {
		limit = s.cfg.Dispatch.DefaultPageSize
	}

	return s.notifications.ListDigestsBySender(ctx, senderID, limit, offset)
}

// ShareQR renders a QR code deep-linking to the dispatch.
func (s *dispatchService) ShareQR(ctx context.Context, senderID, dispatchID uuid.UUID, size int) ([]byte, error) {
	dispatch, err := s.dispatches.GetByID(ctx, dispatchID)
	if err != nil {
		return nil, err
	}
	if dispatch.SenderID != senderID {
		return nil, domainerrors.ErrForbidden
	}

	return s.qrGenerator.GeneratePNG("beacon://dispatches/"+dispatch.ID.String(), size)
}

// resolveRadius applies the configured default when the request omits a
// radius and honors the explicit unlimited flag.
func (s *dispatchService) resolveRadius(req *usecase.DispatchRequest) *float64 {
	if req.Unlimited {
		return nil
	}
	if req.RadiusMiles != nil {
		return req.RadiusMiles
	}

	radius := s.cfg.Dispatch.DefaultRadiusMiles

	return &radius
}

func validateRequest(req *usecase.DispatchRequest) error {
	switch req.Mode {
	case entity.DispatchModeDirect, entity.DispatchModeBlast:
	default:
		return domainerrors.ErrValidation.WithMessage("unknown dispatch mode")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > entity.MaxTitleLength {
		return domainerrors.ErrValidation.WithMessage("title must be 1-140 characters")
	}
	body := strings.TrimSpace(req.Body)
	if body == "" || len(body) > entity.MaxBodyLength {
		return domainerrors.ErrValidation.WithMessage("body must be 1-1000 characters")
	}

	switch req.Channel {
	case "", entity.ChannelInApp, entity.ChannelPush, entity.ChannelBoth:
	default:
		return domainerrors.ErrValidation.WithMessage("unknown delivery channel")
	}

	if req.Unlimited && req.RadiusMiles != nil {
		return domainerrors.ErrValidation.WithMessage("radius and unlimited are mutually exclusive")
	}
	if req.RadiusMiles != nil && *req.RadiusMiles <= 0 {
		return domainerrors.ErrValidation.WithMessage("radius must be positive")
	}

	if (req.Lat == nil) != (req.Lon == nil) {
		return domainerrors.ErrValidation.WithMessage("lat and lon must be provided together")
	}
	if req.Lat != nil && (*req.Lat < -90 || *req.Lat > 90 || *req.Lon < -180 || *req.Lon > 180) {
		return domainerrors.ErrValidation.WithMessage("coordinates out of range")
	}

	if req.Mode == entity.DispatchModeDirect && len(req.ReceiverIDs) == 0 && !req.Targets.Any() {
		return domainerrors.ErrValidation.WithMessage("direct dispatch needs receivers or target groups")
	}

	return nil
}

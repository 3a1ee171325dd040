package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

// Initialize creates the singleton staking config with zeroed counters. The
// primary key on the config document makes a second call fail.
func (s *Service) Initialize(
	ctx context.Context, authority string, multiSigThreshold uint8,
) *types.Error {
	if authority == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ValidationError,
			"authority is required",
		)
	}

	configDoc := model.NewStakingConfigDocument(authority, multiSigThreshold)
	if err := s.db.InitStakingConfig(ctx, configDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusConflict,
				types.AlreadyExists,
				"staking system already initialized",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to initialize staking config: %w", err),
		)
	}

	log.Ctx(ctx).Info().
		Str("authority", authority).
		Uint8("multiSigThreshold", multiSigThreshold).
		Msg("Staking system initialized")
	return nil
}

// AddAdmin registers a new administrator. Authority-only, unpaused-only.
func (s *Service) AddAdmin(ctx context.Context, caller, adminID string) *types.Error {
	configDoc, serviceErr := s.requireUnpaused(ctx)
	if serviceErr != nil {
		return serviceErr
	}
	if serviceErr := requireAuthority(configDoc, caller); serviceErr != nil {
		return serviceErr
	}
	if adminID == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ValidationError,
			"admin identity is required",
		)
	}

	adminDoc := model.NewAdminDocument(adminID, s.clock.Now().Unix())
	if err := s.db.SaveNewAdmin(ctx, adminDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusConflict,
				types.AlreadyExists,
				"admin already exists",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to save new admin: %w", err),
		)
	}

	s.emitAdminActionEvent(ctx, caller, "addAdmin", adminID)
	return nil
}

// SetAdminActive enables or disables an admin key. Only the authority may
// change admin status.
func (s *Service) SetAdminActive(
	ctx context.Context, caller, adminID string, active bool,
) *types.Error {
	configDoc, serviceErr := s.requireUnpaused(ctx)
	if serviceErr != nil {
		return serviceErr
	}
	if serviceErr := requireAuthority(configDoc, caller); serviceErr != nil {
		return serviceErr
	}

	if err := s.db.SetAdminActive(ctx, adminID, active); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				"admin not found",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to update admin active flag: %w", err),
		)
	}

	s.emitAdminActionEvent(ctx, caller, "setAdminActive", fmt.Sprintf("%s,%t", adminID, active))
	return nil
}

// Pause freezes every mutating operation except the pause toggle itself.
// The toggle is idempotent; pausing an already paused system just refreshes
// the paused-at timestamp.
func (s *Service) Pause(ctx context.Context, caller string) *types.Error {
	if serviceErr := s.requireActiveAdmin(ctx, caller); serviceErr != nil {
		return serviceErr
	}

	pausedAt := s.clock.Now().Unix()
	if err := s.db.SetPaused(ctx, true, pausedAt); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusPreconditionFailed,
				types.NotFound,
				"staking system is not initialized",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to pause: %w", err),
		)
	}

	log.Ctx(ctx).Warn().Str("admin", caller).Msg("Staking system paused")
	s.emitPauseToggledEvent(ctx, caller, true, pausedAt)
	s.emitAdminActionEvent(ctx, caller, "pause", "")
	return nil
}

// Unpause lifts the freeze and clears the paused-at timestamp.
func (s *Service) Unpause(ctx context.Context, caller string) *types.Error {
	if serviceErr := s.requireActiveAdmin(ctx, caller); serviceErr != nil {
		return serviceErr
	}

	if err := s.db.SetPaused(ctx, false, 0); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusPreconditionFailed,
				types.NotFound,
				"staking system is not initialized",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to unpause: %w", err),
		)
	}

	log.Ctx(ctx).Info().Str("admin", caller).Msg("Staking system unpaused")
	s.emitPauseToggledEvent(ctx, caller, false, 0)
	s.emitAdminActionEvent(ctx, caller, "unpause", "")
	return nil
}

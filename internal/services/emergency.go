package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

// EmergencyUnlock is the two-phase delayed override. The first call for a
// position records the request and returns without unlocking; a later call,
// at least EmergencyDelay after the request, executes it and returns the
// asset to the position owner regardless of who called.
//
// The returned flag reports whether the unlock was executed (true) or merely
// requested (false).
func (s *Service) EmergencyUnlock(
	ctx context.Context, caller, positionID, reason string,
) (executed bool, serviceErr *types.Error) {
	start := time.Now()
	defer func() {
		metrics.RecordStakingOperationDuration(time.Since(start), "EmergencyUnlock", serviceErr != nil)
	}()

	if reason == "" {
		return false, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ReasonRequired,
			"reason required for emergency action",
		)
	}
	if _, serviceErr = s.requireUnpaused(ctx); serviceErr != nil {
		return false, serviceErr
	}
	if serviceErr = s.requireActiveAdmin(ctx, caller); serviceErr != nil {
		return false, serviceErr
	}

	positionDoc, err := s.db.GetPositionByID(ctx, positionID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return false, types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				"position not found",
			)
		}
		return false, types.NewInternalServiceError(
			fmt.Errorf("failed to load position: %w", err),
		)
	}
	if !positionDoc.IsActive {
		return false, types.NewErrorWithMsg(
			http.StatusPreconditionFailed,
			types.PositionNotActive,
			"position is not active",
		)
	}

	escalationDoc, err := s.db.GetEscalationByPosition(ctx, positionID)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return false, types.NewInternalServiceError(
				fmt.Errorf("failed to load escalation: %w", err),
			)
		}
		// Phase one: record the request and stop.
		return false, s.requestEmergencyUnlock(ctx, caller, positionID, reason)
	}

	// Phase two: the delay must have elapsed and the request must still be
	// pending.
	if escalationDoc.State == types.EscalationExecuted {
		return false, types.NewErrorWithMsg(
			http.StatusPreconditionFailed,
			types.EmergencyAlreadyExecuted,
			"emergency request already executed",
		)
	}
	delaySeconds := int64(types.EmergencyDelay / time.Second)
	if s.clock.Now().Unix() < escalationDoc.RequestedAt+delaySeconds {
		return false, types.NewErrorWithMsg(
			http.StatusPreconditionFailed,
			types.EmergencyDelayNotMet,
			"emergency delay not met",
		)
	}

	if err := s.db.ExecuteEscalation(ctx, positionID, positionDoc.CollectionID); err != nil {
		// Lost the compare-and-swap to a concurrent execute or claim.
		if db.IsNotFoundError(err) {
			return false, types.NewErrorWithMsg(
				http.StatusPreconditionFailed,
				types.EmergencyAlreadyExecuted,
				"emergency request already executed",
			)
		}
		return false, types.NewInternalServiceError(
			fmt.Errorf("failed to execute escalation: %w", err),
		)
	}

	// The asset always goes back to the position owner, not the caller.
	if err := s.transfer.Transfer(
		ctx, positionDoc.AssetID, s.cfg.Transfer.CustodyAccount, positionDoc.Owner,
	); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("positionId", positionID).
			Str("assetId", positionDoc.AssetID).
			Msg("Emergency unlock executed but asset transfer failed")
		return false, newTransferError(err)
	}

	log.Ctx(ctx).Warn().
		Str("positionId", positionID).
		Str("assetId", positionDoc.AssetID).
		Str("owner", positionDoc.Owner).
		Str("admin", caller).
		Str("reason", reason).
		Msg("Emergency unlock executed")
	s.emitEmergencyUnlockExecutedEvent(ctx, caller, positionDoc, reason)
	s.emitAdminActionEvent(ctx, caller, "emergencyUnlock", fmt.Sprintf("%s,%s", positionDoc.AssetID, reason))
	return true, nil
}

func (s *Service) requestEmergencyUnlock(
	ctx context.Context, caller, positionID, reason string,
) *types.Error {
	escalationDoc := model.NewEscalationDocument(
		positionID, caller, reason, s.clock.Now().Unix(),
	)
	if err := s.db.SaveNewEscalation(ctx, escalationDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			// A concurrent request won the insert; the delay clock is theirs.
			return types.NewErrorWithMsg(
				http.StatusConflict,
				types.AlreadyExists,
				"emergency request already pending",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to save escalation: %w", err),
		)
	}

	log.Ctx(ctx).Warn().
		Str("positionId", positionID).
		Str("admin", caller).
		Str("reason", reason).
		Msg("Emergency unlock requested")
	s.emitEmergencyUnlockRequestedEvent(ctx, caller, positionID, reason)
	return nil
}

package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

// Stake locks one asset for the chosen duration tier. The asset moves into
// custody before the position record exists; if the transfer fails nothing is
// written. If the position insert then loses a duplicate race, the transfer
// is compensated and the duplicate error surfaced.
func (s *Service) Stake(
	ctx context.Context,
	caller, assetID, collectionID string,
	tier types.DurationTier,
) (positionDoc *model.PositionDocument, serviceErr *types.Error) {
	start := time.Now()
	defer func() {
		metrics.RecordStakingOperationDuration(time.Since(start), "Stake", serviceErr != nil)
	}()

	if _, serviceErr = s.requireUnpaused(ctx); serviceErr != nil {
		return nil, serviceErr
	}
	if !tier.Valid() {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.InvalidDuration,
			"invalid staking duration tier",
		)
	}

	collectionDoc, err := s.db.GetAssetCollectionByID(ctx, collectionID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				"collection not found",
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to load collection: %w", err),
		)
	}
	if !collectionDoc.IsActive {
		return nil, types.NewErrorWithMsg(
			http.StatusPreconditionFailed,
			types.CollectionNotActive,
			"collection is not active",
		)
	}

	// Cheap pre-check; the partial unique index is the authoritative guard.
	_, err = s.db.GetActivePositionByAsset(ctx, assetID, caller)
	if err == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusConflict,
			types.AlreadyExists,
			"active position already exists for asset and owner",
		)
	}
	if !db.IsNotFoundError(err) {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to check for existing position: %w", err),
		)
	}

	custody := s.cfg.Transfer.CustodyAccount
	if err := s.transfer.Transfer(ctx, assetID, caller, custody); err != nil {
		return nil, newTransferError(err)
	}

	now := s.clock.Now().Unix()
	positionDoc = model.NewPositionDocument(
		uuid.NewString(), caller, assetID, collectionID, now, tier,
	)

	if err := s.db.SaveNewPosition(ctx, positionDoc); err != nil {
		// The asset is already in custody; return it before surfacing the
		// failure.
		if transferErr := s.transfer.Transfer(ctx, assetID, custody, caller); transferErr != nil {
			log.Ctx(ctx).Error().
				Err(transferErr).
				Str("assetId", assetID).
				Str("owner", caller).
				Msg("Failed to return asset after aborted stake; manual intervention required")
		}
		if db.IsDuplicateKeyError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusConflict,
				types.AlreadyExists,
				"active position already exists for asset and owner",
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to save new position: %w", err),
		)
	}

	log.Ctx(ctx).Info().
		Str("positionId", positionDoc.ID).
		Str("assetId", assetID).
		Str("owner", caller).
		Str("tier", tier.String()).
		Int64("unlockAt", positionDoc.UnlockAt).
		Msg("Asset staked")
	s.emitNftStakedEvent(ctx, positionDoc)
	return positionDoc, nil
}

// Claim returns a staked asset to its owner once the lock has elapsed. The
// position is deactivated before the transfer so a retried claim can never
// double-transfer.
func (s *Service) Claim(ctx context.Context, caller, positionID string) (serviceErr *types.Error) {
	start := time.Now()
	defer func() {
		metrics.RecordStakingOperationDuration(time.Since(start), "Claim", serviceErr != nil)
	}()

	if _, serviceErr = s.requireUnpaused(ctx); serviceErr != nil {
		return serviceErr
	}

	positionDoc, err := s.db.GetPositionByID(ctx, positionID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				"position not found",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to load position: %w", err),
		)
	}

	if !positionDoc.IsActive {
		return types.NewErrorWithMsg(
			http.StatusPreconditionFailed,
			types.PositionNotActive,
			"position is not active",
		)
	}
	if positionDoc.Owner != caller {
		return types.NewErrorWithMsg(
			http.StatusForbidden,
			types.NotPositionOwner,
			"caller is not the position owner",
		)
	}
	if s.clock.Now().Unix() < positionDoc.UnlockAt {
		return types.NewErrorWithMsg(
			http.StatusPreconditionFailed,
			types.StakingPeriodNotCompleted,
			"staking period not completed",
		)
	}

	if err := s.db.DeactivatePosition(ctx, positionID, positionDoc.CollectionID); err != nil {
		// A concurrent claim or emergency unlock won the compare-and-swap.
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusPreconditionFailed,
				types.PositionNotActive,
				"position is not active",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to deactivate position: %w", err),
		)
	}

	if err := s.transfer.Transfer(ctx, positionDoc.AssetID, s.cfg.Transfer.CustodyAccount, caller); err != nil {
		// The position is already inactive, which is what makes a retried
		// transfer safe. The asset stays in custody until resolved.
		log.Ctx(ctx).Error().
			Err(err).
			Str("positionId", positionID).
			Str("assetId", positionDoc.AssetID).
			Msg("Claim deactivated position but asset transfer failed")
		return newTransferError(err)
	}

	log.Ctx(ctx).Info().
		Str("positionId", positionID).
		Str("assetId", positionDoc.AssetID).
		Str("owner", caller).
		Msg("Asset claimed")
	s.emitNftClaimedEvent(ctx, positionDoc)
	return nil
}

package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

// AddCollection registers an eligible asset collection with its reward-ticket
// table. Multipliers are fixed at creation; the global total-collections
// counter moves in the same transaction as the insert.
func (s *Service) AddCollection(
	ctx context.Context,
	caller, collectionID string,
	sixMonthTickets, twelveMonthTickets, threeYearTickets uint64,
) *types.Error {
	configDoc, serviceErr := s.requireUnpaused(ctx)
	if serviceErr != nil {
		return serviceErr
	}
	if serviceErr := requireAuthority(configDoc, caller); serviceErr != nil {
		return serviceErr
	}
	if collectionID == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ValidationError,
			"collection identity is required",
		)
	}

	collectionDoc := model.NewAssetCollectionDocument(
		collectionID, sixMonthTickets, twelveMonthTickets, threeYearTickets,
	)
	if err := s.db.SaveNewAssetCollection(ctx, collectionDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusConflict,
				types.AlreadyExists,
				"collection already exists",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to save new collection: %w", err),
		)
	}

	s.emitCollectionAddedEvent(ctx, collectionDoc)
	s.emitAdminActionEvent(ctx, caller, "addCollection", fmt.Sprintf(
		"%s,%d,%d,%d", collectionID, sixMonthTickets, twelveMonthTickets, threeYearTickets,
	))
	return nil
}

// UpdateCollectionRewards overwrites the ticket table of a collection.
// Admin-gated; multipliers stay untouched.
func (s *Service) UpdateCollectionRewards(
	ctx context.Context,
	caller, collectionID string,
	sixMonthTickets, twelveMonthTickets, threeYearTickets uint64,
) *types.Error {
	if _, serviceErr := s.requireUnpaused(ctx); serviceErr != nil {
		return serviceErr
	}
	if serviceErr := s.requireActiveAdmin(ctx, caller); serviceErr != nil {
		return serviceErr
	}

	err := s.db.UpdateAssetCollectionRewards(
		ctx, collectionID, sixMonthTickets, twelveMonthTickets, threeYearTickets,
	)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				"collection not found",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to update collection rewards: %w", err),
		)
	}

	s.emitCollectionUpdatedEvent(ctx, collectionID, sixMonthTickets, twelveMonthTickets, threeYearTickets)
	s.emitAdminActionEvent(ctx, caller, "updateCollectionRewards", fmt.Sprintf(
		"%s,%d,%d,%d", collectionID, sixMonthTickets, twelveMonthTickets, threeYearTickets,
	))
	return nil
}

// ValidateCollection flips the advisory validated flag. The staking path does
// not consult it.
func (s *Service) ValidateCollection(
	ctx context.Context, caller, collectionID string, validated bool,
) *types.Error {
	if _, serviceErr := s.requireUnpaused(ctx); serviceErr != nil {
		return serviceErr
	}
	if serviceErr := s.requireActiveAdmin(ctx, caller); serviceErr != nil {
		return serviceErr
	}

	if err := s.db.SetAssetCollectionValidated(ctx, collectionID, validated); err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				"collection not found",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to update collection validated flag: %w", err),
		)
	}

	s.emitAdminActionEvent(ctx, caller, "validateCollection", fmt.Sprintf("%s,%t", collectionID, validated))
	return nil
}

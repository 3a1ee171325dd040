package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

// GetStakingStatus returns the singleton config document, which doubles as
// the system status: pause state and the denormalized totals.
func (s *Service) GetStakingStatus(ctx context.Context) (*model.StakingConfigDocument, *types.Error) {
	configDoc, err := s.db.GetStakingConfig(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				"staking system is not initialized",
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to load staking config: %w", err),
		)
	}
	return configDoc, nil
}

// ListCollections returns every registered collection, active or not.
func (s *Service) ListCollections(ctx context.Context) ([]*model.AssetCollectionDocument, *types.Error) {
	collectionDocs, err := s.db.GetAssetCollections(ctx)
	if err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to list collections: %w", err),
		)
	}
	return collectionDocs, nil
}

// GetPosition returns one position together with its escalation record, if an
// emergency unlock has been requested for it.
func (s *Service) GetPosition(
	ctx context.Context, positionID string,
) (*model.PositionDocument, *model.EscalationDocument, *types.Error) {
	positionDoc, err := s.db.GetPositionByID(ctx, positionID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, nil, types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				"position not found",
			)
		}
		return nil, nil, types.NewInternalServiceError(
			fmt.Errorf("failed to load position: %w", err),
		)
	}

	escalationDoc, err := s.db.GetEscalationByPosition(ctx, positionID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return positionDoc, nil, nil
		}
		return nil, nil, types.NewInternalServiceError(
			fmt.Errorf("failed to load escalation: %w", err),
		)
	}
	return positionDoc, escalationDoc, nil
}

package db

import (
	"context"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go

type DbInterface interface {
	Ping(ctx context.Context) error

	// global config / pause control
	InitStakingConfig(ctx context.Context, configDoc *model.StakingConfigDocument) error
	GetStakingConfig(ctx context.Context) (*model.StakingConfigDocument, error)
	SetPaused(ctx context.Context, paused bool, pausedAt int64) error

	// admin registry
	SaveNewAdmin(ctx context.Context, adminDoc *model.AdminDocument) error
	GetAdminByID(ctx context.Context, adminID string) (*model.AdminDocument, error)
	SetAdminActive(ctx context.Context, adminID string, active bool) error

	// collection registry
	SaveNewAssetCollection(ctx context.Context, collectionDoc *model.AssetCollectionDocument) error
	GetAssetCollectionByID(ctx context.Context, collectionID string) (*model.AssetCollectionDocument, error)
	GetAssetCollections(ctx context.Context) ([]*model.AssetCollectionDocument, error)
	UpdateAssetCollectionRewards(ctx context.Context, collectionID string, sixMonthTickets, twelveMonthTickets, threeYearTickets uint64) error
	SetAssetCollectionValidated(ctx context.Context, collectionID string, validated bool) error

	// position ledger
	SaveNewPosition(ctx context.Context, positionDoc *model.PositionDocument) error
	GetPositionByID(ctx context.Context, positionID string) (*model.PositionDocument, error)
	GetActivePositionByAsset(ctx context.Context, assetID, owner string) (*model.PositionDocument, error)
	DeactivatePosition(ctx context.Context, positionID, collectionID string) error

	// emergency escalation
	SaveNewEscalation(ctx context.Context, escalationDoc *model.EscalationDocument) error
	GetEscalationByPosition(ctx context.Context, positionID string) (*model.EscalationDocument, error)
	ExecuteEscalation(ctx context.Context, positionID, collectionID string) error

	// counter audit
	CountActivePositions(ctx context.Context) (int64, error)
	CountActivePositionsByCollection(ctx context.Context, collectionID string) (int64, error)
	SetGlobalTotalStaked(ctx context.Context, total int64) error
	SetAssetCollectionTotalStaked(ctx context.Context, collectionID string, total int64) error
}

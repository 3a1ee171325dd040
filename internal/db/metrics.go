package db

import (
	"context"
	"time"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.RecordDbLatency(time.Since(start), method, err != nil)
	return err
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) InitStakingConfig(ctx context.Context, configDoc *model.StakingConfigDocument) error {
	return d.run("InitStakingConfig", func() error {
		return d.db.InitStakingConfig(ctx, configDoc)
	})
}

func (d *DbWithMetrics) GetStakingConfig(ctx context.Context) (result *model.StakingConfigDocument, err error) {
	//nolint:errcheck
	d.run("GetStakingConfig", func() error {
		result, err = d.db.GetStakingConfig(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SetPaused(ctx context.Context, paused bool, pausedAt int64) error {
	return d.run("SetPaused", func() error {
		return d.db.SetPaused(ctx, paused, pausedAt)
	})
}

func (d *DbWithMetrics) SaveNewAdmin(ctx context.Context, adminDoc *model.AdminDocument) error {
	return d.run("SaveNewAdmin", func() error {
		return d.db.SaveNewAdmin(ctx, adminDoc)
	})
}

func (d *DbWithMetrics) GetAdminByID(ctx context.Context, adminID string) (result *model.AdminDocument, err error) {
	//nolint:errcheck
	d.run("GetAdminByID", func() error {
		result, err = d.db.GetAdminByID(ctx, adminID)
		return err
	})
	return
}

func (d *DbWithMetrics) SetAdminActive(ctx context.Context, adminID string, active bool) error {
	return d.run("SetAdminActive", func() error {
		return d.db.SetAdminActive(ctx, adminID, active)
	})
}

func (d *DbWithMetrics) SaveNewAssetCollection(ctx context.Context, collectionDoc *model.AssetCollectionDocument) error {
	return d.run("SaveNewAssetCollection", func() error {
		return d.db.SaveNewAssetCollection(ctx, collectionDoc)
	})
}

func (d *DbWithMetrics) GetAssetCollectionByID(ctx context.Context, collectionID string) (result *model.AssetCollectionDocument, err error) {
	//nolint:errcheck
	d.run("GetAssetCollectionByID", func() error {
		result, err = d.db.GetAssetCollectionByID(ctx, collectionID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAssetCollections(ctx context.Context) (result []*model.AssetCollectionDocument, err error) {
	//nolint:errcheck
	d.run("GetAssetCollections", func() error {
		result, err = d.db.GetAssetCollections(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateAssetCollectionRewards(ctx context.Context, collectionID string, sixMonthTickets, twelveMonthTickets, threeYearTickets uint64) error {
	return d.run("UpdateAssetCollectionRewards", func() error {
		return d.db.UpdateAssetCollectionRewards(ctx, collectionID, sixMonthTickets, twelveMonthTickets, threeYearTickets)
	})
}

func (d *DbWithMetrics) SetAssetCollectionValidated(ctx context.Context, collectionID string, validated bool) error {
	return d.run("SetAssetCollectionValidated", func() error {
		return d.db.SetAssetCollectionValidated(ctx, collectionID, validated)
	})
}

func (d *DbWithMetrics) SaveNewPosition(ctx context.Context, positionDoc *model.PositionDocument) error {
	return d.run("SaveNewPosition", func() error {
		return d.db.SaveNewPosition(ctx, positionDoc)
	})
}

func (d *DbWithMetrics) GetPositionByID(ctx context.Context, positionID string) (result *model.PositionDocument, err error) {
	//nolint:errcheck
	d.run("GetPositionByID", func() error {
		result, err = d.db.GetPositionByID(ctx, positionID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetActivePositionByAsset(ctx context.Context, assetID, owner string) (result *model.PositionDocument, err error) {
	//nolint:errcheck
	d.run("GetActivePositionByAsset", func() error {
		result, err = d.db.GetActivePositionByAsset(ctx, assetID, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) DeactivatePosition(ctx context.Context, positionID, collectionID string) error {
	return d.run("DeactivatePosition", func() error {
		return d.db.DeactivatePosition(ctx, positionID, collectionID)
	})
}

func (d *DbWithMetrics) SaveNewEscalation(ctx context.Context, escalationDoc *model.EscalationDocument) error {
	return d.run("SaveNewEscalation", func() error {
		return d.db.SaveNewEscalation(ctx, escalationDoc)
	})
}

func (d *DbWithMetrics) GetEscalationByPosition(ctx context.Context, positionID string) (result *model.EscalationDocument, err error) {
	//nolint:errcheck
	d.run("GetEscalationByPosition", func() error {
		result, err = d.db.GetEscalationByPosition(ctx, positionID)
		return err
	})
	return
}

func (d *DbWithMetrics) ExecuteEscalation(ctx context.Context, positionID, collectionID string) error {
	return d.run("ExecuteEscalation", func() error {
		return d.db.ExecuteEscalation(ctx, positionID, collectionID)
	})
}

func (d *DbWithMetrics) CountActivePositions(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	d.run("CountActivePositions", func() error {
		result, err = d.db.CountActivePositions(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) CountActivePositionsByCollection(ctx context.Context, collectionID string) (result int64, err error) {
	//nolint:errcheck
	d.run("CountActivePositionsByCollection", func() error {
		result, err = d.db.CountActivePositionsByCollection(ctx, collectionID)
		return err
	})
	return
}

func (d *DbWithMetrics) SetGlobalTotalStaked(ctx context.Context, total int64) error {
	return d.run("SetGlobalTotalStaked", func() error {
		return d.db.SetGlobalTotalStaked(ctx, total)
	})
}

func (d *DbWithMetrics) SetAssetCollectionTotalStaked(ctx context.Context, collectionID string, total int64) error {
	return d.run("SetAssetCollectionTotalStaked", func() error {
		return d.db.SetAssetCollectionTotalStaked(ctx, collectionID, total)
	})
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/testutil"
)

func TestAuditCounters(t *testing.T) {
	ctx := context.Background()

	t.Run("no drift leaves counters untouched", func(t *testing.T) {
		f := newFixture(t)
		configDoc := unpausedConfig()
		configDoc.TotalStaked = 2
		collection := testutil.RandomCollection()
		collection.TotalStaked = 2

		f.db.On("GetStakingConfig", mock.Anything).Return(configDoc, nil)
		f.db.On("CountActivePositions", mock.Anything).Return(int64(2), nil)
		f.db.On("GetAssetCollections", mock.Anything).
			Return([]*model.AssetCollectionDocument{collection}, nil)
		f.db.On("CountActivePositionsByCollection", mock.Anything, collection.ID).
			Return(int64(2), nil)

		require.NoError(t, f.svc.AuditCounters(ctx))
		f.db.AssertNotCalled(t, "SetGlobalTotalStaked", mock.Anything, mock.Anything)
		f.db.AssertNotCalled(t, "SetAssetCollectionTotalStaked", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("drift is repaired from the position recount", func(t *testing.T) {
		f := newFixture(t)
		configDoc := unpausedConfig()
		configDoc.TotalStaked = 5
		drifted := testutil.RandomCollection()
		drifted.TotalStaked = 3
		clean := testutil.RandomCollection()
		clean.TotalStaked = 1

		f.db.On("GetStakingConfig", mock.Anything).Return(configDoc, nil)
		f.db.On("CountActivePositions", mock.Anything).Return(int64(3), nil)
		f.db.On("SetGlobalTotalStaked", mock.Anything, int64(3)).Return(nil)
		f.db.On("GetAssetCollections", mock.Anything).
			Return([]*model.AssetCollectionDocument{drifted, clean}, nil)
		f.db.On("CountActivePositionsByCollection", mock.Anything, drifted.ID).
			Return(int64(2), nil)
		f.db.On("CountActivePositionsByCollection", mock.Anything, clean.ID).
			Return(int64(1), nil)
		f.db.On("SetAssetCollectionTotalStaked", mock.Anything, drifted.ID, int64(2)).Return(nil)

		require.NoError(t, f.svc.AuditCounters(ctx))
	})

	t.Run("report-only mode never writes", func(t *testing.T) {
		f := newFixture(t)
		f.svc.cfg.Audit.Repair = false
		configDoc := unpausedConfig()
		configDoc.TotalStaked = 5

		f.db.On("GetStakingConfig", mock.Anything).Return(configDoc, nil)
		f.db.On("CountActivePositions", mock.Anything).Return(int64(3), nil)
		f.db.On("GetAssetCollections", mock.Anything).
			Return([]*model.AssetCollectionDocument{}, nil)

		require.NoError(t, f.svc.AuditCounters(ctx))
		f.db.AssertNotCalled(t, "SetGlobalTotalStaked", mock.Anything, mock.Anything)
	})
}

package services

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/db"
	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
	"github.com/naffleslabs/nft-staking-service/internal/types"
	"github.com/naffleslabs/nft-staking-service/testutil"
	"github.com/naffleslabs/nft-staking-service/tests/mocks"
)

const custodyAccount = "custody-vault"

var startTime = time.Unix(1_700_000_000, 0)

func TestMain(m *testing.M) {
	// Record* helpers need registered collectors; port 0 picks a free one.
	metrics.Init(0)
	os.Exit(m.Run())
}

type serviceFixture struct {
	svc      *Service
	db       *mocks.DbInterface
	transfer *mocks.TransferInterface
	events   *mocks.EventSink
	clock    *clockwork.FakeClock
}

func newFixture(t *testing.T) *serviceFixture {
	dbMock := mocks.NewDbInterface(t)
	transferMock := mocks.NewTransferInterface(t)
	eventsMock := mocks.NewEventSink(t)
	clock := clockwork.NewFakeClockAt(startTime)

	cfg := &config.Config{
		Transfer: config.TransferConfig{CustodyAccount: custodyAccount},
		Audit:    config.AuditConfig{PollingInterval: time.Minute, MaxConcurrency: 4, Repair: true},
	}

	return &serviceFixture{
		svc:      NewService(cfg, dbMock, transferMock, eventsMock, clock),
		db:       dbMock,
		transfer: transferMock,
		events:   eventsMock,
		clock:    clock,
	}
}

func (f *serviceFixture) expectUnpaused() {
	f.db.On("GetStakingConfig", mock.Anything).Return(unpausedConfig(), nil)
}

func (f *serviceFixture) expectPaused() {
	cfg := unpausedConfig()
	cfg.IsPaused = true
	cfg.PausedAt = startTime.Unix()
	f.db.On("GetStakingConfig", mock.Anything).Return(cfg, nil)
}

func (f *serviceFixture) expectActiveAdmin(adminID string) {
	f.db.On("GetAdminByID", mock.Anything, adminID).
		Return(model.NewAdminDocument(adminID, startTime.Unix()), nil)
}

func (f *serviceFixture) allowEvents() {
	f.events.On("PublishEvent", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func unpausedConfig() *model.StakingConfigDocument {
	cfg := model.NewStakingConfigDocument("authority-key", 2)
	cfg.TotalStaked = 0
	cfg.TotalCollections = 1
	return cfg
}

func notFound() *db.NotFoundError {
	return &db.NotFoundError{Key: "k", Message: "not found"}
}

func duplicateKey() *db.DuplicateKeyError {
	return &db.DuplicateKeyError{Key: "k", Message: "duplicate"}
}

func requireServiceErr(t *testing.T, serviceErr *types.Error, status int, code types.ErrorCode) {
	t.Helper()
	require.NotNil(t, serviceErr)
	require.Equal(t, status, serviceErr.StatusCode)
	require.Equal(t, code, serviceErr.ErrorCode)
}

func TestStake(t *testing.T) {
	ctx := context.Background()
	owner := testutil.RandomIdentity()
	assetID := testutil.RandomAssetID()

	t.Run("happy path computes unlock from tier", func(t *testing.T) {
		f := newFixture(t)
		collection := testutil.RandomCollection()

		f.expectUnpaused()
		f.db.On("GetAssetCollectionByID", mock.Anything, collection.ID).Return(collection, nil)
		f.db.On("GetActivePositionByAsset", mock.Anything, assetID, owner).Return(nil, notFound())
		f.transfer.On("Transfer", mock.Anything, assetID, owner, custodyAccount).Return(nil)
		f.db.On("SaveNewPosition", mock.Anything, mock.MatchedBy(func(doc *model.PositionDocument) bool {
			return doc.Owner == owner &&
				doc.AssetID == assetID &&
				doc.IsActive &&
				doc.StakedAt == startTime.Unix() &&
				doc.UnlockAt == startTime.Unix()+types.TwelveMonthsSeconds
		})).Return(nil)
		f.events.On("PublishEvent", mock.Anything, types.EventNftStaked, mock.Anything).Return(nil)

		positionDoc, serviceErr := f.svc.Stake(ctx, owner, assetID, collection.ID, types.TierTwelveMonths)
		require.Nil(t, serviceErr)
		require.NotNil(t, positionDoc)
		require.Equal(t, int64(31_536_000), positionDoc.UnlockAt-positionDoc.StakedAt)
	})

	t.Run("invalid tier", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()

		_, serviceErr := f.svc.Stake(ctx, owner, assetID, "c1", types.DurationTier(3))
		requireServiceErr(t, serviceErr, http.StatusBadRequest, types.InvalidDuration)
	})

	t.Run("paused system rejects stake", func(t *testing.T) {
		f := newFixture(t)
		f.expectPaused()

		_, serviceErr := f.svc.Stake(ctx, owner, assetID, "c1", types.TierSixMonths)
		requireServiceErr(t, serviceErr, http.StatusPreconditionFailed, types.SystemPaused)
	})

	t.Run("unknown collection", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()
		f.db.On("GetAssetCollectionByID", mock.Anything, "missing").Return(nil, notFound())

		_, serviceErr := f.svc.Stake(ctx, owner, assetID, "missing", types.TierSixMonths)
		requireServiceErr(t, serviceErr, http.StatusNotFound, types.NotFound)
	})

	t.Run("inactive collection", func(t *testing.T) {
		f := newFixture(t)
		collection := testutil.RandomCollection()
		collection.IsActive = false

		f.expectUnpaused()
		f.db.On("GetAssetCollectionByID", mock.Anything, collection.ID).Return(collection, nil)

		_, serviceErr := f.svc.Stake(ctx, owner, assetID, collection.ID, types.TierSixMonths)
		requireServiceErr(t, serviceErr, http.StatusPreconditionFailed, types.CollectionNotActive)
	})

	t.Run("existing active position blocks before any transfer", func(t *testing.T) {
		f := newFixture(t)
		collection := testutil.RandomCollection()
		existing := testutil.RandomPosition(startTime.Unix(), types.TierSixMonths)

		f.expectUnpaused()
		f.db.On("GetAssetCollectionByID", mock.Anything, collection.ID).Return(collection, nil)
		f.db.On("GetActivePositionByAsset", mock.Anything, assetID, owner).Return(existing, nil)

		_, serviceErr := f.svc.Stake(ctx, owner, assetID, collection.ID, types.TierSixMonths)
		requireServiceErr(t, serviceErr, http.StatusConflict, types.AlreadyExists)
		f.transfer.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed transfer writes nothing", func(t *testing.T) {
		f := newFixture(t)
		collection := testutil.RandomCollection()

		f.expectUnpaused()
		f.db.On("GetAssetCollectionByID", mock.Anything, collection.ID).Return(collection, nil)
		f.db.On("GetActivePositionByAsset", mock.Anything, assetID, owner).Return(nil, notFound())
		f.transfer.On("Transfer", mock.Anything, assetID, owner, custodyAccount).
			Return(context.DeadlineExceeded)

		_, serviceErr := f.svc.Stake(ctx, owner, assetID, collection.ID, types.TierSixMonths)
		requireServiceErr(t, serviceErr, http.StatusBadGateway, types.TransferFailed)
		f.db.AssertNotCalled(t, "SaveNewPosition", mock.Anything, mock.Anything)
	})

	t.Run("lost insert race compensates the transfer", func(t *testing.T) {
		f := newFixture(t)
		collection := testutil.RandomCollection()

		f.expectUnpaused()
		f.db.On("GetAssetCollectionByID", mock.Anything, collection.ID).Return(collection, nil)
		f.db.On("GetActivePositionByAsset", mock.Anything, assetID, owner).Return(nil, notFound())
		f.transfer.On("Transfer", mock.Anything, assetID, owner, custodyAccount).Return(nil)
		f.db.On("SaveNewPosition", mock.Anything, mock.Anything).Return(duplicateKey())
		// compensating return transfer
		f.transfer.On("Transfer", mock.Anything, assetID, custodyAccount, owner).Return(nil)

		_, serviceErr := f.svc.Stake(ctx, owner, assetID, collection.ID, types.TierSixMonths)
		requireServiceErr(t, serviceErr, http.StatusConflict, types.AlreadyExists)
	})
}

func TestClaim(t *testing.T) {
	ctx := context.Background()
	owner := testutil.RandomIdentity()

	newPosition := func() *model.PositionDocument {
		doc := testutil.RandomPosition(startTime.Unix(), types.TierTwelveMonths)
		doc.Owner = owner
		return doc
	}

	t.Run("one second early is rejected", func(t *testing.T) {
		f := newFixture(t)
		position := newPosition()

		f.expectUnpaused()
		f.db.On("GetPositionByID", mock.Anything, position.ID).Return(position, nil)
		f.clock.Advance(time.Duration(types.TwelveMonthsSeconds-1) * time.Second)

		serviceErr := f.svc.Claim(ctx, owner, position.ID)
		requireServiceErr(t, serviceErr, http.StatusPreconditionFailed, types.StakingPeriodNotCompleted)
	})

	t.Run("claimable at exactly the unlock instant", func(t *testing.T) {
		f := newFixture(t)
		position := newPosition()

		f.expectUnpaused()
		f.db.On("GetPositionByID", mock.Anything, position.ID).Return(position, nil)
		f.db.On("DeactivatePosition", mock.Anything, position.ID, position.CollectionID).Return(nil)
		f.transfer.On("Transfer", mock.Anything, position.AssetID, custodyAccount, owner).Return(nil)
		f.events.On("PublishEvent", mock.Anything, types.EventNftClaimed, mock.Anything).Return(nil)
		f.clock.Advance(time.Duration(types.TwelveMonthsSeconds) * time.Second)

		serviceErr := f.svc.Claim(ctx, owner, position.ID)
		require.Nil(t, serviceErr)
	})

	t.Run("only the owner can claim", func(t *testing.T) {
		f := newFixture(t)
		position := newPosition()

		f.expectUnpaused()
		f.db.On("GetPositionByID", mock.Anything, position.ID).Return(position, nil)
		f.clock.Advance(time.Duration(types.TwelveMonthsSeconds) * time.Second)

		serviceErr := f.svc.Claim(ctx, "someone-else", position.ID)
		requireServiceErr(t, serviceErr, http.StatusForbidden, types.NotPositionOwner)
	})

	t.Run("double claim", func(t *testing.T) {
		f := newFixture(t)
		position := newPosition()
		position.IsActive = false

		f.expectUnpaused()
		f.db.On("GetPositionByID", mock.Anything, position.ID).Return(position, nil)

		serviceErr := f.svc.Claim(ctx, owner, position.ID)
		requireServiceErr(t, serviceErr, http.StatusPreconditionFailed, types.PositionNotActive)
	})

	t.Run("lost deactivate race maps to not active", func(t *testing.T) {
		f := newFixture(t)
		position := newPosition()

		f.expectUnpaused()
		f.db.On("GetPositionByID", mock.Anything, position.ID).Return(position, nil)
		f.db.On("DeactivatePosition", mock.Anything, position.ID, position.CollectionID).
			Return(notFound())
		f.clock.Advance(time.Duration(types.TwelveMonthsSeconds) * time.Second)

		serviceErr := f.svc.Claim(ctx, owner, position.ID)
		requireServiceErr(t, serviceErr, http.StatusPreconditionFailed, types.PositionNotActive)
		f.transfer.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("transfer failure after deactivation is surfaced", func(t *testing.T) {
		f := newFixture(t)
		position := newPosition()

		f.expectUnpaused()
		f.db.On("GetPositionByID", mock.Anything, position.ID).Return(position, nil)
		f.db.On("DeactivatePosition", mock.Anything, position.ID, position.CollectionID).Return(nil)
		f.transfer.On("Transfer", mock.Anything, position.AssetID, custodyAccount, owner).
			Return(context.DeadlineExceeded)
		f.clock.Advance(time.Duration(types.TwelveMonthsSeconds) * time.Second)

		serviceErr := f.svc.Claim(ctx, owner, position.ID)
		requireServiceErr(t, serviceErr, http.StatusBadGateway, types.TransferFailed)
	})
}

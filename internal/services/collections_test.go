package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/types"
	"github.com/naffleslabs/nft-staking-service/testutil"
)

func TestAddCollection(t *testing.T) {
	ctx := context.Background()
	collectionID := testutil.RandomCollectionID()

	t.Run("authority adds collection with fixed multipliers", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()
		f.db.On("SaveNewAssetCollection", mock.Anything, mock.MatchedBy(func(doc *model.AssetCollectionDocument) bool {
			return doc.ID == collectionID &&
				doc.SixMonthTickets == 5 &&
				doc.TwelveMonthTickets == 10 &&
				doc.ThreeYearTickets == 20 &&
				doc.SixMonthMultiplier == 11000 &&
				doc.TwelveMonthMultiplier == 12500 &&
				doc.ThreeYearMultiplier == 15000 &&
				doc.IsActive &&
				!doc.IsValidated &&
				doc.TotalStaked == 0
		})).Return(nil)
		f.allowEvents()

		serviceErr := f.svc.AddCollection(ctx, "authority-key", collectionID, 5, 10, 20)
		require.Nil(t, serviceErr)
	})

	t.Run("non-authority caller", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()

		serviceErr := f.svc.AddCollection(ctx, "someone", collectionID, 5, 10, 20)
		requireServiceErr(t, serviceErr, http.StatusForbidden, types.Unauthorized)
	})

	t.Run("duplicate collection", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()
		f.db.On("SaveNewAssetCollection", mock.Anything, mock.Anything).Return(duplicateKey())

		serviceErr := f.svc.AddCollection(ctx, "authority-key", collectionID, 5, 10, 20)
		requireServiceErr(t, serviceErr, http.StatusConflict, types.AlreadyExists)
	})

	t.Run("empty collection id", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()

		serviceErr := f.svc.AddCollection(ctx, "authority-key", "", 5, 10, 20)
		requireServiceErr(t, serviceErr, http.StatusBadRequest, types.ValidationError)
	})
}

func TestUpdateCollectionRewards(t *testing.T) {
	ctx := context.Background()
	admin := testutil.RandomIdentity()
	collectionID := testutil.RandomCollectionID()

	t.Run("active admin overwrites ticket counts", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()
		f.expectActiveAdmin(admin)
		f.db.On("UpdateAssetCollectionRewards", mock.Anything, collectionID,
			uint64(1), uint64(2), uint64(3)).Return(nil)
		f.allowEvents()

		serviceErr := f.svc.UpdateCollectionRewards(ctx, admin, collectionID, 1, 2, 3)
		require.Nil(t, serviceErr)
	})

	t.Run("unknown collection", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()
		f.expectActiveAdmin(admin)
		f.db.On("UpdateAssetCollectionRewards", mock.Anything, collectionID,
			uint64(1), uint64(2), uint64(3)).Return(notFound())

		serviceErr := f.svc.UpdateCollectionRewards(ctx, admin, collectionID, 1, 2, 3)
		requireServiceErr(t, serviceErr, http.StatusNotFound, types.NotFound)
	})

	t.Run("non-admin caller", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()
		f.db.On("GetAdminByID", mock.Anything, "stranger").Return(nil, notFound())

		serviceErr := f.svc.UpdateCollectionRewards(ctx, "stranger", collectionID, 1, 2, 3)
		requireServiceErr(t, serviceErr, http.StatusForbidden, types.Unauthorized)
	})
}

func TestValidateCollection(t *testing.T) {
	ctx := context.Background()
	admin := testutil.RandomIdentity()
	collectionID := testutil.RandomCollectionID()

	t.Run("active admin flips the flag", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()
		f.expectActiveAdmin(admin)
		f.db.On("SetAssetCollectionValidated", mock.Anything, collectionID, true).Return(nil)
		f.allowEvents()

		serviceErr := f.svc.ValidateCollection(ctx, admin, collectionID, true)
		require.Nil(t, serviceErr)
	})

	t.Run("unknown collection", func(t *testing.T) {
		f := newFixture(t)
		f.expectUnpaused()
		f.expectActiveAdmin(admin)
		f.db.On("SetAssetCollectionValidated", mock.Anything, collectionID, true).Return(notFound())

		serviceErr := f.svc.ValidateCollection(ctx, admin, collectionID, true)
		requireServiceErr(t, serviceErr, http.StatusNotFound, types.NotFound)
	})
}

package testutil

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

// RandomIdentity returns a plausible caller or account identity.
func RandomIdentity() string {
	return gofakeit.LetterN(44)
}

func RandomAssetID() string {
	return "asset-" + gofakeit.LetterN(32)
}

func RandomCollectionID() string {
	return "collection-" + gofakeit.LetterN(16)
}

func RandomTier() types.DurationTier {
	return types.DurationTier(gofakeit.Number(0, 2))
}

// RandomPosition builds an active position staked at the given time.
func RandomPosition(stakedAt int64, tier types.DurationTier) *model.PositionDocument {
	return model.NewPositionDocument(
		uuid.NewString(),
		RandomIdentity(),
		RandomAssetID(),
		RandomCollectionID(),
		stakedAt,
		tier,
	)
}

// RandomCollection builds an active collection with random ticket counts.
func RandomCollection() *model.AssetCollectionDocument {
	return model.NewAssetCollectionDocument(
		RandomCollectionID(),
		uint64(gofakeit.Number(1, 100)),
		uint64(gofakeit.Number(1, 100)),
		uint64(gofakeit.Number(1, 100)),
	)
}

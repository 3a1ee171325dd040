package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
)

// The counters on the config and collection documents are maintained
// transactionally, but positions remain the recomputable source of truth.
// These helpers let the audit recount and, if needed, repair.

func (db *Database) CountActivePositions(ctx context.Context) (int64, error) {
	return db.collection(model.PositionCollection).
		CountDocuments(ctx, bson.M{"is_active": true})
}

func (db *Database) CountActivePositionsByCollection(
	ctx context.Context, collectionID string,
) (int64, error) {
	filter := bson.M{
		"collection_id": collectionID,
		"is_active":     true,
	}
	return db.collection(model.PositionCollection).
		CountDocuments(ctx, filter)
}

func (db *Database) SetGlobalTotalStaked(ctx context.Context, total int64) error {
	res, err := db.collection(model.StakingConfigCollection).
		UpdateOne(ctx,
			bson.M{"_id": model.StakingConfigID},
			bson.M{"$set": bson.M{"total_staked": total}},
		)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     model.StakingConfigID,
			Message: "staking config not initialized",
		}
	}
	return nil
}

func (db *Database) SetAssetCollectionTotalStaked(
	ctx context.Context, collectionID string, total int64,
) error {
	res, err := db.collection(model.AssetCollectionCollection).
		UpdateOne(ctx,
			bson.M{"_id": collectionID},
			bson.M{"$set": bson.M{"total_staked": total}},
		)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     collectionID,
			Message: "collection not found when repairing counter",
		}
	}
	return nil
}

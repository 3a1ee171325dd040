package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
)

func (db *Database) InitStakingConfig(
	ctx context.Context, configDoc *model.StakingConfigDocument,
) error {
	_, err := db.collection(model.StakingConfigCollection).
		InsertOne(ctx, configDoc)
	if err != nil {
		return asDuplicateKeyError(err, configDoc.ID, "staking config already initialized")
	}
	return nil
}

func (db *Database) GetStakingConfig(ctx context.Context) (*model.StakingConfigDocument, error) {
	filter := bson.M{"_id": model.StakingConfigID}
	res := db.collection(model.StakingConfigCollection).
		FindOne(ctx, filter)

	var configDoc model.StakingConfigDocument
	err := res.Decode(&configDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.StakingConfigID,
				Message: "staking config not initialized",
			}
		}
		return nil, err
	}

	return &configDoc, nil
}

func (db *Database) SetPaused(ctx context.Context, paused bool, pausedAt int64) error {
	filter := bson.M{"_id": model.StakingConfigID}
	update := bson.M{
		"$set": bson.M{
			"is_paused": paused,
			"paused_at": pausedAt,
		},
	}

	res, err := db.collection(model.StakingConfigCollection).
		UpdateOne(ctx, filter, update)
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

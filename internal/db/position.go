package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
)

// SaveNewPosition inserts the position and increments the global and
// per-collection active counters in the same transaction. The partial unique
// index on (asset_id, owner) rejects a second active position for the same
// pair; a racing stake loses with a DuplicateKeyError.
func (db *Database) SaveNewPosition(
	ctx context.Context, positionDoc *model.PositionDocument,
) error {
	return db.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := db.collection(model.PositionCollection).
			InsertOne(sc, positionDoc)
		if err != nil {
			return nil, asDuplicateKeyError(err, positionDoc.AssetID, "active position already exists for asset and owner")
		}

		if err := db.adjustActiveCounters(sc, positionDoc.CollectionID, 1); err != nil {
			return nil, err
		}
		return nil, nil
	})
}

func (db *Database) GetPositionByID(
	ctx context.Context, positionID string,
) (*model.PositionDocument, error) {
	filter := bson.M{"_id": positionID}
	res := db.collection(model.PositionCollection).
		FindOne(ctx, filter)

	var positionDoc model.PositionDocument
	err := res.Decode(&positionDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     positionID,
				Message: "position not found by id",
			}
		}
		return nil, err
	}

	return &positionDoc, nil
}

func (db *Database) GetActivePositionByAsset(
	ctx context.Context, assetID, owner string,
) (*model.PositionDocument, error) {
	filter := bson.M{
		"asset_id":  assetID,
		"owner":     owner,
		"is_active": true,
	}
	res := db.collection(model.PositionCollection).
		FindOne(ctx, filter)

	var positionDoc model.PositionDocument
	err := res.Decode(&positionDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     assetID,
				Message: "no active position for asset and owner",
			}
		}
		return nil, err
	}

	return &positionDoc, nil
}

// DeactivatePosition flips the position inactive and decrements both active
// counters in one transaction. The filter requires is_active so a concurrent
// claim of the same position loses with a NotFoundError instead of
// double-decrementing.
func (db *Database) DeactivatePosition(
	ctx context.Context, positionID, collectionID string,
) error {
	return db.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"_id":       positionID,
			"is_active": true,
		}
		update := bson.M{"$set": bson.M{"is_active": false}}

		res := db.collection(model.PositionCollection).
			FindOneAndUpdate(sc, filter, update)
		if res.Err() != nil {
			if errors.Is(res.Err(), mongo.ErrNoDocuments) {
				return nil, &NotFoundError{
					Key:     positionID,
					Message: "position not found or not active",
				}
			}
			return nil, res.Err()
		}

		if err := db.adjustActiveCounters(sc, collectionID, -1); err != nil {
			return nil, err
		}
		return nil, nil
	})
}

// adjustActiveCounters moves the global and per-collection active-position
// counters together. Callers must hold a session so both $inc operations
// commit atomically with the position write.
func (db *Database) adjustActiveCounters(
	sc mongo.SessionContext, collectionID string, delta int64,
) error {
	res, err := db.collection(model.StakingConfigCollection).
		UpdateOne(sc,
			bson.M{"_id": model.StakingConfigID},
			bson.M{"$inc": bson.M{"total_staked": delta}},
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

	res, err = db.collection(model.AssetCollectionCollection).
		UpdateOne(sc,
			bson.M{"_id": collectionID},
			bson.M{"$inc": bson.M{"total_staked": delta}},
		)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     collectionID,
			Message: "collection not found when adjusting counters",
		}
	}
	return nil
}

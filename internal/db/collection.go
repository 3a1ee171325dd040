package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
)

// SaveNewAssetCollection inserts the collection and bumps the global
// total-collections counter in the same transaction.
func (db *Database) SaveNewAssetCollection(
	ctx context.Context, collectionDoc *model.AssetCollectionDocument,
) error {
	return db.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := db.collection(model.AssetCollectionCollection).
			InsertOne(sc, collectionDoc)
		if err != nil {
			return nil, asDuplicateKeyError(err, collectionDoc.ID, "collection already exists")
		}

		res, err := db.collection(model.StakingConfigCollection).
			UpdateOne(sc,
				bson.M{"_id": model.StakingConfigID},
				bson.M{"$inc": bson.M{"total_collections": 1}},
			)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, &NotFoundError{
				Key:     model.StakingConfigID,
				Message: "staking config not initialized",
			}
		}
		return nil, nil
	})
}

func (db *Database) GetAssetCollectionByID(
	ctx context.Context, collectionID string,
) (*model.AssetCollectionDocument, error) {
	filter := bson.M{"_id": collectionID}
	res := db.collection(model.AssetCollectionCollection).
		FindOne(ctx, filter)

	var collectionDoc model.AssetCollectionDocument
	err := res.Decode(&collectionDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     collectionID,
				Message: "collection not found by id",
			}
		}
		return nil, err
	}

	return &collectionDoc, nil
}

func (db *Database) GetAssetCollections(ctx context.Context) ([]*model.AssetCollectionDocument, error) {
	cursor, err := db.collection(model.AssetCollectionCollection).
		Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var collectionDocs []*model.AssetCollectionDocument
	if err := cursor.All(ctx, &collectionDocs); err != nil {
		return nil, err
	}
	return collectionDocs, nil
}

// UpdateAssetCollectionRewards overwrites the three ticket counts. The
// multipliers are immutable after creation and are never touched here.
func (db *Database) UpdateAssetCollectionRewards(
	ctx context.Context,
	collectionID string,
	sixMonthTickets, twelveMonthTickets, threeYearTickets uint64,
) error {
	filter := bson.M{"_id": collectionID}
	update := bson.M{
		"$set": bson.M{
			"six_month_tickets":    sixMonthTickets,
			"twelve_month_tickets": twelveMonthTickets,
			"three_year_tickets":   threeYearTickets,
		},
	}

	res, err := db.collection(model.AssetCollectionCollection).
		UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     collectionID,
			Message: "collection not found when updating rewards",
		}
	}
	return nil
}

func (db *Database) SetAssetCollectionValidated(
	ctx context.Context, collectionID string, validated bool,
) error {
	filter := bson.M{"_id": collectionID}
	update := bson.M{"$set": bson.M{"is_validated": validated}}

	res, err := db.collection(model.AssetCollectionCollection).
		UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     collectionID,
			Message: "collection not found when updating validated flag",
		}
	}
	return nil
}

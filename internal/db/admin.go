package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
)

func (db *Database) SaveNewAdmin(ctx context.Context, adminDoc *model.AdminDocument) error {
	_, err := db.collection(model.AdminCollection).
		InsertOne(ctx, adminDoc)
	if err != nil {
		return asDuplicateKeyError(err, adminDoc.ID, "admin already exists")
	}
	return nil
}

func (db *Database) GetAdminByID(ctx context.Context, adminID string) (*model.AdminDocument, error) {
	filter := bson.M{"_id": adminID}
	res := db.collection(model.AdminCollection).
		FindOne(ctx, filter)

	var adminDoc model.AdminDocument
	err := res.Decode(&adminDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     adminID,
				Message: "admin not found by id",
			}
		}
		return nil, err
	}

	return &adminDoc, nil
}

func (db *Database) SetAdminActive(ctx context.Context, adminID string, active bool) error {
	filter := bson.M{"_id": adminID}
	update := bson.M{"$set": bson.M{"is_active": active}}

	res, err := db.collection(model.AdminCollection).
		UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     adminID,
			Message: "admin not found when updating active flag",
		}
	}
	return nil
}

package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

func (db *Database) SaveNewEscalation(
	ctx context.Context, escalationDoc *model.EscalationDocument,
) error {
	_, err := db.collection(model.EscalationCollection).
		InsertOne(ctx, escalationDoc)
	if err != nil {
		return asDuplicateKeyError(err, escalationDoc.PositionID, "escalation already exists for position")
	}
	return nil
}

func (db *Database) GetEscalationByPosition(
	ctx context.Context, positionID string,
) (*model.EscalationDocument, error) {
	filter := bson.M{"_id": positionID}
	res := db.collection(model.EscalationCollection).
		FindOne(ctx, filter)

	var escalationDoc model.EscalationDocument
	err := res.Decode(&escalationDoc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     positionID,
				Message: "escalation not found for position",
			}
		}
		return nil, err
	}

	return &escalationDoc, nil
}

// ExecuteEscalation performs the second phase of an emergency unlock: the
// escalation moves REQUESTED -> EXECUTED, the position goes inactive and both
// active counters drop, all in one transaction. Both state transitions are
// enforced in the update filters, so a concurrent execute (or claim) loses
// with a NotFoundError and nothing is double-applied.
func (db *Database) ExecuteEscalation(
	ctx context.Context, positionID, collectionID string,
) error {
	qualifiedStates := types.QualifiedStatesForEscalationExecute()
	qualifiedStateStrs := make([]string, len(qualifiedStates))
	for i, state := range qualifiedStates {
		qualifiedStateStrs[i] = state.String()
	}

	return db.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		escalationFilter := bson.M{
			"_id":   positionID,
			"state": bson.M{"$in": qualifiedStateStrs},
		}
		escalationUpdate := bson.M{
			"$set": bson.M{"state": types.EscalationExecuted.String()},
		}

		res := db.collection(model.EscalationCollection).
			FindOneAndUpdate(sc, escalationFilter, escalationUpdate)
		if res.Err() != nil {
			if errors.Is(res.Err(), mongo.ErrNoDocuments) {
				return nil, &NotFoundError{
					Key:     positionID,
					Message: "escalation not found or already executed",
				}
			}
			return nil, res.Err()
		}

		positionFilter := bson.M{
			"_id":       positionID,
			"is_active": true,
		}
		positionUpdate := bson.M{"$set": bson.M{"is_active": false}}

		res = db.collection(model.PositionCollection).
			FindOneAndUpdate(sc, positionFilter, positionUpdate)
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

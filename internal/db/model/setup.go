package model

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/naffleslabs/nft-staking-service/internal/config"
)

const setupTimeout = 30 * time.Second

var collections = map[string][]mongo.IndexModel{
	StakingConfigCollection:   nil,
	AdminCollection:           nil,
	AssetCollectionCollection: nil,
	PositionCollection: {
		{
			// At most one active position per (asset, owner).
			Keys: bson.D{{Key: "asset_id", Value: 1}, {Key: "owner", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}),
		},
		{
			Keys: bson.D{{Key: "collection_id", Value: 1}, {Key: "is_active", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
	},
	EscalationCollection: nil,
}

// Setup creates the collections and indexes. Safe to run repeatedly.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	database := client.Database(cfg.DbName)

	for name, indexes := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		if len(indexes) == 0 {
			continue
		}
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}

	log.Ctx(ctx).Info().Msg("Database setup completed successfully")
	return client.Disconnect(ctx)
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	err := database.CreateCollection(ctx, name)
	if err != nil {
		// NamespaceExists means the collection was created by a previous run.
		if cmdErr, ok := err.(mongo.CommandError); ok && cmdErr.Name == "NamespaceExists" {
			return nil
		}
		return err
	}
	return nil
}

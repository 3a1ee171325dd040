package model

import "github.com/naffleslabs/nft-staking-service/internal/types"

const PositionCollection = "positions"

// PositionDocument tracks one staked asset's lock period, owner and status.
// A deactivated position is kept as a historical record; re-staking the same
// asset creates a new document.
type PositionDocument struct {
	ID           string             `bson:"_id" json:"id"`
	Owner        string             `bson:"owner" json:"owner"`
	AssetID      string             `bson:"asset_id" json:"asset_id"`
	CollectionID string             `bson:"collection_id" json:"collection_id"`
	StakedAt     int64              `bson:"staked_at" json:"staked_at"`
	UnlockAt     int64              `bson:"unlock_at" json:"unlock_at"`
	Duration     types.DurationTier `bson:"duration" json:"duration"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	// TotalRewardsEarned is recorded but no in-scope operation increments it.
	TotalRewardsEarned uint64 `bson:"total_rewards_earned" json:"total_rewards_earned"`
}

func NewPositionDocument(id, owner, assetID, collectionID string, stakedAt int64, tier types.DurationTier) *PositionDocument {
	return &PositionDocument{
		ID:           id,
		Owner:        owner,
		AssetID:      assetID,
		CollectionID: collectionID,
		StakedAt:     stakedAt,
		UnlockAt:     stakedAt + tier.LockSeconds(),
		Duration:     tier,
		IsActive:     true,
	}
}

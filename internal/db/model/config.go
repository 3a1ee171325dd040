package model

const StakingConfigCollection = "staking_config"

// StakingConfigID is the _id of the singleton config document. Insert-once
// semantics come from the primary key: a second initialize attempt fails
// with a duplicate key error.
const StakingConfigID = "staking_config"

type StakingConfigDocument struct {
	ID        string `bson:"_id" json:"-"` // always StakingConfigID
	Authority string `bson:"authority" json:"authority"`
	// MultiSigThreshold is stored but not enforced; the approval-counting
	// workflow is a reserved extension point.
	MultiSigThreshold uint8 `bson:"multi_sig_threshold" json:"multi_sig_threshold"`
	TotalStaked       int64 `bson:"total_staked" json:"total_staked"`
	TotalCollections  int64 `bson:"total_collections" json:"total_collections"`
	IsPaused          bool  `bson:"is_paused" json:"is_paused"`
	PausedAt          int64 `bson:"paused_at" json:"paused_at"`
}

func NewStakingConfigDocument(authority string, multiSigThreshold uint8) *StakingConfigDocument {
	return &StakingConfigDocument{
		ID:                StakingConfigID,
		Authority:         authority,
		MultiSigThreshold: multiSigThreshold,
	}
}

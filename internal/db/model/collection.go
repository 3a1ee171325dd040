package model

import "github.com/naffleslabs/nft-staking-service/internal/types"

const AssetCollectionCollection = "collections"

// AssetCollectionDocument is one eligible asset collection: the reward-ticket
// table per duration tier plus its activity flags and active-position count.
type AssetCollectionDocument struct {
	ID                 string `bson:"_id" json:"id"` // collection identity
	SixMonthTickets    uint64 `bson:"six_month_tickets" json:"six_month_tickets"`
	TwelveMonthTickets uint64 `bson:"twelve_month_tickets" json:"twelve_month_tickets"`
	ThreeYearTickets   uint64 `bson:"three_year_tickets" json:"three_year_tickets"`
	// Multipliers are copied from the fixed tier constants at creation and
	// never change afterwards.
	SixMonthMultiplier    uint64 `bson:"six_month_multiplier" json:"six_month_multiplier"`
	TwelveMonthMultiplier uint64 `bson:"twelve_month_multiplier" json:"twelve_month_multiplier"`
	ThreeYearMultiplier   uint64 `bson:"three_year_multiplier" json:"three_year_multiplier"`
	IsActive              bool   `bson:"is_active" json:"is_active"`
	// IsValidated is advisory metadata; the staking path does not consult it.
	IsValidated bool  `bson:"is_validated" json:"is_validated"`
	TotalStaked int64 `bson:"total_staked" json:"total_staked"`
}

func NewAssetCollectionDocument(collectionID string, sixMonthTickets, twelveMonthTickets, threeYearTickets uint64) *AssetCollectionDocument {
	return &AssetCollectionDocument{
		ID:                    collectionID,
		SixMonthTickets:       sixMonthTickets,
		TwelveMonthTickets:    twelveMonthTickets,
		ThreeYearTickets:      threeYearTickets,
		SixMonthMultiplier:    types.SixMonthsMultiplierBps,
		TwelveMonthMultiplier: types.TwelveMonthsMultiplierBps,
		ThreeYearMultiplier:   types.ThreeYearsMultiplierBps,
		IsActive:              true,
		IsValidated:           false,
		TotalStaked:           0,
	}
}

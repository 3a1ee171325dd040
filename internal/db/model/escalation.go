package model

import "github.com/naffleslabs/nft-staking-service/internal/types"

const EscalationCollection = "emergency_escalations"

// EscalationDocument is the durable record of a two-phase emergency unlock.
// There is at most one per position (the position id is the primary key) and
// its state only ever moves REQUESTED -> EXECUTED.
type EscalationDocument struct {
	PositionID  string                `bson:"_id" json:"position_id"`
	Requester   string                `bson:"requester" json:"requester"`
	RequestedAt int64                 `bson:"requested_at" json:"requested_at"`
	Reason      string                `bson:"reason" json:"reason"`
	State       types.EscalationState `bson:"state" json:"state"`
}

func NewEscalationDocument(positionID, requester, reason string, requestedAt int64) *EscalationDocument {
	return &EscalationDocument{
		PositionID:  positionID,
		Requester:   requester,
		RequestedAt: requestedAt,
		Reason:      reason,
		State:       types.EscalationRequested,
	}
}

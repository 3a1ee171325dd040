package types

// EventTypes names the notifications published to the event sink. They are
// observability records only; losing one does not affect correctness.
type EventTypes string

func (e EventTypes) String() string {
	return string(e)
}

const (
	EventNftStaked                EventTypes = "staking.v1.NftStaked"
	EventNftClaimed               EventTypes = "staking.v1.NftClaimed"
	EventEmergencyUnlockRequested EventTypes = "staking.v1.EmergencyUnlockRequested"
	EventEmergencyUnlockExecuted  EventTypes = "staking.v1.EmergencyUnlockExecuted"
	EventCollectionAdded          EventTypes = "staking.v1.CollectionAdded"
	EventCollectionUpdated        EventTypes = "staking.v1.CollectionUpdated"
	EventAdminAction              EventTypes = "staking.v1.AdminAction"
	EventPauseToggled             EventTypes = "staking.v1.PauseToggled"
)

package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/naffleslabs/nft-staking-service/internal/db/model"
	"github.com/naffleslabs/nft-staking-service/internal/observability/metrics"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

// Notification payloads. These are observability records; a failed publish
// is logged and counted, never surfaced to the caller.

type NftStakedEvent struct {
	PositionID   string `json:"position_id"`
	Owner        string `json:"owner"`
	AssetID      string `json:"asset_id"`
	CollectionID string `json:"collection_id"`
	Duration     string `json:"duration"`
	UnlockAt     int64  `json:"unlock_at"`
}

type NftClaimedEvent struct {
	PositionID   string `json:"position_id"`
	Owner        string `json:"owner"`
	AssetID      string `json:"asset_id"`
	CollectionID string `json:"collection_id"`
}

type EmergencyUnlockRequestedEvent struct {
	PositionID string `json:"position_id"`
	Admin      string `json:"admin"`
	Reason     string `json:"reason"`
}

type EmergencyUnlockExecutedEvent struct {
	PositionID string `json:"position_id"`
	Admin      string `json:"admin"`
	Owner      string `json:"owner"`
	AssetID    string `json:"asset_id"`
	Reason     string `json:"reason"`
}

type CollectionAddedEvent struct {
	CollectionID       string `json:"collection_id"`
	SixMonthTickets    uint64 `json:"six_month_tickets"`
	TwelveMonthTickets uint64 `json:"twelve_month_tickets"`
	ThreeYearTickets   uint64 `json:"three_year_tickets"`
}

type CollectionUpdatedEvent struct {
	CollectionID       string `json:"collection_id"`
	SixMonthTickets    uint64 `json:"six_month_tickets"`
	TwelveMonthTickets uint64 `json:"twelve_month_tickets"`
	ThreeYearTickets   uint64 `json:"three_year_tickets"`
}

type AdminActionEvent struct {
	Admin  string `json:"admin"`
	Action string `json:"action"`
	Data   string `json:"data"`
}

type PauseToggledEvent struct {
	Admin    string `json:"admin"`
	Paused   bool   `json:"paused"`
	PausedAt int64  `json:"paused_at"`
}

func (s *Service) publishEvent(ctx context.Context, eventType types.EventTypes, payload interface{}) {
	if err := s.events.PublishEvent(ctx, eventType, payload); err != nil {
		metrics.RecordEventPublishError()
		log.Ctx(ctx).Error().
			Err(err).
			Str("eventType", eventType.String()).
			Msg("Failed to publish event")
	}
}

func (s *Service) emitNftStakedEvent(ctx context.Context, positionDoc *model.PositionDocument) {
	s.publishEvent(ctx, types.EventNftStaked, NftStakedEvent{
		PositionID:   positionDoc.ID,
		Owner:        positionDoc.Owner,
		AssetID:      positionDoc.AssetID,
		CollectionID: positionDoc.CollectionID,
		Duration:     positionDoc.Duration.String(),
		UnlockAt:     positionDoc.UnlockAt,
	})
}

func (s *Service) emitNftClaimedEvent(ctx context.Context, positionDoc *model.PositionDocument) {
	s.publishEvent(ctx, types.EventNftClaimed, NftClaimedEvent{
		PositionID:   positionDoc.ID,
		Owner:        positionDoc.Owner,
		AssetID:      positionDoc.AssetID,
		CollectionID: positionDoc.CollectionID,
	})
}

func (s *Service) emitEmergencyUnlockRequestedEvent(ctx context.Context, admin, positionID, reason string) {
	s.publishEvent(ctx, types.EventEmergencyUnlockRequested, EmergencyUnlockRequestedEvent{
		PositionID: positionID,
		Admin:      admin,
		Reason:     reason,
	})
}

func (s *Service) emitEmergencyUnlockExecutedEvent(
	ctx context.Context, admin string, positionDoc *model.PositionDocument, reason string,
) {
	s.publishEvent(ctx, types.EventEmergencyUnlockExecuted, EmergencyUnlockExecutedEvent{
		PositionID: positionDoc.ID,
		Admin:      admin,
		Owner:      positionDoc.Owner,
		AssetID:    positionDoc.AssetID,
		Reason:     reason,
	})
}

func (s *Service) emitCollectionAddedEvent(ctx context.Context, collectionDoc *model.AssetCollectionDocument) {
	s.publishEvent(ctx, types.EventCollectionAdded, CollectionAddedEvent{
		CollectionID:       collectionDoc.ID,
		SixMonthTickets:    collectionDoc.SixMonthTickets,
		TwelveMonthTickets: collectionDoc.TwelveMonthTickets,
		ThreeYearTickets:   collectionDoc.ThreeYearTickets,
	})
}

func (s *Service) emitCollectionUpdatedEvent(
	ctx context.Context, collectionID string, sixMonthTickets, twelveMonthTickets, threeYearTickets uint64,
) {
	s.publishEvent(ctx, types.EventCollectionUpdated, CollectionUpdatedEvent{
		CollectionID:       collectionID,
		SixMonthTickets:    sixMonthTickets,
		TwelveMonthTickets: twelveMonthTickets,
		ThreeYearTickets:   threeYearTickets,
	})
}

func (s *Service) emitAdminActionEvent(ctx context.Context, admin, action, data string) {
	s.publishEvent(ctx, types.EventAdminAction, AdminActionEvent{
		Admin:  admin,
		Action: action,
		Data:   data,
	})
}

func (s *Service) emitPauseToggledEvent(ctx context.Context, admin string, paused bool, pausedAt int64) {
	s.publishEvent(ctx, types.EventPauseToggled, PauseToggledEvent{
		Admin:    admin,
		Paused:   paused,
		PausedAt: pausedAt,
	})
}

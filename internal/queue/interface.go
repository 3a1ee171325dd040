package queue

import (
	"context"

	"github.com/naffleslabs/nft-staking-service/internal/types"
)

//go:generate mockery --name=EventSink --output=../../tests/mocks --outpkg=mocks --filename=mock_event_sink.go

// EventSink receives the structured notifications the service emits. They
// carry no control-flow meaning; a lost notification never affects
// correctness.
type EventSink interface {
	PublishEvent(ctx context.Context, eventType types.EventTypes, payload interface{}) error
	Shutdown()
}

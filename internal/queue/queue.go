package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/naffleslabs/nft-staking-service/internal/config"
	"github.com/naffleslabs/nft-staking-service/internal/types"
)

// QueueManager publishes notifications to an AMQP topic exchange. When the
// sink is disabled in config it degrades to a no-op.
type QueueManager struct {
	cfg     *config.EventsConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.EventsConfig) (*QueueManager, error) {
	if !cfg.Enabled {
		return &QueueManager{cfg: cfg}, nil
	}

	conn, err := amqp.Dial(cfg.Url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to event broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open event channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to declare event exchange: %w", err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
	}, nil
}

// PublishEvent sends one notification. The event type doubles as the routing
// key so consumers can bind to the subset they care about.
func (qm *QueueManager) PublishEvent(
	ctx context.Context, eventType types.EventTypes, payload interface{},
) error {
	if qm.channel == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	return qm.channel.PublishWithContext(
		ctx,
		qm.cfg.Exchange,
		eventType.String(), // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Type:        eventType.String(),
			Body:        body,
		},
	)
}

// Shutdown gracefully stops the interaction with the queue, ensuring all
// resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")
	if qm.channel != nil {
		if err := qm.channel.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close event channel")
		}
	}
	if qm.conn != nil {
		if err := qm.conn.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close event broker connection")
		}
	}
}

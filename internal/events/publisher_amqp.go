package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/streadway/amqp"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// RoutingKeyPrefix prefixes the event kind in AMQP routing keys, e.g.
// "vault.record_stored".
const RoutingKeyPrefix = "vault."

var ErrPublishingEvent = errors.New("failed to publish audit event")

// Channel is the part of *amqp.Channel used by the publisher.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpPublisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	logger   *logger.Logger
}

// NewAMQPPublisher dials the broker, opens a channel and declares a durable
// topic exchange.
func NewAMQPPublisher(url, exchange string, log *logger.Logger) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Err(err).Str("func", "NewAMQPPublisher").Msg("error connecting to broker")
		return nil, fmt.Errorf("error connecting to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening broker channel: %w", err)
	}

	p, err := newAMQPPublisher(ch, exchange, log)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	p.conn = conn

	log.Info().Str("func", "NewAMQPPublisher").Str("exchange", exchange).Msg("audit events go to broker")
	return p, nil
}

func newAMQPPublisher(ch Channel, exchange string, log *logger.Logger) (*amqpPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("error declaring exchange %q: %w", exchange, err)
	}

	return &amqpPublisher{
		channel:  ch,
		exchange: exchange,
		logger:   log,
	}, nil
}

func (p *amqpPublisher) Publish(_ context.Context, events ...models.Event) error {
	for _, event := range events {
		body, err := json.Marshal(models.NewEventResponse(event))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
		}

		err = p.channel.Publish(
			p.exchange,
			RoutingKeyPrefix+string(event.Kind),
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    fmt.Sprintf("%d", event.Seq),
				Timestamp:    event.CreatedAt,
				Body:         body,
			},
		)
		if err != nil {
			p.logger.Err(err).Int64("seq", event.Seq).Msg("error publishing audit event")
			return fmt.Errorf("%w: seq %d: %w", ErrPublishingEvent, event.Seq, err)
		}
	}

	return nil
}

func (p *amqpPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

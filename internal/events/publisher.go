// Package events fans committed audit events out to observers: the service
// log and, when configured, a RabbitMQ topic exchange.
package events

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Publisher delivers audit events that are already committed to the state
// store. Publish is called outside of any transaction.
type Publisher interface {
	Publish(ctx context.Context, events ...models.Event) error
	Close() error
}

// NewPublisher builds the publisher described by cfg: events are always
// logged and additionally sent to AMQP when a broker URL is set.
func NewPublisher(cfg config.Events, log *logger.Logger) (Publisher, error) {
	publishers := []Publisher{NewLogPublisher(log)}

	if cfg.AMQPURL != "" {
		amqpPublisher, err := NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange, log)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, amqpPublisher)
	}

	return NewMultiPublisher(publishers...), nil
}

type multiPublisher struct {
	publishers []Publisher
}

// NewMultiPublisher publishes to every publisher in order and joins their
// errors. A failing publisher does not stop the others.
func NewMultiPublisher(publishers ...Publisher) Publisher {
	return &multiPublisher{publishers: publishers}
}

func (m *multiPublisher) Publish(ctx context.Context, events ...models.Event) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multiPublisher) Close() error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

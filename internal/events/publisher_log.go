package events

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type logPublisher struct {
	logger *logger.Logger
}

// NewLogPublisher writes every event as one structured log entry.
func NewLogPublisher(log *logger.Logger) Publisher {
	return &logPublisher{logger: log}
}

func (p *logPublisher) Publish(_ context.Context, events ...models.Event) error {
	for _, event := range events {
		p.logger.Info().
			Int64("seq", event.Seq).
			Str("kind", string(event.Kind)).
			Str("actor", models.FormatAddress(event.Actor)).
			Any("details", event.Details).
			Time("created_at", event.CreatedAt).
			Msg("audit event")
	}
	return nil
}

func (p *logPublisher) Close() error {
	return nil
}

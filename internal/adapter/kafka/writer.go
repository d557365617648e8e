package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aerowx/carbice-advisory/internal/config"
	"github.com/aerowx/carbice-advisory/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes icing advisories to the sink topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes multiple advisories to the sink Kafka
// topic in a single WriteMessages call for efficiency.
func (w *Writer) LoadBatch(ctx context.Context, advisories []domain.IcingAdvisory) error {
	if len(advisories) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(advisories))
	for i := range advisories {
		msg, err := serializeToMessage(advisories[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an IcingAdvisory into a Kafka message. Messages
// are keyed by advisory ID so replays land on the same partition, with
// station and risk surfaced as headers for header-based routing.
func serializeToMessage(advisory domain.IcingAdvisory) (kafkago.Message, error) {
	data, err := json.Marshal(advisory)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize icing advisory: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(advisory.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station", Value: []byte(advisory.Station)},
			{Key: "risk", Value: []byte(advisory.Risk)},
			{Key: "processed_at", Value: []byte(advisory.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}

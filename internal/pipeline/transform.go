package pipeline

import (
	"context"
	"log/slog"

	"github.com/aerowx/carbice-advisory/internal/domain"
)

// AdvisoryTransformer implements Transformer using the domain parse and
// classification functions.
type AdvisoryTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates an AdvisoryTransformer.
func NewTransformer(logger *slog.Logger) *AdvisoryTransformer {
	return &AdvisoryTransformer{logger: logger}
}

// Transform parses a raw METAR message and classifies it into an icing
// advisory. Observations missing temperature or dew point return
// domain.ErrIncompleteReading so the pipeline can skip and count them.
func (t *AdvisoryTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.IcingAdvisory, error) {
	obs, err := domain.ParseRawObservation(raw)
	if err != nil {
		return domain.IcingAdvisory{}, err
	}

	return domain.BuildAdvisory(obs)
}

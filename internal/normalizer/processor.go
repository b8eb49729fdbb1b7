// Package normalizer turns raw source records into canonical addresses.
// Per-record failures are logged and counted, never fatal to the run.
package normalizer

import (
	"errors"

	"bfpogen/internal/logger"
	"bfpogen/internal/models"
)

// Processor handles record validation and transformation.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	logger      *logger.Logger
}

// NewProcessor creates a new processor instance.
func NewProcessor(log *logger.Logger) *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
		logger:      log,
	}
}

// Process normalizes one raw record.
func (p *Processor) Process(raw models.RawRecord) (models.Address, error) {
	if err := p.validator.Validate(raw); err != nil {
		return models.Address{}, err
	}

	return p.transformer.Transform(raw)
}

// ProcessAll normalizes a batch of raw records, dropping the ones that fail
// and accounting for every drop in stats.
func (p *Processor) ProcessAll(raws []models.RawRecord, stats *models.RunStats) []models.Address {
	addresses := make([]models.Address, 0, len(raws))

	for _, raw := range raws {
		addr, err := p.Process(raw)
		if err != nil {
			p.countDrop(err, stats)
			p.logger.Warn("dropping record",
				"origin", raw.Origin,
				"designator", raw.Designator,
				"location", raw.Location,
				"reason", err)

			continue
		}

		addresses = append(addresses, addr)
		stats.Accepted++
		stats.BySource[raw.Origin]++
	}

	return addresses
}

func (p *Processor) countDrop(err error, stats *models.RunStats) {
	switch {
	case errors.Is(err, ErrMalformedDesignator):
		stats.MalformedDesignators++
	case errors.Is(err, ErrMalformedBoxNumber):
		stats.MalformedBoxNumbers++
	case errors.Is(err, ErrIncompleteRecord):
		stats.IncompleteRecords++
	}
}

// Package categorizer assigns free-text messages to the two-level account
// group taxonomy. Strategies are tried in order (keyword matching first,
// optionally an AI suggestion) and the Outros/Outros fallback applies when
// none of them matches. The fallback is a normal outcome, not an error.
package categorizer

import (
	"context"

	"cofrim/internal/models"

	"github.com/sirupsen/logrus"
)

// Categorizer chains classification strategies over a group catalog.
type Categorizer struct {
	strategies []Strategy
	log        *logrus.Logger
}

// New creates a Categorizer with the given strategy chain.
func New(logger *logrus.Logger, strategies ...Strategy) *Categorizer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Categorizer{strategies: strategies, log: logger}
}

// Classify runs the strategy chain over normalized text. It always
// returns a usable classification; when every strategy passes, the
// Outros/Outros fallback is returned.
func (c *Categorizer) Classify(ctx context.Context, normalized string) models.Classification {
	for _, s := range c.strategies {
		cls, found, err := s.Classify(ctx, normalized)
		if err != nil {
			c.log.WithError(err).WithField("strategy", s.Name()).Warn("Classification strategy failed")
			continue
		}
		if found {
			return cls
		}
	}

	return models.FallbackClassification()
}

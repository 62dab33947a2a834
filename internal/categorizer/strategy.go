package categorizer

import (
	"context"

	"cofrim/internal/models"
)

// Strategy defines a method for assigning a message to the account group
// taxonomy. Each strategy implements one approach (keyword matching, AI
// suggestion) and is tried in chain order.
type Strategy interface {
	// Classify attempts to classify the normalized message text.
	// Returns the classification, a boolean indicating success, and any
	// error encountered. A false result is not an error; it means the
	// next strategy in the chain should be consulted.
	Classify(ctx context.Context, normalized string) (models.Classification, bool, error)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}

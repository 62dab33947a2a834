package categorizer

import (
	"context"
	"errors"
	"testing"

	"cofrim/internal/models"

	"github.com/stretchr/testify/assert"
)

// stubStrategy is a test double with a fixed answer.
type stubStrategy struct {
	name string
	cls  models.Classification
	ok   bool
	err  error
}

func (s *stubStrategy) Classify(context.Context, string) (models.Classification, bool, error) {
	return s.cls, s.ok, s.err
}

func (s *stubStrategy) Name() string { return s.name }

func TestCategorizerChainOrder(t *testing.T) {
	first := &stubStrategy{name: "first", cls: models.Classification{Group: "A", Subgroup: "a"}, ok: true}
	second := &stubStrategy{name: "second", cls: models.Classification{Group: "B", Subgroup: "b"}, ok: true}

	c := New(nil, first, second)
	cls := c.Classify(context.Background(), "anything")
	assert.Equal(t, "A", cls.Group)
}

func TestCategorizerSkipsFailingStrategy(t *testing.T) {
	failing := &stubStrategy{name: "failing", err: errors.New("boom")}
	fallback := &stubStrategy{name: "ok", cls: models.Classification{Group: "B", Subgroup: "b"}, ok: true}

	c := New(nil, failing, fallback)
	cls := c.Classify(context.Background(), "anything")
	assert.Equal(t, "B", cls.Group)
}

func TestCategorizerAllMissYieldsFallback(t *testing.T) {
	c := New(nil, &stubStrategy{name: "miss"})
	cls := c.Classify(context.Background(), "anything")
	assert.Equal(t, models.FallbackClassification(), cls)
}

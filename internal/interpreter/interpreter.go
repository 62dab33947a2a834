// Package interpreter turns one line of Portuguese free text into either a
// recorded ledger entry or an aggregate answer over the ledger. Every
// message gets exactly one response; malformed input produces a message,
// never an error, so the conversational loop cannot crash.
package interpreter

import (
	"context"
	"strings"
	"time"

	"cofrim/internal/categorizer"
	"cofrim/internal/config"
	"cofrim/internal/store"
	"cofrim/internal/textutils"

	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// User-visible responses. These are the complete output surface of the
// interpreter besides the query total.
const (
	RespRecorded = "✔ Lançamento registrado com sucesso."
	RespNoAmount = "🤔 Não identifiquei um valor."
	RespNoType   = "🤔 Não entendi se é débito ou crédito."

	respSpentFormat = "💸 Você gastou R$ %s"
)

// queryTrigger routes a message to the query path. Any message containing
// it is a query, even one that also looks like a transaction.
const queryTrigger = "quanto"

// Interpreter processes one message at a time against a store. The clock
// is injectable for tests.
type Interpreter struct {
	store      *store.Store
	classifier *categorizer.Categorizer
	now        func() time.Time
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock overrides the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) {
		i.now = now
	}
}

// New creates an Interpreter over the given store and classifier.
func New(st *store.Store, classifier *categorizer.Categorizer, opts ...Option) *Interpreter {
	i := &Interpreter{
		store:      st,
		classifier: classifier,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Process interprets a single message and returns the response text.
// Messages containing the query trigger go to the query path; everything
// else is treated as a transaction to record.
func (i *Interpreter) Process(ctx context.Context, msg string) string {
	normalized := textutils.Normalize(msg)

	if strings.Contains(normalized, queryTrigger) {
		return i.answerQuery(normalized)
	}

	return i.record(ctx, normalized, msg)
}

package interpreter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cofrim/internal/categorizer"
	"cofrim/internal/models"
	"cofrim/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2024-04-17 12:30.
var wednesday = time.Date(2024, time.April, 17, 12, 30, 0, 0, time.UTC)

func newTestInterpreter(t *testing.T) (*Interpreter, *store.Store) {
	t.Helper()

	st := store.New(filepath.Join(t.TempDir(), "cofrim_dados.yaml"))
	st.SeedDefaults()

	classifier := categorizer.New(nil, categorizer.NewKeywordStrategy(st.Groups, nil))
	it := New(st, classifier, WithClock(func() time.Time { return wednesday }))
	return it, st
}

func TestRecordCreditCardPurchase(t *testing.T) {
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	resp := it.Process(ctx, "gastei 50 no mercado com cartao de credito")
	assert.Equal(t, RespRecorded, resp)

	require.Len(t, st.Entries, 1)
	e := st.Entries[0]
	assert.Equal(t, 1, e.ID)
	assert.Equal(t, "DEBITO", string(e.Direction))
	assert.Equal(t, "CARTAO_CREDITO", e.Subtype)
	assert.Equal(t, "Alimentação", e.Group)
	assert.Equal(t, "mercado", e.Subgroup)
	assert.Equal(t, "50", e.Amount.String())
	assert.Equal(t, "gastei 50 no mercado com cartao de credito", e.Description)
}

func TestRecordKeepsRawTextWithAccents(t *testing.T) {
	it, st := newTestInterpreter(t)

	it.Process(context.Background(), "Gastei 45,90 no Mercado com PIX")
	require.Len(t, st.Entries, 1)
	assert.Equal(t, "Gastei 45,90 no Mercado com PIX", st.Entries[0].Description)
	assert.Equal(t, "45.9", st.Entries[0].Amount.String())
	assert.Equal(t, "PIX", st.Entries[0].Subtype)
}

func TestRecordBankAndDateDefaults(t *testing.T) {
	it, st := newTestInterpreter(t)
	ctx := context.Background()

	it.Process(ctx, "gastei 20 de pix no nubank ontem")
	require.Len(t, st.Entries, 1)
	e := st.Entries[0]
	assert.Equal(t, "Nubank", e.Bank)
	assert.Equal(t, "2024-04-16 10:00", e.Date.Format("2006-01-02 15:04"))

	// No bank, no date: silently defaulted, still recorded.
	it.Process(ctx, "gastei 15 de pix na padaria")
	require.Len(t, st.Entries, 2)
	e = st.Entries[1]
	assert.Empty(t, e.Bank)
	assert.Equal(t, "Outros", e.Group)
	assert.Equal(t, "Outros", e.Subgroup)
	assert.True(t, e.Date.Equal(wednesday.Truncate(time.Minute)))
}

func TestRecordAbortsWithoutAmount(t *testing.T) {
	it, st := newTestInterpreter(t)

	resp := it.Process(context.Background(), "gastei muito no mercado")
	assert.Equal(t, RespNoAmount, resp)
	assert.Empty(t, st.Entries)
}

func TestRecordAbortsWithoutMovementType(t *testing.T) {
	it, st := newTestInterpreter(t)

	resp := it.Process(context.Background(), "paguei 100 de conta de luz")
	assert.Equal(t, RespNoType, resp)
	assert.Empty(t, st.Entries)
}

func TestRecordPersistsSnapshot(t *testing.T) {
	it, st := newTestInterpreter(t)

	it.Process(context.Background(), "gastei 50 no mercado com pix")

	reloaded := store.New(st.Path())
	require.NoError(t, reloaded.Load())
	require.Len(t, reloaded.Entries, 1)
	assert.Equal(t, "gastei 50 no mercado com pix", reloaded.Entries[0].Description)
}

func TestQueryWeeklyTotal(t *testing.T) {
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	assert.Equal(t, RespRecorded, it.Process(ctx, "gastei 50 no mercado com pix"))
	assert.Equal(t, RespRecorded, it.Process(ctx, "gastei 30 no mercado com pix"))

	resp := it.Process(ctx, "quanto gastei no mercado essa semana")
	assert.Equal(t, "💸 Você gastou R$ 80.00", resp)
}

func TestQueryWithoutFiltersSumsAllDebits(t *testing.T) {
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	it.Process(ctx, "gastei 50 no mercado com pix ontem")
	it.Process(ctx, "gastei 30 no cinema com cartao de credito dia 2/1")
	it.Process(ctx, "recebi 1000 de salario")

	resp := it.Process(ctx, "quanto gastei")
	assert.Equal(t, "💸 Você gastou R$ 80.00", resp)
}

func TestQueryNeverIncludesCredits(t *testing.T) {
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	it.Process(ctx, "recebi 1000 de salario")
	it.Process(ctx, "ganhei 200 de bonus")

	// Both entries are CREDITO, so the total stays zero.
	resp := it.Process(ctx, "quanto gastei")
	assert.Equal(t, "💸 Você gastou R$ 0.00", resp)
}

func TestQueryEmptyLedger(t *testing.T) {
	it, _ := newTestInterpreter(t)

	resp := it.Process(context.Background(), "quanto gastei esse mes")
	assert.Equal(t, "💸 Você gastou R$ 0.00", resp)
}

func TestQueryTriggerOutranksRecording(t *testing.T) {
	it, st := newTestInterpreter(t)

	// The message carries an amount and keywords, but "quanto" makes it
	// a query; nothing may be recorded.
	it.Process(context.Background(), "quanto gastei dos 50 no mercado com pix")
	assert.Empty(t, st.Entries)
}

func TestQueryGroupFilter(t *testing.T) {
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	it.Process(ctx, "gastei 50 no mercado com pix")
	it.Process(ctx, "gastei 30 no cinema com pix")

	// Group-name and subgroup-name hits both narrow the aggregation.
	assert.Equal(t, "💸 Você gastou R$ 30.00", it.Process(ctx, "quanto gastei com lazer"))
	assert.Equal(t, "💸 Você gastou R$ 30.00", it.Process(ctx, "quanto gastei no cinema"))
}

func TestQueryGroupScanLastMatchWins(t *testing.T) {
	it, st := newTestInterpreter(t)
	st.Groups = append(st.Groups, models.AccountGroup{
		Name:      "Mercado Financeiro",
		Subgroups: []string{"acoes"},
		Keywords:  []string{"corretora"},
	})

	// The scan walks the whole catalog without stopping, so when two
	// group names match the later catalog entry overrides the earlier
	// one. The recording path stops at the first hit; this one must not.
	f := it.buildFilter("quanto gastei em alimentacao e mercado financeiro")
	assert.Equal(t, "Mercado Financeiro", f.Group)
	assert.Empty(t, f.Subgroup)

	// A subgroup hit from an earlier group survives a later group-name
	// override, leaving a mismatched group/subgroup pair.
	f = it.buildFilter("quanto gastei no cinema e mercado financeiro")
	assert.Equal(t, "Mercado Financeiro", f.Group)
	assert.Equal(t, "cinema", f.Subgroup)
}

func TestQuerySubtypeFilters(t *testing.T) {
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	it.Process(ctx, "gastei 50 no mercado com pix")
	it.Process(ctx, "gastei 30 no mercado com cartao de credito")

	assert.Equal(t, "💸 Você gastou R$ 50.00", it.Process(ctx, "quanto gastei no pix"))
	assert.Equal(t, "💸 Você gastou R$ 30.00", it.Process(ctx, "quanto gastei no cartao de credito"))
}

func TestQueryPeriodExcludesOlderEntries(t *testing.T) {
	it, _ := newTestInterpreter(t)
	ctx := context.Background()

	it.Process(ctx, "gastei 50 no mercado com pix")          // today
	it.Process(ctx, "gastei 30 no mercado com pix dia 2/1")  // January 2nd
	it.Process(ctx, "gastei 20 no mercado com pix ontem")    // yesterday

	assert.Equal(t, "💸 Você gastou R$ 50.00", it.Process(ctx, "quanto gastei hoje"))
	assert.Equal(t, "💸 Você gastou R$ 20.00", it.Process(ctx, "quanto gastei ontem"))
	assert.Equal(t, "💸 Você gastou R$ 70.00", it.Process(ctx, "quanto gastei essa semana"))
	assert.Equal(t, "💸 Você gastou R$ 100.00", it.Process(ctx, "quanto gastei"))
}

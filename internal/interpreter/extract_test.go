package interpreter

import (
	"testing"

	"cofrim/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testBanks() []models.Bank {
	return []models.Bank{
		{ID: 1, Name: "Nubank", Aliases: []string{"nubank", "nu"}},
		{ID: 2, Name: "Itaú", Aliases: []string{"itau"}},
	}
}

func testMovements() []models.MovementType {
	return []models.MovementType{
		{ID: 1, Direction: models.DirectionDebit, Subtype: models.SubtypeCreditCard, Keywords: []string{"cartao", "credito"}},
		{ID: 2, Direction: models.DirectionDebit, Subtype: models.SubtypePix, Keywords: []string{"pix"}},
		{ID: 3, Direction: models.DirectionCredit, Subtype: "SALARIO", Keywords: []string{"salario", "recebi", "ganhei"}},
	}
}

func TestIdentifyBank(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"By alias", "gastei 20 de pix no nubank", "Nubank", true},
		{"Short alias matches as substring", "transferi pelo nu ontem", "Nubank", true},
		{"Accented name matches normalized text", "paguei 30 no itau", "Itaú", true},
		{"First bank wins in catalog order", "transferi do nubank para o itau", "Nubank", true},
		{"No bank mentioned", "gastei 15 na padaria", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, found := IdentifyBank(tc.text, testBanks())
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, name)
		})
	}
}

func TestIdentifyMovement(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		direction models.Direction
		subtype   string
		found     bool
	}{
		{"Credit card keyword", "gastei 50 no cartao", models.DirectionDebit, models.SubtypeCreditCard, true},
		{"Pix keyword", "paguei 20 de pix", models.DirectionDebit, models.SubtypePix, true},
		{"Salary keyword", "recebi 1000 de salario", models.DirectionCredit, "SALARIO", true},
		{"Catalog order decides", "paguei o cartao com pix", models.DirectionDebit, models.SubtypeCreditCard, true},
		{"No keyword", "paguei 100 de conta de luz", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			direction, subtype, found := IdentifyMovement(tc.text, testMovements())
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.direction, direction)
			assert.Equal(t, tc.subtype, subtype)
		})
	}
}

func TestAggregateFilters(t *testing.T) {
	entries := []models.Entry{
		{ID: 1, Direction: models.DirectionDebit, Subtype: models.SubtypePix, Group: "Alimentação", Subgroup: "mercado", Amount: amountFromString(t, "50")},
		{ID: 2, Direction: models.DirectionDebit, Subtype: models.SubtypeCreditCard, Group: "Lazer", Subgroup: "cinema", Amount: amountFromString(t, "30")},
		{ID: 3, Direction: models.DirectionCredit, Subtype: "SALARIO", Group: "Outros", Subgroup: "Outros", Amount: amountFromString(t, "1000")},
	}

	tests := []struct {
		name     string
		filter   models.QueryFilter
		expected string
	}{
		{"No filters sums all debits", models.QueryFilter{}, "80"},
		{"Group filter", models.QueryFilter{Group: "Lazer"}, "30"},
		{"Subgroup filter", models.QueryFilter{Group: "Alimentação", Subgroup: "mercado"}, "50"},
		{"Subtype filter", models.QueryFilter{Subtype: models.SubtypePix}, "50"},
		{"Credits excluded even when filter matches them", models.QueryFilter{Group: "Outros"}, "0"},
		{"No matching entries", models.QueryFilter{Group: "Inexistente"}, "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			total := Aggregate(entries, tc.filter)
			assert.Equal(t, tc.expected, total.String())
		})
	}
}

func amountFromString(t *testing.T, s string) models.Amount {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return models.NewAmount(d)
}

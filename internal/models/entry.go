package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DateTimeLayout is the storage layout for entry timestamps.
const DateTimeLayout = "2006-01-02 15:04"

// DateTime wraps time.Time so entry timestamps round-trip through the
// snapshot in the YYYY-MM-DD HH:MM storage layout.
type DateTime struct {
	time.Time
}

// NewDateTime creates a DateTime truncated to minute precision.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t.Truncate(time.Minute)}
}

// MarshalYAML implements yaml.Marshaler.
func (d DateTime) MarshalYAML() (interface{}, error) {
	return d.Format(DateTimeLayout), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DateTime) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse(DateTimeLayout, value.Value)
	if err != nil {
		return fmt.Errorf("invalid entry timestamp %q: %w", value.Value, err)
	}
	d.Time = t
	return nil
}

// Amount wraps decimal.Decimal with YAML round-tripping. Monetary values
// never pass through float64.
type Amount struct {
	decimal.Decimal
}

// NewAmount creates an Amount from a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// MarshalYAML implements yaml.Marshaler.
func (a Amount) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", value.Value, err)
	}
	a.Decimal = d
	return nil
}

// Entry is a recorded ledger transaction. Bank, Direction and Subtype may
// be empty when the message gave no evidence for them; Group and Subgroup
// always carry at least the Outros fallback.
type Entry struct {
	ID          int       `yaml:"id"`
	Date        DateTime  `yaml:"date"`
	Bank        string    `yaml:"bank,omitempty"`
	Direction   Direction `yaml:"direction,omitempty"`
	Subtype     string    `yaml:"subtype,omitempty"`
	Group       string    `yaml:"group"`
	Subgroup    string    `yaml:"subgroup"`
	Amount      Amount    `yaml:"amount"`
	Description string    `yaml:"description"`
}

// IsDebit reports whether the entry is a debit.
func (e Entry) IsDebit() bool {
	return e.Direction == DirectionDebit
}

// IsCredit reports whether the entry is a credit.
func (e Entry) IsCredit() bool {
	return e.Direction == DirectionCredit
}

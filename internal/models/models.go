// Package models defines the reference catalogs, ledger entries and query
// types shared across the application.
package models

import "time"

// Direction is the top-level movement classification of an entry.
type Direction string

const (
	DirectionDebit  Direction = "DEBITO"
	DirectionCredit Direction = "CREDITO"
)

// Well-known subtypes referenced by the query path.
const (
	SubtypeCreditCard = "CARTAO_CREDITO"
	SubtypePix        = "PIX"
)

// FallbackGroup is used for both group and subgroup when no catalog
// keyword matches. This is the normal outcome for uncategorized text,
// not an error.
const FallbackGroup = "Outros"

// Bank is a bank catalog entry. A bank matches a message when its name or
// any alias is a substring of the normalized text; catalog order decides
// ties.
type Bank struct {
	ID      int      `yaml:"id"`
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// MovementType maps a keyword set to a movement direction and subtype.
// The first catalog entry with a matching keyword wins.
type MovementType struct {
	ID        int       `yaml:"id"`
	Direction Direction `yaml:"direction"`
	Subtype   string    `yaml:"subtype"`
	Keywords  []string  `yaml:"keywords"`
}

// AccountGroup is a two-level spending category: subgroup names are tried
// before the generic keywords within each group.
type AccountGroup struct {
	Name      string   `yaml:"group"`
	Subgroups []string `yaml:"subgroups"`
	Keywords  []string `yaml:"keywords"`
}

// Classification is the result of assigning an entry to the group taxonomy.
type Classification struct {
	Group    string
	Subgroup string
}

// FallbackClassification returns the Outros/Outros classification.
func FallbackClassification() Classification {
	return Classification{Group: FallbackGroup, Subgroup: FallbackGroup}
}

// DateRange is a calendar period. A nil bound means unbounded on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Unbounded reports whether the range imposes no constraint at all.
func (r DateRange) Unbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether a calendar day falls inside the range,
// inclusive on both present bounds. Only the date part of d is considered.
func (r DateRange) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if r.Start != nil && day.Before(*r.Start) {
		return false
	}
	if r.End != nil && day.After(*r.End) {
		return false
	}
	return true
}

// QueryFilter is the set of constraints applied during aggregation. All
// non-empty fields must hold (logical AND); empty fields impose nothing.
// Aggregation itself additionally restricts to DEBITO entries.
type QueryFilter struct {
	Period   DateRange
	Group    string
	Subgroup string
	Subtype  string
}

// Snapshot is the persisted document holding all four collections. It is
// reloaded at startup and rewritten in full after every mutation.
type Snapshot struct {
	Banks     []Bank         `yaml:"banks"`
	Movements []MovementType `yaml:"movements"`
	Groups    []AccountGroup `yaml:"groups"`
	Entries   []Entry        `yaml:"entries"`
}

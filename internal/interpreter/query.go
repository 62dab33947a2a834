package interpreter

import (
	"fmt"
	"strings"

	"cofrim/internal/dateutils"
	"cofrim/internal/models"
	"cofrim/internal/textutils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// answerQuery resolves the period and filters from the query text,
// aggregates the matching debit entries and formats the total.
func (i *Interpreter) answerQuery(normalized string) string {
	filter := i.buildFilter(normalized)
	total := Aggregate(i.store.Entries, filter)

	log.WithFields(logrus.Fields{
		"group":    filter.Group,
		"subgroup": filter.Subgroup,
		"subtype":  filter.Subtype,
		"total":    total.StringFixed(2),
	}).Debug("Answered spending query")

	return fmt.Sprintf(respSpentFormat, total.StringFixed(2))
}

// buildFilter assembles the query constraints from normalized text.
//
// The group scan deliberately walks the entire catalog without stopping:
// a later catalog entry overrides an earlier one when both match, so the
// LAST match wins here, unlike the recording path where the first match
// wins. Both group names and subgroup names are tested.
func (i *Interpreter) buildFilter(normalized string) models.QueryFilter {
	filter := models.QueryFilter{
		Period: dateutils.ResolvePeriod(normalized, i.now()),
	}

	for _, g := range i.store.Groups {
		if strings.Contains(normalized, textutils.Normalize(g.Name)) {
			filter.Group = g.Name
		}

		for _, sg := range g.Subgroups {
			if strings.Contains(normalized, textutils.Normalize(sg)) {
				filter.Group = g.Name
				filter.Subgroup = sg
			}
		}
	}

	// Hardcoded subtype triggers; card+credit takes precedence over pix.
	if strings.Contains(normalized, "cartao") && strings.Contains(normalized, "credito") {
		filter.Subtype = models.SubtypeCreditCard
	} else if strings.Contains(normalized, "pix") {
		filter.Subtype = models.SubtypePix
	}

	return filter
}

// Aggregate sums the amounts of the debit entries matching the filter.
// Credit entries are never included. An empty match is a zero total, not
// an error.
func Aggregate(entries []models.Entry, filter models.QueryFilter) decimal.Decimal {
	total := decimal.Zero

	for _, e := range entries {
		if !e.IsDebit() {
			continue
		}
		if !filter.Period.Contains(e.Date.Time) {
			continue
		}
		if filter.Group != "" && e.Group != filter.Group {
			continue
		}
		if filter.Subgroup != "" && e.Subgroup != filter.Subgroup {
			continue
		}
		if filter.Subtype != "" && e.Subtype != filter.Subtype {
			continue
		}

		total = total.Add(e.Amount.Decimal)
	}

	return total
}
